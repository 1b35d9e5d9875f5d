package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"machsight/internal/models/request_models"
	"machsight/internal/services"
	"machsight/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// ListPlans is public: the pricing page reads it before sign-in.
func (p *PaymentController) ListPlans(c *gin.Context) {
	utils.RespondSuccess(c, p.paymentService.Plans(), "Plans fetched successfully")
}

// CreateOrder godoc
// @Summary Create a payment order for a plan purchase
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Order request"
// @Success 200 {object} response_models.CreateOrderResponse
// @Security BearerAuth
// @Router /payments/orders [post]
func (p *PaymentController) CreateOrder(c *gin.Context) {

	var request request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "plan_type, amount and credits are required")
		return
	}

	userID := c.GetString("user_id")

	order, err := p.paymentService.CreateOrder(c.Request.Context(), userID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, order, "Order created successfully")
}

// VerifyPayment godoc
// @Summary Verify a payment gateway callback
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.VerifyPaymentRequest true "Gateway callback payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/verify [post]
func (p *PaymentController) VerifyPayment(c *gin.Context) {

	var request request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "order id, payment id and signature are required")
		return
	}

	userID := c.GetString("user_id")

	if err := p.paymentService.VerifyPayment(c.Request.Context(), userID, request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Payment verified successfully")
}

func (p *PaymentController) ListTransactions(c *gin.Context) {
	userID := c.GetString("user_id")

	txns, err := p.paymentService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txns, "Transactions fetched successfully")
}

// GetPendingTransaction returns the newest PENDING transaction so the client
// can resume an interrupted checkout.
func (p *PaymentController) GetPendingTransaction(c *gin.Context) {
	userID := c.GetString("user_id")

	txn, err := p.paymentService.GetPendingTransaction(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txn, "Pending transaction fetched successfully")
}

func (p *PaymentController) GetReceipt(c *gin.Context) {
	transactionID := c.Param("id")
	userID := c.GetString("user_id")

	receipt, err := p.paymentService.GetReceipt(c.Request.Context(), userID, transactionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, receipt, "Receipt generated successfully")
}
