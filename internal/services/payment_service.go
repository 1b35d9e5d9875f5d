package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"machsight/internal/models/db_models"
	"machsight/internal/models/request_models"
	"machsight/internal/models/response_models"
	"machsight/internal/repositories"
	"machsight/pkg/utils"
)

// OrderCreator creates an order with the payment gateway and returns its id.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error)
}

type PaymentServiceInterface interface {
	Plans() []response_models.PlanResponse
	CreateOrder(ctx context.Context, userID string, req request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, userID string, req request_models.VerifyPaymentRequest) error
	ListTransactions(ctx context.Context, userID string) ([]response_models.TransactionResponse, error)
	GetPendingTransaction(ctx context.Context, userID string) (*response_models.TransactionResponse, error)
	GetReceipt(ctx context.Context, userID string, transactionID string) (*response_models.ReceiptResponse, error)
}

type PaymentService struct {
	txnRepo   repositories.TransactionRepositoryInterface
	orders    OrderCreator
	keySecret string
}

func NewPaymentService(txnRepo repositories.TransactionRepositoryInterface, orders OrderCreator, keySecret string) (PaymentServiceInterface, error) {
	if keySecret == "" {
		return nil, utils.ErrMissingConfiguration
	}
	return &PaymentService{
		txnRepo:   txnRepo,
		orders:    orders,
		keySecret: keySecret,
	}, nil
}

// planCatalog mirrors the pricing page: monthly price in whole rupees and
// the credit bundle granted on purchase.
var planCatalog = []response_models.PlanResponse{
	{Tier: string(db_models.PlanStandard), Price: 399, Credits: 20},
	{Tier: string(db_models.PlanPro), Price: 799, Credits: 100},
}

func (s *PaymentService) Plans() []response_models.PlanResponse {
	return planCatalog
}

func (s *PaymentService) CreateOrder(ctx context.Context, userID string, req request_models.CreateOrderRequest) (*response_models.CreateOrderResponse, error) {

	// The gateway works in the smallest currency unit (paise).
	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
	orderID, err := s.orders.CreateOrder(ctx, req.Amount*100, "INR", receipt)
	if err != nil {
		log.Printf("CreateOrder: gateway order failed: %v", err)
		return nil, utils.ErrUpstreamFailure
	}

	txn := &db_models.Transaction{
		UserID:          userID,
		Amount:          req.Amount,
		PlanType:        db_models.UserPlan(req.PlanType),
		CreditsAdded:    req.Credits,
		RazorpayOrderID: orderID,
		Status:          db_models.TxnStatusPending,
	}
	if err := s.txnRepo.Create(ctx, txn); err != nil {
		log.Printf("CreateOrder: transaction persist failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreateOrderResponse{OrderID: orderID}, nil
}

// ComputeSignature returns the hex HMAC-SHA256 over "orderID|paymentID".
func ComputeSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares in constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	expected := ComputeSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyPayment checks the callback signature. A mismatch flags the
// transaction FAILED so it never sits PENDING after a rejected attempt; a
// match flips it SUCCESS and grants the stored credits/plan atomically.
func (s *PaymentService) VerifyPayment(ctx context.Context, userID string, req request_models.VerifyPaymentRequest) error {

	if !VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, s.keySecret) {
		if err := s.txnRepo.MarkFailed(ctx, req.RazorpayOrderID); err != nil {
			log.Printf("VerifyPayment: failed to flag transaction %s: %v", req.RazorpayOrderID, err)
		}
		return utils.ErrSignatureMismatch
	}

	txn, err := s.txnRepo.ApplySuccessAndGrant(ctx, req.RazorpayOrderID, req.RazorpayPaymentID)
	if err != nil {
		log.Printf("VerifyPayment: grant failed for order %s: %v", req.RazorpayOrderID, err)
		return utils.ErrDatabaseError
	}
	if txn == nil {
		return utils.ErrTransactionNotFound
	}
	return nil
}

// FilterStaleTransactions folds over a newest-first slice, keeping every
// terminal row and only the first PENDING row per plan type that has not
// already been resolved by a newer SUCCESS or PENDING. Prevents stacked
// "resume payment" prompts for the same plan.
func FilterStaleTransactions(newestFirst []db_models.Transaction) []db_models.Transaction {
	resolved := make(map[db_models.UserPlan]bool)
	kept := make([]db_models.Transaction, 0, len(newestFirst))

	for _, tx := range newestFirst {
		switch tx.Status {
		case db_models.TxnStatusSuccess:
			if tx.PlanType != "" {
				resolved[tx.PlanType] = true
			}
			kept = append(kept, tx)
		case db_models.TxnStatusFailed:
			kept = append(kept, tx)
		case db_models.TxnStatusPending:
			if tx.PlanType != "" && resolved[tx.PlanType] {
				continue // stale duplicate
			}
			if tx.PlanType != "" {
				resolved[tx.PlanType] = true
			}
			kept = append(kept, tx)
		default:
			kept = append(kept, tx)
		}
	}
	return kept
}

func (s *PaymentService) ListTransactions(ctx context.Context, userID string) ([]response_models.TransactionResponse, error) {
	txns, err := s.txnRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	visible := FilterStaleTransactions(txns)
	responses := make([]response_models.TransactionResponse, 0, len(visible))
	for _, tx := range visible {
		responses = append(responses, toTransactionResponse(tx))
	}
	return responses, nil
}

func (s *PaymentService) GetPendingTransaction(ctx context.Context, userID string) (*response_models.TransactionResponse, error) {
	txn, err := s.txnRepo.FindPendingByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	resp := toTransactionResponse(*txn)
	return &resp, nil
}

func (s *PaymentService) GetReceipt(ctx context.Context, userID string, transactionID string) (*response_models.ReceiptResponse, error) {
	id, err := uuid.Parse(transactionID)
	if err != nil {
		return nil, utils.ErrTransactionNotFound
	}

	txn, err := s.txnRepo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}

	name := txn.User.FirstName
	if txn.User.LastName != "" {
		if name != "" {
			name += " "
		}
		name += txn.User.LastName
	}

	return &response_models.ReceiptResponse{
		ID:                txn.ID.String(),
		User:              response_models.ReceiptUser{Email: txn.User.Email, Name: name},
		Amount:            txn.Amount,
		PlanType:          string(txn.PlanType),
		CreditsAdded:      txn.CreditsAdded,
		Status:            string(txn.Status),
		RazorpayOrderID:   txn.RazorpayOrderID,
		RazorpayPaymentID: txn.RazorpayPaymentID,
		CreatedAt:         txn.CreatedAt,
	}, nil
}

func toTransactionResponse(tx db_models.Transaction) response_models.TransactionResponse {
	return response_models.TransactionResponse{
		ID:                tx.ID.String(),
		Amount:            tx.Amount,
		PlanType:          string(tx.PlanType),
		CreditsAdded:      tx.CreditsAdded,
		RazorpayOrderID:   tx.RazorpayOrderID,
		RazorpayPaymentID: tx.RazorpayPaymentID,
		Status:            string(tx.Status),
		CreatedAt:         tx.CreatedAt,
	}
}
