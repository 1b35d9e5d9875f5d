package request_models

type CreateOrderRequest struct {
	PlanType string `json:"plan_type" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Credits  int    `json:"credits" binding:"required,gt=0"`
}

// VerifyPaymentRequest carries the gateway's checkout callback payload.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}
