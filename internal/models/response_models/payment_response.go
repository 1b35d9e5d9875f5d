package response_models

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

type PlanResponse struct {
	Tier    string `json:"tier"`
	Price   int64  `json:"price"` // whole rupees per month
	Credits int    `json:"credits"`
}

type TransactionResponse struct {
	ID                string `json:"id"`
	Amount            int64  `json:"amount"`
	PlanType          string `json:"plan_type,omitempty"`
	CreditsAdded      int    `json:"credits_added"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id,omitempty"`
	Status            string `json:"status"`
	CreatedAt         int64  `json:"created_at"`
}

type ReceiptUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ReceiptResponse struct {
	ID                string      `json:"id"`
	User              ReceiptUser `json:"user"`
	Amount            int64       `json:"amount"`
	PlanType          string      `json:"plan_type,omitempty"`
	CreditsAdded      int         `json:"credits_added"`
	Status            string      `json:"status"`
	RazorpayOrderID   string      `json:"razorpay_order_id"`
	RazorpayPaymentID string      `json:"razorpay_payment_id,omitempty"`
	CreatedAt         int64       `json:"created_at"`
}
