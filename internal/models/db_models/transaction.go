package db_models

type TransactionStatus string

const (
	TxnStatusPending TransactionStatus = "PENDING"
	TxnStatusSuccess TransactionStatus = "SUCCESS"
	TxnStatusFailed  TransactionStatus = "FAILED"
)

// Transaction is created PENDING at order-creation time and transitions
// exactly once, at verification time. SUCCESS and FAILED are terminal.
type Transaction struct {
	BaseModel
	UserID            string `gorm:"index;not null"`
	Amount            int64  // whole rupees; the gateway is paid in paise
	PlanType          UserPlan
	CreditsAdded      int
	RazorpayOrderID   string `gorm:"uniqueIndex;not null"`
	RazorpayPaymentID string
	Status            TransactionStatus `gorm:"type:varchar(16);index"`

	User User `gorm:"foreignKey:UserID"`
}

func (s TransactionStatus) Terminal() bool {
	return s == TxnStatusSuccess || s == TxnStatusFailed
}
