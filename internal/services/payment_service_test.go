package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machsight/internal/models/db_models"
	"machsight/internal/models/request_models"
	"machsight/pkg/utils"
)

const testKeySecret = "test_key_secret"

func newPaymentFixture(t *testing.T, user *db_models.User) (PaymentServiceInterface, *fakeUserRepo, *fakeTxnRepo, *fakeOrderCreator) {
	t.Helper()
	userRepo := newFakeUserRepo(user)
	txnRepo := newFakeTxnRepo(userRepo)
	orders := &fakeOrderCreator{}

	svc, err := NewPaymentService(txnRepo, orders, testKeySecret)
	require.NoError(t, err)
	return svc, userRepo, txnRepo, orders
}

func TestNewPaymentService_RequiresSecret(t *testing.T) {
	_, err := NewPaymentService(newFakeTxnRepo(nil), &fakeOrderCreator{}, "")
	assert.ErrorIs(t, err, utils.ErrMissingConfiguration)
}

func TestCreateOrder_CreatesPendingTransactionInPaise(t *testing.T) {
	user := &db_models.User{ID: "usr_1", Plan: db_models.PlanFree, Credits: 0}
	svc, _, txnRepo, orders := newPaymentFixture(t, user)

	resp, err := svc.CreateOrder(context.Background(), user.ID, request_models.CreateOrderRequest{
		PlanType: "STANDARD",
		Amount:   399,
		Credits:  20,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(39900), orders.lastAmount, "gateway amount must be in paise")
	assert.Contains(t, orders.lastReceipt, "receipt_")

	txn := txnRepo.txns[resp.OrderID]
	require.NotNil(t, txn)
	assert.Equal(t, db_models.TxnStatusPending, txn.Status)
	assert.Equal(t, int64(399), txn.Amount)
	assert.Equal(t, db_models.PlanStandard, txn.PlanType)
	assert.Equal(t, 20, txn.CreditsAdded)
}

func TestVerifyPayment_TamperedSignature(t *testing.T) {
	user := &db_models.User{ID: "usr_1", Plan: db_models.PlanFree, Credits: 0}
	svc, userRepo, txnRepo, _ := newPaymentFixture(t, user)

	_ = txnRepo.Create(context.Background(), &db_models.Transaction{
		UserID:          user.ID,
		Amount:          399,
		PlanType:        db_models.PlanStandard,
		CreditsAdded:    20,
		RazorpayOrderID: "order_abc",
		Status:          db_models.TxnStatusPending,
	})

	err := svc.VerifyPayment(context.Background(), user.ID, request_models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_123",
		RazorpaySignature: "definitely-not-the-right-hmac",
	})

	assert.ErrorIs(t, err, utils.ErrSignatureMismatch)
	assert.Equal(t, db_models.TxnStatusFailed, txnRepo.txns["order_abc"].Status, "a rejected verification must not leave the row PENDING")
	assert.Equal(t, 0, userRepo.credits(user.ID))
}

func TestVerifyPayment_ValidSignatureGrantsCreditsAndPlan(t *testing.T) {
	user := &db_models.User{ID: "usr_1", Plan: db_models.PlanFree, Credits: 2}
	svc, userRepo, txnRepo, _ := newPaymentFixture(t, user)

	_ = txnRepo.Create(context.Background(), &db_models.Transaction{
		UserID:          user.ID,
		Amount:          799,
		PlanType:        db_models.PlanPro,
		CreditsAdded:    100,
		RazorpayOrderID: "order_abc",
		Status:          db_models.TxnStatusPending,
	})

	sig := ComputeSignature("order_abc", "pay_123", testKeySecret)
	err := svc.VerifyPayment(context.Background(), user.ID, request_models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_123",
		RazorpaySignature: sig,
	})
	require.NoError(t, err)

	txn := txnRepo.txns["order_abc"]
	assert.Equal(t, db_models.TxnStatusSuccess, txn.Status)
	assert.Equal(t, "pay_123", txn.RazorpayPaymentID)

	assert.Equal(t, 102, userRepo.credits(user.ID))
	u, _ := userRepo.FindByID(context.Background(), user.ID)
	assert.Equal(t, db_models.PlanPro, u.Plan)
}

func TestVerifyPayment_RedeliveryDoesNotDoubleGrant(t *testing.T) {
	user := &db_models.User{ID: "usr_1", Plan: db_models.PlanFree, Credits: 0}
	svc, userRepo, txnRepo, _ := newPaymentFixture(t, user)

	_ = txnRepo.Create(context.Background(), &db_models.Transaction{
		UserID:          user.ID,
		CreditsAdded:    20,
		PlanType:        db_models.PlanStandard,
		RazorpayOrderID: "order_abc",
		Status:          db_models.TxnStatusPending,
	})

	req := request_models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_123",
		RazorpaySignature: ComputeSignature("order_abc", "pay_123", testKeySecret),
	}

	require.NoError(t, svc.VerifyPayment(context.Background(), user.ID, req))
	require.NoError(t, svc.VerifyPayment(context.Background(), user.ID, req))

	assert.Equal(t, 20, userRepo.credits(user.ID), "re-delivered callback must be a no-op")
}

func TestVerifyPayment_UnknownOrder(t *testing.T) {
	user := &db_models.User{ID: "usr_1"}
	svc, _, _, _ := newPaymentFixture(t, user)

	err := svc.VerifyPayment(context.Background(), user.ID, request_models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_missing",
		RazorpayPaymentID: "pay_123",
		RazorpaySignature: ComputeSignature("order_missing", "pay_123", testKeySecret),
	})
	assert.ErrorIs(t, err, utils.ErrTransactionNotFound)
}

func TestVerifySignature(t *testing.T) {
	sig := ComputeSignature("order_1", "pay_1", "secret")
	assert.True(t, VerifySignature("order_1", "pay_1", sig, "secret"))
	assert.False(t, VerifySignature("order_1", "pay_1", sig, "other-secret"))
	assert.False(t, VerifySignature("order_1", "pay_2", sig, "secret"))
	assert.False(t, VerifySignature("order_1", "pay_1", sig+"00", "secret"))
}

func TestFilterStaleTransactions(t *testing.T) {
	// newest → oldest
	newestFirst := []db_models.Transaction{
		{RazorpayOrderID: "o4", Status: db_models.TxnStatusPending, PlanType: db_models.PlanStandard},
		{RazorpayOrderID: "o3", Status: db_models.TxnStatusSuccess, PlanType: db_models.PlanStandard},
		{RazorpayOrderID: "o2", Status: db_models.TxnStatusPending, PlanType: db_models.PlanStandard},
		{RazorpayOrderID: "o1", Status: db_models.TxnStatusPending, PlanType: db_models.PlanPro},
	}

	visible := FilterStaleTransactions(newestFirst)

	require.Len(t, visible, 3)
	assert.Equal(t, "o4", visible[0].RazorpayOrderID)
	assert.Equal(t, "o3", visible[1].RazorpayOrderID)
	assert.Equal(t, "o1", visible[2].RazorpayOrderID)
}

func TestFilterStaleTransactions_TerminalRowsAlwaysKept(t *testing.T) {
	newestFirst := []db_models.Transaction{
		{RazorpayOrderID: "o3", Status: db_models.TxnStatusFailed, PlanType: db_models.PlanStandard},
		{RazorpayOrderID: "o2", Status: db_models.TxnStatusFailed, PlanType: db_models.PlanStandard},
		{RazorpayOrderID: "o1", Status: db_models.TxnStatusSuccess, PlanType: db_models.PlanStandard},
	}

	visible := FilterStaleTransactions(newestFirst)
	assert.Len(t, visible, 3)
}

func TestFilterStaleTransactions_PendingWithoutPlanKept(t *testing.T) {
	newestFirst := []db_models.Transaction{
		{RazorpayOrderID: "o2", Status: db_models.TxnStatusPending},
		{RazorpayOrderID: "o1", Status: db_models.TxnStatusPending},
	}

	// no plan type, nothing to resolve against
	visible := FilterStaleTransactions(newestFirst)
	assert.Len(t, visible, 2)
}

func TestGetReceipt(t *testing.T) {
	user := &db_models.User{ID: "usr_1", Email: "jo@example.com", FirstName: "Jo", LastName: "Imari"}
	svc, _, txnRepo, _ := newPaymentFixture(t, user)

	txn := &db_models.Transaction{
		UserID:          user.ID,
		Amount:          399,
		PlanType:        db_models.PlanStandard,
		CreditsAdded:    20,
		RazorpayOrderID: "order_abc",
		Status:          db_models.TxnStatusSuccess,
		User:            *user,
	}
	_ = txnRepo.Create(context.Background(), txn)

	receipt, err := svc.GetReceipt(context.Background(), user.ID, txn.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "jo@example.com", receipt.User.Email)
	assert.Equal(t, "Jo Imari", receipt.User.Name)
	assert.Equal(t, int64(399), receipt.Amount)
	assert.Equal(t, "SUCCESS", receipt.Status)

	// not visible to another user
	_, err = svc.GetReceipt(context.Background(), "usr_other", txn.ID.String())
	assert.ErrorIs(t, err, utils.ErrTransactionNotFound)
}
