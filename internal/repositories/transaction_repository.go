package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"machsight/internal/models/db_models"
)

type TransactionRepositoryInterface interface {
	Create(ctx context.Context, txn *db_models.Transaction) error
	MarkFailed(ctx context.Context, orderID string) error
	ApplySuccessAndGrant(ctx context.Context, orderID, paymentID string) (*db_models.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]db_models.Transaction, error)
	FindPendingByUser(ctx context.Context, userID string) (*db_models.Transaction, error)
	FindByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*db_models.Transaction, error)
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

type TransactionRepository struct {
	db *gorm.DB
}

func (r *TransactionRepository) Create(ctx context.Context, txn *db_models.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *TransactionRepository) MarkFailed(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("razorpay_order_id = ? AND status = ?", orderID, db_models.TxnStatusPending).
		Update("status", db_models.TxnStatusFailed).Error
}

// ApplySuccessAndGrant flips the transaction to SUCCESS and grants the stored
// credits/plan to its user inside one database transaction, so a crash
// between the two writes cannot strand a paid order. The status guard makes
// a re-delivered callback a no-op instead of a double grant.
func (r *TransactionRepository) ApplySuccessAndGrant(ctx context.Context, orderID, paymentID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("razorpay_order_id = ?", orderID).First(&txn).Error; err != nil {
			return err
		}

		if txn.Status.Terminal() {
			return nil
		}

		if err := tx.Model(&txn).Updates(map[string]interface{}{
			"status":              db_models.TxnStatusSuccess,
			"razorpay_payment_id": paymentID,
		}).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"credits": gorm.Expr("credits + ?", txn.CreditsAdded),
		}
		if txn.PlanType != "" {
			updates["plan"] = txn.PlanType
		}

		return tx.Model(&db_models.User{}).
			Where("id = ?", txn.UserID).
			Updates(updates).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *TransactionRepository) FindPendingByUser(ctx context.Context, userID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, db_models.TxnStatusPending).
		Order("created_at DESC").
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *TransactionRepository) FindByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND user_id = ?", id, userID).
		First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}
