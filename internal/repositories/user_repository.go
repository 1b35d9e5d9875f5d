package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"machsight/internal/models/db_models"
)

type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	Create(ctx context.Context, user *db_models.User) error
	DecrementCredits(ctx context.Context, id string, amount int) error
}

func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{db: db}
}

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// DecrementCredits is a single-row atomic update; the store's row-level
// atomicity is the only concurrency control.
func (r *UserRepository) DecrementCredits(ctx context.Context, id string, amount int) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		UpdateColumn("credits", gorm.Expr("credits - ?", amount)).Error
}
