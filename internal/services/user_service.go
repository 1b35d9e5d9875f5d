package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"machsight/internal/models/db_models"
	"machsight/internal/models/response_models"
	"machsight/internal/repositories"
	"machsight/pkg/utils"
)

const initialFreeCredits = 3

// Identity is the caller identity resolved from the provider's token.
type Identity struct {
	Subject   string
	Email     string
	FirstName string
	LastName  string
	ImageURL  string
}

type UserServiceInterface interface {
	// ResolveUser returns the caller's user row, provisioning it on first
	// contact. Concurrent first-time calls collapse to a read.
	ResolveUser(ctx context.Context, identity Identity) (*db_models.User, error)
	GetProfile(ctx context.Context, identity Identity) (*response_models.UserResponse, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
}

func NewUserService(userRepo repositories.UserRepositoryInterface) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ResolveUser(ctx context.Context, identity Identity) (*db_models.User, error) {
	if identity.Subject == "" {
		return nil, utils.ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, identity.Subject)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user != nil {
		return user, nil
	}

	newUser := &db_models.User{
		ID:        identity.Subject,
		Email:     identity.Email,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		ImageURL:  identity.ImageURL,
		Credits:   initialFreeCredits,
		Plan:      db_models.PlanFree,
		Role:      "USER",
	}

	err = s.userRepo.Create(ctx, newUser)
	if err != nil {
		// Another request provisioned the row milliseconds before this one;
		// the duplicate-create collision resolves to a read.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, readErr := s.userRepo.FindByID(ctx, identity.Subject)
			if readErr != nil || existing == nil {
				return nil, utils.ErrDatabaseError
			}
			return existing, nil
		}
		return nil, utils.ErrDatabaseError
	}

	return newUser, nil
}

func (s *UserService) GetProfile(ctx context.Context, identity Identity) (*response_models.UserResponse, error) {
	user, err := s.ResolveUser(ctx, identity)
	if err != nil {
		return nil, err
	}
	return &response_models.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ImageURL:  user.ImageURL,
		Credits:   user.Credits,
		Plan:      string(user.Plan),
		Role:      user.Role,
	}, nil
}
