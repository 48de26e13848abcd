package user

import (
	"context"

	userRepo "cabtour/database/repository/user"
	"cabtour/models"
)

// UserService manages the customer profile that bookings snapshot.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error)
	GetCompletion(ctx context.Context, userID string) (models.ProfileCompletion, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
