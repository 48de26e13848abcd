package userRepo

import (
	"context"

	"cabtour/models"
)

// UserRepository defines data access for customer accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpsertOnLogin creates the account on first sign-in and stamps lastLogin.
	UpsertOnLogin(ctx context.Context, email string) (*models.User, error)
	// UpdateProfile sets the non-nil fields of the update.
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.User, error)
	Count(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}
