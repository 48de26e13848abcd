package adminRepo

import (
	"context"

	"cabtour/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AdminRepository defines data access for back-office accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByAdminID(ctx context.Context, adminID string) (*models.Admin, error)
	SetLastLogin(ctx context.Context, id string) error
	// SetPassword replaces the hash and re-activates the account.
	SetPassword(ctx context.Context, adminID, passwordHash, role string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo returns a new AdminRepository instance using MongoDB.
func NewMongoAdminRepo(db *mongo.Database) AdminRepository {
	return &mongoAdminRepo{coll: db.Collection("admins")}
}
