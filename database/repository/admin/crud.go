package adminRepo

import (
	"context"
	"fmt"
	"time"

	"cabtour/database/repository"
	"cabtour/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAdminRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "adminId", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create admin indexes: %w", err)
	}
	return nil
}

// Create inserts a new admin account.
func (r *mongoAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	admin.CreatedAt = now
	admin.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin %s: %w", admin.AdminID, repository.Translate(err))
	}
	return nil
}

// GetByAdminID returns an admin by login identifier.
func (r *mongoAdminRepo) GetByAdminID(ctx context.Context, adminID string) (*models.Admin, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var admin models.Admin
	if err := r.coll.FindOne(ctx, bson.M{"adminId": adminID}).Decode(&admin); err != nil {
		return nil, fmt.Errorf("failed to fetch admin %s: %w", adminID, repository.Translate(err))
	}
	return &admin, nil
}

func (r *mongoAdminRepo) SetLastLogin(ctx context.Context, id string) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"lastLogin": now, "updatedAt": now}})
	if err != nil {
		return fmt.Errorf("failed to stamp admin login: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("admin %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (r *mongoAdminRepo) SetPassword(ctx context.Context, adminID, passwordHash, role string) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"passwordHash": passwordHash, "isActive": true, "updatedAt": time.Now()}
	if role != "" {
		set["role"] = role
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"adminId": adminID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to reset admin %s password: %w", adminID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("admin %s: %w", adminID, repository.ErrNotFound)
	}
	return nil
}
