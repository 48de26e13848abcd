package userRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cabtour/database/repository"
	"cabtour/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetByID retrieves a user by its unique ID.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, repository.Translate(err))
	}
	return &user, nil
}

// GetByEmail retrieves a user by email. Emails are stored lower-cased.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, repository.Translate(err))
	}
	return &user, nil
}

func (r *MongoUserRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
