package userRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cabtour/database/repository"
	"cabtour/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertOnLogin finds or creates the user for email in one round trip.
func (r *MongoUserRepo) UpsertOnLogin(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))
	now := time.Now()
	update := bson.M{
		"$setOnInsert": bson.M{
			"id":        uuid.New().String(),
			"email":     email,
			"role":      models.RoleCustomer,
			"isActive":  true,
			"createdAt": now,
		},
		"$set": bson.M{"lastLogin": now, "updatedAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var user models.User
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to upsert user %s: %w", email, repository.Translate(err))
	}
	return &user, nil
}

// UpdateProfile modifies the editable profile fields of a user.
func (r *MongoUserRepo) UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) (*models.User, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		set["name"] = strings.TrimSpace(*upd.Name)
	}
	if upd.Phone != nil {
		set["phone"] = strings.TrimSpace(*upd.Phone)
	}
	if upd.Address != nil {
		set["address"] = strings.TrimSpace(*upd.Address)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to update user with id %s: %w", id, repository.Translate(err))
	}
	return &user, nil
}
