package reviewRepo

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

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo(db *mongo.Database) ReviewRepository {
	return &MongoReviewRepo{coll: db.Collection("reviews")}
}

func (r *MongoReviewRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", repository.Translate(err))
	}
	return nil
}

func (r *MongoReviewRepo) Update(ctx context.Context, review *models.Review) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	review.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":      review.Name,
		"location":  review.Location,
		"rating":    review.Rating,
		"comment":   review.Comment,
		"image":     review.Image,
		"isActive":  review.IsActive,
		"updatedAt": review.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": review.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update review %s: %w", review.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("review %s: %w", review.ID, repository.ErrNotFound)
	}
	return nil
}

// SetActive toggles review visibility and returns the updated document.
func (r *MongoReviewRepo) SetActive(ctx context.Context, id string, active bool) (*models.Review, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out models.Review
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to toggle review %s: %w", id, repository.Translate(err))
	}
	return &out, nil
}

func (r *MongoReviewRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete review %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("review %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (r *MongoReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review); err != nil {
		return nil, fmt.Errorf("failed to fetch review %s: %w", id, repository.Translate(err))
	}
	return &review, nil
}

func (r *MongoReviewRepo) List(ctx context.Context, activeOnly bool) ([]models.Review, error) {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}
