package tourRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cabtour/database/repository"
	"cabtour/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTourRepo implements TourRepository using MongoDB.
type MongoTourRepo struct {
	coll *mongo.Collection
}

// NewMongoTourRepo creates a new instance of TourRepository using MongoDB.
func NewMongoTourRepo(db *mongo.Database) TourRepository {
	return &MongoTourRepo{coll: db.Collection("tours")}
}

func (r *MongoTourRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tag", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create tour indexes: %w", err)
	}
	return nil
}

// Create inserts a new tour document.
func (r *MongoTourRepo) Create(ctx context.Context, tour *models.TourOffering) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	if tour.ID == "" {
		tour.ID = uuid.New().String()
	}
	tour.Version = 1
	tour.CreatedAt = now
	tour.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, tour); err != nil {
		return fmt.Errorf("failed to create tour: %w", repository.Translate(err))
	}
	return nil
}

// Update replaces the editable fields of a tour, guarded by its version.
func (r *MongoTourRepo) Update(ctx context.Context, tour *models.TourOffering, expectedVersion int64) (*models.TourOffering, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"title":       tour.Title,
			"slug":        tour.Slug,
			"description": tour.Description,
			"image":       tour.Image,
			"tag":         tour.Tag,
			"duration":    tour.Duration,
			"price":       tour.Price,
			"rating":      tour.Rating,
			"itinerary":   tour.Itinerary,
			"summary":     tour.Summary,
			"travelTips":  tour.TravelTips,
			"closing":     tour.Closing,
			"updatedAt":   time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out models.TourOffering
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": tour.ID, "version": expectedVersion}, update, opts).Decode(&out)
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update tour %s: %w", tour.ID, repository.Translate(err))
	}
	n, cerr := r.coll.CountDocuments(ctx, bson.M{"id": tour.ID})
	if cerr != nil {
		return nil, fmt.Errorf("failed to update tour %s: %w", tour.ID, cerr)
	}
	if n == 0 {
		return nil, fmt.Errorf("tour %s: %w", tour.ID, repository.ErrNotFound)
	}
	return nil, fmt.Errorf("tour %s: %w", tour.ID, repository.ErrVersionMismatch)
}

// Delete removes a tour by its ID.
func (r *MongoTourRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete tour %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("tour %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (r *MongoTourRepo) GetByID(ctx context.Context, id string) (*models.TourOffering, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tour models.TourOffering
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tour); err != nil {
		return nil, fmt.Errorf("failed to fetch tour %s: %w", id, repository.Translate(err))
	}
	return &tour, nil
}

func (r *MongoTourRepo) GetBySlug(ctx context.Context, slug string) (*models.TourOffering, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tour models.TourOffering
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&tour); err != nil {
		return nil, fmt.Errorf("failed to fetch tour by slug %s: %w", slug, repository.Translate(err))
	}
	return &tour, nil
}

func (r *MongoTourRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"slug": slug}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check tour slug: %w", err)
	}
	return n > 0, nil
}

func (r *MongoTourRepo) List(ctx context.Context, tag string) ([]models.TourOffering, error) {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if tag != "" {
		filter["tag"] = tag
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}
	defer cursor.Close(ctx)

	tours := []models.TourOffering{}
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("failed to decode tours: %w", err)
	}
	return tours, nil
}
