package routeRepo

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

// Create inserts a new route document.
func (r *MongoRouteRepo) Create(ctx context.Context, route *models.RouteOffering) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	if route.ID == "" {
		route.ID = uuid.New().String()
	}
	route.Version = 1
	route.CreatedAt = now
	route.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, route); err != nil {
		return fmt.Errorf("failed to create route: %w", repository.Translate(err))
	}
	return nil
}

// Update replaces the editable fields of a route, guarded by its version.
func (r *MongoRouteRepo) Update(ctx context.Context, route *models.RouteOffering, expectedVersion int64) (*models.RouteOffering, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"title":         route.Title,
			"slug":          route.Slug,
			"image":         route.Image,
			"distance":      route.Distance,
			"duration":      route.Duration,
			"vehicleType":   route.VehicleType,
			"currentPrice":  route.CurrentPrice,
			"originalPrice": route.OriginalPrice,
			"discount":      route.Discount,
			"overview":      route.Overview,
			"about":         route.About,
			"bestTime":      route.BestTime,
			"features":      route.Features,
			"attractions":   route.Attractions,
			"sightseeing":   route.Sightseeing,
			"carOptions":    route.CarOptions,
			"updatedAt":     time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out models.RouteOffering
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": route.ID, "version": expectedVersion}, update, opts).Decode(&out)
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update route %s: %w", route.ID, repository.Translate(err))
	}
	n, cerr := r.coll.CountDocuments(ctx, bson.M{"id": route.ID})
	if cerr != nil {
		return nil, fmt.Errorf("failed to update route %s: %w", route.ID, cerr)
	}
	if n == 0 {
		return nil, fmt.Errorf("route %s: %w", route.ID, repository.ErrNotFound)
	}
	return nil, fmt.Errorf("route %s: %w", route.ID, repository.ErrVersionMismatch)
}

// Delete removes a route by its ID.
func (r *MongoRouteRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete route %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("route %s: %w", id, repository.ErrNotFound)
	}
	return nil
}
