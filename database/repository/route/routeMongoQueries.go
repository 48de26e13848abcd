package routeRepo

import (
	"context"
	"fmt"
	"time"

	"cabtour/database/repository"
	"cabtour/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRouteRepo) getOne(ctx context.Context, filter bson.M) (*models.RouteOffering, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var route models.RouteOffering
	if err := r.coll.FindOne(ctx, filter).Decode(&route); err != nil {
		return nil, repository.Translate(err)
	}
	return &route, nil
}

// GetByID retrieves a route by its unique ID.
func (r *MongoRouteRepo) GetByID(ctx context.Context, id string) (*models.RouteOffering, error) {
	route, err := r.getOne(ctx, bson.M{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch route %s: %w", id, err)
	}
	return route, nil
}

// GetBySlug retrieves a route by its public slug.
func (r *MongoRouteRepo) GetBySlug(ctx context.Context, slug string) (*models.RouteOffering, error) {
	route, err := r.getOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch route by slug %s: %w", slug, err)
	}
	return route, nil
}

func (r *MongoRouteRepo) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	ctx, cancel := repository.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"slug": slug}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check route slug: %w", err)
	}
	return n > 0, nil
}

// List returns every route, newest first.
func (r *MongoRouteRepo) List(ctx context.Context) ([]models.RouteOffering, error) {
	ctx, cancel := repository.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	defer cursor.Close(ctx)

	routes := []models.RouteOffering{}
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode routes: %w", err)
	}
	return routes, nil
}
