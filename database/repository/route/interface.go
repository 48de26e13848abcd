package routeRepo

import (
	"context"

	"cabtour/models"
)

// RouteRepository defines data access for intercity route pages.
type RouteRepository interface {
	Create(ctx context.Context, route *models.RouteOffering) error
	Update(ctx context.Context, route *models.RouteOffering, expectedVersion int64) (*models.RouteOffering, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.RouteOffering, error)
	GetBySlug(ctx context.Context, slug string) (*models.RouteOffering, error)
	// SlugExists reports whether a slug is taken by a route other than excludeID.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	List(ctx context.Context) ([]models.RouteOffering, error)
	EnsureIndexes(ctx context.Context) error
}
