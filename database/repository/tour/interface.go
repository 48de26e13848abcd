package tourRepo

import (
	"context"

	"cabtour/models"
)

// TourRepository defines data access for packaged tours.
type TourRepository interface {
	Create(ctx context.Context, tour *models.TourOffering) error
	Update(ctx context.Context, tour *models.TourOffering, expectedVersion int64) (*models.TourOffering, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.TourOffering, error)
	GetBySlug(ctx context.Context, slug string) (*models.TourOffering, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	// List returns tours newest first, optionally narrowed to one tag.
	List(ctx context.Context, tag string) ([]models.TourOffering, error)
	EnsureIndexes(ctx context.Context) error
}
