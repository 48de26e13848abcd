package cabRepo

import (
	"context"

	"cabtour/models"
)

// CabRepository defines data access for the three cab category collections.
type CabRepository interface {
	// FindByRoute returns offerings whose route descriptor matches the filter exactly.
	FindByRoute(ctx context.Context, filter models.QuoteFilter) ([]models.CabOffering, error)
	// ListByCategory returns every offering of a category.
	ListByCategory(ctx context.Context, category models.CabCategory) ([]models.CabOffering, error)
	// GetByID retrieves one offering.
	GetByID(ctx context.Context, category models.CabCategory, id string) (*models.CabOffering, error)
	// Create inserts a new offering at version 1.
	Create(ctx context.Context, cab *models.CabOffering) error
	// Update replaces the editable fields if the stored version still equals expectedVersion.
	Update(ctx context.Context, cab *models.CabOffering, expectedVersion int64) (*models.CabOffering, error)
	// Delete removes an offering.
	Delete(ctx context.Context, category models.CabCategory, id string) error
	// SetIncrement sets one offering's increment percentage with a version check.
	SetIncrement(ctx context.Context, category models.CabCategory, id string, percent float64, expectedVersion int64) (*models.CabOffering, error)
	// BulkSetIncrement sets the increment percentage of every offering in a
	// category atomically and returns the number of documents modified.
	BulkSetIncrement(ctx context.Context, category models.CabCategory, percent float64) (int64, error)
	// EnsureIndexes creates the indexes the queries rely on.
	EnsureIndexes(ctx context.Context) error
}
