package reviewRepo

import (
	"context"

	"cabtour/models"
)

// ReviewRepository defines data access for testimonials.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	SetActive(ctx context.Context, id string, active bool) (*models.Review, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	// List returns reviews newest first; activeOnly hides deactivated ones.
	List(ctx context.Context, activeOnly bool) ([]models.Review, error)
	EnsureIndexes(ctx context.Context) error
}
