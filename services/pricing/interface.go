package pricing

import (
	"context"

	cabRepo "cabtour/database/repository/cab"
	"cabtour/models"
)

// PricingService quotes cab offerings and manages their price increments.
type PricingService interface {
	// Quote returns the offerings of filter.Category whose route matches
	// exactly, each with its display price.
	Quote(ctx context.Context, filter models.QuoteFilter) ([]models.CabQuote, error)
	// SetIncrement sets one offering's increment. expectedVersion must equal
	// the stored version.
	SetIncrement(ctx context.Context, category models.CabCategory, id string, percent float64, expectedVersion int64) (*models.CabQuote, error)
	// BulkSetIncrement applies percent to every offering of a category and
	// returns how many were modified.
	BulkSetIncrement(ctx context.Context, category models.CabCategory, percent float64) (int64, error)
	// Bounds returns the accepted increment range.
	Bounds() Bounds
}

// Bounds is the inclusive range an increment percentage must fall in.
type Bounds struct {
	Min float64
	Max float64
}

// DefaultBounds allows halving a price up to tripling it.
var DefaultBounds = Bounds{Min: -50, Max: 200}

// DefaultPricingService implements PricingService.
type DefaultPricingService struct {
	Repo   cabRepo.CabRepository
	Limits Bounds
}

// NewPricingService builds the service. A zero range falls back to DefaultBounds.
func NewPricingService(repo cabRepo.CabRepository, bounds Bounds) *DefaultPricingService {
	if bounds.Min == 0 && bounds.Max == 0 {
		bounds = DefaultBounds
	}
	return &DefaultPricingService{Repo: repo, Limits: bounds}
}

func (s *DefaultPricingService) Bounds() Bounds { return s.Limits }
