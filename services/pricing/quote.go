package pricing

import (
	"context"
	"errors"
	"math"
	"strings"

	"cabtour/database/repository"
	"cabtour/models"
	"cabtour/utils"

	"go.uber.org/zap"
)

func validateFilter(f models.QuoteFilter) error {
	switch f.Category {
	case models.CabOneWay, models.CabRoundTrip:
		if strings.TrimSpace(f.From) == "" {
			return utils.Validation("from", "from is required")
		}
		if strings.TrimSpace(f.To) == "" {
			return utils.Validation("to", "to is required")
		}
	case models.CabHourly:
		if strings.TrimSpace(f.City) == "" {
			return utils.Validation("city", "city is required")
		}
		if strings.TrimSpace(f.Hours) == "" {
			return utils.Validation("hours", "hours is required")
		}
	default:
		return utils.Validation("category", "invalid cab category")
	}
	return nil
}

// Quote looks up matching offerings and attaches their display prices.
func (s *DefaultPricingService) Quote(ctx context.Context, f models.QuoteFilter) ([]models.CabQuote, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	cabs, err := s.Repo.FindByRoute(ctx, f)
	if err != nil {
		return nil, utils.Dependency("failed to load cab offerings", err)
	}
	quotes := make([]models.CabQuote, 0, len(cabs))
	for _, c := range cabs {
		quotes = append(quotes, QuoteOf(c))
	}
	return quotes, nil
}

func (s *DefaultPricingService) checkPercent(percent float64) error {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return utils.Validation("incrementPercent", "incrementPercent must be a number")
	}
	if percent < s.Limits.Min || percent > s.Limits.Max {
		return utils.Validation("incrementPercent", "incrementPercent is out of the allowed range")
	}
	return nil
}

// SetIncrement updates one offering's increment under a version check.
func (s *DefaultPricingService) SetIncrement(ctx context.Context, category models.CabCategory, id string, percent float64, expectedVersion int64) (*models.CabQuote, error) {
	category, ok := models.ParseCabCategory(string(category))
	if !ok {
		return nil, utils.Validation("category", "invalid cab category")
	}
	if strings.TrimSpace(id) == "" {
		return nil, utils.Validation("id", "offering id is required")
	}
	if err := s.checkPercent(percent); err != nil {
		return nil, err
	}
	if expectedVersion < 1 {
		return nil, utils.Validation("version", "version is required")
	}

	cab, err := s.Repo.SetIncrement(ctx, category, id, percent, expectedVersion)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, utils.NotFound("cab offering not found")
	case errors.Is(err, repository.ErrVersionMismatch):
		return nil, utils.Conflict("stale_version", "cab offering was modified by someone else; reload and retry")
	case err != nil:
		return nil, utils.Dependency("failed to update increment", err)
	}

	utils.GetLogger().Info("cab increment updated",
		zap.String("category", string(category)),
		zap.String("id", id),
		zap.Float64("incrementPercent", percent),
		zap.Int64("version", cab.Version),
	)
	q := QuoteOf(*cab)
	return &q, nil
}

// BulkSetIncrement applies percent to a whole category in one transaction.
func (s *DefaultPricingService) BulkSetIncrement(ctx context.Context, category models.CabCategory, percent float64) (int64, error) {
	category, ok := models.ParseCabCategory(string(category))
	if !ok {
		return 0, utils.Validation("category", "invalid cab category")
	}
	if err := s.checkPercent(percent); err != nil {
		return 0, err
	}
	n, err := s.Repo.BulkSetIncrement(ctx, category, percent)
	if err != nil {
		return 0, utils.Dependency("failed to apply bulk increment", err)
	}
	utils.GetLogger().Info("bulk cab increment applied",
		zap.String("category", string(category)),
		zap.Float64("incrementPercent", percent),
		zap.Int64("modified", n),
	)
	return n, nil
}
