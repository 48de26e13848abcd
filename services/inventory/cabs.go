package inventory

import (
	"context"
	"strings"

	"cabtour/models"
	"cabtour/services/pricing"
	"cabtour/utils"

	"go.uber.org/zap"
)

func parseCategory(category string) (models.CabCategory, error) {
	c, ok := models.ParseCabCategory(category)
	if !ok {
		return "", utils.Validation("category", "category must be one of: one-way round-trip hourly")
	}
	return c, nil
}

func checkCab(cab *models.CabOffering) error {
	cab.From = strings.TrimSpace(cab.From)
	cab.To = strings.TrimSpace(cab.To)
	cab.City = strings.TrimSpace(cab.City)
	cab.Hours = strings.TrimSpace(cab.Hours)
	cab.VehicleName = strings.TrimSpace(cab.VehicleName)
	if err := utils.ValidateStruct(cab); err != nil {
		return err
	}
	if err := cab.CheckRouteFields(); err != nil {
		return utils.Validation("", err.Error())
	}
	return nil
}

// ListCabs returns a category's offerings with display prices.
func (s *DefaultInventoryService) ListCabs(ctx context.Context, category string) ([]models.CabQuote, error) {
	c, err := parseCategory(category)
	if err != nil {
		return nil, err
	}
	cabs, err := s.Cabs.ListByCategory(ctx, c)
	if err != nil {
		return nil, storeError("cab", "list", err)
	}
	out := make([]models.CabQuote, 0, len(cabs))
	for _, cab := range cabs {
		out = append(out, pricing.QuoteOf(cab))
	}
	return out, nil
}

func (s *DefaultInventoryService) GetCab(ctx context.Context, category, id string) (*models.CabQuote, error) {
	c, err := parseCategory(category)
	if err != nil {
		return nil, err
	}
	cab, err := s.Cabs.GetByID(ctx, c, id)
	if err != nil {
		return nil, storeError("cab", "load", err)
	}
	q := pricing.QuoteOf(*cab)
	return &q, nil
}

// CreateCab adds an offering. Increments are managed through pricing, so a
// new cab always starts at 0%.
func (s *DefaultInventoryService) CreateCab(ctx context.Context, category string, cab models.CabOffering) (*models.CabQuote, error) {
	c, err := parseCategory(category)
	if err != nil {
		return nil, err
	}
	cab.ID = ""
	cab.Category = c
	cab.IncrementPercent = 0
	if err := checkCab(&cab); err != nil {
		return nil, err
	}
	if err := s.Cabs.Create(ctx, &cab); err != nil {
		return nil, storeError("cab", "create", err)
	}
	utils.GetLogger().Info("Cab created", zap.String("category", string(c)), zap.String("id", cab.ID))
	q := pricing.QuoteOf(cab)
	return &q, nil
}

// UpdateCab replaces the descriptive fields of a cab. cab.Version must
// carry the version the caller read.
func (s *DefaultInventoryService) UpdateCab(ctx context.Context, category, id string, cab models.CabOffering) (*models.CabQuote, error) {
	c, err := parseCategory(category)
	if err != nil {
		return nil, err
	}
	if err := requireVersion(cab.Version); err != nil {
		return nil, err
	}
	cab.ID = id
	cab.Category = c
	if err := checkCab(&cab); err != nil {
		return nil, err
	}
	updated, err := s.Cabs.Update(ctx, &cab, cab.Version)
	if err != nil {
		return nil, storeError("cab", "update", err)
	}
	q := pricing.QuoteOf(*updated)
	return &q, nil
}

func (s *DefaultInventoryService) DeleteCab(ctx context.Context, category, id string) error {
	c, err := parseCategory(category)
	if err != nil {
		return err
	}
	if err := s.Cabs.Delete(ctx, c, id); err != nil {
		return storeError("cab", "delete", err)
	}
	utils.GetLogger().Info("Cab deleted", zap.String("category", string(c)), zap.String("id", id))
	return nil
}
