package inventory

import (
	"context"
	"sort"
	"strings"

	"cabtour/models"
	"cabtour/utils"

	"go.uber.org/zap"
)

func prepareTour(t *models.TourOffering) error {
	t.Title = strings.TrimSpace(t.Title)
	t.Tag = strings.TrimSpace(t.Tag)
	if err := utils.ValidateStruct(t); err != nil {
		return err
	}
	sort.SliceStable(t.Itinerary, func(i, j int) bool { return t.Itinerary[i].Day < t.Itinerary[j].Day })
	for i := 1; i < len(t.Itinerary); i++ {
		if t.Itinerary[i].Day == t.Itinerary[i-1].Day {
			return utils.Validation("itinerary", "itinerary days must be unique")
		}
	}
	return nil
}

func (s *DefaultInventoryService) ListTours(ctx context.Context, tag string) ([]models.TourOffering, error) {
	tours, err := s.Tours.List(ctx, strings.TrimSpace(tag))
	if err != nil {
		return nil, storeError("tour", "list", err)
	}
	return tours, nil
}

func (s *DefaultInventoryService) GetTour(ctx context.Context, id string) (*models.TourOffering, error) {
	t, err := s.Tours.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("tour", "load", err)
	}
	return t, nil
}

func (s *DefaultInventoryService) GetTourBySlug(ctx context.Context, slug string) (*models.TourOffering, error) {
	t, err := s.Tours.GetBySlug(ctx, Slugify(slug))
	if err != nil {
		return nil, storeError("tour", "load", err)
	}
	return t, nil
}

func (s *DefaultInventoryService) CreateTour(ctx context.Context, tour models.TourOffering) (*models.TourOffering, error) {
	tour.ID = ""
	if err := prepareTour(&tour); err != nil {
		return nil, err
	}
	slug, err := resolveSlug(ctx, s.Tours.SlugExists, tour.Slug, tour.Title, "")
	if err != nil {
		return nil, err
	}
	tour.Slug = slug
	if err := s.Tours.Create(ctx, &tour); err != nil {
		return nil, storeError("tour", "create", err)
	}
	utils.GetLogger().Info("Tour created", zap.String("id", tour.ID), zap.String("slug", tour.Slug))
	return &tour, nil
}

func (s *DefaultInventoryService) UpdateTour(ctx context.Context, id string, tour models.TourOffering) (*models.TourOffering, error) {
	if err := requireVersion(tour.Version); err != nil {
		return nil, err
	}
	tour.ID = id
	if err := prepareTour(&tour); err != nil {
		return nil, err
	}
	if strings.TrimSpace(tour.Slug) == "" {
		current, err := s.Tours.GetByID(ctx, id)
		if err != nil {
			return nil, storeError("tour", "load", err)
		}
		tour.Slug = current.Slug
	} else {
		slug, err := resolveSlug(ctx, s.Tours.SlugExists, tour.Slug, tour.Title, id)
		if err != nil {
			return nil, err
		}
		tour.Slug = slug
	}
	updated, err := s.Tours.Update(ctx, &tour, tour.Version)
	if err != nil {
		return nil, storeError("tour", "update", err)
	}
	return updated, nil
}

func (s *DefaultInventoryService) DeleteTour(ctx context.Context, id string) error {
	if err := s.Tours.Delete(ctx, id); err != nil {
		return storeError("tour", "delete", err)
	}
	utils.GetLogger().Info("Tour deleted", zap.String("id", id))
	return nil
}
