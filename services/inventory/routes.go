package inventory

import (
	"context"
	"strings"

	"cabtour/models"
	"cabtour/services/pricing"
	"cabtour/utils"

	"go.uber.org/zap"
)

// prepareRoute validates a route and derives its discount. The stored
// discount always equals ComputeDiscount(originalPrice, currentPrice).
func prepareRoute(r *models.RouteOffering) error {
	r.Title = strings.TrimSpace(r.Title)
	if err := utils.ValidateStruct(r); err != nil {
		return err
	}
	r.Discount = pricing.ComputeDiscount(r.OriginalPrice, r.CurrentPrice)
	return nil
}

func (s *DefaultInventoryService) ListRoutes(ctx context.Context) ([]models.RouteOffering, error) {
	routes, err := s.Routes.List(ctx)
	if err != nil {
		return nil, storeError("route", "list", err)
	}
	return routes, nil
}

func (s *DefaultInventoryService) GetRoute(ctx context.Context, id string) (*models.RouteOffering, error) {
	r, err := s.Routes.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("route", "load", err)
	}
	return r, nil
}

func (s *DefaultInventoryService) GetRouteBySlug(ctx context.Context, slug string) (*models.RouteOffering, error) {
	r, err := s.Routes.GetBySlug(ctx, Slugify(slug))
	if err != nil {
		return nil, storeError("route", "load", err)
	}
	return r, nil
}

func (s *DefaultInventoryService) CreateRoute(ctx context.Context, route models.RouteOffering) (*models.RouteOffering, error) {
	route.ID = ""
	if err := prepareRoute(&route); err != nil {
		return nil, err
	}
	slug, err := resolveSlug(ctx, s.Routes.SlugExists, route.Slug, route.Title, "")
	if err != nil {
		return nil, err
	}
	route.Slug = slug
	if err := s.Routes.Create(ctx, &route); err != nil {
		return nil, storeError("route", "create", err)
	}
	utils.GetLogger().Info("Route created", zap.String("id", route.ID), zap.String("slug", route.Slug))
	return &route, nil
}

// UpdateRoute replaces a route. route.Version must carry the version the
// caller read; a blank slug keeps the route's current one.
func (s *DefaultInventoryService) UpdateRoute(ctx context.Context, id string, route models.RouteOffering) (*models.RouteOffering, error) {
	if err := requireVersion(route.Version); err != nil {
		return nil, err
	}
	route.ID = id
	if err := prepareRoute(&route); err != nil {
		return nil, err
	}
	if strings.TrimSpace(route.Slug) == "" {
		current, err := s.Routes.GetByID(ctx, id)
		if err != nil {
			return nil, storeError("route", "load", err)
		}
		route.Slug = current.Slug
	} else {
		slug, err := resolveSlug(ctx, s.Routes.SlugExists, route.Slug, route.Title, id)
		if err != nil {
			return nil, err
		}
		route.Slug = slug
	}
	updated, err := s.Routes.Update(ctx, &route, route.Version)
	if err != nil {
		return nil, storeError("route", "update", err)
	}
	return updated, nil
}

func (s *DefaultInventoryService) DeleteRoute(ctx context.Context, id string) error {
	if err := s.Routes.Delete(ctx, id); err != nil {
		return storeError("route", "delete", err)
	}
	utils.GetLogger().Info("Route deleted", zap.String("id", id))
	return nil
}
