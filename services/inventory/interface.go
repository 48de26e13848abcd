package inventory

import (
	"context"

	cabRepo "cabtour/database/repository/cab"
	reviewRepo "cabtour/database/repository/review"
	routeRepo "cabtour/database/repository/route"
	tourRepo "cabtour/database/repository/tour"
	"cabtour/models"
)

// InventoryService is the admin catalogue of cabs, routes, tours and reviews,
// plus the public reads the site renders from it.
type InventoryService interface {
	ListCabs(ctx context.Context, category string) ([]models.CabQuote, error)
	GetCab(ctx context.Context, category, id string) (*models.CabQuote, error)
	CreateCab(ctx context.Context, category string, cab models.CabOffering) (*models.CabQuote, error)
	UpdateCab(ctx context.Context, category, id string, cab models.CabOffering) (*models.CabQuote, error)
	DeleteCab(ctx context.Context, category, id string) error

	ListRoutes(ctx context.Context) ([]models.RouteOffering, error)
	GetRoute(ctx context.Context, id string) (*models.RouteOffering, error)
	GetRouteBySlug(ctx context.Context, slug string) (*models.RouteOffering, error)
	CreateRoute(ctx context.Context, route models.RouteOffering) (*models.RouteOffering, error)
	UpdateRoute(ctx context.Context, id string, route models.RouteOffering) (*models.RouteOffering, error)
	DeleteRoute(ctx context.Context, id string) error

	ListTours(ctx context.Context, tag string) ([]models.TourOffering, error)
	GetTour(ctx context.Context, id string) (*models.TourOffering, error)
	GetTourBySlug(ctx context.Context, slug string) (*models.TourOffering, error)
	CreateTour(ctx context.Context, tour models.TourOffering) (*models.TourOffering, error)
	UpdateTour(ctx context.Context, id string, tour models.TourOffering) (*models.TourOffering, error)
	DeleteTour(ctx context.Context, id string) error

	ListReviews(ctx context.Context, activeOnly bool) ([]models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (*models.Review, error)
	UpdateReview(ctx context.Context, id string, review models.Review) (*models.Review, error)
	SetReviewActive(ctx context.Context, id string, active bool) (*models.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

// DefaultInventoryService implements InventoryService on the Mongo repositories.
type DefaultInventoryService struct {
	Cabs    cabRepo.CabRepository
	Routes  routeRepo.RouteRepository
	Tours   tourRepo.TourRepository
	Reviews reviewRepo.ReviewRepository
}
