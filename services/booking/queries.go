package booking

import (
	"context"
	"math"

	"cabtour/models"
	"cabtour/utils"

	"go.uber.org/zap"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	maxPageNumber   = math.MaxInt32 / maxPageSize
)

// NormalizePage clamps a page request to sane bounds.
func NormalizePage(p models.Page) models.Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	if p.Number > maxPageNumber {
		p.Number = maxPageNumber
	}
	return p
}

// ListBookings is the admin listing with per-status totals.
func (s *DefaultBookingService) ListBookings(ctx context.Context, filter models.BookingFilter, page models.Page) (*models.BookingList, error) {
	if filter.Status != "" && !filter.Status.IsKnown() {
		return nil, utils.Validation("status", "invalid booking status")
	}
	page = NormalizePage(page)

	bookings, total, err := s.Bookings.List(ctx, filter, page)
	if err != nil {
		return nil, utils.Dependency("failed to list bookings", err)
	}
	counts, err := s.Bookings.CountByStatus(ctx)
	if err != nil {
		return nil, utils.Dependency("failed to count bookings", err)
	}
	return &models.BookingList{
		Bookings:     bookings,
		Pagination:   models.NewPagination(page, total),
		StatusCounts: counts,
	}, nil
}

// ListMyBookings returns the principal's own bookings, newest first.
func (s *DefaultBookingService) ListMyBookings(ctx context.Context, principal models.Principal, page models.Page) (*models.BookingList, error) {
	if principal.Kind != models.PrincipalCustomer || principal.ID == "" {
		return nil, utils.Unauthorized("customer login required")
	}
	page = NormalizePage(page)
	bookings, total, err := s.Bookings.List(ctx, models.BookingFilter{UserID: principal.ID}, page)
	if err != nil {
		return nil, utils.Dependency("failed to list bookings", err)
	}
	return &models.BookingList{Bookings: bookings, Pagination: models.NewPagination(page, total)}, nil
}

// GetBooking returns a booking with its offering populated. Customers only
// see their own bookings; anyone else's reads as not found.
func (s *DefaultBookingService) GetBooking(ctx context.Context, principal models.Principal, bookingID string) (*models.BookingView, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() && b.UserID != principal.ID {
		return nil, utils.NotFound("booking not found")
	}
	return s.view(ctx, b), nil
}

// view populates the offering reference. A deleted offering leaves it nil;
// the booking keeps its own snapshot.
func (s *DefaultBookingService) view(ctx context.Context, b *models.Booking) *models.BookingView {
	v := &models.BookingView{Booking: *b}
	var err error
	switch b.BookingType {
	case models.BookingTypeRoute:
		if s.Routes != nil && b.RouteID != "" {
			v.Route, err = s.Routes.GetByID(ctx, b.RouteID)
		}
	case models.BookingTypeTour:
		if s.Tours != nil && b.TourID != "" {
			v.Tour, err = s.Tours.GetByID(ctx, b.TourID)
		}
	case models.BookingTypeCab:
		if s.Cabs != nil && b.CabID != "" {
			v.Cab, err = s.Cabs.GetByID(ctx, b.CabCategory, b.CabID)
		}
	}
	if err != nil {
		utils.GetLogger().Debug("booking offering not populated",
			zap.String("reference", b.BookingReference),
			zap.Error(err),
		)
	}
	return v
}
