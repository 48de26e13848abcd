package booking

import (
	"context"

	bookingRepo "cabtour/database/repository/booking"
	cabRepo "cabtour/database/repository/cab"
	routeRepo "cabtour/database/repository/route"
	tourRepo "cabtour/database/repository/tour"
	userRepo "cabtour/database/repository/user"
	"cabtour/models"
	"cabtour/services/notification"
)

// BookingService runs the customer booking lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, principal models.Principal, req models.BookingRequest) (*models.Booking, error)
	TransitionStatus(ctx context.Context, bookingID string, to models.BookingStatus, adminNotes *string) (*models.BookingView, error)
	CancelOwnBooking(ctx context.Context, principal models.Principal, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter, page models.Page) (*models.BookingList, error)
	ListMyBookings(ctx context.Context, principal models.Principal, page models.Page) (*models.BookingList, error)
	GetBooking(ctx context.Context, principal models.Principal, bookingID string) (*models.BookingView, error)
	Voucher(ctx context.Context, principal models.Principal, bookingID string) ([]byte, string, error)
}

// DefaultBookingService implements BookingService on the Mongo repositories.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Cabs     cabRepo.CabRepository
	Routes   routeRepo.RouteRepository
	Tours    tourRepo.TourRepository
	Notifier notification.Notifier

	// NewReference generates booking references; defaults to NewReference.
	NewReference func() string
}

func (s *DefaultBookingService) reference() string {
	if s.NewReference != nil {
		return s.NewReference()
	}
	return NewReference()
}
