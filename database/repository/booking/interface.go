package bookingRepo

import (
	"context"
	"time"

	"cabtour/models"
)

// BookingRepository defines data access for customer bookings.
type BookingRepository interface {
	// Create inserts a pending booking. A reference collision surfaces as
	// repository.ErrDuplicateKey.
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateStatus writes change only if the booking is still in change.From.
	// A booking that moved on in the meantime yields repository.ErrVersionMismatch.
	UpdateStatus(ctx context.Context, id string, change models.StatusChange) (*models.Booking, error)
	// List returns one page of bookings matching the filter, newest first, and
	// the total number of matches.
	List(ctx context.Context, filter models.BookingFilter, page models.Page) ([]models.Booking, int64, error)
	// ListAll returns every booking matching the filter, newest first.
	ListAll(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	// CountByStatus returns the number of bookings in each lifecycle status.
	CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error)
	// CountCreatedBetween counts bookings created in [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	// SumPrice totals the price snapshot of bookings in the given status.
	SumPrice(ctx context.Context, status models.BookingStatus) (float64, error)
	EnsureIndexes(ctx context.Context) error
}
