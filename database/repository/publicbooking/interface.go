package publicBookingRepo

import (
	"context"

	"cabtour/models"
)

// PublicBookingFilter narrows admin listings of intake requests.
type PublicBookingFilter struct {
	Status models.PublicBookingStatus
	Search string
}

// PublicBookingRepository defines data access for unauthenticated booking requests.
type PublicBookingRepository interface {
	Create(ctx context.Context, booking *models.PublicBooking) error
	GetByID(ctx context.Context, id string) (*models.PublicBooking, error)
	// UpdateStatus moves a request from one status to another if it is still in from.
	UpdateStatus(ctx context.Context, id string, from, to models.PublicBookingStatus, adminNotes *string) (*models.PublicBooking, error)
	List(ctx context.Context, filter PublicBookingFilter, page models.Page) ([]models.PublicBooking, int64, error)
	EnsureIndexes(ctx context.Context) error
}
