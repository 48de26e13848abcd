package notification

import (
	"context"
	"time"

	"cabtour/models"
)

// Notifier sends customer and admin notifications. Implementations are
// best effort: an error means the notification was not handed off, and
// callers on the booking path log it instead of failing.
type Notifier interface {
	SendConfirmation(ctx context.Context, snap models.BookingSnapshot) error
	SendTripStarted(ctx context.Context, snap models.BookingSnapshot) error
	SendTripCompleted(ctx context.Context, snap models.BookingSnapshot) error
	SendCancellation(ctx context.Context, snap models.BookingSnapshot) error
	NotifyAdminNewBooking(ctx context.Context, snap models.BookingSnapshot) error
	NotifyAdminPublicBooking(ctx context.Context, snap models.BookingSnapshot) error
	SendLoginOTP(ctx context.Context, email, code string, ttl time.Duration) error
}

// Mailer delivers one rendered email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
