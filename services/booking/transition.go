package booking

import (
	"context"
	"errors"
	"time"

	"cabtour/database/repository"
	"cabtour/metrics"
	"cabtour/models"
	"cabtour/utils"

	"go.uber.org/zap"
)

func transitionError(err *TransitionError) error {
	return &utils.AppError{
		Kind:    utils.KindValidation,
		Code:    "invalid_transition",
		Field:   "status",
		Message: err.Error(),
		Err:     err,
	}
}

func (s *DefaultBookingService) load(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NotFound("booking not found")
	} else if err != nil {
		return nil, utils.Dependency("failed to load booking", err)
	}
	return b, nil
}

// writeStatus performs the conditional write for a validated transition.
func (s *DefaultBookingService) writeStatus(ctx context.Context, b *models.Booking, to models.BookingStatus, notes *string, by Actor) (*models.Booking, error) {
	change := models.StatusChange{From: b.Status, To: to, At: time.Now(), AdminNotes: notes}
	if to == models.StatusCancelled {
		change.CancelledBy = string(by)
	}
	updated, err := s.Bookings.UpdateStatus(ctx, b.ID, change)
	switch {
	case errors.Is(err, repository.ErrVersionMismatch):
		return nil, utils.Conflict("concurrent_transition", "booking status changed in the meantime; reload and retry")
	case errors.Is(err, repository.ErrNotFound):
		return nil, utils.NotFound("booking not found")
	case err != nil:
		return nil, utils.Dependency("failed to update booking status", err)
	}

	metrics.IncTransition(string(b.Status), string(to))
	utils.GetLogger().Info("booking status changed",
		zap.String("reference", updated.BookingReference),
		zap.String("from", string(b.Status)),
		zap.String("to", string(to)),
		zap.String("by", string(by)),
	)
	return updated, nil
}

// TransitionStatus applies an admin status change and dispatches the
// matching customer notification after the write succeeds.
func (s *DefaultBookingService) TransitionStatus(ctx context.Context, bookingID string, to models.BookingStatus, adminNotes *string) (*models.BookingView, error) {
	if !to.IsKnown() {
		return nil, utils.Validation("status", "invalid booking status")
	}
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	var terr *TransitionError
	if err := CanTransition(ActorAdmin, b.Status, to); errors.As(err, &terr) {
		return nil, transitionError(terr)
	}

	updated, err := s.writeStatus(ctx, b, to, adminNotes, ActorAdmin)
	if err != nil {
		return nil, err
	}
	s.notifyTransition(ctx, updated)
	return s.view(ctx, updated), nil
}

func (s *DefaultBookingService) notifyTransition(ctx context.Context, b *models.Booking) {
	if s.Notifier == nil {
		return
	}
	snap := models.SnapshotOf(b)
	var err error
	switch b.Status {
	case models.StatusConfirmed:
		err = s.Notifier.SendConfirmation(ctx, snap)
	case models.StatusInProgress:
		err = s.Notifier.SendTripStarted(ctx, snap)
	case models.StatusCompleted:
		err = s.Notifier.SendTripCompleted(ctx, snap)
	case models.StatusCancelled:
		err = s.Notifier.SendCancellation(ctx, snap)
	default:
		return
	}
	if err != nil {
		utils.GetLogger().Warn("booking notification not dispatched",
			zap.String("reference", b.BookingReference),
			zap.String("status", string(b.Status)),
			zap.Error(err),
		)
	}
}

// CancelOwnBooking lets a customer withdraw one of their pending bookings.
// No notification is sent.
func (s *DefaultBookingService) CancelOwnBooking(ctx context.Context, principal models.Principal, bookingID string) (*models.Booking, error) {
	if principal.Kind != models.PrincipalCustomer || principal.ID == "" {
		return nil, utils.Unauthorized("customer login required")
	}
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != principal.ID {
		return nil, utils.NotFound("booking not found")
	}
	var terr *TransitionError
	if err := CanTransition(ActorCustomer, b.Status, models.StatusCancelled); errors.As(err, &terr) {
		return nil, transitionError(terr)
	}
	return s.writeStatus(ctx, b, models.StatusCancelled, nil, ActorCustomer)
}
