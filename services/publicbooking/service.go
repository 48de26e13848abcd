package publicbooking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cabtour/database/repository"
	publicBookingRepo "cabtour/database/repository/publicbooking"
	"cabtour/metrics"
	"cabtour/models"
	"cabtour/services/booking"
	"cabtour/services/notification"
	"cabtour/utils"

	"go.uber.org/zap"
)

// PublicBookingService handles quick booking requests from visitors
// without an account.
type PublicBookingService interface {
	Submit(ctx context.Context, req models.PublicBooking) (*models.PublicBooking, error)
	List(ctx context.Context, filter publicBookingRepo.PublicBookingFilter, page models.Page) ([]models.PublicBooking, models.Pagination, error)
	Get(ctx context.Context, id string) (*models.PublicBooking, error)
	Transition(ctx context.Context, id string, to models.PublicBookingStatus, adminNotes *string) (*models.PublicBooking, error)
}

type DefaultPublicBookingService struct {
	Repo     publicBookingRepo.PublicBookingRepository
	Notifier notification.Notifier
}

var publicTransitions = map[models.PublicBookingStatus][]models.PublicBookingStatus{
	models.PublicStatusNew:       {models.PublicStatusContacted, models.PublicStatusRejected},
	models.PublicStatusContacted: {models.PublicStatusConfirmed, models.PublicStatusRejected},
	models.PublicStatusConfirmed: {models.PublicStatusClosed},
}

// CanTransition reports whether an intake request may move from -> to.
func CanTransition(from, to models.PublicBookingStatus) bool {
	for _, s := range publicTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ParseStatus validates an intake status.
func ParseStatus(s string) (models.PublicBookingStatus, bool) {
	st := models.PublicBookingStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range models.PublicBookingStatuses {
		if known == st {
			return st, true
		}
	}
	return "", false
}

func (s *DefaultPublicBookingService) Submit(ctx context.Context, req models.PublicBooking) (*models.PublicBooking, error) {
	b := models.PublicBooking{
		BookingReference: booking.NewPrefixedReference(booking.PublicReferencePrefix, time.Now()),
		Name:             strings.TrimSpace(req.Name),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:            strings.TrimSpace(req.Phone),
		PickupLocation:   strings.TrimSpace(req.PickupLocation),
		DropLocation:     strings.TrimSpace(req.DropLocation),
		TravelDate:       strings.TrimSpace(req.TravelDate),
		Time:             strings.TrimSpace(req.Time),
		TripType:         strings.TrimSpace(req.TripType),
		VehicleName:      strings.TrimSpace(req.VehicleName),
		Price:            req.Price,
		Message:          strings.TrimSpace(req.Message),
		Status:           models.PublicStatusNew,
	}
	if err := utils.ValidateStruct(b); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, &b); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, utils.Conflict("duplicate_reference", "booking reference already exists; please retry")
		}
		utils.GetLogger().Error("Failed to store public booking", zap.Error(err))
		return nil, utils.Dependency("failed to submit booking request", err)
	}
	metrics.IncBookingCreated("public")
	utils.GetLogger().Info("Public booking received", zap.String("reference", b.BookingReference))

	if s.Notifier != nil {
		if err := s.Notifier.NotifyAdminPublicBooking(ctx, models.PublicSnapshotOf(&b)); err != nil {
			utils.GetLogger().Warn("Public booking alert not dispatched", zap.String("reference", b.BookingReference), zap.Error(err))
		}
	}
	return &b, nil
}

func (s *DefaultPublicBookingService) List(ctx context.Context, filter publicBookingRepo.PublicBookingFilter, page models.Page) ([]models.PublicBooking, models.Pagination, error) {
	if filter.Status != "" {
		if _, ok := ParseStatus(string(filter.Status)); !ok {
			return nil, models.Pagination{}, utils.Validation("status", "invalid status")
		}
	}
	page = booking.NormalizePage(page)
	items, total, err := s.Repo.List(ctx, filter, page)
	if err != nil {
		return nil, models.Pagination{}, utils.Dependency("failed to list booking requests", err)
	}
	return items, models.NewPagination(page, total), nil
}

func (s *DefaultPublicBookingService) Get(ctx context.Context, id string) (*models.PublicBooking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NotFound("booking request not found")
	} else if err != nil {
		return nil, utils.Dependency("failed to load booking request", err)
	}
	return b, nil
}

// Transition moves a request along the intake workflow. The write only
// applies if nobody changed the status in between.
func (s *DefaultPublicBookingService) Transition(ctx context.Context, id string, to models.PublicBookingStatus, adminNotes *string) (*models.PublicBooking, error) {
	to, ok := ParseStatus(string(to))
	if !ok {
		return nil, utils.Validation("status", "invalid status")
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.Status, to) {
		return nil, &utils.AppError{
			Kind:    utils.KindValidation,
			Code:    "invalid_transition",
			Field:   "status",
			Message: fmt.Sprintf("cannot move request from %s to %s", current.Status, to),
		}
	}

	updated, err := s.Repo.UpdateStatus(ctx, id, current.Status, to, adminNotes)
	switch {
	case errors.Is(err, repository.ErrVersionMismatch):
		return nil, utils.Conflict("concurrent_transition", "request status changed in the meantime; reload and retry")
	case errors.Is(err, repository.ErrNotFound):
		return nil, utils.NotFound("booking request not found")
	case err != nil:
		return nil, utils.Dependency("failed to update booking request", err)
	}
	utils.GetLogger().Info("Public booking status changed",
		zap.String("reference", updated.BookingReference),
		zap.String("from", string(current.Status)),
		zap.String("to", string(to)),
	)
	return updated, nil
}
