package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cabtour/database/repository"
	"cabtour/metrics"
	"cabtour/models"
	"cabtour/services/pricing"
	"cabtour/utils"

	"go.uber.org/zap"
)

// offeringSnapshot is what a booking copies from the offering at creation.
type offeringSnapshot struct {
	title    string
	image    string
	price    float64
	tripType string
}

// CreateBooking persists a pending booking for the principal. The contact
// snapshot comes from the stored profile; non-empty request fields override it.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, principal models.Principal, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if principal.Kind != models.PrincipalCustomer || principal.ID == "" {
		return nil, utils.Unauthorized("customer login required")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.Users.GetByID(ctx, principal.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.Unauthorized("account no longer exists")
	} else if err != nil {
		return nil, utils.Dependency("failed to load profile", err)
	}
	if !user.IsActive {
		return nil, utils.Forbidden("account is disabled")
	}
	if pc := user.Completion(); !pc.Complete {
		return nil, &utils.AppError{
			Kind:    utils.KindValidation,
			Code:    "profile_incomplete",
			Field:   pc.Missing[0],
			Message: "complete your profile (" + strings.Join(pc.Missing, ", ") + ") before booking",
		}
	}

	snap, err := s.snapshotOffering(ctx, &req)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		BookingReference: s.reference(),
		UserID:           user.ID,
		UserName:         firstNonEmpty(req.Name, user.Name),
		UserEmail:        firstNonEmpty(req.Email, user.Email),
		UserPhone:        firstNonEmpty(req.Phone, user.Phone),
		UserAddress:      firstNonEmpty(req.Address, user.Address),
		BookingType:      req.BookingType,
		RouteID:          req.RouteID,
		TourID:           req.TourID,
		CabID:            req.CabID,
		CarOption:        req.CarOption,
		Title:            snap.title,
		Image:            snap.image,
		Price:            snap.price,
		TravelDate:       req.TravelDate,
		Time:             strings.TrimSpace(req.Time),
		SpecialRequests:  strings.TrimSpace(req.SpecialRequests),
		PickupLocation:   strings.TrimSpace(req.PickupLocation),
		DropLocation:     strings.TrimSpace(req.DropLocation),
		TripType:         firstNonEmpty(req.TripType, snap.tripType),
		Status:           models.StatusPending,
	}
	if req.BookingType == models.BookingTypeCab {
		booking.CabCategory = models.CabCategory(req.CabCategory)
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, utils.Conflict("duplicate_reference", "booking reference already exists; please retry")
		}
		return nil, utils.Dependency("failed to create booking", err)
	}

	metrics.IncBookingCreated(string(booking.BookingType))
	logger.Info("booking created",
		zap.String("reference", booking.BookingReference),
		zap.String("userId", booking.UserID),
		zap.String("type", string(booking.BookingType)),
		zap.Float64("price", booking.Price),
	)

	if s.Notifier != nil {
		if err := s.Notifier.NotifyAdminNewBooking(ctx, models.SnapshotOf(booking)); err != nil {
			logger.Warn("admin booking alert not dispatched", zap.String("reference", booking.BookingReference), zap.Error(err))
		}
	}
	return booking, nil
}

// snapshotOffering loads the selected offering and prices it as of now.
// It normalises req.CabCategory to its canonical name.
func (s *DefaultBookingService) snapshotOffering(ctx context.Context, req *models.BookingRequest) (*offeringSnapshot, error) {
	var snap offeringSnapshot

	switch req.BookingType {
	case models.BookingTypeCab:
		category, ok := models.ParseCabCategory(req.CabCategory)
		if !ok {
			return nil, utils.Validation("cabCategory", "invalid cab category")
		}
		if req.CabID == "" {
			return nil, utils.Validation("cabId", "cabId is required")
		}
		req.CabCategory = string(category)
		cab, err := s.Cabs.GetByID(ctx, category, req.CabID)
		if err != nil {
			return nil, offeringError("cab", err)
		}
		snap.price = pricing.ComputeDisplayPrice(*cab)
		snap.image = cab.Image
		snap.tripType = string(category)
		if category == models.CabHourly {
			snap.title = fmt.Sprintf("%s %s hrs - %s", cab.City, cab.Hours, cab.VehicleName)
		} else {
			snap.title = fmt.Sprintf("%s to %s - %s", cab.From, cab.To, cab.VehicleName)
		}

	case models.BookingTypeRoute:
		if req.RouteID == "" {
			return nil, utils.Validation("routeId", "routeId is required")
		}
		route, err := s.Routes.GetByID(ctx, req.RouteID)
		if err != nil {
			return nil, offeringError("route", err)
		}
		snap.title = route.Title
		snap.image = route.Image
		snap.price = route.CurrentPrice
		if req.CarOption != "" {
			opt, ok := route.FindCarOption(req.CarOption)
			if !ok {
				return nil, utils.Validation("carOption", "car option is not offered on this route")
			}
			snap.price = opt.Price
			snap.title = route.Title + " - " + opt.Name
		}

	case models.BookingTypeTour:
		if req.TourID == "" {
			return nil, utils.Validation("tourId", "tourId is required")
		}
		tour, err := s.Tours.GetByID(ctx, req.TourID)
		if err != nil {
			return nil, offeringError("tour", err)
		}
		snap.title = tour.Title
		snap.image = tour.Image
		snap.price = tour.Price

	default:
		return nil, utils.Validation("bookingType", "bookingType must be one of: route tour cab")
	}

	if snap.price <= 0 {
		return nil, utils.Validation("price", "selected offering has no price")
	}
	return &snap, nil
}

func offeringError(kind string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NotFound(kind + " not found")
	}
	return utils.Dependency("failed to load "+kind, err)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
