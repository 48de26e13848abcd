package handlers

import (
	"context"

	"cabtour/models"
	"cabtour/services/admin"
	"cabtour/services/booking"
	"cabtour/services/pricing"
	"cabtour/services/storage"

	"github.com/stretchr/testify/mock"
)

type mockPricing struct {
	pricing.PricingService
	mock.Mock
}

func (m *mockPricing) Quote(ctx context.Context, f models.QuoteFilter) ([]models.CabQuote, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CabQuote), args.Error(1)
}

func (m *mockPricing) SetIncrement(ctx context.Context, cat models.CabCategory, id string, pct float64, version int64) (*models.CabQuote, error) {
	args := m.Called(ctx, cat, id, pct, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CabQuote), args.Error(1)
}

func (m *mockPricing) BulkSetIncrement(ctx context.Context, cat models.CabCategory, pct float64) (int64, error) {
	args := m.Called(ctx, cat, pct)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPricing) Bounds() pricing.Bounds { return pricing.DefaultBounds }

type mockBookings struct {
	booking.BookingService
	mock.Mock
}

func (m *mockBookings) CreateBooking(ctx context.Context, p models.Principal, req models.BookingRequest) (*models.Booking, error) {
	args := m.Called(ctx, p, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookings) TransitionStatus(ctx context.Context, id string, to models.BookingStatus, notes *string) (*models.BookingView, error) {
	args := m.Called(ctx, id, to, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingView), args.Error(1)
}

func (m *mockBookings) CancelOwnBooking(ctx context.Context, p models.Principal, id string) (*models.Booking, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookings) ListBookings(ctx context.Context, f models.BookingFilter, page models.Page) (*models.BookingList, error) {
	args := m.Called(ctx, f, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingList), args.Error(1)
}

func (m *mockBookings) Voucher(ctx context.Context, p models.Principal, id string) ([]byte, string, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type mockAdmin struct {
	admin.AdminService
	mock.Mock
}

func (m *mockAdmin) ExportBookings(ctx context.Context, f models.BookingFilter) ([]byte, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockAdmin) LoginHistory(ctx context.Context, principalID string, limit int64) ([]models.LoginRecord, error) {
	args := m.Called(ctx, principalID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LoginRecord), args.Error(1)
}

type fakeImages struct {
	storage.ImageStore
	uploaded []string
}

func (f *fakeImages) UploadImage(_ context.Context, data []byte, filename string) (*storage.UploadResult, error) {
	mime, err := storage.CheckImage(data)
	if err != nil {
		return nil, err
	}
	f.uploaded = append(f.uploaded, filename)
	return &storage.UploadResult{URL: "https://cdn.example/" + filename, PublicID: "cabtour/" + filename, MimeType: mime, Bytes: len(data)}, nil
}
