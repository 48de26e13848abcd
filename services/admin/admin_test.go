package admin

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"cabtour/database/repository"
	adminRepo "cabtour/database/repository/admin"
	bookingRepo "cabtour/database/repository/booking"
	userRepo "cabtour/database/repository/user"
	"cabtour/models"
	"cabtour/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
)

type mockBookings struct {
	bookingRepo.BookingRepository
	mock.Mock
}

func (m *mockBookings) CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[models.BookingStatus]int64), args.Error(1)
}

func (m *mockBookings) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookings) SumPrice(ctx context.Context, status models.BookingStatus) (float64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockBookings) ListAll(ctx context.Context, f models.BookingFilter) ([]models.Booking, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Booking), args.Error(1)
}

type countUsers struct {
	userRepo.UserRepository
	n int64
}

func (c countUsers) Count(context.Context) (int64, error) { return c.n, nil }

func TestDashboard(t *testing.T) {
	clock := time.Date(2026, 10, 18, 15, 30, 0, 0, time.Local)
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.Local)
	month := time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local)
	ctx := context.Background()

	bookings := new(mockBookings)
	bookings.On("CountByStatus", ctx).Return(map[models.BookingStatus]int64{
		models.StatusPending: 4, models.StatusConfirmed: 2, models.StatusInProgress: 1,
		models.StatusCompleted: 10, models.StatusCancelled: 3,
	}, nil)
	bookings.On("CountCreatedBetween", ctx, day, day.AddDate(0, 0, 1)).Return(int64(2), nil).Once()
	bookings.On("CountCreatedBetween", ctx, month, time.Date(2026, 11, 1, 0, 0, 0, 0, time.Local)).Return(int64(9), nil).Once()
	bookings.On("SumPrice", ctx, models.StatusCompleted).Return(48250.5, nil)

	svc := &DefaultAdminService{Bookings: bookings, Users: countUsers{n: 37}, Clock: func() time.Time { return clock }}
	d, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(20), d.TotalBookings)
	assert.Equal(t, int64(2), d.TodayBookings)
	assert.Equal(t, int64(9), d.MonthBookings)
	assert.Equal(t, 48250.5, d.CompletedRevenue)
	assert.Equal(t, int64(37), d.TotalUsers)
	assert.Equal(t, int64(4), d.StatusCounts[models.StatusPending])
	bookings.AssertExpectations(t)
}

func TestDashboardStoreFailure(t *testing.T) {
	bookings := new(mockBookings)
	bookings.On("CountByStatus", mock.Anything).Return(nil, errors.New("connection reset"))
	svc := &DefaultAdminService{Bookings: bookings}
	_, err := svc.Dashboard(context.Background())
	assert.True(t, utils.IsKind(err, utils.KindDependency))
}

func TestExportBookings(t *testing.T) {
	ctx := context.Background()
	filter := models.BookingFilter{Status: models.StatusConfirmed}
	bookings := new(mockBookings)
	bookings.On("ListAll", ctx, filter).Return([]models.Booking{
		{BookingReference: "BK-20261018-AAAAAAAAAA", Status: models.StatusConfirmed, BookingType: models.BookingTypeCab, Title: "Mohali to Delhi - Dzire", Price: 2200, TravelDate: "2026-11-02", UserName: "Asha"},
		{BookingReference: "BK-20261018-BBBBBBBBBB", Status: models.StatusConfirmed, BookingType: models.BookingTypeTour, Title: "Himachal Circuit", Price: 24999, TravelDate: "2026-12-01", UserName: "Meera"},
	}, nil)

	svc := &DefaultAdminService{Bookings: bookings}
	data, err := svc.ExportBookings(ctx, filter)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Reference", rows[0][0])
	assert.Equal(t, "BK-20261018-AAAAAAAAAA", rows[1][0])
	assert.Equal(t, "2200", rows[1][4])
	assert.Equal(t, "Meera", rows[2][7])

	_, err = svc.ExportBookings(ctx, models.BookingFilter{Status: "lost"})
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}

type memAdmins struct {
	adminRepo.AdminRepository
	byID map[string]*models.Admin
}

func (m *memAdmins) GetByAdminID(_ context.Context, id string) (*models.Admin, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAdmins) Create(_ context.Context, a *models.Admin) error {
	a.ID = "a-" + a.AdminID
	cp := *a
	m.byID[a.AdminID] = &cp
	return nil
}

func (m *memAdmins) SetPassword(_ context.Context, id, hash, role string) error {
	a := m.byID[id]
	a.PasswordHash, a.Role, a.IsActive = hash, role, true
	return nil
}

func TestSeedAdmin(t *testing.T) {
	admins := &memAdmins{byID: map[string]*models.Admin{}}
	svc := &DefaultAdminService{Admins: admins}
	ctx := context.Background()

	a, err := svc.SeedAdmin(ctx, "ops", "first-password", "", false)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, a.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins.byID["ops"].PasswordHash), []byte("first-password")))

	_, err = svc.SeedAdmin(ctx, "ops", "second-password", "", false)
	assert.True(t, utils.HasCode(err, "admin_exists"))

	_, err = svc.SeedAdmin(ctx, "ops", "second-password", models.RoleSuperAdmin, true)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, admins.byID["ops"].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins.byID["ops"].PasswordHash), []byte("second-password")))

	_, err = svc.SeedAdmin(ctx, "ops", "second-password", "root", true)
	assert.True(t, utils.IsKind(err, utils.KindValidation))
	_, err = svc.SeedAdmin(ctx, "x", "short", "", false)
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}
