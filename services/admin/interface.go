package admin

import (
	"context"
	"time"

	adminRepo "cabtour/database/repository/admin"
	bookingRepo "cabtour/database/repository/booking"
	recordsRepo "cabtour/database/repository/records"
	userRepo "cabtour/database/repository/user"
	"cabtour/models"
)

// AdminService backs the back-office overview screens.
type AdminService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	ExportBookings(ctx context.Context, filter models.BookingFilter) ([]byte, error)
	LoginHistory(ctx context.Context, principalID string, limit int64) ([]models.LoginRecord, error)
	SeedAdmin(ctx context.Context, adminID, password, role string, reset bool) (*models.Admin, error)
}

// Dashboard is the admin landing summary.
type Dashboard struct {
	StatusCounts     map[models.BookingStatus]int64 `json:"statusCounts"`
	TotalBookings    int64                          `json:"totalBookings"`
	TodayBookings    int64                          `json:"todayBookings"`
	MonthBookings    int64                          `json:"monthBookings"`
	CompletedRevenue float64                        `json:"completedRevenue"`
	TotalUsers       int64                          `json:"totalUsers"`
	UnreadMessages   int64                          `json:"unreadMessages"`
	GeneratedAt      time.Time                      `json:"generatedAt"`
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
	Contacts recordsRepo.ContactRepository
	Logins   recordsRepo.LoginHistoryRepository
	Admins   adminRepo.AdminRepository

	// Clock returns the current time; nil means time.Now.
	Clock func() time.Time
}

func (s *DefaultAdminService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
