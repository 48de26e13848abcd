package admin

import (
	"context"

	"cabtour/models"
	"cabtour/utils"

	"github.com/jinzhu/now"
	"go.uber.org/zap"
)

// Dashboard counts bookings per status and for the current day and month.
// Day and month boundaries follow the server's local time zone.
func (s *DefaultAdminService) Dashboard(ctx context.Context) (*Dashboard, error) {
	t := s.now()
	day := now.With(t).BeginningOfDay()
	month := now.With(t).BeginningOfMonth()

	counts, err := s.Bookings.CountByStatus(ctx)
	if err != nil {
		return nil, dependency("count bookings", err)
	}
	d := &Dashboard{StatusCounts: counts, GeneratedAt: t}
	for _, n := range counts {
		d.TotalBookings += n
	}

	if d.TodayBookings, err = s.Bookings.CountCreatedBetween(ctx, day, day.AddDate(0, 0, 1)); err != nil {
		return nil, dependency("count today's bookings", err)
	}
	if d.MonthBookings, err = s.Bookings.CountCreatedBetween(ctx, month, month.AddDate(0, 1, 0)); err != nil {
		return nil, dependency("count this month's bookings", err)
	}
	if d.CompletedRevenue, err = s.Bookings.SumPrice(ctx, models.StatusCompleted); err != nil {
		return nil, dependency("sum revenue", err)
	}
	if d.TotalUsers, err = s.Users.Count(ctx); err != nil {
		return nil, dependency("count users", err)
	}
	if s.Contacts != nil {
		if d.UnreadMessages, err = s.Contacts.CountUnread(ctx); err != nil {
			return nil, dependency("count messages", err)
		}
	}
	return d, nil
}

func (s *DefaultAdminService) LoginHistory(ctx context.Context, principalID string, limit int64) ([]models.LoginRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	records, err := s.Logins.ListRecent(ctx, principalID, limit)
	if err != nil {
		return nil, dependency("load login history", err)
	}
	return records, nil
}

func dependency(op string, err error) error {
	utils.GetLogger().Error("Admin query failed", zap.String("op", op), zap.Error(err))
	return utils.Dependency("failed to "+op, err)
}
