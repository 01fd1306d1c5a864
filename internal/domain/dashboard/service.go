package dashboard

import (
	"context"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns combined dashboard data using goroutines
	GetDashboard(ctx context.Context, filter duty.Filter) (*DashboardResponse, error)

	// GetDailyActivity returns per-date DutyOn/DutyOff counts
	GetDailyActivity(ctx context.Context, filter duty.Filter) ([]duty.DailyCount, error)

	// GetHourlyPattern returns the hour-of-day histogram by status
	GetHourlyPattern(ctx context.Context, filter duty.Filter) ([]duty.HourCount, error)

	// GetWeekdayActivity returns the day-of-week histogram by status
	GetWeekdayActivity(ctx context.Context, filter duty.Filter) ([]duty.WeekdayCount, error)

	// GetWorkHours returns session duration statistics
	GetWorkHours(ctx context.Context, filter duty.Filter) (*WorkHoursResponse, error)
}
