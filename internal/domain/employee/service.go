package employee

import (
	"context"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
)

// EmployeeService defines the per-employee lookup operations
type EmployeeService interface {
	// List returns every employee present in the duty log with record counts
	List(ctx context.Context) ([]ListItem, error)

	// GetSchedule returns the per-date schedule for one employee
	GetSchedule(ctx context.Context, name string, filter duty.Filter) (*ScheduleResponse, error)

	// GetInsights returns the quick-insight summary for one employee
	GetInsights(ctx context.Context, name string) (*InsightsResponse, error)
}
