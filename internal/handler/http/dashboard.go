package http

import (
	"net/http"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/dashboard"
	"github.com/shiftlog/duty-dashboard-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns combined dashboard data
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetDailyActivity returns per-date DutyOn/DutyOff counts
	GetDailyActivity(w http.ResponseWriter, r *http.Request)
	// GetHourlyPattern returns the hour-of-day histogram
	GetHourlyPattern(w http.ResponseWriter, r *http.Request)
	// GetWeekdayActivity returns the day-of-week histogram
	GetWeekdayActivity(w http.ResponseWriter, r *http.Request)
	// GetWorkHours returns session duration statistics
	GetWorkHours(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDailyActivity handles GET /dashboard/daily-activity
func (h *dashboardHandlerImpl) GetDailyActivity(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDailyActivity(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetHourlyPattern handles GET /dashboard/hourly-pattern
func (h *dashboardHandlerImpl) GetHourlyPattern(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetHourlyPattern(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWeekdayActivity handles GET /dashboard/weekday-activity
func (h *dashboardHandlerImpl) GetWeekdayActivity(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetWeekdayActivity(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWorkHours handles GET /dashboard/work-hours
func (h *dashboardHandlerImpl) GetWorkHours(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetWorkHours(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
