package http

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/employee"
	"github.com/shiftlog/duty-dashboard-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	// List returns every employee in the duty log with record counts
	List(w http.ResponseWriter, r *http.Request)
	// GetSchedule returns the per-date schedule for one employee
	GetSchedule(w http.ResponseWriter, r *http.Request)
	// GetScheduleCSV streams the schedule as a CSV download
	GetScheduleCSV(w http.ResponseWriter, r *http.Request)
	// GetInsights returns the quick-insight summary for one employee
	GetInsights(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// List handles GET /employees
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSchedule handles GET /employees/{name}/schedule
func (h *employeeHandlerImpl) GetSchedule(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	result, err := h.employeeService.GetSchedule(r.Context(), name, filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetScheduleCSV handles GET /employees/{name}/schedule.csv
func (h *employeeHandlerImpl) GetScheduleCSV(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	result, err := h.employeeService.GetSchedule(r.Context(), name, filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := strings.ReplaceAll(name, " ", "_") + "_schedule_" + time.Now().Format("20060102_150405") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	rows := [][]string{{"Date", "Day", "Name", "Duty On", "Duty Off", "Work Duration", "Total Records"}}
	for _, day := range result.Schedule {
		rows = append(rows, []string{
			day.Date,
			day.Weekday,
			result.Name,
			formatTimes(day.DutyOn),
			formatTimes(day.DutyOff),
			formatDuration(day.WorkHours),
			strconv.Itoa(day.Records),
		})
	}
	if err := cw.WriteAll(rows); err != nil {
		slog.Error("Failed to stream schedule CSV", "error", err)
	}
}

// GetInsights handles GET /employees/{name}/insights
func (h *employeeHandlerImpl) GetInsights(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	result, err := h.employeeService.GetInsights(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func formatTimes(times []string) string {
	if len(times) == 0 {
		return "N/A"
	}
	return strings.Join(times, ", ")
}

func formatDuration(hours *float64) string {
	if hours == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*hours, 'f', 2, 64) + " hours"
}
