package duty

import (
	"github.com/shiftlog/duty-dashboard-go/internal/pkg/validator"
)

// ========================================
// DUTY DTOs
// ========================================

// Filter narrows the event set before reconstruction or aggregation.
// Zero values mean "no restriction". Dates are YYYY-MM-DD, inclusive.
type Filter struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Employees []string `json:"employees"`
	Status    string   `json:"status"` // "", "DutyOn" or "DutyOff"
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.From != "" {
		if _, ok := validator.IsValidDate(f.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a date in YYYY-MM-DD format",
			})
		}
	}

	if f.To != "" {
		if _, ok := validator.IsValidDate(f.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be a date in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != "" {
		if _, err := ParseStatus(f.Status); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be DutyOn or DutyOff",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EventFilter adds paging on top of Filter for the raw event listing.
type EventFilter struct {
	Filter
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type ListEventsResponse struct {
	Events     []Event `json:"events"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalItems int64   `json:"total_items"`
	TotalPages int     `json:"total_pages"`
}

// ========================================
// AGGREGATE RESULT ROWS
// ========================================

// DailyCount is the per-date partition of events by status.
type DailyCount struct {
	Date            string `json:"date"`
	DutyOn          int    `json:"duty_on"`
	DutyOff         int    `json:"duty_off"`
	UniqueEmployees int    `json:"unique_employees"`
}

// EmployeeTotals is the all-time activity summary for one employee.
type EmployeeTotals struct {
	Name          string `json:"name"`
	Records       int    `json:"records"`
	Days          int    `json:"days"`
	DutyOn        int    `json:"duty_on"`
	DutyOff       int    `json:"duty_off"`
	FirstActivity string `json:"first_activity"`
	LastActivity  string `json:"last_activity"`
}

// HourCount is the per-hour-of-day histogram bucket, 0-23.
type HourCount struct {
	Hour    int `json:"hour"`
	DutyOn  int `json:"duty_on"`
	DutyOff int `json:"duty_off"`
}

// WeekdayCount is the per-day-of-week histogram bucket, Monday first.
type WeekdayCount struct {
	Weekday string `json:"weekday"`
	DutyOn  int    `json:"duty_on"`
	DutyOff int    `json:"duty_off"`
}

// DurationStats summarizes session lengths for one employee.
// Std is the sample standard deviation, 0 with fewer than two sessions.
type DurationStats struct {
	Name     string  `json:"name"`
	Sessions int     `json:"sessions"`
	Mean     float64 `json:"mean"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Std      float64 `json:"std"`
}
