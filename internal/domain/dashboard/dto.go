package dashboard

import "github.com/shiftlog/duty-dashboard-go/internal/domain/duty"

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Metrics         MetricsResponse       `json:"metrics"`
	DailyActivity   []duty.DailyCount     `json:"daily_activity"`
	TopEmployees    []duty.EmployeeTotals `json:"top_employees"`
	HourlyPattern   []duty.HourCount      `json:"hourly_pattern"`
	WeekdayActivity []duty.WeekdayCount   `json:"weekday_activity"`
	WorkHours       WorkHoursResponse     `json:"work_hours"`
}

// ========== KEY METRICS ==========

// MetricsResponse contains the headline counters shown above the charts
type MetricsResponse struct {
	TotalRecords    int    `json:"total_records"`
	UniqueEmployees int    `json:"unique_employees"`
	DutyOnRecords   int    `json:"duty_on_records"`
	DutyOffRecords  int    `json:"duty_off_records"`
	FirstDate       string `json:"first_date,omitempty"`
	LastDate        string `json:"last_date,omitempty"`
	DateRangeDays   int    `json:"date_range_days"`
}

// ========== WORK HOURS ==========

// WorkHoursResponse summarizes reconstructed session durations
type WorkHoursResponse struct {
	Sessions   int                  `json:"sessions"`
	Average    float64              `json:"average"`
	Min        float64              `json:"min"`
	Max        float64              `json:"max"`
	Std        float64              `json:"std"`
	ByEmployee []duty.DurationStats `json:"by_employee"`
	Histogram  []HistogramBucket    `json:"histogram"`
}

// HistogramBucket is one bar of the work-hours distribution chart
type HistogramBucket struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}
