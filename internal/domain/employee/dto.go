package employee

// ========================================
// EMPLOYEE LOOKUP DTOs
// ========================================

// ListItem is one entry of the employee directory
type ListItem struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
}

// ScheduleRow is one calendar date of an employee's duty schedule.
// DutyOn/DutyOff list every swipe time of that date; WorkHours is the
// first-on/last-off duration, or nil when the date has only one side.
type ScheduleRow struct {
	Date      string   `json:"date"`
	Weekday   string   `json:"weekday"`
	DutyOn    []string `json:"duty_on"`
	DutyOff   []string `json:"duty_off"`
	WorkHours *float64 `json:"work_hours"`
	Records   int      `json:"records"`
}

// ScheduleResponse is the full per-date schedule for one employee
type ScheduleResponse struct {
	Name     string        `json:"name"`
	Days     int           `json:"days"`
	Schedule []ScheduleRow `json:"schedule"`
}

// RecentEvent is one row of the "recent activity" insight
type RecentEvent struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Time   string `json:"time"`
}

// InsightsResponse carries the quick-insight numbers of the lookup view
type InsightsResponse struct {
	Name             string        `json:"name"`
	TotalDays        int           `json:"total_days"`
	DutyOnRecords    int           `json:"duty_on_records"`
	DutyOffRecords   int           `json:"duty_off_records"`
	RecordsPerDay    float64       `json:"records_per_day"`
	FirstRecord      string        `json:"first_record"`
	LastRecord       string        `json:"last_record"`
	DateRangeDays    int           `json:"date_range_days"`
	CommonDutyOnHour *int          `json:"common_duty_on_hour"`
	RecentActivity   []RecentEvent `json:"recent_activity"`
}
