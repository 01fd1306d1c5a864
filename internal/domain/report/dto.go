package report

// ========================================
// REPORT DTOs
// ========================================

// Report file names written by GenerateAll.
const (
	FilePersonSchedule = "duty_schedule_by_person.csv"
	FileDateSchedule   = "duty_schedule_by_date.csv"
	FileDailySummary   = "daily_duty_summary.csv"
	FileWorkHours      = "employee_work_hours.csv"
)

// GeneratedFile describes one written report artifact
type GeneratedFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Rows int    `json:"rows"`
}

// Batch is the result of one report generation run
type Batch struct {
	ID          string          `json:"id"`
	GeneratedAt string          `json:"generated_at"`
	Files       []GeneratedFile `json:"files"`
}
