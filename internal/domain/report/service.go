package report

import "context"

// ReportService writes the derived duty-schedule artifacts as CSV files
type ReportService interface {
	// GenerateAll writes the person schedule, date schedule, daily summary
	// and work-hours reports to the configured reports directory.
	GenerateAll(ctx context.Context) (*Batch, error)
}
