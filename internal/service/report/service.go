package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/report"
)

type ReportServiceImpl struct {
	dutyService duty.DutyService
	dir         string
}

func NewReportService(dutySvc duty.DutyService, dir string) report.ReportService {
	return &ReportServiceImpl{dutyService: dutySvc, dir: dir}
}

// GenerateAll writes the four derived duty-schedule CSV artifacts.
func (s *ReportServiceImpl) GenerateAll(ctx context.Context) (*report.Batch, error) {
	snap, err := s.dutyService.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}

	sessions, err := s.dutyService.ListSessions(ctx, duty.Filter{})
	if err != nil {
		return nil, err
	}

	batch := &report.Batch{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	writers := []struct {
		name string
		rows func() [][]string
	}{
		{report.FilePersonSchedule, func() [][]string { return personScheduleRows(snap.Events) }},
		{report.FileDateSchedule, func() [][]string { return dateScheduleRows(snap.Events) }},
		{report.FileDailySummary, func() [][]string { return dailySummaryRows(snap.Events) }},
		{report.FileWorkHours, func() [][]string { return workHoursRows(sessions) }},
	}

	for _, w := range writers {
		rows := w.rows()
		path := filepath.Join(s.dir, w.name)
		if err := writeCSV(path, rows); err != nil {
			return nil, err
		}
		batch.Files = append(batch.Files, report.GeneratedFile{
			Name: w.name,
			Path: path,
			Rows: len(rows) - 1, // minus header
		})
	}

	return batch, nil
}

// personScheduleRows orders events by employee, then date, then time.
func personScheduleRows(events []duty.Event) [][]string {
	sorted := sortedCopy(events, func(a, b duty.Event) bool {
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Timestamp.Before(b.Timestamp)
	})

	rows := [][]string{{"Name", "Date", "Status", "Time", "DateTime"}}
	for _, e := range sorted {
		rows = append(rows, []string{
			e.Name,
			e.Date(),
			string(e.Status),
			e.Timestamp.Format("15:04:05"),
			e.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}
	return rows
}

// dateScheduleRows orders events by date, then time.
func dateScheduleRows(events []duty.Event) [][]string {
	sorted := sortedCopy(events, func(a, b duty.Event) bool {
		return a.Timestamp.Before(b.Timestamp)
	})

	rows := [][]string{{"Date", "Name", "Status", "Time", "DateTime"}}
	for _, e := range sorted {
		rows = append(rows, []string{
			e.Date(),
			e.Name,
			string(e.Status),
			e.Timestamp.Format("15:04:05"),
			e.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}
	return rows
}

func dailySummaryRows(events []duty.Event) [][]string {
	type daily struct {
		on, off int
		names   map[string]struct{}
	}
	byDate := make(map[string]*daily)
	for _, e := range events {
		d, ok := byDate[e.Date()]
		if !ok {
			d = &daily{names: make(map[string]struct{})}
			byDate[e.Date()] = d
		}
		if e.Status == duty.StatusDutyOn {
			d.on++
		} else {
			d.off++
		}
		d.names[e.Name] = struct{}{}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	rows := [][]string{{"Date", "Total_DutyOn", "Total_DutyOff", "Unique_Employees"}}
	for _, date := range dates {
		d := byDate[date]
		rows = append(rows, []string{
			date,
			strconv.Itoa(d.on),
			strconv.Itoa(d.off),
			strconv.Itoa(len(d.names)),
		})
	}
	return rows
}

func workHoursRows(sessions []duty.Session) [][]string {
	rows := [][]string{{"Name", "Date", "Duty_On_Time", "Duty_Off_Time", "Work_Hours"}}
	for _, s := range sessions {
		rows = append(rows, []string{
			s.Name,
			s.Date,
			s.DutyOn.Format("15:04:05"),
			s.DutyOff.Format("15:04:05"),
			strconv.FormatFloat(s.Hours, 'f', 2, 64),
		})
	}
	return rows
}

func sortedCopy(events []duty.Event, less func(a, b duty.Event) bool) []duty.Event {
	sorted := make([]duty.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
