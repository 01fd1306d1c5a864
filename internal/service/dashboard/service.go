package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/dashboard"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
	dutyService "github.com/shiftlog/duty-dashboard-go/internal/service/duty"
	"golang.org/x/sync/errgroup"
)

const histogramBins = 20

type DashboardServiceImpl struct {
	dutyService duty.DutyService
}

func NewDashboardService(dutySvc duty.DutyService) dashboard.DashboardService {
	return &DashboardServiceImpl{dutyService: dutySvc}
}

// GetDashboard returns combined dashboard data using parallel goroutines.
// The snapshot is loaded once up front; the sections then reduce the same
// immutable event slice concurrently.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, filter duty.Filter) (*dashboard.DashboardResponse, error) {
	events, err := s.dutyService.FilteredEvents(ctx, filter)
	if err != nil {
		return nil, err
	}

	var (
		metrics   dashboard.MetricsResponse
		daily     []duty.DailyCount
		top       []duty.EmployeeTotals
		hourly    []duty.HourCount
		weekday   []duty.WeekdayCount
		workHours *dashboard.WorkHoursResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		metrics = buildMetrics(events)
		return nil
	})

	g.Go(func() error {
		daily = dutyService.DailyCounts(events)
		return nil
	})

	g.Go(func() error {
		totals := dutyService.EmployeeTotals(events)
		if len(totals) > 15 {
			totals = totals[:15]
		}
		top = totals
		return nil
	})

	g.Go(func() error {
		hourly = dutyService.HourlyHistogram(events)
		weekday = dutyService.WeekdayHistogram(events)
		return nil
	})

	g.Go(func() error {
		sessionFilter := filter
		sessionFilter.Status = ""
		sessions, err := s.dutyService.ListSessions(gCtx, sessionFilter)
		if err != nil {
			return err
		}
		workHours = buildWorkHours(sessions)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		Metrics:         metrics,
		DailyActivity:   daily,
		TopEmployees:    top,
		HourlyPattern:   hourly,
		WeekdayActivity: weekday,
		WorkHours:       *workHours,
	}, nil
}

// GetDailyActivity implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDailyActivity(ctx context.Context, filter duty.Filter) ([]duty.DailyCount, error) {
	events, err := s.dutyService.FilteredEvents(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dutyService.DailyCounts(events), nil
}

// GetHourlyPattern implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetHourlyPattern(ctx context.Context, filter duty.Filter) ([]duty.HourCount, error) {
	events, err := s.dutyService.FilteredEvents(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dutyService.HourlyHistogram(events), nil
}

// GetWeekdayActivity implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetWeekdayActivity(ctx context.Context, filter duty.Filter) ([]duty.WeekdayCount, error) {
	events, err := s.dutyService.FilteredEvents(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dutyService.WeekdayHistogram(events), nil
}

// GetWorkHours implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetWorkHours(ctx context.Context, filter duty.Filter) (*dashboard.WorkHoursResponse, error) {
	sessions, err := s.dutyService.ListSessions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return buildWorkHours(sessions), nil
}

func buildMetrics(events []duty.Event) dashboard.MetricsResponse {
	m := dashboard.MetricsResponse{TotalRecords: len(events)}
	if len(events) == 0 {
		return m
	}

	names := make(map[string]struct{})
	first, last := events[0].Timestamp, events[0].Timestamp
	for _, e := range events {
		names[e.Name] = struct{}{}
		if e.Status == duty.StatusDutyOn {
			m.DutyOnRecords++
		} else {
			m.DutyOffRecords++
		}
		if e.Timestamp.Before(first) {
			first = e.Timestamp
		}
		if e.Timestamp.After(last) {
			last = e.Timestamp
		}
	}

	m.UniqueEmployees = len(names)
	m.FirstDate = first.Format("2006-01-02")
	m.LastDate = last.Format("2006-01-02")
	// Span the formatted calendar dates rather than absolute instants,
	// so events with timezone offsets agree with FirstDate/LastDate.
	firstDay, _ := time.Parse("2006-01-02", m.FirstDate)
	lastDay, _ := time.Parse("2006-01-02", m.LastDate)
	m.DateRangeDays = int(lastDay.Sub(firstDay).Hours()/24) + 1
	return m
}

func buildWorkHours(sessions []duty.Session) *dashboard.WorkHoursResponse {
	overall := dutyService.OverallDurationStats(sessions)
	return &dashboard.WorkHoursResponse{
		Sessions:   overall.Sessions,
		Average:    overall.Mean,
		Min:        overall.Min,
		Max:        overall.Max,
		Std:        overall.Std,
		ByEmployee: dutyService.DurationStatsByEmployee(sessions),
		Histogram:  histogram(sessions, histogramBins),
	}
}

// histogram buckets session hours into equal-width bins for the
// distribution chart.
func histogram(sessions []duty.Session, bins int) []dashboard.HistogramBucket {
	if len(sessions) == 0 || bins < 1 {
		return []dashboard.HistogramBucket{}
	}

	min, max := sessions[0].Hours, sessions[0].Hours
	for _, s := range sessions {
		if s.Hours < min {
			min = s.Hours
		}
		if s.Hours > max {
			max = s.Hours
		}
	}

	width := (max - min) / float64(bins)
	if width == 0 {
		return []dashboard.HistogramBucket{{From: min, To: max, Count: len(sessions)}}
	}

	buckets := make([]dashboard.HistogramBucket, bins)
	for i := range buckets {
		buckets[i].From = min + float64(i)*width
		buckets[i].To = min + float64(i+1)*width
	}
	for _, s := range sessions {
		i := int(math.Floor((s.Hours - min) / width))
		if i >= bins {
			i = bins - 1
		}
		buckets[i].Count++
	}
	return buckets
}
