package employee

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/employee"
)

const recentActivityLimit = 5

type EmployeeServiceImpl struct {
	dutyService duty.DutyService
}

func NewEmployeeService(dutySvc duty.DutyService) employee.EmployeeService {
	return &EmployeeServiceImpl{dutyService: dutySvc}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.ListItem, error) {
	events, err := s.dutyService.FilteredEvents(ctx, duty.Filter{})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, e := range events {
		counts[e.Name]++
	}

	items := make([]employee.ListItem, 0, len(counts))
	for name, n := range counts {
		items = append(items, employee.ListItem{Name: name, Records: n})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// GetSchedule implements employee.EmployeeService. One row per calendar
// date, listing every swipe time; the duration is first-on/last-off, and
// nil when the date has only one side of the pair.
func (s *EmployeeServiceImpl) GetSchedule(ctx context.Context, name string, filter duty.Filter) (*employee.ScheduleResponse, error) {
	filter.Employees = []string{name}
	filter.Status = ""
	events, err := s.dutyService.FilteredEvents(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, employee.ErrEmployeeNotFound
	}

	type dayAgg struct {
		onTimes  []string
		offTimes []string
		firstOn  time.Time
		lastOff  time.Time
		records  int
		weekday  string
	}
	byDate := make(map[string]*dayAgg)
	for _, e := range events {
		date := e.Date()
		d, ok := byDate[date]
		if !ok {
			d = &dayAgg{weekday: e.Timestamp.Weekday().String()}
			byDate[date] = d
		}
		d.records++
		clock := e.Timestamp.Format("15:04:05")
		if e.Status == duty.StatusDutyOn {
			d.onTimes = append(d.onTimes, clock)
			if len(d.onTimes) == 1 || e.Timestamp.Before(d.firstOn) {
				d.firstOn = e.Timestamp
			}
		} else {
			d.offTimes = append(d.offTimes, clock)
			if len(d.offTimes) == 1 || e.Timestamp.After(d.lastOff) {
				d.lastOff = e.Timestamp
			}
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	rows := make([]employee.ScheduleRow, 0, len(dates))
	for _, date := range dates {
		d := byDate[date]
		sort.Strings(d.onTimes)
		sort.Strings(d.offTimes)

		row := employee.ScheduleRow{
			Date:    date,
			Weekday: d.weekday,
			DutyOn:  d.onTimes,
			DutyOff: d.offTimes,
			Records: d.records,
		}
		if len(d.onTimes) > 0 && len(d.offTimes) > 0 {
			hours := math.Trunc(d.lastOff.Sub(d.firstOn).Hours()*100) / 100
			row.WorkHours = &hours
		}
		rows = append(rows, row)
	}

	return &employee.ScheduleResponse{
		Name:     name,
		Days:     len(rows),
		Schedule: rows,
	}, nil
}

// GetInsights implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetInsights(ctx context.Context, name string) (*employee.InsightsResponse, error) {
	events, err := s.dutyService.FilteredEvents(ctx, duty.Filter{Employees: []string{name}})
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, employee.ErrEmployeeNotFound
	}

	resp := &employee.InsightsResponse{Name: name}

	dates := make(map[string]struct{})
	onHours := make(map[int]int)
	first, last := events[0].Timestamp, events[0].Timestamp
	for _, e := range events {
		dates[e.Date()] = struct{}{}
		if e.Status == duty.StatusDutyOn {
			resp.DutyOnRecords++
			onHours[e.Timestamp.Hour()]++
		} else {
			resp.DutyOffRecords++
		}
		if e.Timestamp.Before(first) {
			first = e.Timestamp
		}
		if e.Timestamp.After(last) {
			last = e.Timestamp
		}
	}

	resp.TotalDays = len(dates)
	resp.RecordsPerDay = float64(len(events)) / float64(len(dates))
	resp.FirstRecord = first.Format("2006-01-02")
	resp.LastRecord = last.Format("2006-01-02")
	resp.DateRangeDays = calendarDaySpan(resp.FirstRecord, resp.LastRecord)

	if hour, ok := commonHour(onHours); ok {
		resp.CommonDutyOnHour = &hour
	}

	// Chronologically last events, oldest of the five first. The loader
	// concatenates files by filename, so input order is not time order.
	sorted := make([]duty.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	start := len(sorted) - recentActivityLimit
	if start < 0 {
		start = 0
	}
	for _, e := range sorted[start:] {
		resp.RecentActivity = append(resp.RecentActivity, employee.RecentEvent{
			Date:   e.Date(),
			Status: string(e.Status),
			Time:   e.Timestamp.Format("15:04:05"),
		})
	}

	return resp, nil
}

// calendarDaySpan counts whole days between two YYYY-MM-DD dates. Spans
// are computed on calendar dates, not absolute instants, so events with
// timezone offsets agree with the formatted first/last dates.
func calendarDaySpan(from, to string) int {
	a, err := time.Parse("2006-01-02", from)
	if err != nil {
		return 0
	}
	b, err := time.Parse("2006-01-02", to)
	if err != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}

// commonHour returns the mode of the duty-on hour counts, lowest hour on
// ties.
func commonHour(counts map[int]int) (int, bool) {
	best, bestCount := 0, 0
	for hour, n := range counts {
		if n > bestCount || (n == bestCount && hour < best) {
			best, bestCount = hour, n
		}
	}
	return best, bestCount > 0
}
