package duty

import (
	"math"
	"sort"
	"time"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
)

// Aggregations are pure reductions over the event/session collections.
// All of them tolerate empty input and return empty (or zeroed) results.

// DailyCounts partitions events per calendar date by status.
func DailyCounts(events []duty.Event) []duty.DailyCount {
	type daily struct {
		on, off int
		names   map[string]struct{}
	}
	byDate := make(map[string]*daily)
	for _, e := range events {
		date := e.Date()
		d, ok := byDate[date]
		if !ok {
			d = &daily{names: make(map[string]struct{})}
			byDate[date] = d
		}
		if e.Status == duty.StatusDutyOn {
			d.on++
		} else {
			d.off++
		}
		d.names[e.Name] = struct{}{}
	}

	counts := make([]duty.DailyCount, 0, len(byDate))
	for date, d := range byDate {
		counts = append(counts, duty.DailyCount{
			Date:            date,
			DutyOn:          d.on,
			DutyOff:         d.off,
			UniqueEmployees: len(d.names),
		})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Date < counts[j].Date })
	return counts
}

// EmployeeTotals summarizes all-time activity per employee, most active
// first (ties broken by name).
func EmployeeTotals(events []duty.Event) []duty.EmployeeTotals {
	type totals struct {
		records, on, off int
		dates            map[string]struct{}
		first, last      time.Time
	}
	byName := make(map[string]*totals)
	for _, e := range events {
		t, ok := byName[e.Name]
		if !ok {
			t = &totals{dates: make(map[string]struct{}), first: e.Timestamp, last: e.Timestamp}
			byName[e.Name] = t
		}
		t.records++
		if e.Status == duty.StatusDutyOn {
			t.on++
		} else {
			t.off++
		}
		t.dates[e.Date()] = struct{}{}
		if e.Timestamp.Before(t.first) {
			t.first = e.Timestamp
		}
		if e.Timestamp.After(t.last) {
			t.last = e.Timestamp
		}
	}

	rows := make([]duty.EmployeeTotals, 0, len(byName))
	for name, t := range byName {
		rows = append(rows, duty.EmployeeTotals{
			Name:          name,
			Records:       t.records,
			Days:          len(t.dates),
			DutyOn:        t.on,
			DutyOff:       t.off,
			FirstActivity: t.first.Format("2006-01-02 15:04:05"),
			LastActivity:  t.last.Format("2006-01-02 15:04:05"),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Records != rows[j].Records {
			return rows[i].Records > rows[j].Records
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// HourlyHistogram buckets events by hour of day, always 24 buckets.
func HourlyHistogram(events []duty.Event) []duty.HourCount {
	buckets := make([]duty.HourCount, 24)
	for h := range buckets {
		buckets[h].Hour = h
	}
	for _, e := range events {
		h := e.Timestamp.Hour()
		if e.Status == duty.StatusDutyOn {
			buckets[h].DutyOn++
		} else {
			buckets[h].DutyOff++
		}
	}
	return buckets
}

// weekdayOrder is Monday-first, matching the chart axis.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeekdayHistogram buckets events by day of week, always 7 buckets.
func WeekdayHistogram(events []duty.Event) []duty.WeekdayCount {
	index := make(map[time.Weekday]int, len(weekdayOrder))
	buckets := make([]duty.WeekdayCount, len(weekdayOrder))
	for i, wd := range weekdayOrder {
		index[wd] = i
		buckets[i].Weekday = wd.String()
	}
	for _, e := range events {
		i := index[e.Timestamp.Weekday()]
		if e.Status == duty.StatusDutyOn {
			buckets[i].DutyOn++
		} else {
			buckets[i].DutyOff++
		}
	}
	return buckets
}

// DurationStatsByEmployee computes mean/min/max/std of session hours per
// employee, sorted by name.
func DurationStatsByEmployee(sessions []duty.Session) []duty.DurationStats {
	byName := make(map[string][]float64)
	for _, s := range sessions {
		byName[s.Name] = append(byName[s.Name], s.Hours)
	}

	rows := make([]duty.DurationStats, 0, len(byName))
	for name, hours := range byName {
		stats := durationStats(hours)
		stats.Name = name
		rows = append(rows, stats)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// OverallDurationStats computes mean/min/max/std across all sessions.
func OverallDurationStats(sessions []duty.Session) duty.DurationStats {
	hours := make([]float64, 0, len(sessions))
	for _, s := range sessions {
		hours = append(hours, s.Hours)
	}
	return durationStats(hours)
}

func durationStats(hours []float64) duty.DurationStats {
	if len(hours) == 0 {
		return duty.DurationStats{}
	}

	min, max, sum := hours[0], hours[0], 0.0
	for _, h := range hours {
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
		sum += h
	}
	mean := sum / float64(len(hours))

	// Sample standard deviation; a single session has no spread.
	var std float64
	if len(hours) > 1 {
		var sq float64
		for _, h := range hours {
			sq += (h - mean) * (h - mean)
		}
		std = math.Sqrt(sq / float64(len(hours)-1))
	}

	return duty.DurationStats{
		Sessions: len(hours),
		Mean:     mean,
		Min:      min,
		Max:      max,
		Std:      std,
	}
}
