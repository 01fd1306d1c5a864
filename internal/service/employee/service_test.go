package employee

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/employee"
	dutyService "github.com/shiftlog/duty-dashboard-go/internal/service/duty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	events []duty.Event
}

func (s *stubRepo) Snapshot(ctx context.Context) (*duty.Snapshot, error) {
	return &duty.Snapshot{ID: uuid.New(), Events: s.events, LoadedAt: time.Now()}, nil
}

func (s *stubRepo) Invalidate() {}

func ev(id int64, name string, status duty.Status, ts string) duty.Event {
	t, err := time.Parse("2006-01-02 15:04:05", ts)
	if err != nil {
		panic(err)
	}
	return duty.Event{ID: id, Name: name, Status: status, Timestamp: t}
}

func newService(events []duty.Event) employee.EmployeeService {
	return NewEmployeeService(dutyService.NewDutyService(&stubRepo{events: events}))
}

func fixture() []duty.Event {
	return []duty.Event{
		ev(1, "Alice", duty.StatusDutyOn, "2024-01-01 08:00:00"),
		ev(2, "Alice", duty.StatusDutyOff, "2024-01-01 12:00:00"),
		ev(3, "Alice", duty.StatusDutyOn, "2024-01-01 13:00:00"),
		ev(4, "Alice", duty.StatusDutyOff, "2024-01-01 17:30:00"),
		ev(5, "Alice", duty.StatusDutyOn, "2024-01-03 08:00:00"),
		ev(6, "Bob", duty.StatusDutyOn, "2024-01-01 09:00:00"),
	}
}

func TestList(t *testing.T) {
	svc := newService(fixture())

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, employee.ListItem{Name: "Alice", Records: 5}, items[0])
	assert.Equal(t, employee.ListItem{Name: "Bob", Records: 1}, items[1])
}

func TestGetSchedule(t *testing.T) {
	svc := newService(fixture())

	resp, err := svc.GetSchedule(context.Background(), "Alice", duty.Filter{})
	require.NoError(t, err)

	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, 2, resp.Days)
	require.Len(t, resp.Schedule, 2)

	day := resp.Schedule[0]
	assert.Equal(t, "2024-01-01", day.Date)
	assert.Equal(t, "Monday", day.Weekday)
	assert.Equal(t, []string{"08:00:00", "13:00:00"}, day.DutyOn)
	assert.Equal(t, []string{"12:00:00", "17:30:00"}, day.DutyOff)
	assert.Equal(t, 4, day.Records)
	// First on 08:00, last off 17:30
	require.NotNil(t, day.WorkHours)
	assert.InDelta(t, 9.5, *day.WorkHours, 1e-9)

	oneSided := resp.Schedule[1]
	assert.Equal(t, "2024-01-03", oneSided.Date)
	assert.Nil(t, oneSided.WorkHours)
	assert.Empty(t, oneSided.DutyOff)
}

func TestGetScheduleUnknownEmployee(t *testing.T) {
	svc := newService(fixture())

	_, err := svc.GetSchedule(context.Background(), "Carol", duty.Filter{})
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetScheduleWithDateFilter(t *testing.T) {
	svc := newService(fixture())

	resp, err := svc.GetSchedule(context.Background(), "Alice", duty.Filter{To: "2024-01-01"})
	require.NoError(t, err)
	require.Len(t, resp.Schedule, 1)
	assert.Equal(t, "2024-01-01", resp.Schedule[0].Date)
}

func TestGetInsights(t *testing.T) {
	svc := newService(fixture())

	resp, err := svc.GetInsights(context.Background(), "Alice")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalDays)
	assert.Equal(t, 3, resp.DutyOnRecords)
	assert.Equal(t, 2, resp.DutyOffRecords)
	assert.InDelta(t, 2.5, resp.RecordsPerDay, 1e-9)
	assert.Equal(t, "2024-01-01", resp.FirstRecord)
	assert.Equal(t, "2024-01-03", resp.LastRecord)
	assert.Equal(t, 2, resp.DateRangeDays)

	// 08:00 occurs twice, 13:00 once
	require.NotNil(t, resp.CommonDutyOnHour)
	assert.Equal(t, 8, *resp.CommonDutyOnHour)

	require.Len(t, resp.RecentActivity, 5)
	assert.Equal(t, employee.RecentEvent{Date: "2024-01-03", Status: "DutyOn", Time: "08:00:00"}, resp.RecentActivity[4])
}

func TestGetInsightsRecentActivityChronological(t *testing.T) {
	// Multi-file logs concatenate by filename, so input order is not
	// time order. Recent activity must still be the chronological tail.
	svc := newService([]duty.Event{
		ev(1, "Alice", duty.StatusDutyOn, "2024-01-05 08:00:00"),
		ev(2, "Alice", duty.StatusDutyOff, "2024-01-05 17:00:00"),
		ev(3, "Alice", duty.StatusDutyOn, "2024-01-01 08:00:00"),
		ev(4, "Alice", duty.StatusDutyOff, "2024-01-01 17:00:00"),
		ev(5, "Alice", duty.StatusDutyOn, "2024-01-03 08:00:00"),
		ev(6, "Alice", duty.StatusDutyOff, "2024-01-03 17:00:00"),
	})

	resp, err := svc.GetInsights(context.Background(), "Alice")
	require.NoError(t, err)

	require.Len(t, resp.RecentActivity, 5)
	assert.Equal(t, employee.RecentEvent{Date: "2024-01-01", Status: "DutyOff", Time: "17:00:00"}, resp.RecentActivity[0])
	assert.Equal(t, "2024-01-03", resp.RecentActivity[1].Date)
	assert.Equal(t, employee.RecentEvent{Date: "2024-01-05", Status: "DutyOff", Time: "17:00:00"}, resp.RecentActivity[4])
}

func TestGetInsightsUnknownEmployee(t *testing.T) {
	svc := newService(fixture())

	_, err := svc.GetInsights(context.Background(), "Carol")
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCommonHourTieBreaksLow(t *testing.T) {
	hour, ok := commonHour(map[int]int{9: 2, 7: 2, 15: 1})
	require.True(t, ok)
	assert.Equal(t, 7, hour)

	_, ok = commonHour(nil)
	assert.False(t, ok)
}
