package duty

import (
	"testing"
	"time"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ev(id int64, name string, status duty.Status, ts string) duty.Event {
	t, err := time.Parse("2006-01-02 15:04:05", ts)
	if err != nil {
		panic(err)
	}
	return duty.Event{ID: id, Name: name, Status: status, Timestamp: t}
}

func TestReconstructSimplePair(t *testing.T) {
	events := []duty.Event{
		ev(1, "Alice", duty.StatusDutyOn, "2024-01-01 08:00:00"),
		ev(2, "Alice", duty.StatusDutyOff, "2024-01-01 17:30:00"),
	}

	sessions := Reconstruct(events)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Alice", sessions[0].Name)
	assert.Equal(t, "2024-01-01", sessions[0].Date)
	assert.Equal(t, 9.5, sessions[0].Hours)
}

func TestReconstructFirstOnLastOff(t *testing.T) {
	// Two duty-on swipes: the earliest wins. Intermediate pairs collapse.
	events := []duty.Event{
		ev(1, "Alice", duty.StatusDutyOn, "2024-01-01 08:05:00"),
		ev(2, "Alice", duty.StatusDutyOn, "2024-01-01 08:00:00"),
		ev(3, "Alice", duty.StatusDutyOff, "2024-01-01 12:00:00"),
		ev(4, "Alice", duty.StatusDutyOff, "2024-01-01 17:00:00"),
	}

	sessions := Reconstruct(events)
	require.Len(t, sessions, 1)
	assert.Equal(t, "08:00:00", sessions[0].DutyOn.Format("15:04:05"))
	assert.Equal(t, "17:00:00", sessions[0].DutyOff.Format("15:04:05"))
	assert.Equal(t, 9.0, sessions[0].Hours)
}

func TestReconstructOneSidedDays(t *testing.T) {
	events := []duty.Event{
		ev(1, "Alice", duty.StatusDutyOn, "2024-01-01 08:00:00"),
		ev(2, "Bob", duty.StatusDutyOff, "2024-01-01 17:00:00"),
	}

	sessions := Reconstruct(events)
	assert.Empty(t, sessions)
}

func TestReconstructNeverSpansDates(t *testing.T) {
	// A night shift clocking out past midnight does not pair across dates.
	events := []duty.Event{
		ev(1, "Alice", duty.StatusDutyOn, "2024-01-01 22:00:00"),
		ev(2, "Alice", duty.StatusDutyOff, "2024-01-02 06:00:00"),
	}

	sessions := Reconstruct(events)
	assert.Empty(t, sessions)
}

func TestReconstructGroupsByEmployeeAndDate(t *testing.T) {
	events := []duty.Event{
		ev(1, "Alice", duty.StatusDutyOn, "2024-01-01 08:00:00"),
		ev(2, "Alice", duty.StatusDutyOff, "2024-01-01 16:00:00"),
		ev(3, "Alice", duty.StatusDutyOn, "2024-01-02 09:00:00"),
		ev(4, "Alice", duty.StatusDutyOff, "2024-01-02 18:00:00"),
		ev(5, "Bob", duty.StatusDutyOn, "2024-01-01 07:00:00"),
		ev(6, "Bob", duty.StatusDutyOff, "2024-01-01 15:00:00"),
	}

	sessions := Reconstruct(events)
	require.Len(t, sessions, 3)
	// Sorted by name, then date
	assert.Equal(t, "Alice", sessions[0].Name)
	assert.Equal(t, "2024-01-01", sessions[0].Date)
	assert.Equal(t, "Alice", sessions[1].Name)
	assert.Equal(t, "2024-01-02", sessions[1].Date)
	assert.Equal(t, "Bob", sessions[2].Name)
}

func TestReconstructTruncatesHours(t *testing.T) {
	// 8h20m59s = 8.3497... hours, truncated (not rounded) to 8.34
	events := []duty.Event{
		ev(1, "Alice", duty.StatusDutyOn, "2024-01-01 08:00:00"),
		ev(2, "Alice", duty.StatusDutyOff, "2024-01-01 16:20:59"),
	}

	sessions := Reconstruct(events)
	require.Len(t, sessions, 1)
	assert.Equal(t, 8.34, sessions[0].Hours)
}

func TestReconstructEmptyInput(t *testing.T) {
	assert.Empty(t, Reconstruct(nil))
	assert.Empty(t, Reconstruct([]duty.Event{}))
}
