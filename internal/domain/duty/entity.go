package duty

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the swipe direction of a duty event.
type Status string

const (
	StatusDutyOn  Status = "DutyOn"
	StatusDutyOff Status = "DutyOff"
)

// ParseStatus validates a raw status value from an input row.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDutyOn:
		return StatusDutyOn, nil
	case StatusDutyOff:
		return StatusDutyOff, nil
	}
	return "", fmt.Errorf("unrecognized status %q", s)
}

// Event is a single duty swipe record. Immutable once parsed.
type Event struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Date returns the calendar date (YYYY-MM-DD) the event occurred on.
func (e Event) Date() string {
	return e.Timestamp.Format("2006-01-02")
}

// Session is a reconstructed work interval for one employee on one
// calendar date: first DutyOn to last DutyOff of that date. A session
// never spans two calendar dates; multiple swipe pairs on the same date
// collapse to a single first-on/last-off interval.
type Session struct {
	Name    string    `json:"name"`
	Date    string    `json:"date"`
	DutyOn  time.Time `json:"duty_on_time"`
	DutyOff time.Time `json:"duty_off_time"`
	Hours   float64   `json:"work_hours"`
}

// FileInfo identifies one loaded input file and the state it was read in.
type FileInfo struct {
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Snapshot is an immutable view of the loaded duty log. Each distinct
// fileset state gets its own snapshot ID, which doubles as the cache key
// identity for the presentation layer.
type Snapshot struct {
	ID       uuid.UUID  `json:"id"`
	Files    []FileInfo `json:"files"`
	Events   []Event    `json:"-"`
	LoadedAt time.Time  `json:"loaded_at"`
}
