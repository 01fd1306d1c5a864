package duty

import (
	"math"
	"sort"
	"time"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
)

type dayKey struct {
	name string
	date string
}

type dayPair struct {
	firstOn time.Time
	lastOff time.Time
	hasOn   bool
	hasOff  bool
}

// Reconstruct derives work sessions from the raw event sequence. Events
// are grouped by (employee, calendar date); the earliest DutyOn and the
// latest DutyOff of a date form one session. Dates with only one side
// produce no session. Multiple swipe pairs on a date collapse to a
// single first-on/last-off interval, discarding intermediate pairs.
func Reconstruct(events []duty.Event) []duty.Session {
	pairs := make(map[dayKey]*dayPair)
	for _, e := range events {
		key := dayKey{name: e.Name, date: e.Date()}
		p, ok := pairs[key]
		if !ok {
			p = &dayPair{}
			pairs[key] = p
		}
		switch e.Status {
		case duty.StatusDutyOn:
			if !p.hasOn || e.Timestamp.Before(p.firstOn) {
				p.firstOn = e.Timestamp
				p.hasOn = true
			}
		case duty.StatusDutyOff:
			if !p.hasOff || e.Timestamp.After(p.lastOff) {
				p.lastOff = e.Timestamp
				p.hasOff = true
			}
		}
	}

	sessions := make([]duty.Session, 0, len(pairs))
	for key, p := range pairs {
		if !p.hasOn || !p.hasOff {
			continue
		}
		sessions = append(sessions, duty.Session{
			Name:    key.name,
			Date:    key.date,
			DutyOn:  p.firstOn,
			DutyOff: p.lastOff,
			Hours:   truncHours(p.lastOff.Sub(p.firstOn)),
		})
	}

	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].Name != sessions[j].Name {
			return sessions[i].Name < sessions[j].Name
		}
		return sessions[i].Date < sessions[j].Date
	})
	return sessions
}

// truncHours converts a duration to hours truncated to two decimals.
func truncHours(d time.Duration) float64 {
	return math.Trunc(d.Hours()*100) / 100
}
