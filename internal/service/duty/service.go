package duty

import (
	"context"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type DutyServiceImpl struct {
	repo duty.EventRepository
}

func NewDutyService(repo duty.EventRepository) duty.DutyService {
	return &DutyServiceImpl{repo: repo}
}

// Snapshot implements duty.DutyService.
func (s *DutyServiceImpl) Snapshot(ctx context.Context) (*duty.Snapshot, error) {
	return s.repo.Snapshot(ctx)
}

// Refresh implements duty.DutyService.
func (s *DutyServiceImpl) Refresh(ctx context.Context) (*duty.Snapshot, error) {
	s.repo.Invalidate()
	return s.repo.Snapshot(ctx)
}

// FilteredEvents implements duty.DutyService.
func (s *DutyServiceImpl) FilteredEvents(ctx context.Context, filter duty.Filter) ([]duty.Event, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return filterEvents(snap.Events, filter), nil
}

// ListEvents implements duty.DutyService.
func (s *DutyServiceImpl) ListEvents(ctx context.Context, filter duty.EventFilter) (duty.ListEventsResponse, error) {
	events, err := s.FilteredEvents(ctx, filter.Filter)
	if err != nil {
		return duty.ListEventsResponse{}, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	total := len(events)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return duty.ListEventsResponse{
		Events:     events[start:end],
		Page:       page,
		Limit:      limit,
		TotalItems: int64(total),
		TotalPages: totalPages,
	}, nil
}

// ListSessions implements duty.DutyService. The status filter is ignored
// here: reconstruction needs both sides of a pair.
func (s *DutyServiceImpl) ListSessions(ctx context.Context, filter duty.Filter) ([]duty.Session, error) {
	filter.Status = ""
	events, err := s.FilteredEvents(ctx, filter)
	if err != nil {
		return nil, err
	}
	return Reconstruct(events), nil
}

// filterEvents applies date range, employee and status restrictions.
// Date bounds compare on the event's calendar date, inclusive.
func filterEvents(events []duty.Event, filter duty.Filter) []duty.Event {
	var names map[string]struct{}
	if len(filter.Employees) > 0 {
		names = make(map[string]struct{}, len(filter.Employees))
		for _, n := range filter.Employees {
			names[n] = struct{}{}
		}
	}

	filtered := make([]duty.Event, 0, len(events))
	for _, e := range events {
		date := e.Date()
		if filter.From != "" && date < filter.From {
			continue
		}
		if filter.To != "" && date > filter.To {
			continue
		}
		if names != nil {
			if _, ok := names[e.Name]; !ok {
				continue
			}
		}
		if filter.Status != "" && string(e.Status) != filter.Status {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}
