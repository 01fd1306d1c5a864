package duty

import "context"

// DutyService defines snapshot-backed operations on the duty log.
type DutyService interface {
	// Snapshot returns the current loaded snapshot, loading it on first use.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// Refresh invalidates the cached snapshot and reloads the fileset.
	Refresh(ctx context.Context) (*Snapshot, error)

	// ListEvents retrieves raw events with filters and paging.
	ListEvents(ctx context.Context, filter EventFilter) (ListEventsResponse, error)

	// ListSessions reconstructs work sessions from the filtered event set.
	ListSessions(ctx context.Context, filter Filter) ([]Session, error)

	// FilteredEvents returns the filtered event slice for downstream
	// aggregation. The returned slice must not be mutated.
	FilteredEvents(ctx context.Context, filter Filter) ([]Event, error)
}
