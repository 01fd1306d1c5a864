package duty

import "context"

// EventRepository loads the duty log into an immutable snapshot.
// Implementations cache by input-file fingerprint; Invalidate drops the
// cached snapshot so the next Snapshot call re-reads the fileset.
type EventRepository interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
	Invalidate()
}
