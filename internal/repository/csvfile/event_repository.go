package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
)

// timestampLayouts are the accepted duty log timestamp formats, tried in order.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// EventRepository loads headerless duty log CSV files (id, name, status,
// timestamp) matched by a glob pattern. Files are concatenated in
// filename-sorted order with no deduplication. Snapshots are cached by a
// fingerprint of the matched fileset (path + size + modtime), so reruns
// over unchanged files reuse the previous load.
type EventRepository struct {
	glob string

	mu          sync.Mutex
	fingerprint string
	snapshot    *duty.Snapshot
}

func NewEventRepository(glob string) *EventRepository {
	return &EventRepository{glob: glob}
}

// Snapshot implements duty.EventRepository.
func (r *EventRepository) Snapshot(ctx context.Context) (*duty.Snapshot, error) {
	files, err := r.matchFiles()
	if err != nil {
		return nil, err
	}

	fp := fingerprint(files)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.snapshot != nil && r.fingerprint == fp {
		return r.snapshot, nil
	}

	events, err := loadEvents(ctx, files)
	if err != nil {
		return nil, err
	}

	snap := &duty.Snapshot{
		ID:       uuid.New(),
		Files:    files,
		Events:   events,
		LoadedAt: time.Now(),
	}
	r.fingerprint = fp
	r.snapshot = snap
	return snap, nil
}

// Invalidate implements duty.EventRepository.
func (r *EventRepository) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fingerprint = ""
	r.snapshot = nil
}

// matchFiles resolves the glob and stats every match. A pattern with no
// matches is the NotFound condition: no partial results.
func (r *EventRepository) matchFiles() ([]duty.FileInfo, error) {
	paths, err := filepath.Glob(r.glob)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", r.glob, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: pattern %q", duty.ErrNoEventFiles, r.glob)
	}
	sort.Strings(paths)

	files := make([]duty.FileInfo, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", duty.ErrNoEventFiles, path)
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		files = append(files, duty.FileInfo{
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}

func fingerprint(files []duty.FileInfo) string {
	var b strings.Builder
	for _, f := range files {
		fmt.Fprintf(&b, "%s|%d|%d;", f.Path, f.Size, f.ModTime.UnixNano())
	}
	return b.String()
}

func loadEvents(ctx context.Context, files []duty.FileInfo) ([]duty.Event, error) {
	var events []duty.Event
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fileEvents, err := loadFile(file.Path)
		if err != nil {
			return nil, err
		}
		events = append(events, fileEvents...)
	}
	return events, nil
}

func loadFile(path string) ([]duty.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", duty.ErrNoEventFiles, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 4
	reader.TrimLeadingSpace = true

	var events []duty.Event
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &duty.ParseError{File: path, Line: line, Field: "row", Value: "", Err: err}
		}

		event, err := parseRow(path, line, record)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

func parseRow(path string, line int, record []string) (duty.Event, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
	if err != nil {
		return duty.Event{}, &duty.ParseError{File: path, Line: line, Field: "id", Value: record[0], Err: err}
	}

	name := strings.TrimSpace(record[1])
	if name == "" {
		return duty.Event{}, &duty.ParseError{File: path, Line: line, Field: "name", Value: record[1], Err: fmt.Errorf("name is empty")}
	}

	status, err := duty.ParseStatus(strings.TrimSpace(record[2]))
	if err != nil {
		return duty.Event{}, &duty.ParseError{File: path, Line: line, Field: "status", Value: record[2], Err: err}
	}

	ts, err := parseTimestamp(strings.TrimSpace(record[3]))
	if err != nil {
		return duty.Event{}, &duty.ParseError{File: path, Line: line, Field: "timestamp", Value: record[3], Err: err}
	}

	return duty.Event{ID: id, Name: name, Status: status, Timestamp: ts}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp format")
}
