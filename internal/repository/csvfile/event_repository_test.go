package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSnapshotLoadsEvents(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "log.csv",
		"1,Alice,DutyOn,2024-01-01 08:00:00\n"+
			"2,Alice,DutyOff,2024-01-01 17:00:00\n")

	repo := NewEventRepository(filepath.Join(dir, "*.csv"))
	snap, err := repo.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Events, 2)
	assert.Equal(t, int64(1), snap.Events[0].ID)
	assert.Equal(t, "Alice", snap.Events[0].Name)
	assert.Equal(t, duty.StatusDutyOn, snap.Events[0].Status)
	assert.Equal(t, "2024-01-01", snap.Events[0].Date())
	assert.Equal(t, duty.StatusDutyOff, snap.Events[1].Status)
	require.Len(t, snap.Files, 1)
}

func TestSnapshotConcatenatesInFilenameOrder(t *testing.T) {
	dir := t.TempDir()
	// Written out of order on purpose
	writeLog(t, dir, "b.csv", "2,Bob,DutyOn,2024-01-02 09:00:00\n")
	writeLog(t, dir, "a.csv", "1,Alice,DutyOn,2024-01-01 08:00:00\n")

	repo := NewEventRepository(filepath.Join(dir, "*.csv"))
	snap, err := repo.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Events, 2)
	assert.Equal(t, "Alice", snap.Events[0].Name)
	assert.Equal(t, "Bob", snap.Events[1].Name)
}

func TestSnapshotAcceptsAlternateTimestampLayouts(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "log.csv",
		"1,Alice,DutyOn,2024-01-01T08:00:00\n"+
			"2,Alice,DutyOff,2024-01-01T17:00:00Z\n")

	repo := NewEventRepository(filepath.Join(dir, "*.csv"))
	snap, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Events, 2)
	assert.Equal(t, 8, snap.Events[0].Timestamp.Hour())
	assert.Equal(t, 17, snap.Events[1].Timestamp.Hour())
}

func TestSnapshotNoMatches(t *testing.T) {
	repo := NewEventRepository(filepath.Join(t.TempDir(), "*.csv"))
	_, err := repo.Snapshot(context.Background())
	require.ErrorIs(t, err, duty.ErrNoEventFiles)
}

func TestSnapshotParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		row   string
		field string
	}{
		{"bad id", "abc,Alice,DutyOn,2024-01-01 08:00:00", "id"},
		{"empty name", "1, ,DutyOn,2024-01-01 08:00:00", "name"},
		{"unknown status", "1,Alice,Working,2024-01-01 08:00:00", "status"},
		{"bad timestamp", "1,Alice,DutyOn,01/01/2024 08:00", "timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeLog(t, dir, "log.csv", tt.row+"\n")

			repo := NewEventRepository(filepath.Join(dir, "*.csv"))
			_, err := repo.Snapshot(context.Background())
			require.Error(t, err)

			var perr *duty.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.field, perr.Field)
			assert.Equal(t, 1, perr.Line)
		})
	}
}

func TestSnapshotWrongColumnCount(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "log.csv", "1,Alice,DutyOn\n")

	repo := NewEventRepository(filepath.Join(dir, "*.csv"))
	_, err := repo.Snapshot(context.Background())

	var perr *duty.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "row", perr.Field)
}

func TestSnapshotCachesUnchangedFileset(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "log.csv", "1,Alice,DutyOn,2024-01-01 08:00:00\n")

	repo := NewEventRepository(filepath.Join(dir, "*.csv"))
	first, err := repo.Snapshot(context.Background())
	require.NoError(t, err)

	second, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestSnapshotReloadsAfterInvalidate(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "log.csv", "1,Alice,DutyOn,2024-01-01 08:00:00\n")

	repo := NewEventRepository(filepath.Join(dir, "*.csv"))
	first, err := repo.Snapshot(context.Background())
	require.NoError(t, err)

	repo.Invalidate()
	second, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Events, second.Events)
}

func TestSnapshotReloadsOnFilesetChange(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "a.csv", "1,Alice,DutyOn,2024-01-01 08:00:00\n")

	repo := NewEventRepository(filepath.Join(dir, "*.csv"))
	first, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Events, 1)

	writeLog(t, dir, "b.csv", "2,Bob,DutyOn,2024-01-02 09:00:00\n")
	second, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, second.Events, 2)
}

func TestSnapshotCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "log.csv", "1,Alice,DutyOn,2024-01-01 08:00:00\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewEventRepository(filepath.Join(dir, "*.csv"))
	_, err := repo.Snapshot(ctx)
	require.True(t, errors.Is(err, context.Canceled))
}
