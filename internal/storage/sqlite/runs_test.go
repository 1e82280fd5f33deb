package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandevgo/beediary/internal/service/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRuns(t *testing.T) *Runs {
	t.Helper()
	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "beediary.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRuns(db)
}

func TestRuns_RecordAndRecent(t *testing.T) {
	runs := newTestRuns(t)
	ctx := context.Background()

	started := time.Date(2025, time.March, 9, 10, 0, 0, 0, time.UTC)
	summary := &journal.Summary{
		StartedAt:         started,
		FinishedAt:        started.Add(3 * time.Second),
		Written:           []string{"2025-03-07", "2025-03-08"},
		Skipped:           []string{"2025-03-06"},
		Failed:            map[string]string{"2025-03-05": "permission denied"},
		DroppedRecords:    1,
		ConversationPages: 4,
		FactPages:         2,
	}

	require.NoError(t, runs.Record(ctx, summary, nil))

	rows, err := runs.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 2, row.Written)
	assert.Equal(t, 1, row.Skipped)
	assert.Equal(t, 1, row.Failed)
	assert.Equal(t, 1, row.Dropped)
	assert.Equal(t, 6, row.Pages)
	assert.Empty(t, row.Error)
	assert.Contains(t, row.Details, "2025-03-07")
	assert.Contains(t, row.Details, "permission denied")
	assert.True(t, row.StartedAt.Equal(started))
}

func TestRuns_RecordFailedRun(t *testing.T) {
	runs := newTestRuns(t)
	ctx := context.Background()

	summary := &journal.Summary{
		StartedAt:  time.Now(),
		FinishedAt: time.Now(),
		Failed:     map[string]string{},
	}

	require.NoError(t, runs.Record(ctx, summary, errors.New("conversations page 3: connection reset")))

	rows, err := runs.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, rows[0].Error, "connection reset")
}

func TestRuns_RecentOrderAndLimit(t *testing.T) {
	runs := newTestRuns(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		summary := &journal.Summary{
			StartedAt:  time.Now(),
			FinishedAt: time.Now(),
			Written:    make([]string, i),
			Failed:     map[string]string{},
		}
		require.NoError(t, runs.Record(ctx, summary, nil))
	}

	rows, err := runs.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// newest first
	assert.Equal(t, 4, rows[0].Written)
	assert.Equal(t, 3, rows[1].Written)
	assert.Equal(t, 2, rows[2].Written)
}
