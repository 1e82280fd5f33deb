package vault

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandevgo/beediary/internal/service/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVault_DayPath(t *testing.T) {
	v := New("/journal")

	tests := []struct {
		date journal.DateKey
		want string
	}{
		{journal.DateKey{Year: 2025, Month: time.March, Day: 9}, "/journal/03-March/2025-03-09.md"},
		{journal.DateKey{Year: 2024, Month: time.December, Day: 31}, "/journal/12-December/2024-12-31.md"},
		{journal.DateKey{Year: 2025, Month: time.January, Day: 1}, "/journal/01-January/2025-01-01.md"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, v.DayPath(tc.date))
	}
}

func TestVault_CommitCreatesMonthDir(t *testing.T) {
	v := New(t.TempDir())
	day := journal.DateKey{Year: 2025, Month: time.July, Day: 4}

	res, err := v.Commit(day, "content\n")
	require.NoError(t, err)
	assert.Equal(t, journal.CommitWritten, res)

	info, err := os.Stat(filepath.Join(v.Root(), "07-July"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	content, err := os.ReadFile(v.DayPath(day))
	require.NoError(t, err)
	assert.Equal(t, "content\n", string(content))
}

func TestVault_CommitSkipsExisting(t *testing.T) {
	v := New(t.TempDir())
	day := journal.DateKey{Year: 2025, Month: time.July, Day: 4}

	res, err := v.Commit(day, "first\n")
	require.NoError(t, err)
	require.Equal(t, journal.CommitWritten, res)

	res, err = v.Commit(day, "second\n")
	require.NoError(t, err)
	assert.Equal(t, journal.CommitSkipped, res)

	content, err := os.ReadFile(v.DayPath(day))
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(content))
}

func TestVault_CommitSkipsForeignFile(t *testing.T) {
	v := New(t.TempDir())
	day := journal.DateKey{Year: 2025, Month: time.July, Day: 4}

	// A file put there by hand counts the same as one we wrote
	path := v.DayPath(day)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("hand written\n"), 0644))

	res, err := v.Commit(day, "generated\n")
	require.NoError(t, err)
	assert.Equal(t, journal.CommitSkipped, res)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hand written\n", string(content))
}

func TestVault_Exists(t *testing.T) {
	v := New(t.TempDir())
	day := journal.DateKey{Year: 2025, Month: time.July, Day: 4}

	assert.False(t, v.Exists(day))

	_, err := v.Commit(day, "content\n")
	require.NoError(t, err)

	assert.True(t, v.Exists(day))

	// removal outside the process is observed on the next probe
	require.NoError(t, os.Remove(v.DayPath(day)))
	assert.False(t, v.Exists(day))
}

func TestVault_NoTempLeftovers(t *testing.T) {
	v := New(t.TempDir())
	day := journal.DateKey{Year: 2025, Month: time.July, Day: 4}

	_, err := v.Commit(day, "content\n")
	require.NoError(t, err)
	_, err = v.Commit(day, "again\n")
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(v.Root(), "07-July"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2025-07-04.md", entries[0].Name())
}
