package journal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T) *Journal {
	ts := int64(1700000000)
	j := New(filepath.Join(t.TempDir(), "zfstool_history.txt"))
	j.Now = func() time.Time {
		ts++
		return time.Unix(ts, 0)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndFind(t *testing.T) {
	j := newTestJournal(t)
	j.Record([]string{"zpool", "create", "tank", "mirror", "/dev/sda", "/dev/sdb"}, 0, nil)
	j.Record([]string{"zfs", "create", "tank/home"}, 1, nil)
	j.Record([]string{"modprobe", "zfs"}, -1, errors.New("executable file not found"))
	j.Record([]string{"zfs", "snapshot", "tank/home@2024-01-01"}, 0, nil)

	all, err := j.Find(Query{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "zfs snapshot tank/home@2024-01-01", all[0].Command)
	assert.Equal(t, "zpool", all[3].Program)

	failed, err := j.Find(Query{Failed: true})
	require.NoError(t, err)
	require.Len(t, failed, 2)
	assert.Equal(t, "modprobe zfs", failed[0].Command)
	assert.Equal(t, "executable file not found", failed[0].Error)
	assert.True(t, failed[1].Failed())

	filtered, err := j.Find(Query{Filter: "TANK/home"})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	limited, err := j.Find(Query{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "zfs", limited[0].Program)
}

func TestEntriesSkipsMalformedLines(t *testing.T) {
	j := newTestJournal(t)
	j.Record([]string{"zpool", "status"}, 0, nil)
	f, err := os.OpenFile(j.Path, os.O_APPEND|os.O_WRONLY, 0600)
	require.NoError(t, err)
	_, err = f.WriteString("not json\n{\"ts\":1}\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	entries, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"zpool", "status"}, entries[0].Argv)
}

func TestMissingFile(t *testing.T) {
	j := New(filepath.Join(t.TempDir(), "none.txt"))
	records, err := j.Find(Query{})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, j.Clear())
}

func TestClear(t *testing.T) {
	j := newTestJournal(t)
	j.Record([]string{"zpool", "status"}, 0, nil)
	require.NoError(t, j.Clear())
	records, err := j.Find(Query{})
	require.NoError(t, err)
	assert.Empty(t, records)

	j.Record([]string{"zpool", "list"}, 0, nil)
	records, err = j.Find(Query{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "zpool list", records[0].Command)
}
