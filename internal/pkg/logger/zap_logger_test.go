package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLogReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewIsolatedLogger(path)

	l.Info("auth", "user registered", map[string]interface{}{"username": "ivan"})
	l.Warn("catalog", "slow query", nil)
	l.Error("feed", "nats reconnect", map[string]interface{}{"attempt": 3})
	_ = l.Sync()

	t.Run("Newest First With Paging", func(t *testing.T) {
		entries, err := l.GetLogs("", 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "nats reconnect", entries[0].Message)
		assert.Equal(t, "user registered", entries[2].Message)

		page, err := l.GetLogs("", 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "slow query", page[0].Message)
	})

	t.Run("Level Filter", func(t *testing.T) {
		entries, err := l.GetLogs("WARN", 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "catalog", entries[0].Module)
	})

	t.Run("Lookup By Id", func(t *testing.T) {
		entries, err := l.GetLogs("", 10, 0)
		require.NoError(t, err)
		require.NotEmpty(t, entries)
		require.NotEmpty(t, entries[0].Id)

		entry, err := l.GetLogById(entries[0].Id)
		require.NoError(t, err)
		assert.Equal(t, entries[0].Message, entry.Message)

		_, err = l.GetLogById("no-such-id")
		assert.Error(t, err)
	})

	t.Run("Missing File Is Empty", func(t *testing.T) {
		ghost := &ZapLogger{filePath: filepath.Join(t.TempDir(), "absent.log")}
		entries, err := ghost.GetLogs("", 10, 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
