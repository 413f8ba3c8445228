package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger_adapter "github.com/LallyDik/airtable-estate-flow/internal/adapters/logger"
	"github.com/LallyDik/airtable-estate-flow/internal/core/domain"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: os.Stderr})
	return NewFileStore(path, logger)
}

func TestFileStore_SaveAndRestore(t *testing.T) {
	store := newTestStore(t)
	broker := domain.Broker{ID: "recU1", Name: "Dana", Email: "dana@example.com"}

	require.NoError(t, store.Save(broker))

	restored, ok, err := store.Restore()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, broker, restored)
}

func TestFileStore_RestoreWithoutFile(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.Restore()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_CorruptSessionIsDiscarded(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o755))

	t.Run("garbage json", func(t *testing.T) {
		require.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0o600))

		_, ok, err := store.Restore()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing email", func(t *testing.T) {
		require.NoError(t, os.WriteFile(store.path, []byte(`{"id":"recU1","name":"Dana"}`), 0o600))

		_, ok, err := store.Restore()
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestFileStore_Clear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(domain.Broker{ID: "recU1", Email: "dana@example.com"}))

	require.NoError(t, store.Clear())

	_, ok, err := store.Restore()
	require.NoError(t, err)
	assert.False(t, ok)

	// повторный Clear без файла не ошибка
	assert.NoError(t, store.Clear())
}
