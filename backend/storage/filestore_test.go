package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhuvantej123/skilltrack-bot/backend/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStoreSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	p := models.NewProfile("alice")
	p.AddGoal("Python", models.FlatRoadmap([]string{"Syntax", "Functions"}))
	p.MarkCompleted("Python", "Syntax")
	p.AppendLog(models.LogEntry{Date: "2026-08-29", Goals: []string{"Python"}, Entry: "syntax day"})

	require.NoError(t, store.Save("alice", p))

	loaded, err := store.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestFileStoreLoadMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load("ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	// Read paths substitute a default instead of erroring.
	p, err := LoadOrDefault(store, "ghost")
	require.NoError(t, err)
	assert.Equal(t, "ghost", p.Username)
	assert.Empty(t, p.Goals)
}

func TestFileStoreList(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("bob", models.NewProfile("bob")))
	require.NoError(t, store.Save("alice", models.NewProfile("alice")))

	// Stray non-JSON files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, "notes.txt"), []byte("x"), 0o644))

	usernames, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, usernames)
}

func TestFileStoreCorruptFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("alice", models.NewProfile("alice")))
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, "broken.json"), []byte("{truncated"), 0o644))

	// The broken entry still enumerates but fails to load; callers like the
	// leaderboard skip it instead of failing the whole scan.
	usernames, err := store.List()
	require.NoError(t, err)
	assert.Contains(t, usernames, "broken")

	_, err = store.Load("broken")
	assert.Error(t, err)

	_, err = store.Load("alice")
	assert.NoError(t, err)
}

func TestSanitizeUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice", "alice"},
		{"  bob  ", "bob"},
		{"mary_jane-99", "mary_jane-99"},
		{"../../etc/passwd", "etcpasswd"},
		{"Ünïcødé!", "ncd"},
		{"<>", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeUsername(tt.in), "input %q", tt.in)
	}
}
