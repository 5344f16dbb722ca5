package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, string) {
	path := filepath.Join(t.TempDir(), "chat_histories.json")
	store, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	return store, path
}

func TestStore_ResolveCreatesUniqueSessions(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	id1, history1 := store.Resolve("")
	id2, history2 := store.Resolve("")

	assert.NotEmpty(t, id1)
	assert.NotEmpty(t, id2)
	assert.NotEqual(t, id1, id2)
	assert.Empty(t, history1)
	assert.Empty(t, history2)
}

func TestStore_ResolveReusesKnownSession(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	id, _ := store.Resolve("")
	require.NoError(t, store.Append(id, UserTurn("hello", time.Now())))

	resolved, history := store.Resolve(id)
	assert.Equal(t, id, resolved)
	require.Len(t, history, 1)
	assert.Equal(t, "hello", history[0].Content)
}

func TestStore_ResolveUnknownIDCreatesFresh(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	id, history := store.Resolve("no-such-session")
	assert.NotEqual(t, "no-such-session", id)
	assert.Empty(t, history)
}

func TestStore_AppendPersists(t *testing.T) {
	store, path := setupTestStore(t)

	id, _ := store.Resolve("")
	now := time.Now()
	require.NoError(t, store.Append(id, UserTurn("hi", now), AssistantTurn("hello there", now)))
	require.NoError(t, store.Close())

	reloaded, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer reloaded.Close()

	history, err := reloaded.History(id)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "assistant", history[1].Role)
	assert.Equal(t, history[0].Time, history[1].Time)
}

func TestStore_RoundTrip(t *testing.T) {
	store, path := setupTestStore(t)

	now := time.Now()
	var ids []string
	for i := 0; i < 3; i++ {
		id, _ := store.Resolve("")
		require.NoError(t, store.Append(id, UserTurn("question", now), AssistantTurn("answer", now)))
		ids = append(ids, id)
	}
	require.NoError(t, store.Close())

	reloaded, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer reloaded.Close()

	original := store.List()
	restored := reloaded.List()
	require.Len(t, restored, len(original))
	for id, info := range original {
		require.Contains(t, restored, id)
		assert.Equal(t, info.MessageCount, restored[id].MessageCount)
		assert.True(t, info.Created.Equal(restored[id].Created))
	}

	for _, id := range ids {
		before, err := store.History(id)
		require.NoError(t, err)
		after, err := reloaded.History(id)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	}
}

func TestStore_List(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	id, _ := store.Resolve("")
	require.NoError(t, store.Append(id, UserTurn("one", time.Now())))

	infos := store.List()
	require.Contains(t, infos, id)
	assert.Equal(t, 1, infos[id].MessageCount)
	assert.False(t, infos[id].Created.IsZero())
}

func TestStore_EditTurn(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	id, _ := store.Resolve("")
	now := time.Now()
	require.NoError(t, store.Append(id, UserTurn("original", now), AssistantTurn("reply", now)))

	history, err := store.EditTurn(id, 0, "edited")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "edited", history[0].Content)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "reply", history[1].Content)
}

func TestStore_EditTurnErrors(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	id, _ := store.Resolve("")
	require.NoError(t, store.Append(id, UserTurn("only", time.Now())))

	_, err := store.EditTurn("unknown", 0, "x")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.EditTurn(id, 1, "x")
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = store.EditTurn(id, -1, "x")
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestStore_Delete(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	id, _ := store.Resolve("")
	require.NoError(t, store.Append(id, UserTurn("bye", time.Now())))

	require.NoError(t, store.Delete(id))
	assert.NotContains(t, store.List(), id)

	assert.ErrorIs(t, store.Delete(id), ErrNotFound)
	assert.ErrorIs(t, store.Delete("never-existed"), ErrNotFound)
}

func TestStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat_histories.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	assert.Empty(t, store.List())
}

func TestStore_SchemaInvalidFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat_histories.json")
	// Valid JSON, wrong shape.
	require.NoError(t, os.WriteFile(path, []byte(`{"abc": {"messages": "nope"}}`), 0o600))

	store, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	assert.Empty(t, store.List())
}

func TestBackup_Snapshot(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	id, _ := store.Resolve("")
	require.NoError(t, store.Append(id, UserTurn("keep me", time.Now())))

	backupDir := t.TempDir()
	backup, err := NewBackup(store, backupDir, "@hourly", zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, backup.Snapshot())

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(backupDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "keep me")
}

func TestBackup_RejectsBadSchedule(t *testing.T) {
	store, _ := setupTestStore(t)
	defer store.Close()

	backup, err := NewBackup(store, t.TempDir(), "not a schedule", zerolog.Nop())
	require.NoError(t, err)
	assert.Error(t, backup.Start())
}
