package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)

	token := store.Create(42, "Maria Silva")
	require.NotEmpty(t, token)

	sess, ok := store.Get(token)
	require.True(t, ok)
	assert.Equal(t, int64(42), sess.UserID)
	assert.Equal(t, "Maria Silva", sess.Nome)
}

func TestTokensAreUnique(t *testing.T) {
	store := NewStore(time.Hour)
	first := store.Create(1, "a")
	second := store.Create(1, "a")
	assert.NotEqual(t, first, second)
}

func TestGetUnknownToken(t *testing.T) {
	store := NewStore(time.Hour)
	_, ok := store.Get("no-such-token")
	assert.False(t, ok)
}

func TestInvalidate(t *testing.T) {
	store := NewStore(time.Hour)
	token := store.Create(7, "João")

	store.Invalidate(token)
	_, ok := store.Get(token)
	assert.False(t, ok)

	// invalidating again is a no-op
	store.Invalidate(token)
}

func TestExpiredSessionIsRejected(t *testing.T) {
	store := NewStore(time.Minute)
	current := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return current }

	token := store.Create(9, "Ana")

	current = current.Add(2 * time.Minute)
	_, ok := store.Get(token)
	assert.False(t, ok)

	// the expired entry was dropped on access
	assert.Equal(t, 0, store.Len())
}

func TestCreatePurgesExpiredSessions(t *testing.T) {
	store := NewStore(time.Minute)
	current := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return current }

	store.Create(1, "a")
	store.Create(2, "b")
	current = current.Add(2 * time.Minute)

	live := store.Create(3, "c")
	assert.Equal(t, 1, store.Len())

	sess, ok := store.Get(live)
	require.True(t, ok)
	assert.Equal(t, int64(3), sess.UserID)
}
