package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"evently-service/internal/domain/account"
)

// ---- fake storage ----

type fakeStorage struct {
	data   map[string][]byte
	getErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: make(map[string][]byte)}
}

func (s *fakeStorage) Get(_ context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.data[key], nil
}

func (s *fakeStorage) Set(_ context.Context, key string, value []byte) error {
	s.data[key] = value
	return nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *fakeStorage) Clear(_ context.Context) error {
	s.data = make(map[string][]byte)
	return nil
}

// ---- helpers ----

func testUser() *account.Account {
	return &account.Account{
		ID:       uuid.New(),
		Email:    "alice@example.com",
		Username: "alice",
		Role:     account.RoleUser,
		IsActive: true,
	}
}

// ---- tests ----

func TestSnapshotBeforeHydration(t *testing.T) {
	store := NewStore(newFakeStorage())

	st, hydrated := store.Snapshot()
	require.False(t, hydrated)
	// Values read before hydration are unknown, not trustworthy "absent".
	require.Nil(t, st.User)
	require.Empty(t, st.Token)
}

func TestHydrateEmptyStorage(t *testing.T) {
	store := NewStore(newFakeStorage())
	require.NoError(t, store.Hydrate(context.Background()))

	st, hydrated := store.Snapshot()
	require.True(t, hydrated)
	require.Nil(t, st.User)
	require.Empty(t, st.Token)
}

func TestHydrateRestoresPersistedSession(t *testing.T) {
	repo := newFakeStorage()
	ctx := context.Background()
	user := testUser()
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	first := NewStore(repo)
	require.NoError(t, first.Hydrate(ctx))
	require.NoError(t, first.SetSession(ctx, user, "signed-token", expiresAt))

	// A fresh store over the same storage sees the whole triple.
	second := NewStore(repo)
	require.NoError(t, second.Hydrate(ctx))

	st, hydrated := second.Snapshot()
	require.True(t, hydrated)
	require.Equal(t, "signed-token", st.Token)
	require.True(t, expiresAt.Equal(st.ExpiresAt))
	require.NotNil(t, st.User)
	require.Equal(t, user.ID, st.User.ID)
	require.Equal(t, user.Username, st.User.Username)
}

func TestHydrateRunsOnce(t *testing.T) {
	repo := newFakeStorage()
	store := NewStore(repo)
	ctx := context.Background()

	require.NoError(t, store.Hydrate(ctx))
	require.NoError(t, store.SetSession(ctx, testUser(), "signed-token", time.Now().Add(time.Hour)))

	// A later persisted snapshot must not be re-read into memory.
	repo.data[storageKey] = []byte(`{"token":"other"}`)
	require.NoError(t, store.Hydrate(ctx))
	require.Equal(t, "signed-token", store.Token())

	select {
	case <-store.WaitHydrated():
	default:
		t.Fatal("hydration channel should be closed")
	}
}

func TestHydrateDropsCorruptSnapshot(t *testing.T) {
	repo := newFakeStorage()
	repo.data[storageKey] = []byte("{not json")

	store := NewStore(repo)
	require.NoError(t, store.Hydrate(context.Background()))

	st, hydrated := store.Snapshot()
	require.True(t, hydrated)
	require.Empty(t, st.Token)
	require.Nil(t, repo.data[storageKey])
}

func TestHydrateDropsPartialSnapshot(t *testing.T) {
	ctx := context.Background()

	// A token that lost its user must not become live state.
	repo := newFakeStorage()
	repo.data[storageKey] = []byte(`{"token":"orphan-token","expires_at":"2099-01-01T00:00:00Z"}`)

	store := NewStore(repo)
	require.NoError(t, store.Hydrate(ctx))

	st, hydrated := store.Snapshot()
	require.True(t, hydrated)
	require.Empty(t, st.Token)
	require.Nil(t, st.User)
	require.Nil(t, repo.data[storageKey])

	// Same for a user that lost its token.
	repo = newFakeStorage()
	raw, err := json.Marshal(State{User: testUser()})
	require.NoError(t, err)
	repo.data[storageKey] = raw

	store = NewStore(repo)
	require.NoError(t, store.Hydrate(ctx))

	st, _ = store.Snapshot()
	require.Nil(t, st.User)
	require.Empty(t, st.Token)
	require.Nil(t, repo.data[storageKey])
}

func TestHydrateStorageErrorStillHydrates(t *testing.T) {
	repo := newFakeStorage()
	repo.getErr = errors.New("disk exploded")

	store := NewStore(repo)
	err := store.Hydrate(context.Background())
	require.Error(t, err)

	// The store still settles so guards do not hang on pending forever.
	require.True(t, store.Hydrated())
}

func TestSetThenClearRoundTrip(t *testing.T) {
	repo := newFakeStorage()
	store := NewStore(repo)
	ctx := context.Background()
	require.NoError(t, store.Hydrate(ctx))

	before, _ := store.Snapshot()

	require.NoError(t, store.SetSession(ctx, testUser(), "signed-token", time.Now().Add(time.Hour)))
	require.NotEmpty(t, store.Token())
	require.NotNil(t, repo.data[storageKey])

	require.NoError(t, store.ClearSession(ctx))

	after, _ := store.Snapshot()
	require.Equal(t, before, after)
	require.Nil(t, repo.data[storageKey])
}
