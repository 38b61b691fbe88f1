package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func hydratedStore(t *testing.T) (*Store, *fakeStorage) {
	t.Helper()
	repo := newFakeStorage()
	store := NewStore(repo)
	require.NoError(t, store.Hydrate(context.Background()))
	return store, repo
}

func TestGuardPendingWhileUnhydrated(t *testing.T) {
	repo := newFakeStorage()
	store := NewStore(repo)
	guard := NewGuard(store)

	decision, err := guard.Evaluate(context.Background(), time.Now())
	require.NoError(t, err)
	require.Equal(t, DecisionPending, decision)

	// Even a persisted session changes nothing before hydration: no redirect
	// may fire while the state is unknown.
	repo.data[storageKey] = []byte(`{"token":"signed-token"}`)
	decision, err = guard.Evaluate(context.Background(), time.Now())
	require.NoError(t, err)
	require.Equal(t, DecisionPending, decision)
}

func TestGuardLoginWhenNoSession(t *testing.T) {
	store, _ := hydratedStore(t)
	guard := NewGuard(store)

	decision, err := guard.Evaluate(context.Background(), time.Now())
	require.NoError(t, err)
	require.Equal(t, DecisionLogin, decision)
}

func TestGuardLoginWhenExpiredAndClearsSession(t *testing.T) {
	store, repo := hydratedStore(t)
	guard := NewGuard(store)
	ctx := context.Background()

	require.NoError(t, store.SetSession(ctx, testUser(), "signed-token", time.Now().Add(-time.Minute)))

	decision, err := guard.Evaluate(ctx, time.Now())
	require.NoError(t, err)
	require.Equal(t, DecisionLogin, decision)

	// The stale session is gone both in memory and on disk.
	require.Empty(t, store.Token())
	require.Nil(t, repo.data[storageKey])
}

func TestGuardBlockedWhenDeactivated(t *testing.T) {
	store, _ := hydratedStore(t)
	guard := NewGuard(store)
	ctx := context.Background()

	user := testUser()
	user.IsActive = false
	require.NoError(t, store.SetSession(ctx, user, "signed-token", time.Now().Add(time.Hour)))

	decision, err := guard.Evaluate(ctx, time.Now())
	require.NoError(t, err)
	require.Equal(t, DecisionBlocked, decision)

	// Blocked is not a logout: the session stays so the notice persists.
	require.NotEmpty(t, store.Token())
}

func TestGuardAllow(t *testing.T) {
	store, _ := hydratedStore(t)
	guard := NewGuard(store)
	ctx := context.Background()

	require.NoError(t, store.SetSession(ctx, testUser(), "signed-token", time.Now().Add(time.Hour)))

	decision, err := guard.Evaluate(ctx, time.Now())
	require.NoError(t, err)
	require.Equal(t, DecisionAllow, decision)
	require.NotEmpty(t, store.Token())
}

func TestDecisionString(t *testing.T) {
	require.Equal(t, "pending", DecisionPending.String())
	require.Equal(t, "login", DecisionLogin.String())
	require.Equal(t, "blocked", DecisionBlocked.String())
	require.Equal(t, "allow", DecisionAllow.String())
}
