// internal/client/session/store.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"evently-service/internal/client/storage"
	"evently-service/internal/domain/account"
)

// storageKey holds the whole session triple as one blob so a reload either
// sees all three fields or none of them.
const storageKey = "session"

// State is the client session triple. A zero State means "logged out".
type State struct {
	User      *account.Account `json:"user,omitempty"`
	Token     string           `json:"token,omitempty"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// Store owns the client session state and mirrors every mutation into
// durable storage. Readers must check Hydrated before trusting a zero State:
// before hydration completes the session is unknown, not absent.
type Store struct {
	storage storage.Repository

	mu    sync.Mutex
	state State

	hydrated   bool
	hydrateOne sync.Once
	hydratedCh chan struct{}
}

func NewStore(repo storage.Repository) *Store {
	return &Store{
		storage:    repo,
		hydratedCh: make(chan struct{}),
	}
}

// Hydrate loads the persisted snapshot, if any, and marks the store hydrated.
// It completes exactly once; repeated calls are no-ops. A corrupt or missing
// snapshot hydrates to the logged-out state rather than failing startup.
func (s *Store) Hydrate(ctx context.Context) error {
	var err error
	s.hydrateOne.Do(func() {
		defer func() {
			s.mu.Lock()
			s.hydrated = true
			s.mu.Unlock()
			close(s.hydratedCh)
		}()

		var raw []byte
		raw, err = s.storage.Get(ctx, storageKey)
		if err != nil {
			err = fmt.Errorf("failed to load session: %w", err)
			return
		}
		if raw == nil {
			return
		}

		var st State
		if jsonErr := json.Unmarshal(raw, &st); jsonErr != nil {
			// Unreadable snapshot, drop it and start logged out.
			_ = s.storage.Delete(ctx, storageKey)
			return
		}

		// User and token are written together or not at all; a snapshot
		// carrying one without the other cannot have come from SetSession.
		if (st.User == nil) != (st.Token == "") {
			_ = s.storage.Delete(ctx, storageKey)
			return
		}

		s.mu.Lock()
		s.state = st
		s.mu.Unlock()
	})
	return err
}

// Hydrated reports whether the persisted snapshot has been loaded.
func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// WaitHydrated returns a channel closed once hydration has completed.
func (s *Store) WaitHydrated() <-chan struct{} {
	return s.hydratedCh
}

// SetSession replaces the whole session triple, persisting it before the
// in-memory state changes so a crash never leaves memory ahead of disk.
func (s *Store) SetSession(ctx context.Context, user *account.Account, token string, expiresAt time.Time) error {
	st := State{User: user, Token: token, ExpiresAt: expiresAt}

	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.storage.Set(ctx, storageKey, raw); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	return nil
}

// ClearSession resets the store to the empty logged-out state.
func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.storage.Delete(ctx, storageKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()
	return nil
}

// Snapshot returns the current state and whether hydration has completed.
func (s *Store) Snapshot() (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.hydrated
}

// Token returns the current session token, empty when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}
