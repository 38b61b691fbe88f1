// internal/client/session/guard.go
package session

import (
	"context"
	"time"
)

// Decision is the guard's verdict for protected client surfaces.
type Decision int

const (
	// DecisionPending means hydration has not finished; show a loading
	// indicator and do nothing else.
	DecisionPending Decision = iota
	// DecisionLogin means there is no usable session; send the user to the
	// login flow.
	DecisionLogin
	// DecisionBlocked means the cached account is deactivated; block with
	// BlockedNotice instead of redirecting.
	DecisionBlocked
	// DecisionAllow means the protected content may proceed.
	DecisionAllow
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionLogin:
		return "login"
	case DecisionBlocked:
		return "blocked"
	case DecisionAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// BlockedNotice is shown for deactivated accounts. It must stay distinct
// from the logged-out path so deactivation is never mistaken for an expired
// session.
const BlockedNotice = "your account has been deactivated, please contact an administrator"

// Guard is the client-side authorization boundary. It never calls the
// server: it trusts the locally stored expiry and the account snapshot
// captured at login, which may drift from server truth until the next
// privileged call is rejected.
type Guard struct {
	store *Store
}

func NewGuard(store *Store) *Guard {
	return &Guard{store: store}
}

// Evaluate decides what a protected surface should do right now. While the
// store is unhydrated it always returns DecisionPending, whatever the
// underlying values, so a reload never flickers through the login flow.
// A missing or locally expired session yields DecisionLogin and clears the
// stored state as a side effect.
func (g *Guard) Evaluate(ctx context.Context, now time.Time) (Decision, error) {
	st, hydrated := g.store.Snapshot()
	if !hydrated {
		return DecisionPending, nil
	}

	if st.User == nil || st.Token == "" || !st.ExpiresAt.After(now) {
		if err := g.store.ClearSession(ctx); err != nil {
			return DecisionLogin, err
		}
		return DecisionLogin, nil
	}

	if !st.User.IsActive {
		return DecisionBlocked, nil
	}

	return DecisionAllow, nil
}
