// internal/client/cli/commands.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"evently-service/internal/client/session"
	xerrors "evently-service/internal/pkg/errors"
)

// ensureAllowed runs the guard before a protected command. While hydration is
// still in flight it waits instead of guessing, so a fresh start never
// bounces a restored session through the login prompt.
func (a *App) ensureAllowed(ctx context.Context) bool {
	for {
		decision, err := a.guard.Evaluate(ctx, time.Now())
		if err != nil {
			fmt.Fprintf(a.out, "warning: %v\n", err)
		}

		switch decision {
		case session.DecisionPending:
			fmt.Fprintln(a.out, "restoring session...")
			select {
			case <-a.store.WaitHydrated():
				continue
			case <-ctx.Done():
				return false
			}
		case session.DecisionLogin:
			fmt.Fprintln(a.out, "you are not logged in, run 'login' first")
			return false
		case session.DecisionBlocked:
			fmt.Fprintln(a.out, session.BlockedNotice)
			return false
		default:
			return true
		}
	}
}

// handleSessionError clears the stored session when the server rejects the
// token, mirroring what the guard would decide on the next pass.
func (a *App) handleSessionError(ctx context.Context, err error) bool {
	switch {
	case errors.Is(err, xerrors.ErrTokenExpired):
		fmt.Fprintln(a.out, "session expired, please log in again")
	case errors.Is(err, xerrors.ErrAccountDeactivated):
		fmt.Fprintln(a.out, session.BlockedNotice)
	case errors.Is(err, xerrors.ErrTokenInvalid), errors.Is(err, xerrors.ErrAccountNotFound):
		fmt.Fprintln(a.out, "session is no longer valid, please log in again")
	default:
		return false
	}

	if clearErr := a.store.ClearSession(ctx); clearErr != nil {
		fmt.Fprintf(a.out, "warning: %v\n", clearErr)
	}
	return true
}

func (a *App) cmdLogin(ctx context.Context) {
	identifier, err := a.promptLine("email or username")
	if err != nil {
		return
	}
	password, err := a.promptPassword("password")
	if err != nil {
		return
	}

	resp, err := a.api.Login(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, xerrors.ErrRateLimited) {
			fmt.Fprintln(a.out, "too many attempts, try again later")
			return
		}
		fmt.Fprintln(a.out, "login failed: invalid credentials")
		return
	}

	if err := a.store.SetSession(ctx, resp.User, resp.Token, resp.ExpiresAt); err != nil {
		fmt.Fprintf(a.out, "login succeeded but session could not be saved: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "logged in as %s (%s)\n", resp.User.Username, resp.User.Role)
}

func (a *App) cmdLogout(ctx context.Context) {
	if err := a.store.ClearSession(ctx); err != nil {
		fmt.Fprintf(a.out, "logout failed: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "logged out")
}

func (a *App) cmdWhoami(ctx context.Context) {
	if !a.ensureAllowed(ctx) {
		return
	}

	acct, err := a.api.Me(ctx, a.store.Token())
	if err != nil {
		if !a.handleSessionError(ctx, err) {
			fmt.Fprintf(a.out, "request failed: %v\n", err)
		}
		return
	}

	fmt.Fprintf(a.out, "%s <%s> role=%s active=%t\n", acct.FullName(), acct.Email, acct.Role, acct.IsActive)
}

func (a *App) cmdEvents(ctx context.Context) {
	if !a.ensureAllowed(ctx) {
		return
	}

	events, err := a.api.ListEvents(ctx, a.store.Token(), "")
	if err != nil {
		if !a.handleSessionError(ctx, err) {
			fmt.Fprintf(a.out, "request failed: %v\n", err)
		}
		return
	}

	if len(events) == 0 {
		fmt.Fprintln(a.out, "no events")
		return
	}
	for _, evt := range events {
		fmt.Fprintf(a.out, "%s  %s  %s\n", evt.ID, evt.StartTime.Format("2006-01-02 15:04"), evt.Title)
	}
}

func (a *App) cmdRegistrations(ctx context.Context) {
	if !a.ensureAllowed(ctx) {
		return
	}

	regs, err := a.api.MyRegistrations(ctx, a.store.Token())
	if err != nil {
		if !a.handleSessionError(ctx, err) {
			fmt.Fprintf(a.out, "request failed: %v\n", err)
		}
		return
	}

	if len(regs) == 0 {
		fmt.Fprintln(a.out, "no registrations")
		return
	}
	for _, reg := range regs {
		title := "(event removed)"
		if reg.Event != nil {
			title = reg.Event.Title
		}
		fmt.Fprintf(a.out, "%s  %-10s  %s\n", reg.ID, reg.Status, title)
	}
}
