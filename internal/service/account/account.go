// internal/service/account/account.go
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"evently-service/internal/domain/account"
	"evently-service/internal/domain/registration"
	xerrors "evently-service/internal/pkg/errors"
	"evently-service/internal/pkg/password"
)

// SessionNotifier pushes session-affecting notices to connected clients.
// Implemented by the websocket hub; clients treat the push as advisory and
// clear their local session when they receive it.
type SessionNotifier interface {
	NotifySessionRevoked(accountID uuid.UUID, reason string)
}

// AccountService owns administrative account operations. All of them sit
// behind the Admin role gate at the HTTP boundary.
type AccountService struct {
	accounts      account.Repository
	registrations registration.Repository
	notifier      SessionNotifier
	logger        *zap.Logger
}

func NewAccountService(
	accounts account.Repository,
	registrations registration.Repository,
	notifier SessionNotifier,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		accounts:      accounts,
		registrations: registrations,
		notifier:      notifier,
		logger:        logger,
	}
}

// Create creates a new account with a hashed credential. Role defaults to
// User when omitted.
func (s *AccountService) Create(ctx context.Context, req *account.CreateRequest) (*account.Account, error) {
	role := account.RoleUser
	if req.Role != "" {
		parsed, err := account.ParseRole(req.Role)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", xerrors.ErrInvalidInput, err)
		}
		role = parsed
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	acct := &account.Account{
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.accounts.Create(ctx, acct); err != nil {
		return nil, err
	}

	s.logger.Info("account created",
		zap.String("account_id", acct.ID.String()),
		zap.String("role", string(acct.Role)),
	)
	return acct.Sanitized(), nil
}

// List returns a page of accounts plus the total count.
func (s *AccountService) List(ctx context.Context, limit, offset int) ([]*account.Account, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.accounts.List(ctx, limit, offset)
}

// Get returns a single account without its credential hash.
func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	acct, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return acct.Sanitized(), nil
}

// UpdateRole replaces an account's role. The change takes effect on the
// subject's next token verification, not on tokens already in flight.
func (s *AccountService) UpdateRole(ctx context.Context, id uuid.UUID, roleValue string) error {
	role, err := account.ParseRole(roleValue)
	if err != nil {
		return fmt.Errorf("%w: %v", xerrors.ErrInvalidInput, err)
	}

	if err := s.accounts.UpdateRole(ctx, id, role); err != nil {
		return err
	}

	s.logger.Info("account role updated",
		zap.String("account_id", id.String()),
		zap.String("role", string(role)),
	)
	return nil
}

// SetActive toggles the active flag. Deactivation pushes an advisory notice
// to the account's connected clients; server-side enforcement happens on the
// next token verification regardless.
func (s *AccountService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.accounts.SetActive(ctx, id, active); err != nil {
		return err
	}

	if !active && s.notifier != nil {
		s.notifier.NotifySessionRevoked(id, "account deactivated")
	}

	s.logger.Info("account active flag updated",
		zap.String("account_id", id.String()),
		zap.Bool("is_active", active),
	)
	return nil
}

// Remove deletes an account and its dependent registrations.
func (s *AccountService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.registrations.DeleteByAccount(ctx, id); err != nil {
		return err
	}
	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.NotifySessionRevoked(id, "account removed")
	}

	s.logger.Info("account removed", zap.String("account_id", id.String()))
	return nil
}
