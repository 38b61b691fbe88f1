// internal/service/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"evently-service/internal/domain/account"
	xerrors "evently-service/internal/pkg/errors"
	"evently-service/internal/pkg/password"
	"evently-service/internal/pkg/ratelimit"
	"evently-service/internal/pkg/token"
)

// AuthService owns login and the server-side token gate. Every privileged
// operation in the API goes through VerifyToken before doing any work.
type AuthService struct {
	accounts    account.Repository
	issuer      *token.Issuer
	verifier    *token.Verifier
	rateLimiter *ratelimit.RateLimiter
	logger      *zap.Logger
}

func NewAuthService(
	accounts account.Repository,
	issuer *token.Issuer,
	verifier *token.Verifier,
	rateLimiter *ratelimit.RateLimiter,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		accounts:    accounts,
		issuer:      issuer,
		verifier:    verifier,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// ========== Login ==========

// Login authenticates an account by email or username plus password and
// issues a session token. Unknown identifier, inactive account and password
// mismatch are deliberately indistinguishable to the caller; the specific
// deactivation message is only surfaced on authenticated token checks.
func (s *AuthService) Login(ctx context.Context, req *account.LoginRequest) (*account.LoginResponse, error) {
	if req.Identifier() == "" {
		return nil, fmt.Errorf("%w: missing email or username", xerrors.ErrInvalidInput)
	}

	if s.rateLimiter != nil {
		allowed, _, err := s.rateLimiter.CheckLoginAttempt(ctx, req.IPAddress, req.Identifier())
		if err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}
		if !allowed {
			return nil, xerrors.ErrRateLimited
		}
	}

	acct, err := s.findByIdentifier(ctx, req)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !acct.IsActive {
		return nil, xerrors.ErrInvalidCredentials
	}

	if !password.Verify(req.Password, acct.PasswordHash) {
		return nil, xerrors.ErrInvalidCredentials
	}

	signed, expiresAt, err := s.issuer.Issue(acct)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if s.rateLimiter != nil {
		if err := s.rateLimiter.ResetLoginAttempts(ctx, req.IPAddress, req.Identifier()); err != nil {
			s.logger.Warn("failed to reset login attempts", zap.Error(err))
		}
	}

	s.logger.Info("account logged in",
		zap.String("account_id", acct.ID.String()),
		zap.String("username", acct.Username),
	)

	return &account.LoginResponse{
		Token:     signed,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      acct.Sanitized(),
	}, nil
}

func (s *AuthService) findByIdentifier(ctx context.Context, req *account.LoginRequest) (*account.Account, error) {
	if req.Email != "" {
		return s.accounts.FindByEmail(ctx, req.Email)
	}
	return s.accounts.FindByUsername(ctx, req.Username)
}

// ========== Token Gate ==========

// VerifyToken validates a presented token and enforces the allowed role set.
//
// The account is re-resolved from storage on every call: token claims for
// role and active state may be stale relative to admin actions taken after
// issuance, so a cryptographically valid token is not sufficient on its own.
//
// Rejections map to exactly one sentinel: ErrTokenExpired, ErrTokenInvalid,
// ErrAccountNotFound, ErrAccountDeactivated (all unauthenticated), or
// ErrForbidden (authenticated but role not allowed). On success the freshly
// loaded account is returned without its credential hash.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string, allowed account.Roles) (*account.Account, error) {
	claims, err := s.verifier.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	acct, err := s.accounts.FindByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	// Deactivation wins over role mismatch: a deactivated admin gets the
	// deactivation message, not a permission error.
	if !acct.IsActive {
		return nil, xerrors.ErrAccountDeactivated
	}

	if len(allowed) > 0 && !acct.Roles().Intersects(allowed) {
		return nil, xerrors.ErrForbidden
	}

	return acct.Sanitized(), nil
}

// ========== Admin Bootstrap ==========

// EnsureAdminExists creates the initial admin account if no account with the
// given email exists yet. Normal account creation is admin-only; this is the
// one bootstrap exception.
func (s *AuthService) EnsureAdminExists(ctx context.Context, email, username, plainPassword, firstName, lastName string) error {
	_, err := s.accounts.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, xerrors.ErrNotFound) {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return err
	}

	admin := &account.Account{
		Email:        email,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         account.RoleAdmin,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.accounts.Create(ctx, admin); err != nil {
		if errors.Is(err, xerrors.ErrDuplicateEntry) {
			// Lost a race with a concurrent bootstrap, which is fine.
			return nil
		}
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	s.logger.Info("admin account created", zap.String("email", email))
	return nil
}
