// internal/pkg/token/issuer.go
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	"evently-service/internal/domain/account"
)

// SessionTTL is the fixed lifetime of a session token.
const SessionTTL = 24 * time.Hour

// Config holds the signing parameters supplied by the environment.
// A zero TTL falls back to SessionTTL; a negative TTL mints tokens that
// are already expired.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

type Issuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewIssuer(cfg Config) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("token issuer requires a signing secret")
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = SessionTTL
	}
	return &Issuer{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      ttl,
	}, nil
}

// Issue mints a signed session token for the given account. The ULID jti
// makes two tokens for the same subject bit-distinct even when issued within
// the same second. Returns the signed string and its absolute expiry.
func (i *Issuer) Issue(a *account.Account) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(i.ttl)

	claims := &Claims{
		SubjectID: a.ID,
		Email:     a.Email,
		Username:  a.Username,
		Roles:     a.Roles(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   a.ID.String(),
			Audience:  jwt.ClaimStrings{i.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        ulid.Make().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
