// internal/pkg/token/verifier.go
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	xerrors "evently-service/internal/pkg/errors"
)

type Verifier struct {
	secret   []byte
	issuer   string
	audience string
}

func NewVerifier(cfg Config) (*Verifier, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("token verifier requires a signing secret")
	}
	return &Verifier{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
	}, nil
}

// Verify validates the token's signature and expiry and returns its claims.
// An expired token yields xerrors.ErrTokenExpired; every other failure
// (malformed, tampered, wrong algorithm, wrong issuer/audience) yields
// xerrors.ErrTokenInvalid. Callers distinguish the two so the client can show
// "session expired" instead of a generic error.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, xerrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", xerrors.ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, xerrors.ErrTokenInvalid
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return nil, fmt.Errorf("%w: unexpected issuer", xerrors.ErrTokenInvalid)
	}
	if v.audience != "" && !hasAudience(claims.Audience, v.audience) {
		return nil, fmt.Errorf("%w: unexpected audience", xerrors.ErrTokenInvalid)
	}

	return claims, nil
}

func hasAudience(audience jwt.ClaimStrings, want string) bool {
	for _, aud := range audience {
		if aud == want {
			return true
		}
	}
	return false
}
