// internal/pkg/token/claims.go
package token

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"evently-service/internal/domain/account"
)

// Claims is the signed claim set carried by a session token. Roles decodes
// both the legacy scalar form and the array form into a normalized set.
type Claims struct {
	SubjectID uuid.UUID     `json:"subject_id"`
	Email     string        `json:"email"`
	Username  string        `json:"username"`
	Roles     account.Roles `json:"roles"`
	jwt.RegisteredClaims
}
