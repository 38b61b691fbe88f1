// internal/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"evently-service/internal/domain/account"
	xerrors "evently-service/internal/pkg/errors"
	"evently-service/internal/pkg/response"
	authService "evently-service/internal/service/auth"
)

const (
	ctxAccountKey = "account"

	// DeactivatedMessage is the specific notice shown for deactivated
	// accounts. It must never collapse into the generic unauthorized message.
	DeactivatedMessage = "your account has been deactivated, please contact an administrator"
)

type AuthMiddleware struct {
	authService *authService.AuthService
}

func NewAuthMiddleware(svc *authService.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: svc}
}

// RequireRoles gates a route on a valid session token whose account currently
// holds at least one of the given roles. The full verification (signature,
// expiry, account re-resolution, role intersection) happens in the auth
// service; this middleware only translates the outcome to HTTP and aborts the
// chain on any rejection, so handlers never run partially authorized.
func (m *AuthMiddleware) RequireRoles(roles ...account.Role) gin.HandlerFunc {
	allowed := account.Roles(roles)

	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization token", nil)
			return
		}

		acct, err := m.authService.VerifyToken(c.Request.Context(), tokenString, allowed)
		if err != nil {
			abortWithAuthError(c, err)
			return
		}

		c.Set(ctxAccountKey, acct)
		c.Next()
	}
}

// Authenticated gates a route on any valid session regardless of role.
func (m *AuthMiddleware) Authenticated() gin.HandlerFunc {
	return m.RequireRoles(account.RoleUser, account.RoleAdmin)
}

// AdminOnly gates a route on the Admin role.
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return m.RequireRoles(account.RoleAdmin)
}

// abortWithAuthError maps the gate's error taxonomy onto HTTP. Forbidden is
// the only 403: authentication succeeded but the role is not permitted. All
// other cases are 401 with a message matching the subcase.
func abortWithAuthError(c *gin.Context, err error) {
	switch {
	case xerrors.Is(err, xerrors.ErrTokenExpired):
		response.Error(c, http.StatusUnauthorized, "session expired, please log in again", err)
	case xerrors.Is(err, xerrors.ErrAccountDeactivated):
		response.Error(c, http.StatusUnauthorized, DeactivatedMessage, err)
	case xerrors.Is(err, xerrors.ErrAccountNotFound):
		response.Error(c, http.StatusUnauthorized, "account no longer exists", err)
	case xerrors.Is(err, xerrors.ErrForbidden):
		response.Error(c, http.StatusForbidden, "insufficient permissions", err)
	case xerrors.Is(err, xerrors.ErrTokenInvalid):
		response.Error(c, http.StatusUnauthorized, "invalid token", err)
	default:
		response.Error(c, http.StatusInternalServerError, "token verification failed", err)
	}
}

// extractToken extracts the Bearer token from the Authorization header, with
// a query-param fallback for websocket upgrades.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}

	return c.Query("token")
}
