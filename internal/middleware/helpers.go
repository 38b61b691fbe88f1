// internal/middleware/helpers.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"evently-service/internal/domain/account"
)

// GetAccount returns the verified account set by RequireRoles.
func GetAccount(c *gin.Context) (*account.Account, bool) {
	v, exists := c.Get(ctxAccountKey)
	if !exists {
		return nil, false
	}

	acct, ok := v.(*account.Account)
	return acct, ok
}

// MustGetAccount returns the verified account or panics. Only for handlers
// that are always registered behind the auth middleware.
func MustGetAccount(c *gin.Context) *account.Account {
	acct, ok := GetAccount(c)
	if !ok {
		panic("account not found in context")
	}
	return acct
}

// GetAccountID returns the verified account's id.
func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	acct, ok := GetAccount(c)
	if !ok {
		return uuid.Nil, false
	}
	return acct.ID, true
}

// IsAdmin checks if the verified account holds the Admin role.
func IsAdmin(c *gin.Context) bool {
	acct, ok := GetAccount(c)
	return ok && acct.Roles().Contains(account.RoleAdmin)
}
