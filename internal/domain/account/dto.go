// internal/domain/account/dto.go
package account

import "time"

// LoginRequest for user login. Either email or username identifies the
// account; password is always required.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`

	IPAddress string `json:"-"`
}

// Identifier returns the value used to look up the account.
func (r *LoginRequest) Identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

// LoginResponse successful login response. ExpiresAt is the absolute expiry
// instant the client stores alongside the token.
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *Account  `json:"user"`
}

// CreateRequest for admin account creation.
type CreateRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role"`
}

// UpdateRoleRequest changes an account's role.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetActiveRequest toggles the active flag.
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
