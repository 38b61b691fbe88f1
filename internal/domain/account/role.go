// internal/domain/account/role.go
package account

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is the coarse permission class governing which operations an account
// may invoke.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// ParseRole normalizes a stored role value to one of the known roles.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return RoleUser, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Roles is a normalized role set. Historically the role claim was written both
// as a scalar and as an array, so the JSON decoder accepts either shape; after
// decoding all processing operates on the set form only.
type Roles []Role

// UnmarshalJSON accepts `"Admin"` as well as `["Admin"]`.
func (r *Roles) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		return r.fromStrings(many)
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return fmt.Errorf("roles must be a string or an array of strings")
	}
	return r.fromStrings([]string{one})
}

func (r *Roles) fromStrings(values []string) error {
	out := make(Roles, 0, len(values))
	for _, v := range values {
		role, err := ParseRole(v)
		if err != nil {
			return err
		}
		out = append(out, role)
	}
	*r = out
	return nil
}

// Contains reports whether the set contains the given role.
func (r Roles) Contains(role Role) bool {
	for _, have := range r {
		if have == role {
			return true
		}
	}
	return false
}

// Intersects reports whether the set shares at least one role with allowed.
func (r Roles) Intersects(allowed Roles) bool {
	for _, want := range allowed {
		if r.Contains(want) {
			return true
		}
	}
	return false
}

// Strings returns the set as plain strings, for logging and claims encoding.
func (r Roles) Strings() []string {
	out := make([]string, len(r))
	for i, role := range r {
		out[i] = string(role)
	}
	return out
}
