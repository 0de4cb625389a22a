// Package session holds who is logged in to the menu.
package session

import (
	"hotel/shared/constant"
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleNone     Role = ""
	RoleCustomer Role = constant.RoleCustomer
	RoleManager  Role = constant.RoleManager
	RoleAdmin    Role = constant.RoleAdmin
)

// ParseRole normalizes a stored user type; ok is false for values that are not a known role.
func ParseRole(value string) (Role, bool) {
	switch role := Role(strings.ToLower(strings.TrimSpace(value))); role {
	case RoleCustomer, RoleManager, RoleAdmin:
		return role, true
	default:
		return RoleNone, false
	}
}

type State int

const (
	Anonymous State = iota
	AuthenticatedCustomer
	AuthenticatedManagerOrAdmin
)

func (s State) String() string {
	switch s {
	case AuthenticatedCustomer:
		return "customer"
	case AuthenticatedManagerOrAdmin:
		return "manager"
	default:
		return "anonymous"
	}
}

// Session is the identity bound to the menu loop. The zero value is anonymous.
type Session struct {
	ID     string
	UserID int
	Role   Role
}

// New binds an identity; ID only correlates log lines of one login.
func New(userID int, role Role) Session {
	return Session{
		ID:     uuid.NewString(),
		UserID: userID,
		Role:   role,
	}
}

func (s Session) State() State {
	switch s.Role {
	case RoleCustomer:
		return AuthenticatedCustomer
	case RoleManager, RoleAdmin:
		return AuthenticatedManagerOrAdmin
	default:
		return Anonymous
	}
}

func (s Session) Authenticated() bool {
	return s.State() != Anonymous
}
