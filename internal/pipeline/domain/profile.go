package domain

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleHR      Role = "HR"
	RoleCompany Role = "COMPANY"
)

var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole accepts "HR" or "COMPANY" in any case.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleHR:
		return RoleHR, nil
	case RoleCompany:
		return RoleCompany, nil
	default:
		return "", ErrUnknownRole
	}
}

// UserProfile is the signed in user. Company is only set for RoleCompany.
type UserProfile struct {
	ID      string
	Name    string
	Email   string
	Role    Role
	Company string
	Avatar  string
}

// DisplayName is the name shown for a freshly signed in profile.
func DisplayName(role Role, company string) string {
	if role == RoleCompany {
		return company + " Manager"
	}
	return "Admin User"
}

// Scoped reports whether the profile only sees a single company.
func (p UserProfile) Scoped() bool { return p.Role == RoleCompany }
