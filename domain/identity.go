// Package domain contains core concepts of the hub.
// This file defines the authenticated Identity and its closed set of roles.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"fmt"
	"strings"

	"accelerator-hub/errors"
)

type Role string

const (
	RoleEntrepreneur Role = "entrepreneur"
	RoleMentor       Role = "mentor"
	RoleInvestor     Role = "investor"
	RoleGovernment   Role = "government"
)

var roles = map[Role]struct{}{
	RoleEntrepreneur: {},
	RoleMentor:       {},
	RoleInvestor:     {},
	RoleGovernment:   {},
}

// ParseRole accepts a role regardless of case and surrounding blanks.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roles[r]; !ok {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownRole, s)
	}
	return r, nil
}

func (r Role) String() string { return string(r) }

// Identity is asserted once per connection by the token verifier
// and never changes for the life of that connection.
type Identity struct {
	UserID string
	Role   Role
}

func (i Identity) String() string {
	return fmt.Sprintf("%s(%s)", i.UserID, i.Role)
}
