package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/staykonnect/internal/textx"
)

// Role classifies what a user may do in the catalog.
type Role int

const (
	RoleTraveler Role = iota + 1
	RoleHost
	RoleAdmin
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleTraveler, RoleHost, RoleAdmin}

// ParseRole maps a role name to a Role. Both the English names and the
// Spanish ones used by the demo catalog are accepted, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch textx.Key(s) {
	case "traveler", "viajero":
		return RoleTraveler, nil
	case "host", "anfitrion", "anfitrión":
		return RoleHost, nil
	case "admin", "administrador":
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("unknown role %q", strings.TrimSpace(s))
	}
}

func (r Role) String() string {
	switch r {
	case RoleTraveler:
		return "Traveler"
	case RoleHost:
		return "Host"
	case RoleAdmin:
		return "Admin"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleTraveler, RoleHost, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanPublish reports whether the role may list new properties.
func (r Role) CanPublish() bool {
	switch r {
	case RoleHost, RoleAdmin:
		return true
	case RoleTraveler:
		return false
	default:
		return false
	}
}

// CanManageAll reports whether the role may change any listing, not only
// its own.
func (r Role) CanManageAll() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleTraveler, RoleHost:
		return false
	default:
		return false
	}
}

// User is a registered account. PasswordDigest never holds the plaintext.
type User struct {
	ID             string
	DisplayName    string
	Email          string
	Phone          string
	PasswordDigest string
	Role           Role
	RegisteredOn   time.Time
}

// RecordID returns the primary key.
func (u *User) RecordID() string { return u.ID }

// SetRecordID assigns the primary key.
func (u *User) SetRecordID(id string) { u.ID = id }

// EmailKey returns the normalized email used for uniqueness.
func (u *User) EmailKey() string { return textx.Key(u.Email) }

// Clone returns an independent copy of u.
func (u *User) Clone() *User {
	c := *u
	return &c
}
