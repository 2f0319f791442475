package types

import "time"

// Role is the team an employee belongs to. It drives every permission check.
type Role string

const (
	RoleSales      Role = "sales"
	RoleSupport    Role = "support"
	RoleManagement Role = "management"
)

// Roles lists the valid role values in display order.
var Roles = []Role{RoleSales, RoleSupport, RoleManagement}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleSales, RoleSupport, RoleManagement:
		return true
	}
	return false
}

// User represents an employee account in the CRM.
// It contains identity, role, and audit metadata.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Username is the unique login name chosen for the user.
	Username string `json:"username" db:"username"`

	// FullName is the user's display name. Unique across users.
	FullName string `json:"fullname" db:"fullname"`

	// Role indicates the team the user belongs to
	// (sales, support, or management).
	Role Role `json:"role" db:"role"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never printed.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
