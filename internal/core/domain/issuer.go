package domain

import "time"

// StaffRole is the permission level a user holds on an issuer.
type StaffRole string

const (
	StaffRoleStaff  StaffRole = "staff"
	StaffRoleEditor StaffRole = "editor"
	StaffRoleOwner  StaffRole = "owner"
)

// Valid reports whether the role is one of the known staff roles.
func (r StaffRole) Valid() bool {
	switch r {
	case StaffRoleStaff, StaffRoleEditor, StaffRoleOwner:
		return true
	}
	return false
}

// StaffMember associates a user with an issuer under a role.
type StaffMember struct {
	UserID string    `json:"user_id" bson:"user_id"`
	Role   StaffRole `json:"role" bson:"role"`
}

// Issuer is an organization that defines badge classes and awards badges.
type Issuer struct {
	EntityID    string        `json:"entity_id" bson:"_id"`
	Name        string        `json:"name" bson:"name"`
	Image       string        `json:"image,omitempty" bson:"image,omitempty"`
	Email       string        `json:"email" bson:"email"`
	URL         string        `json:"url" bson:"url"`
	Description string        `json:"description" bson:"description"`
	Staff       []StaffMember `json:"staff,omitempty" bson:"staff,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	CreatedBy   string        `json:"created_by,omitempty" bson:"created_by,omitempty"`
}
