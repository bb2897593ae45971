package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeacher || r == RoleStudent
}

// Profile is the identity record behind every teacher, student and admin.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Actor identifies the party performing an operation. Identity is always
// passed explicitly, never read from ambient session state.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanActFor reports whether the actor may manage entities owned by the
// given teacher: the teacher themselves, or an admin acting on their behalf.
func (a Actor) CanActFor(teacherID uuid.UUID) bool {
	return a.IsAdmin() || (a.Role == RoleTeacher && a.ID == teacherID)
}
