package entity

import "github.com/google/uuid"

// Actor identifies the caller of a usecase operation. It is resolved once
// from the JWT claims by the auth middleware and passed down as a value, so
// role checks never reach back into the request context.
type Actor struct {
	ID     uuid.UUID
	RoleID int
}

func (a Actor) IsAdmin() bool {
	return a.RoleID == RoleIDAdmin
}

func (a Actor) IsDoctor() bool {
	return a.RoleID == RoleIDDoctor
}

func (a Actor) IsPatient() bool {
	return a.RoleID == RoleIDPatient
}
