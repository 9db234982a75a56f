// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"github.com/google/uuid"

	"ratesmart/internal/domain/entity"
)

// Principal is the authenticated caller of an operation. A zero Principal
// is an anonymous caller.
type Principal struct {
	ID    uuid.UUID
	Roles entity.Roles
}

// IsAdmin reports whether the caller holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Roles.IsAdmin()
}

// IsAuthenticated reports whether the caller presented a valid token.
func (p Principal) IsAuthenticated() bool {
	return p.ID != uuid.Nil || len(p.Roles) > 0
}

// Owns reports whether the caller is the business with the given id.
func (p Principal) Owns(businessID uuid.UUID) bool {
	return p.Roles.Contains(entity.RoleBusiness) && p.ID == businessID
}

// CanManage reports whether the caller may change resources of the business.
func (p Principal) CanManage(businessID uuid.UUID) bool {
	return p.IsAdmin() || p.Owns(businessID)
}
