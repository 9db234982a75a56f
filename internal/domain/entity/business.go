// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a registered company that owns products and receives reviews.
// It is also the login principal for the business dashboard.
type Business struct {
	ID           uuid.UUID
	Name         string
	Email        string // Unique login identifier.
	PasswordHash string // Never serialised outside the persistence layer.
	Phone        string
	Country      string
	State        string
	Hours        string
	Description  string
	IsActive     bool
	IsStaff      bool // Staff businesses survive a system reset.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BusinessUpdate carries a partial update. Nil fields are left unchanged.
type BusinessUpdate struct {
	Name        *string
	Email       *string
	Phone       *string
	Country     *string
	State       *string
	Hours       *string
	Description *string
	Password    *string
}

// Apply copies the set fields onto b. Password is not applied here since it
// has to be hashed first.
func (u *BusinessUpdate) Apply(b *Business) {
	if u.Name != nil {
		b.Name = *u.Name
	}
	if u.Email != nil {
		b.Email = *u.Email
	}
	if u.Phone != nil {
		b.Phone = *u.Phone
	}
	if u.Country != nil {
		b.Country = *u.Country
	}
	if u.State != nil {
		b.State = *u.State
	}
	if u.Hours != nil {
		b.Hours = *u.Hours
	}
	if u.Description != nil {
		b.Description = *u.Description
	}
}
