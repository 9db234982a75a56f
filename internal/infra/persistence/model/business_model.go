// Package model holds the GORM persistence models. Primary keys are UUIDv7
// generated in Go so the same schema works across postgres, mysql and sqlite.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessModel mirrors the 'businesses' table.
type BusinessModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null;index"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	Country      string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(100);not null"`
	Hours        string    `gorm:"type:varchar(100);not null"`
	Description  string    `gorm:"type:text"`
	IsActive     bool      `gorm:"not null;default:true"`
	IsStaff      bool      `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Products []ProductModel `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// BeforeCreate assigns a time-ordered id when none was set.
func (m *BusinessModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	v7, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = v7

	return nil
}

// All lists every model in dependency order for migrations.
func All() []any {
	return []any{&BusinessModel{}, &ProductModel{}, &ReviewModel{}}
}
