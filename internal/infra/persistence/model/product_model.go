package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. BusinessID references businesses.id.
type ProductModel struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	BusinessID uuid.UUID `gorm:"type:char(36);not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time

	Reviews []ReviewModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

func (m *ProductModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// ProductRow is a product joined with its owning business name.
type ProductRow struct {
	ID           uuid.UUID
	BusinessID   uuid.UUID
	BusinessName string
	Name         string
	CreatedAt    time.Time
}
