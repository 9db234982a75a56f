package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewModel mirrors the 'reviews' table. ProductID references products.id.
type ReviewModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	ProductID    uuid.UUID `gorm:"type:char(36);not null;index"`
	CustomerName string    `gorm:"type:varchar(255);not null"`
	Rating       int       `gorm:"not null;check:rating_range,rating >= 1 AND rating <= 5"`
	Text         string    `gorm:"type:text;not null"`
	Sentiment    string    `gorm:"type:varchar(10);not null;default:neutral"`
	IsFake       bool      `gorm:"not null;default:false"`
	Reply        string    `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

func (m *ReviewModel) BeforeCreate(*gorm.DB) error {
	return assignID(&m.ID)
}

// ReviewRow is a review joined with its product and business.
type ReviewRow struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	ProductName  string
	BusinessID   uuid.UUID
	BusinessName string
	CustomerName string
	Rating       int
	Text         string
	Sentiment    string
	IsFake       bool
	Reply        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
