// Package model holds the GORM persistence models for the PostgreSQL backend.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string    `gorm:"type:varchar(255)"`
	Age            int       `gorm:"not null"`
	WeightKg       float64   `gorm:"not null"`
	HeightCm       float64   `gorm:"not null"`
	Gender         string    `gorm:"type:varchar(16);not null"`
	ActivityLevel  string    `gorm:"type:varchar(32);not null"`
	Goal           string    `gorm:"type:varchar(32);not null"`
	TargetWeightKg *float64
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
