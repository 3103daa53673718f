package model

import (
	"time"

	"github.com/google/uuid"
)

// GoalModel mirrors the 'goals' table.
type GoalModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_goals_user_created,priority:1"`
	Title        string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:text"`
	Type         string    `gorm:"type:varchar(16);not null"`
	TargetValue  float64   `gorm:"not null"`
	CurrentValue float64   `gorm:"not null;default:0"`
	Unit         string    `gorm:"type:varchar(32);not null"`
	TargetDate   time.Time `gorm:"not null"`
	Status       string    `gorm:"type:varchar(16);not null;index"`
	Priority     string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time `gorm:"index:idx_goals_user_created,priority:2,sort:desc"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (GoalModel) TableName() string {
	return "goals"
}
