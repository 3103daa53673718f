package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressModel mirrors the 'progress_entries' table.
type ProgressModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_progress_user_date,priority:1"`
	GoalID          *uuid.UUID `gorm:"type:uuid;index"`
	Date            time.Time  `gorm:"not null;index:idx_progress_user_date,priority:2,sort:desc"`
	WeightKg        *float64
	BodyFatPct      *float64
	MuscleMassKg    *float64
	Calories        *float64
	ProteinG        *float64
	CarbsG          *float64
	FatG            *float64
	WaterL          *float64
	SleepHours      *float64
	Steps           *int
	ExerciseMinutes *int
	Mood            *int
	Energy          *int
	Notes           string `gorm:"type:varchar(500)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProgressModel) TableName() string {
	return "progress_entries"
}
