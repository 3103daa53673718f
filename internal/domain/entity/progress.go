package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProgressEntry is a dated log of body metrics and habits. All metrics are
// optional.
type ProgressEntry struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"userId"`
	GoalID          *uuid.UUID `json:"goalId,omitempty"`
	Date            time.Time  `json:"date"`
	WeightKg        *float64   `json:"weightKg,omitempty"`
	BodyFatPct      *float64   `json:"bodyFatPct,omitempty"`
	MuscleMassKg    *float64   `json:"muscleMassKg,omitempty"`
	Calories        *float64   `json:"calories,omitempty"`
	ProteinG        *float64   `json:"proteinG,omitempty"`
	CarbsG          *float64   `json:"carbsG,omitempty"`
	FatG            *float64   `json:"fatG,omitempty"`
	WaterL          *float64   `json:"waterL,omitempty"`
	SleepHours      *float64   `json:"sleepHours,omitempty"`
	Steps           *int       `json:"steps,omitempty"`
	ExerciseMinutes *int       `json:"exerciseMinutes,omitempty"`
	Mood            *int       `json:"mood,omitempty"`   // 1..10
	Energy          *int       `json:"energy,omitempty"` // 1..10
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// DatedValue is a single point of a chart series.
type DatedValue struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// ProgressStats aggregates a user's entries over a trailing window.
type ProgressStats struct {
	Days                 int          `json:"days"`
	TotalEntries         int          `json:"totalEntries"`
	AverageWeight        float64      `json:"averageWeight"`
	WeightChange         float64      `json:"weightChange"`
	AverageCalories      float64      `json:"averageCalories"`
	TotalExerciseMinutes int          `json:"totalExerciseMinutes"`
	AverageSleep         float64      `json:"averageSleep"`
	AverageMood          float64      `json:"averageMood"`
	AverageEnergy        float64      `json:"averageEnergy"`
	WeightData           []DatedValue `json:"weightData"`
	CalorieData          []DatedValue `json:"calorieData"`
}
