package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalType classifies what a goal measures.
type GoalType string

const (
	GoalTypeWeight    GoalType = "weight"
	GoalTypeExercise  GoalType = "exercise"
	GoalTypeNutrition GoalType = "nutrition"
	GoalTypeHabit     GoalType = "habit"
)

// String returns the string representation of the GoalType.
func (t GoalType) String() string {
	return string(t)
}

// IsValid checks if the GoalType is a valid value.
func (t GoalType) IsValid() bool {
	switch t {
	case GoalTypeWeight, GoalTypeExercise, GoalTypeNutrition, GoalTypeHabit:
		return true
	default:
		return false
	}
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// String returns the string representation of the GoalStatus.
func (s GoalStatus) String() string {
	return string(s)
}

// IsValid checks if the GoalStatus is a valid value.
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusPaused, GoalStatusCancelled:
		return true
	default:
		return false
	}
}

// GoalPriority orders goals for display.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// String returns the string representation of the GoalPriority.
func (p GoalPriority) String() string {
	return string(p)
}

// IsValid checks if the GoalPriority is a valid value.
func (p GoalPriority) IsValid() bool {
	switch p {
	case GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh:
		return true
	default:
		return false
	}
}

// Goal is a user-defined target tracked over time.
type Goal struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"userId"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Type         GoalType     `json:"type"`
	TargetValue  float64      `json:"targetValue"`
	CurrentValue float64      `json:"currentValue"`
	Unit         string       `json:"unit"`
	TargetDate   time.Time    `json:"targetDate"`
	Status       GoalStatus   `json:"status"`
	Priority     GoalPriority `json:"priority"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// ProgressPercentage is capped at 100; a zero target reports 0.
func (g *Goal) ProgressPercentage() float64 {
	if g.TargetValue == 0 {
		return 0
	}

	return min(100, g.CurrentValue/g.TargetValue*100)
}

// ApplyProgress records a new current value and completes an active goal
// once the target is reached. It reports whether the goal was completed by
// this call.
func (g *Goal) ApplyProgress(currentValue float64, now time.Time) bool {
	g.CurrentValue = currentValue
	g.UpdatedAt = now

	if g.Status == GoalStatusActive && g.CurrentValue >= g.TargetValue {
		g.Status = GoalStatusCompleted

		return true
	}

	return false
}
