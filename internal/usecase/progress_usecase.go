package usecase

import (
	"context"
	"time"

	"healthplanner/internal/domain/entity"
	"healthplanner/internal/domain/repository"

	"github.com/google/uuid"
)

// ProgressMetrics are the optional measurements of an entry.
type ProgressMetrics struct {
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
}

// CreateProgressInput defines a new entry. A nil Date means now.
type CreateProgressInput struct {
	GoalID *uuid.UUID
	Date   *time.Time
	ProgressMetrics
	Notes string
}

// UpdateProgressInput carries a partial update. Nil fields are left unchanged.
type UpdateProgressInput struct {
	GoalID *uuid.UUID
	Date   *time.Time
	ProgressMetrics
	Notes *string
}

// ProgressUsecase manages progress entries and their statistics.
type ProgressUsecase interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, input *CreateProgressInput) (*entity.ProgressEntry, error)
	GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*entity.ProgressEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID, filter repository.ProgressFilter) ([]*entity.ProgressEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, input *UpdateProgressInput) (*entity.ProgressEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error

	// Stats aggregates the entries of the trailing days, 1 to 365.
	Stats(ctx context.Context, userID uuid.UUID, days int) (*entity.ProgressStats, error)
}
