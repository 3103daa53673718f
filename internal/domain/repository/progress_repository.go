package repository

import (
	"context"
	"errors"
	"time"

	"healthplanner/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProgressNotFound is returned when no progress entry matches the lookup.
var ErrProgressNotFound = errors.New("progress entry not found")

// ProgressFilter narrows FindByUser. Zero values are ignored; the date
// bounds are inclusive.
type ProgressFilter struct {
	GoalID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// ProgressRepository persists progress entries.
type ProgressRepository interface {
	Create(ctx context.Context, entry *entity.ProgressEntry) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.ProgressEntry, error)

	// FindByUser returns the user's entries ordered by date, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter ProgressFilter) ([]*entity.ProgressEntry, error)

	Update(ctx context.Context, entry *entity.ProgressEntry) error

	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes every entry of the user and returns how many were removed.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
