package repository

import (
	"context"
	"errors"

	"healthplanner/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGoalNotFound is returned when no goal matches the lookup.
var ErrGoalNotFound = errors.New("goal not found")

// GoalFilter narrows FindByUser. A nil Status matches every status.
type GoalFilter struct {
	Status *entity.GoalStatus
}

// GoalRepository persists user goals.
type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUser returns the user's goals, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter GoalFilter) ([]*entity.Goal, error)

	Update(ctx context.Context, goal *entity.Goal) error

	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes every goal of the user and returns how many were removed.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
