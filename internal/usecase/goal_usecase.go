package usecase

import (
	"context"
	"time"

	"healthplanner/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGoalInput defines a new goal. Empty Status and Priority default to
// active and medium.
type CreateGoalInput struct {
	Title        string
	Description  string
	Type         entity.GoalType
	TargetValue  float64
	CurrentValue float64
	Unit         string
	TargetDate   time.Time
	Status       entity.GoalStatus
	Priority     entity.GoalPriority
}

// UpdateGoalInput carries a partial update. Nil fields are left unchanged.
type UpdateGoalInput struct {
	Title        *string
	Description  *string
	Type         *entity.GoalType
	TargetValue  *float64
	CurrentValue *float64
	Unit         *string
	TargetDate   *time.Time
	Status       *entity.GoalStatus
	Priority     *entity.GoalPriority
}

// GoalUsecase manages the goals of a user. Goals owned by another user are
// reported as not found.
type GoalUsecase interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, input *CreateGoalInput) (*entity.Goal, error)
	GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*entity.Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID, status *entity.GoalStatus) ([]*entity.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, input *UpdateGoalInput) (*entity.Goal, error)

	// UpdateProgress sets the current value. An active goal that reaches its
	// target is completed and a goal.completed event is published.
	UpdateProgress(ctx context.Context, userID, goalID uuid.UUID, currentValue float64) (*entity.Goal, error)

	DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error
}
