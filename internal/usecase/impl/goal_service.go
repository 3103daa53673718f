package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "healthplanner/internal/delivery/context"
	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/repository"
	"healthplanner/internal/domain/service"
	"healthplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type goalService struct {
	userRepo  repository.UserRepository
	goalRepo  repository.GoalRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// GoalServiceParams holds dependencies for GoalService, injected by Fx.
type GoalServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	GoalRepo  repository.GoalRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewGoalService is the constructor for goalService.
func NewGoalService(params GoalServiceParams) usecase.GoalUsecase {
	return &goalService{
		userRepo:  params.UserRepo,
		goalRepo:  params.GoalRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *goalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGoal stores a goal for an existing user.
func (srv *goalService) CreateGoal(ctx context.Context, userID uuid.UUID, input *usecase.CreateGoalInput) (*entity.Goal, error) {
	srv.log(ctx).Info("Creating goal", slog.Any("userID", userID), slog.String("type", input.Type.String()))

	if err := srv.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	goal := &entity.Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Type:         input.Type,
		TargetValue:  input.TargetValue,
		CurrentValue: input.CurrentValue,
		Unit:         input.Unit,
		TargetDate:   input.TargetDate,
		Status:       input.Status,
		Priority:     input.Priority,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if goal.Status == "" {
		goal.Status = entity.GoalStatusActive
	}
	if goal.Priority == "" {
		goal.Priority = entity.GoalPriorityMedium
	}

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	if err := srv.goalRepo.Create(ctx, goal); err != nil {
		return nil, errors.Wrap(err, "failed to create goal")
	}

	return goal, nil
}

// GetGoal returns one of the user's goals.
func (srv *goalService) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*entity.Goal, error) {
	return srv.findOwnedGoal(ctx, userID, goalID)
}

// ListGoals returns the user's goals, newest first.
func (srv *goalService) ListGoals(ctx context.Context, userID uuid.UUID, status *entity.GoalStatus) ([]*entity.Goal, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.InvalidArgument("unknown goal status %q", *status)
	}

	if err := srv.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	goals, err := srv.goalRepo.FindByUser(ctx, userID, repository.GoalFilter{Status: status})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list goals")
	}

	return goals, nil
}

// UpdateGoal applies the non-nil fields of input.
func (srv *goalService) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, input *usecase.UpdateGoalInput) (*entity.Goal, error) {
	goal, err := srv.findOwnedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		goal.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.Type != nil {
		goal.Type = *input.Type
	}
	if input.TargetValue != nil {
		goal.TargetValue = *input.TargetValue
	}
	if input.CurrentValue != nil {
		goal.CurrentValue = *input.CurrentValue
	}
	if input.Unit != nil {
		goal.Unit = *input.Unit
	}
	if input.TargetDate != nil {
		goal.TargetDate = *input.TargetDate
	}
	if input.Status != nil {
		goal.Status = *input.Status
	}
	if input.Priority != nil {
		goal.Priority = *input.Priority
	}

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	goal.UpdatedAt = srv.now().UTC()

	if err := srv.save(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// UpdateProgress records a new current value. Completion is announced on a
// best-effort basis: a failed publish is logged and does not fail the call.
func (srv *goalService) UpdateProgress(ctx context.Context, userID, goalID uuid.UUID, currentValue float64) (*entity.Goal, error) {
	if currentValue < 0 {
		return nil, domainerrors.InvalidArgument("current value must not be negative, got %v", currentValue)
	}

	goal, err := srv.findOwnedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	completed := goal.ApplyProgress(currentValue, now)

	if err := srv.save(ctx, goal); err != nil {
		return nil, err
	}

	if completed {
		srv.log(ctx).Info("Goal completed", slog.Any("goalID", goal.ID), slog.Any("userID", userID))
		srv.publishCompleted(ctx, goal, now)
	}

	return goal, nil
}

// DeleteGoal removes one of the user's goals.
func (srv *goalService) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	if _, err := srv.findOwnedGoal(ctx, userID, goalID); err != nil {
		return err
	}

	if err := srv.goalRepo.Delete(ctx, goalID); err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return errors.Wrap(domainerrors.ErrGoalNotFound, "failed to delete goal")
		}

		return errors.Wrap(err, "failed to delete goal")
	}

	return nil
}

func (srv *goalService) publishCompleted(ctx context.Context, goal *entity.Goal, at time.Time) {
	event := &service.GoalEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Type:         service.GoalEventCompleted,
		GoalID:       goal.ID.String(),
		UserID:       goal.UserID.String(),
		Title:        goal.Title,
		TargetValue:  goal.TargetValue,
		CurrentValue: goal.CurrentValue,
		Unit:         goal.Unit,
		OccurredAt:   at,
	}

	if err := srv.publisher.PublishGoalEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish goal event",
			slog.Any("goalID", goal.ID),
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

func (srv *goalService) save(ctx context.Context, goal *entity.Goal) error {
	if err := srv.goalRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return errors.Wrap(domainerrors.ErrGoalNotFound, "failed to update goal")
		}

		return errors.Wrap(err, "failed to update goal")
	}

	return nil
}

func (srv *goalService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "failed to find user")
		}

		return errors.Wrap(err, "failed to find user")
	}

	return nil
}

// findOwnedGoal hides goals of other users behind a not-found error.
func (srv *goalService) findOwnedGoal(ctx context.Context, userID, goalID uuid.UUID) (*entity.Goal, error) {
	goal, err := srv.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return nil, errors.Wrap(domainerrors.ErrGoalNotFound, "failed to find goal")
		}

		return nil, errors.Wrap(err, "failed to find goal")
	}

	if goal.UserID != userID {
		srv.log(ctx).Warn("Goal requested by another user", slog.Any("goalID", goalID), slog.Any("userID", userID))

		return nil, errors.Wrap(domainerrors.ErrGoalNotFound, "goal belongs to another user")
	}

	return goal, nil
}

func validateGoal(goal *entity.Goal) error {
	switch {
	case goal.Title == "":
		return domainerrors.InvalidArgument("title is required")
	case !goal.Type.IsValid():
		return domainerrors.InvalidArgument("unknown goal type %q", goal.Type)
	case !goal.Status.IsValid():
		return domainerrors.InvalidArgument("unknown goal status %q", goal.Status)
	case !goal.Priority.IsValid():
		return domainerrors.InvalidArgument("unknown goal priority %q", goal.Priority)
	case goal.TargetValue < 0:
		return domainerrors.InvalidArgument("target value must not be negative")
	case goal.CurrentValue < 0:
		return domainerrors.InvalidArgument("current value must not be negative")
	}

	return nil
}
