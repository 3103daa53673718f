package handler

import (
	"net/http"
	"testing"
	"time"

	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	mockUsecase "healthplanner/internal/mocks/usecase"
	"healthplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type goalHandlerFixtures struct {
	echo *echo.Echo
	uc   *mockUsecase.MockGoalUsecase
}

func createTestGoalHandler(t *testing.T) goalHandlerFixtures {
	uc := mockUsecase.NewMockGoalUsecase(t)
	h := NewGoalHandler(uc)

	e := newTestEcho()
	e.POST("/users/:userId/goals", h.CreateGoal)
	e.GET("/users/:userId/goals", h.ListGoals)
	e.GET("/users/:userId/goals/:goalId", h.GetGoal)
	e.PUT("/users/:userId/goals/:goalId", h.UpdateGoal)
	e.PATCH("/users/:userId/goals/:goalId/progress", h.UpdateProgress)
	e.DELETE("/users/:userId/goals/:goalId", h.DeleteGoal)

	return goalHandlerFixtures{echo: e, uc: uc}
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	fx := createTestGoalHandler(t)
	userID := uuid.New()
	targetDate := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	goal := &entity.Goal{
		ID: uuid.New(), UserID: userID, Title: "Run 100 km", Type: entity.GoalTypeExercise,
		TargetValue: 100, CurrentValue: 25, Status: entity.GoalStatusActive, Priority: entity.GoalPriorityHigh,
	}

	fx.uc.EXPECT().
		CreateGoal(mock.Anything, userID, mock.MatchedBy(func(in *usecase.CreateGoalInput) bool {
			return in.Type == entity.GoalTypeExercise &&
				in.Priority == entity.GoalPriorityHigh &&
				in.Status == "" &&
				in.TargetDate.Equal(targetDate)
		})).
		Return(goal, nil)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/users/"+userID.String()+"/goals", map[string]any{
		"title":        "Run 100 km",
		"type":         "Exercise",
		"targetValue":  100,
		"currentValue": 25,
		"unit":         "km",
		"targetDate":   "2026-12-31T00:00:00Z",
		"priority":     "HIGH",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeData[map[string]any](t, env)
	assert.Equal(t, goal.ID.String(), got["id"])
	assert.InDelta(t, 25.0, got["progressPercentage"], 0.001)
}

func TestGoalHandler_CreateGoal_Invalid(t *testing.T) {
	fx := createTestGoalHandler(t)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/users/"+uuid.NewString()+"/goals", map[string]any{
		"type":        "habit",
		"targetValue": -5,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	details, ok := env.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "title")
	assert.Contains(t, details, "targetValue")
	assert.Contains(t, details, "targetDate")
}

func TestGoalHandler_ListGoals_StatusFilter(t *testing.T) {
	fx := createTestGoalHandler(t)
	userID := uuid.New()
	status := entity.GoalStatusCompleted

	fx.uc.EXPECT().ListGoals(mock.Anything, userID, &status).Return([]*entity.Goal{
		{ID: uuid.New(), TargetValue: 10, CurrentValue: 10, Status: status},
	}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/users/"+userID.String()+"/goals?status=completed", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	goals := decodeData[[]map[string]any](t, env)
	require.Len(t, goals, 1)
	assert.InDelta(t, 100.0, goals[0]["progressPercentage"], 0)
}

func TestGoalHandler_GetGoal_NotFound(t *testing.T) {
	fx := createTestGoalHandler(t)
	userID, goalID := uuid.New(), uuid.New()
	fx.uc.EXPECT().GetGoal(mock.Anything, userID, goalID).Return(nil, errors.Wrap(domainerrors.ErrGoalNotFound, "lookup"))

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/users/"+userID.String()+"/goals/"+goalID.String(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "GOAL_NOT_FOUND", env.Error.Code)
}

func TestGoalHandler_UpdateGoal(t *testing.T) {
	fx := createTestGoalHandler(t)
	userID, goalID := uuid.New(), uuid.New()

	fx.uc.EXPECT().
		UpdateGoal(mock.Anything, userID, goalID, mock.MatchedBy(func(in *usecase.UpdateGoalInput) bool {
			return in.Status != nil && *in.Status == entity.GoalStatusPaused && in.Title == nil
		})).
		Return(&entity.Goal{ID: goalID, UserID: userID, Status: entity.GoalStatusPaused}, nil)

	rec, _ := doRequest(t, fx.echo, http.MethodPut, "/users/"+userID.String()+"/goals/"+goalID.String(), map[string]any{
		"status": "paused",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGoalHandler_UpdateProgress(t *testing.T) {
	fx := createTestGoalHandler(t)
	userID, goalID := uuid.New(), uuid.New()
	target := "/users/" + userID.String() + "/goals/" + goalID.String() + "/progress"

	t.Run("zero is a valid value", func(t *testing.T) {
		fx.uc.EXPECT().UpdateProgress(mock.Anything, userID, goalID, 0.0).
			Return(&entity.Goal{ID: goalID, TargetValue: 10}, nil).Once()

		rec, _ := doRequest(t, fx.echo, http.MethodPatch, target, map[string]any{"currentValue": 0})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing value", func(t *testing.T) {
		rec, env := doRequest(t, fx.echo, http.MethodPatch, target, map[string]any{})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})
}

func TestGoalHandler_DeleteGoal(t *testing.T) {
	fx := createTestGoalHandler(t)
	userID, goalID := uuid.New(), uuid.New()
	fx.uc.EXPECT().DeleteGoal(mock.Anything, userID, goalID).Return(nil)

	rec, _ := doRequest(t, fx.echo, http.MethodDelete, "/users/"+userID.String()+"/goals/"+goalID.String(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
