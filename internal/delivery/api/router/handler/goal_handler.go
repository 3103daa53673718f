package handler

import (
	"net/http"
	"strings"
	"time"

	"healthplanner/internal/delivery/api/response"
	"healthplanner/internal/domain/entity"
	"healthplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createGoalRequest struct {
	Title        string    `json:"title" validate:"required,max=200"`
	Description  string    `json:"description" validate:"max=1000"`
	Type         string    `json:"type" validate:"required"`
	TargetValue  float64   `json:"targetValue" validate:"gte=0"`
	CurrentValue float64   `json:"currentValue" validate:"gte=0"`
	Unit         string    `json:"unit" validate:"max=20"`
	TargetDate   time.Time `json:"targetDate" validate:"required"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
}

type updateGoalRequest struct {
	Title        *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string    `json:"description" validate:"omitempty,max=1000"`
	Type         *string    `json:"type"`
	TargetValue  *float64   `json:"targetValue" validate:"omitempty,gte=0"`
	CurrentValue *float64   `json:"currentValue" validate:"omitempty,gte=0"`
	Unit         *string    `json:"unit" validate:"omitempty,max=20"`
	TargetDate   *time.Time `json:"targetDate"`
	Status       *string    `json:"status"`
	Priority     *string    `json:"priority"`
}

type goalProgressRequest struct {
	CurrentValue *float64 `json:"currentValue" validate:"required,gte=0"`
}

// goalResponse adds the derived completion percentage.
type goalResponse struct {
	*entity.Goal
	ProgressPercentage float64 `json:"progressPercentage"`
}

func newGoalResponse(goal *entity.Goal) goalResponse {
	return goalResponse{Goal: goal, ProgressPercentage: goal.ProgressPercentage()}
}

func lower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func lowerPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := lower(*s)

	return &v
}

// GoalHandler serves /users/:userId/goals.
type GoalHandler struct {
	uc usecase.GoalUsecase
}

// NewGoalHandler is the constructor for GoalHandler, injected by Fx.
func NewGoalHandler(uc usecase.GoalUsecase) *GoalHandler {
	return &GoalHandler{uc: uc}
}

func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	var req createGoalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	goal, err := h.uc.CreateGoal(c.Request().Context(), userID, &usecase.CreateGoalInput{
		Title:        req.Title,
		Description:  req.Description,
		Type:         entity.GoalType(lower(req.Type)),
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		TargetDate:   req.TargetDate.UTC(),
		Status:       entity.GoalStatus(lower(req.Status)),
		Priority:     entity.GoalPriority(lower(req.Priority)),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newGoalResponse(goal))
}

// ListGoals returns the user's goals, newest first, optionally by status.
func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	var status *entity.GoalStatus
	if raw := lower(c.QueryParam("status")); raw != "" {
		s := entity.GoalStatus(raw)
		status = &s
	}

	goals, err := h.uc.ListGoals(c.Request().Context(), userID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]goalResponse, 0, len(goals))
	for _, goal := range goals {
		out = append(out, newGoalResponse(goal))
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *GoalHandler) GetGoal(c echo.Context) error {
	userID, goalID, err := goalParams(c)
	if err != nil {
		return err
	}

	goal, err := h.uc.GetGoal(c.Request().Context(), userID, goalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newGoalResponse(goal))
}

func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	userID, goalID, err := goalParams(c)
	if err != nil {
		return err
	}

	var req updateGoalRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateGoalInput{
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		TargetDate:   req.TargetDate,
	}
	if v := lowerPtr(req.Type); v != nil {
		t := entity.GoalType(*v)
		input.Type = &t
	}
	if v := lowerPtr(req.Status); v != nil {
		s := entity.GoalStatus(*v)
		input.Status = &s
	}
	if v := lowerPtr(req.Priority); v != nil {
		p := entity.GoalPriority(*v)
		input.Priority = &p
	}

	goal, err := h.uc.UpdateGoal(c.Request().Context(), userID, goalID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newGoalResponse(goal))
}

// UpdateProgress records a new current value for the goal.
func (h *GoalHandler) UpdateProgress(c echo.Context) error {
	userID, goalID, err := goalParams(c)
	if err != nil {
		return err
	}

	var req goalProgressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	goal, err := h.uc.UpdateProgress(c.Request().Context(), userID, goalID, *req.CurrentValue)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newGoalResponse(goal))
}

func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID, goalID, err := goalParams(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteGoal(c.Request().Context(), userID, goalID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func goalParams(c echo.Context) (userID, goalID uuid.UUID, err error) {
	if userID, err = uuidParam(c, "userId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if goalID, err = uuidParam(c, "goalId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return userID, goalID, nil
}
