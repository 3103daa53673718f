package handler

import (
	"log/slog"
	"net/http"

	"healthplanner/internal/delivery/api/response"
	deliverycontext "healthplanner/internal/delivery/context"
	"healthplanner/internal/domain/entity"
	"healthplanner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createUserRequest struct {
	Name           string   `json:"name" validate:"required,max=100"`
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"omitempty,min=8,max=72"`
	Age            int      `json:"age" validate:"gte=13,lte=120"`
	WeightKg       float64  `json:"weightKg" validate:"gte=20,lte=500"`
	HeightCm       float64  `json:"heightCm" validate:"gte=100,lte=250"`
	Gender         string   `json:"gender" validate:"required"`
	ActivityLevel  string   `json:"activityLevel" validate:"required"`
	Goal           string   `json:"goal" validate:"required"`
	TargetWeightKg *float64 `json:"targetWeightKg" validate:"omitempty,gte=20,lte=500"`
}

type updateUserRequest struct {
	Name           *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	Password       *string  `json:"password" validate:"omitempty,min=8,max=72"`
	Age            *int     `json:"age" validate:"omitempty,gte=13,lte=120"`
	WeightKg       *float64 `json:"weightKg" validate:"omitempty,gte=20,lte=500"`
	HeightCm       *float64 `json:"heightCm" validate:"omitempty,gte=100,lte=250"`
	Gender         *string  `json:"gender"`
	ActivityLevel  *string  `json:"activityLevel"`
	Goal           *string  `json:"goal"`
	TargetWeightKg *float64 `json:"targetWeightKg" validate:"omitempty,gte=20,lte=500"`
}

func (r *createUserRequest) toInput() (*usecase.CreateUserInput, error) {
	gender, err := entity.ParseGender(r.Gender)
	if err != nil {
		return nil, err
	}
	level, err := entity.ParseActivityLevel(r.ActivityLevel)
	if err != nil {
		return nil, err
	}
	goal, err := entity.ParseFitnessGoal(r.Goal)
	if err != nil {
		return nil, err
	}

	return &usecase.CreateUserInput{
		Name:           r.Name,
		Email:          r.Email,
		Password:       r.Password,
		Age:            r.Age,
		WeightKg:       r.WeightKg,
		HeightCm:       r.HeightCm,
		Gender:         gender,
		ActivityLevel:  level,
		Goal:           goal,
		TargetWeightKg: r.TargetWeightKg,
	}, nil
}

func (r *updateUserRequest) toInput() (*usecase.UpdateUserInput, error) {
	input := &usecase.UpdateUserInput{
		Name:           r.Name,
		Email:          r.Email,
		Password:       r.Password,
		Age:            r.Age,
		WeightKg:       r.WeightKg,
		HeightCm:       r.HeightCm,
		TargetWeightKg: r.TargetWeightKg,
	}

	if r.Gender != nil {
		gender, err := entity.ParseGender(*r.Gender)
		if err != nil {
			return nil, err
		}
		input.Gender = &gender
	}
	if r.ActivityLevel != nil {
		level, err := entity.ParseActivityLevel(*r.ActivityLevel)
		if err != nil {
			return nil, err
		}
		input.ActivityLevel = &level
	}
	if r.Goal != nil {
		goal, err := entity.ParseFitnessGoal(*r.Goal)
		if err != nil {
			return nil, err
		}
		input.Goal = &goal
	}

	return input, nil
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateUser handles the user registration request.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	user, err := h.uc.CreateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// ListUsers returns every stored user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateUser applies a partial update; absent fields keep their value.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.uc.DeleteUser(ctx, id); err != nil {
		return errors.WithStack(err)
	}
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("User deleted", slog.String("user_id", id.String()))

	return response.NoContent(c)
}
