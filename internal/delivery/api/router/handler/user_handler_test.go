package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

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

type userHandlerFixtures struct {
	echo *echo.Echo
	uc   *mockUsecase.MockUserUsecase
}

func createTestUserHandler(t *testing.T) userHandlerFixtures {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newTestEcho()
	e.POST("/users", h.CreateUser)
	e.GET("/users", h.ListUsers)
	e.GET("/users/:userId", h.GetUser)
	e.PATCH("/users/:userId", h.UpdateUser)
	e.DELETE("/users/:userId", h.DeleteUser)

	return userHandlerFixtures{echo: e, uc: uc}
}

func validCreateUserBody() map[string]any {
	return map[string]any{
		"name":          "Ada Lovelace",
		"email":         "ada@example.com",
		"age":           36,
		"weightKg":      60,
		"heightCm":      165,
		"gender":        "Female",
		"activityLevel": "moderately_active",
		"goal":          "weight-loss",
	}
}

func TestUserHandler_CreateUser(t *testing.T) {
	fx := createTestUserHandler(t)
	created := &entity.User{ID: uuid.New(), Name: "Ada Lovelace", Email: "ada@example.com"}

	fx.uc.EXPECT().
		CreateUser(mock.Anything, mock.MatchedBy(func(in *usecase.CreateUserInput) bool {
			return in.Gender == entity.GenderFemale &&
				in.ActivityLevel == entity.ActivityModerate &&
				in.Goal == entity.GoalWeightLoss &&
				in.Age == 36
		})).
		Return(created, nil)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/users", validCreateUserBody())

	require.Equal(t, http.StatusCreated, rec.Code)
	got := decodeData[entity.User](t, env)
	assert.Equal(t, created.ID, got.ID)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestUserHandler_CreateUser_ValidationFailed(t *testing.T) {
	fx := createTestUserHandler(t)
	body := validCreateUserBody()
	body["age"] = 12
	body["email"] = "not-an-email"
	body["password"] = "short"

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/users", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{
		"age":      "must be at least 13",
		"email":    "must be a valid email",
		"password": "must be at least 8",
	}, env.Error.Details)
}

func TestUserHandler_CreateUser_UnknownEnum(t *testing.T) {
	fx := createTestUserHandler(t)
	body := validCreateUserBody()
	body["activityLevel"] = "couch"

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/users", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
	assert.Equal(t, `unknown activity level "couch"`, env.Error.Details)
}

func TestUserHandler_CreateUser_MalformedBody(t *testing.T) {
	fx := createTestUserHandler(t)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/users", `{"name":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
}

func TestUserHandler_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserHandler(t)
	fx.uc.EXPECT().
		CreateUser(mock.Anything, mock.AnythingOfType("*usecase.CreateUserInput")).
		Return(nil, errors.Wrap(domainerrors.ErrEmailExists, "email taken"))

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/users", validCreateUserBody())

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMAIL_EXISTS", env.Error.Code)
}

func TestUserHandler_ListUsers(t *testing.T) {
	fx := createTestUserHandler(t)
	fx.uc.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/users", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.User](t, env), 2)
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		fx := createTestUserHandler(t)

		rec, env := doRequest(t, fx.echo, http.MethodGet, "/users/abc", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestUserHandler(t)
		id := uuid.New()
		fx.uc.EXPECT().GetUser(mock.Anything, id).Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "lookup"))

		rec, env := doRequest(t, fx.echo, http.MethodGet, "/users/"+id.String(), nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", env.Error.Code)
	})
}

func TestUserHandler_UpdateUser_Partial(t *testing.T) {
	fx := createTestUserHandler(t)
	id := uuid.New()

	fx.uc.EXPECT().
		UpdateUser(mock.Anything, id, mock.MatchedBy(func(in *usecase.UpdateUserInput) bool {
			return in.WeightKg != nil && *in.WeightKg == 68.5 &&
				in.Goal != nil && *in.Goal == entity.GoalMuscleGain &&
				in.Name == nil && in.Gender == nil
		})).
		Return(&entity.User{ID: id, WeightKg: 68.5, Goal: entity.GoalMuscleGain}, nil)

	rec, _ := doRequest(t, fx.echo, http.MethodPatch, "/users/"+id.String(), map[string]any{
		"weightKg": 68.5,
		"goal":     "muscle_gain",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	fx := createTestUserHandler(t)
	id := uuid.New()
	fx.uc.EXPECT().DeleteUser(mock.Anything, id).Return(nil)

	rec, _ := doRequest(t, fx.echo, http.MethodDelete, "/users/"+id.String(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
