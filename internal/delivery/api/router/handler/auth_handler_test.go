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

func createTestAuthHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newTestEcho()
	e.POST("/auth/login", h.Login)
	e.POST("/auth/refresh", h.Refresh)

	return e, uc
}

func TestAuthHandler_Login(t *testing.T) {
	e, uc := createTestAuthHandler(t)
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com"}

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "correct-horse"}).
		Return(&usecase.TokenOutput{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900, User: user}, nil)

	rec, env := doRequest(t, e, http.MethodPost, "/auth/login", map[string]any{
		"email": "ada@example.com", "password": "correct-horse",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[tokenResponse](t, env)
	assert.Equal(t, "a", got.AccessToken)
	assert.Equal(t, "r", got.RefreshToken)
	assert.Equal(t, "Bearer", got.TokenType)
	assert.Equal(t, int64(900), got.ExpiresIn)
	require.NotNil(t, got.User)
	assert.Equal(t, user.ID, got.User.ID)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, uc := createTestAuthHandler(t)
	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

	rec, env := doRequest(t, e, http.MethodPost, "/auth/login", map[string]any{
		"email": "ada@example.com", "password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	e, _ := createTestAuthHandler(t)

	rec, env := doRequest(t, e, http.MethodPost, "/auth/login", map[string]any{"email": "ada@example.com"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"password": "is required"}, env.Error.Details)
}

func TestAuthHandler_Refresh(t *testing.T) {
	e, uc := createTestAuthHandler(t)
	uc.EXPECT().Refresh(mock.Anything, "refresh-token").Return(&usecase.TokenOutput{AccessToken: "a2", RefreshToken: "r2"}, nil)

	rec, env := doRequest(t, e, http.MethodPost, "/auth/refresh", map[string]any{"refreshToken": "refresh-token"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a2", decodeData[tokenResponse](t, env).AccessToken)
}
