package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthplanner/config"
	"healthplanner/internal/delivery/api/middleware"
	"healthplanner/internal/delivery/api/router/handler"
	"healthplanner/internal/domain/entity"
	mockUsecase "healthplanner/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	echo   *echo.Echo
	authUC *mockUsecase.MockAuthUsecase
	userUC *mockUsecase.MockUserUsecase
}

func createTestRouter(t *testing.T, authEnabled bool) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Auth: &config.AuthConfig{Enabled: authEnabled}}

	authUC := mockUsecase.NewMockAuthUsecase(t)
	userUC := mockUsecase.NewMockUserUsecase(t)
	planUC := mockUsecase.NewMockPlanUsecase(t)

	r := NewRouter(RouterParams{
		HealthHandler:   handler.NewHealthHandler(cfg),
		AuthHandler:     handler.NewAuthHandler(authUC, logger),
		UserHandler:     handler.NewUserHandler(userUC, logger),
		GoalHandler:     handler.NewGoalHandler(mockUsecase.NewMockGoalUsecase(t)),
		ProgressHandler: handler.NewProgressHandler(mockUsecase.NewMockProgressUsecase(t)),
		PlanHandler:     handler.NewPlanHandler(planUC),
		CatalogHandler:  handler.NewCatalogHandler(planUC),
		AuthMiddleware:  middleware.NewAuthMiddleware(authUC, cfg),
	})

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)

	return routerFixtures{echo: e, authUC: authUC, userUC: userUC}
}

func listUsers(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_ListUsers_AuthDisabledIsOpen(t *testing.T) {
	fx := createTestRouter(t, false)
	fx.userUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{}, nil)

	rec := listUsers(fx.echo, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ListUsers_AuthEnabledNeedsToken(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		fx := createTestRouter(t, true)

		rec := listUsers(fx.echo, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		fx := createTestRouter(t, true)
		fx.authUC.EXPECT().Authenticate(mock.Anything, "access-token").Return(uuid.New(), nil)
		fx.userUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{}, nil)

		rec := listUsers(fx.echo, "Bearer access-token")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
