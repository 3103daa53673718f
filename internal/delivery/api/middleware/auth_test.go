package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"healthplanner/config"
	deliverycontext "healthplanner/internal/delivery/context"
	domainerrors "healthplanner/internal/domain/errors"
	mockUsecase "healthplanner/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthConfig(enabled bool) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{Enabled: enabled}}
}

// newGuardedEcho mounts a handler that echoes the authenticated user id.
func newGuardedEcho(m *AuthMiddleware) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.GET("/users/:userId", func(c echo.Context) error {
		id, _ := deliverycontext.GetUserID(c)
		return c.String(http.StatusOK, id.String())
	}, m.Authenticate, m.RequireSelf)

	return e
}

func serve(e *echo.Echo, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	e := newGuardedEcho(NewAuthMiddleware(uc, newAuthConfig(false)))

	rec := serve(e, "/users/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_NilAuthConfigIsDisabled(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	e := newGuardedEcho(NewAuthMiddleware(uc, &config.Config{}))

	rec := serve(e, "/users/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Enabled(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		target        string
		authorization string
		setup         func(uc *mockUsecase.MockAuthUsecase)
		wantStatus    int
		wantCode      string
	}{
		{
			name:       "missing header",
			target:     "/users/" + userID.String(),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:          "not a bearer token",
			target:        "/users/" + userID.String(),
			authorization: "Basic Zm9vOmJhcg==",
			wantStatus:    http.StatusUnauthorized,
			wantCode:      "UNAUTHORIZED",
		},
		{
			name:          "rejected token",
			target:        "/users/" + userID.String(),
			authorization: "Bearer expired",
			setup: func(uc *mockUsecase.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "expired").
					Return(uuid.Nil, errors.Wrap(domainerrors.ErrUnauthorized, "token expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:          "other user",
			target:        "/users/" + uuid.NewString(),
			authorization: "Bearer good",
			setup: func(uc *mockUsecase.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "good").Return(userID, nil)
			},
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:          "owner",
			target:        "/users/" + userID.String(),
			authorization: "Bearer good",
			setup: func(uc *mockUsecase.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "good").Return(userID, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockAuthUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			e := newGuardedEcho(NewAuthMiddleware(uc, newAuthConfig(true)))

			rec := serve(e, tt.target, tt.authorization)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), `"code":"`+tt.wantCode+`"`)
			} else {
				assert.Equal(t, userID.String(), rec.Body.String())
			}
		})
	}
}
