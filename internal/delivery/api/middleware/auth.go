package middleware

import (
	"strings"

	"healthplanner/config"
	deliverycontext "healthplanner/internal/delivery/context"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware guards user-scoped routes with bearer access tokens. When
// auth is disabled in config both middlewares pass requests through.
type AuthMiddleware struct {
	authUC  usecase.AuthUsecase
	enabled bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:  authUC,
		enabled: cfg.Auth != nil && cfg.Auth.Enabled,
	}
}

// Authenticate validates the access token and records its user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok {
			return errors.Wrap(domainerrors.ErrUnauthorized, "bearer token required")
		}

		userID, err := m.authUC.Authenticate(c.Request().Context(), strings.TrimSpace(tokenString))
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// RequireSelf rejects requests whose token belongs to a different user than
// the :userId path parameter. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireSelf(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		userID, ok := deliverycontext.GetUserID(c)
		if !ok {
			return errors.Wrap(domainerrors.ErrUnauthorized, "no authenticated user")
		}
		pathID, err := uuid.Parse(c.Param("userId"))
		if err != nil || pathID != userID {
			return errors.Wrap(domainerrors.ErrForbidden, "token subject does not own this resource")
		}

		return next(c)
	}
}
