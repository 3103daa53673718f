// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"
	"strings"
	"time"

	domainerrors "healthplanner/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateLayout is accepted alongside RFC 3339 wherever a date is read.
const dateLayout = time.DateOnly

// bindAndValidate decodes the request body into req and runs the echo
// validator over it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidArgument.WithDetails("malformed request body"))
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.InvalidArgument("%s must be a UUID", name)
	}

	return id, nil
}

func optionalUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.InvalidArgument("%s must be a UUID", name)
	}

	return &id, nil
}

func optionalDateQuery(c echo.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return nil, domainerrors.InvalidArgument("%s must be YYYY-MM-DD or RFC 3339", name)
	}

	return &t, nil
}

func intQuery(c echo.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.InvalidArgument("%s must be an integer", name)
	}

	return n, nil
}

func boolQuery(c echo.Context, name string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domainerrors.InvalidArgument("%s must be a boolean", name)
	}

	return b, nil
}

// parseDate reads a calendar date or a full timestamp, always in UTC.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.WithStack(err)
	}

	return t.UTC(), nil
}

func optionalDate(name string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := parseDate(strings.TrimSpace(*raw))
	if err != nil {
		return nil, domainerrors.InvalidArgument("%s must be YYYY-MM-DD or RFC 3339", name)
	}

	return &t, nil
}
