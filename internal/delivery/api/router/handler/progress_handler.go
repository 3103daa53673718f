package handler

import (
	"net/http"

	"healthplanner/internal/delivery/api/response"
	"healthplanner/internal/domain/repository"
	"healthplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultStatsDays = 30

// metricsRequest mirrors the measurement ranges enforced by the usecase so
// that violations are reported per field.
type metricsRequest struct {
	WeightKg        *float64 `json:"weightKg" validate:"omitempty,gte=20,lte=500"`
	BodyFatPct      *float64 `json:"bodyFatPct" validate:"omitempty,gte=0,lte=100"`
	MuscleMassKg    *float64 `json:"muscleMassKg" validate:"omitempty,gte=0,lte=200"`
	Calories        *float64 `json:"calories" validate:"omitempty,gte=0,lte=10000"`
	ProteinG        *float64 `json:"proteinG" validate:"omitempty,gte=0,lte=1000"`
	CarbsG          *float64 `json:"carbsG" validate:"omitempty,gte=0,lte=2000"`
	FatG            *float64 `json:"fatG" validate:"omitempty,gte=0,lte=500"`
	WaterL          *float64 `json:"waterL" validate:"omitempty,gte=0,lte=20"`
	SleepHours      *float64 `json:"sleepHours" validate:"omitempty,gte=0,lte=24"`
	Steps           *int     `json:"steps" validate:"omitempty,gte=0,lte=100000"`
	ExerciseMinutes *int     `json:"exerciseMinutes" validate:"omitempty,gte=0,lte=1440"`
	Mood            *int     `json:"mood" validate:"omitempty,gte=1,lte=10"`
	Energy          *int     `json:"energy" validate:"omitempty,gte=1,lte=10"`
}

func (r metricsRequest) toMetrics() usecase.ProgressMetrics {
	return usecase.ProgressMetrics{
		WeightKg:        r.WeightKg,
		BodyFatPct:      r.BodyFatPct,
		MuscleMassKg:    r.MuscleMassKg,
		Calories:        r.Calories,
		ProteinG:        r.ProteinG,
		CarbsG:          r.CarbsG,
		FatG:            r.FatG,
		WaterL:          r.WaterL,
		SleepHours:      r.SleepHours,
		Steps:           r.Steps,
		ExerciseMinutes: r.ExerciseMinutes,
		Mood:            r.Mood,
		Energy:          r.Energy,
	}
}

type progressRequest struct {
	GoalID *uuid.UUID `json:"goalId"`
	Date   *string    `json:"date"`
	metricsRequest
	Notes *string `json:"notes" validate:"omitempty,max=1000"`
}

// ProgressHandler serves /users/:userId/progress.
type ProgressHandler struct {
	uc usecase.ProgressUsecase
}

// NewProgressHandler is the constructor for ProgressHandler, injected by Fx.
func NewProgressHandler(uc usecase.ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{uc: uc}
}

func (h *ProgressHandler) CreateEntry(c echo.Context) error {
	userID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	var req progressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	date, err := optionalDate("date", req.Date)
	if err != nil {
		return err
	}

	input := &usecase.CreateProgressInput{
		GoalID:          req.GoalID,
		Date:            date,
		ProgressMetrics: req.toMetrics(),
	}
	if req.Notes != nil {
		input.Notes = *req.Notes
	}

	entry, err := h.uc.CreateEntry(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry)
}

// ListEntries supports goalId, startDate and endDate filters.
func (h *ProgressHandler) ListEntries(c echo.Context) error {
	userID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	var filter repository.ProgressFilter
	if filter.GoalID, err = optionalUUIDQuery(c, "goalId"); err != nil {
		return err
	}
	if filter.StartDate, err = optionalDateQuery(c, "startDate"); err != nil {
		return err
	}
	if filter.EndDate, err = optionalDateQuery(c, "endDate"); err != nil {
		return err
	}

	entries, err := h.uc.ListEntries(c.Request().Context(), userID, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries)
}

func (h *ProgressHandler) GetEntry(c echo.Context) error {
	userID, entryID, err := progressParams(c)
	if err != nil {
		return err
	}

	entry, err := h.uc.GetEntry(c.Request().Context(), userID, entryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry)
}

func (h *ProgressHandler) UpdateEntry(c echo.Context) error {
	userID, entryID, err := progressParams(c)
	if err != nil {
		return err
	}

	var req progressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	date, err := optionalDate("date", req.Date)
	if err != nil {
		return err
	}

	entry, err := h.uc.UpdateEntry(c.Request().Context(), userID, entryID, &usecase.UpdateProgressInput{
		GoalID:          req.GoalID,
		Date:            date,
		ProgressMetrics: req.toMetrics(),
		Notes:           req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry)
}

func (h *ProgressHandler) DeleteEntry(c echo.Context) error {
	userID, entryID, err := progressParams(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteEntry(c.Request().Context(), userID, entryID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Stats aggregates the trailing ?days window, 30 by default.
func (h *ProgressHandler) Stats(c echo.Context) error {
	userID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}
	days, err := intQuery(c, "days", defaultStatsDays)
	if err != nil {
		return err
	}

	stats, err := h.uc.Stats(c.Request().Context(), userID, days)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

func progressParams(c echo.Context) (userID, entryID uuid.UUID, err error) {
	if userID, err = uuidParam(c, "userId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if entryID, err = uuidParam(c, "entryId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return userID, entryID, nil
}
