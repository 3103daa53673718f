package handler

import (
	"net/http"
	"testing"
	"time"

	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/repository"
	mockUsecase "healthplanner/internal/mocks/usecase"
	"healthplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type progressHandlerFixtures struct {
	echo *echo.Echo
	uc   *mockUsecase.MockProgressUsecase
}

func createTestProgressHandler(t *testing.T) progressHandlerFixtures {
	uc := mockUsecase.NewMockProgressUsecase(t)
	h := NewProgressHandler(uc)

	e := newTestEcho()
	e.POST("/users/:userId/progress", h.CreateEntry)
	e.GET("/users/:userId/progress", h.ListEntries)
	e.GET("/users/:userId/progress/stats", h.Stats)
	e.GET("/users/:userId/progress/:entryId", h.GetEntry)
	e.PUT("/users/:userId/progress/:entryId", h.UpdateEntry)
	e.DELETE("/users/:userId/progress/:entryId", h.DeleteEntry)

	return progressHandlerFixtures{echo: e, uc: uc}
}

func TestProgressHandler_CreateEntry(t *testing.T) {
	fx := createTestProgressHandler(t)
	userID := uuid.New()
	goalID := uuid.New()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	fx.uc.EXPECT().
		CreateEntry(mock.Anything, userID, mock.MatchedBy(func(in *usecase.CreateProgressInput) bool {
			return in.GoalID != nil && *in.GoalID == goalID &&
				in.Date != nil && in.Date.Equal(day) &&
				in.WeightKg != nil && *in.WeightKg == 71.5 &&
				in.Mood != nil && *in.Mood == 8 &&
				in.Calories == nil &&
				in.Notes == "rest day"
		})).
		Return(&entity.ProgressEntry{ID: uuid.New(), UserID: userID}, nil)

	rec, _ := doRequest(t, fx.echo, http.MethodPost, "/users/"+userID.String()+"/progress", map[string]any{
		"goalId":   goalID.String(),
		"date":     "2026-03-01",
		"weightKg": 71.5,
		"mood":     8,
		"notes":    "rest day",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProgressHandler_CreateEntry_OutOfRange(t *testing.T) {
	fx := createTestProgressHandler(t)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/users/"+uuid.NewString()+"/progress", map[string]any{
		"mood":       0,
		"sleepHours": 25,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{
		"mood":       "must be at least 1",
		"sleepHours": "must be at most 24",
	}, env.Error.Details)
}

func TestProgressHandler_CreateEntry_BadDate(t *testing.T) {
	fx := createTestProgressHandler(t)

	rec, env := doRequest(t, fx.echo, http.MethodPost, "/users/"+uuid.NewString()+"/progress", map[string]any{
		"date": "yesterday",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
}

func TestProgressHandler_ListEntries_Filters(t *testing.T) {
	fx := createTestProgressHandler(t)
	userID := uuid.New()
	goalID := uuid.New()
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)

	fx.uc.EXPECT().
		ListEntries(mock.Anything, userID, repository.ProgressFilter{GoalID: &goalID, StartDate: &start, EndDate: &end}).
		Return([]*entity.ProgressEntry{}, nil)

	rec, env := doRequest(t, fx.echo, http.MethodGet,
		"/users/"+userID.String()+"/progress?goalId="+goalID.String()+"&startDate=2026-02-01&endDate=2026-02-28T12:00:00Z", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestProgressHandler_ListEntries_BadGoalID(t *testing.T) {
	fx := createTestProgressHandler(t)

	rec, _ := doRequest(t, fx.echo, http.MethodGet, "/users/"+uuid.NewString()+"/progress?goalId=nope", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProgressHandler_GetEntry_NotFound(t *testing.T) {
	fx := createTestProgressHandler(t)
	userID, entryID := uuid.New(), uuid.New()
	fx.uc.EXPECT().GetEntry(mock.Anything, userID, entryID).Return(nil, domainerrors.ErrProgressNotFound)

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/users/"+userID.String()+"/progress/"+entryID.String(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROGRESS_NOT_FOUND", env.Error.Code)
}

func TestProgressHandler_UpdateEntry(t *testing.T) {
	fx := createTestProgressHandler(t)
	userID, entryID := uuid.New(), uuid.New()

	fx.uc.EXPECT().
		UpdateEntry(mock.Anything, userID, entryID, mock.MatchedBy(func(in *usecase.UpdateProgressInput) bool {
			return in.Notes != nil && *in.Notes == "" && in.Date == nil && in.Steps != nil && *in.Steps == 9000
		})).
		Return(&entity.ProgressEntry{ID: entryID, UserID: userID}, nil)

	rec, _ := doRequest(t, fx.echo, http.MethodPut, "/users/"+userID.String()+"/progress/"+entryID.String(), map[string]any{
		"steps": 9000,
		"notes": "",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProgressHandler_DeleteEntry(t *testing.T) {
	fx := createTestProgressHandler(t)
	userID, entryID := uuid.New(), uuid.New()
	fx.uc.EXPECT().DeleteEntry(mock.Anything, userID, entryID).Return(nil)

	rec, _ := doRequest(t, fx.echo, http.MethodDelete, "/users/"+userID.String()+"/progress/"+entryID.String(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestProgressHandler_Stats(t *testing.T) {
	t.Run("defaults to thirty days", func(t *testing.T) {
		fx := createTestProgressHandler(t)
		userID := uuid.New()
		fx.uc.EXPECT().Stats(mock.Anything, userID, 30).Return(&entity.ProgressStats{
			Days:        30,
			WeightData:  []entity.DatedValue{},
			CalorieData: []entity.DatedValue{},
		}, nil)

		rec, env := doRequest(t, fx.echo, http.MethodGet, "/users/"+userID.String()+"/progress/stats", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		stats := decodeData[map[string]any](t, env)
		assert.InDelta(t, 30, stats["days"], 0)
		assert.Equal(t, []any{}, stats["weightData"])
	})

	t.Run("explicit window", func(t *testing.T) {
		fx := createTestProgressHandler(t)
		userID := uuid.New()
		fx.uc.EXPECT().Stats(mock.Anything, userID, 7).Return(&entity.ProgressStats{Days: 7}, nil)

		rec, _ := doRequest(t, fx.echo, http.MethodGet, "/users/"+userID.String()+"/progress/stats?days=7", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not a number", func(t *testing.T) {
		fx := createTestProgressHandler(t)

		rec, env := doRequest(t, fx.echo, http.MethodGet, "/users/"+uuid.NewString()+"/progress/stats?days=week", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ARGUMENT", env.Error.Code)
	})
}
