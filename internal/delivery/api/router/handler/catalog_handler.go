package handler

import (
	"net/http"
	"strings"

	"healthplanner/internal/delivery/api/response"
	"healthplanner/internal/domain/entity"
	"healthplanner/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler exposes the read-only food and exercise tables.
type CatalogHandler struct {
	uc usecase.PlanUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.PlanUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListFoods accepts an optional ?category=.
func (h *CatalogHandler) ListFoods(c echo.Context) error {
	var category *entity.FoodCategory
	if raw := strings.TrimSpace(c.QueryParam("category")); raw != "" {
		parsed, err := entity.ParseFoodCategory(raw)
		if err != nil {
			return err
		}
		category = &parsed
	}

	return response.Success(c, http.StatusOK, h.uc.ListFoods(c.Request().Context(), category))
}

// ListExercises accepts optional ?category= and ?maxDifficulty=.
func (h *CatalogHandler) ListExercises(c echo.Context) error {
	var query usecase.ExerciseQuery
	if raw := strings.TrimSpace(c.QueryParam("category")); raw != "" {
		parsed, err := entity.ParseExerciseCategory(raw)
		if err != nil {
			return err
		}
		query.Category = &parsed
	}
	if raw := strings.TrimSpace(c.QueryParam("maxDifficulty")); raw != "" {
		parsed, err := entity.ParseDifficulty(raw)
		if err != nil {
			return err
		}
		query.MaxDifficulty = &parsed
	}

	return response.Success(c, http.StatusOK, h.uc.ListExercises(c.Request().Context(), query))
}
