package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"healthplanner/internal/delivery/api/response"
	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/nutrition"
	"healthplanner/internal/domain/planner"
	"healthplanner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type profileRequest struct {
	Age           int     `json:"age" validate:"gte=13,lte=120"`
	WeightKg      float64 `json:"weightKg" validate:"gte=20,lte=500"`
	HeightCm      float64 `json:"heightCm" validate:"gte=100,lte=250"`
	Gender        string  `json:"gender" validate:"required"`
	ActivityLevel string  `json:"activityLevel" validate:"required"`
	Goal          string  `json:"goal" validate:"required"`
}

func (r *profileRequest) toProfile() (entity.Profile, error) {
	gender, err := entity.ParseGender(r.Gender)
	if err != nil {
		return entity.Profile{}, err
	}
	level, err := entity.ParseActivityLevel(r.ActivityLevel)
	if err != nil {
		return entity.Profile{}, err
	}
	goal, err := entity.ParseFitnessGoal(r.Goal)
	if err != nil {
		return entity.Profile{}, err
	}

	return entity.Profile{
		Age:           r.Age,
		WeightKg:      r.WeightKg,
		HeightCm:      r.HeightCm,
		Gender:        gender,
		ActivityLevel: level,
		Goal:          goal,
	}, nil
}

type mealPlanRequest struct {
	TargetCalories float64 `json:"targetCalories" validate:"gt=0,lte=10000"`
	Goal           string  `json:"goal" validate:"required"`
	IncludeSnacks  bool    `json:"includeSnacks"`
	Variant        int     `json:"variant" validate:"gte=0"`
}

type workoutPlanRequest struct {
	ActivityLevel string `json:"activityLevel" validate:"required"`
	Goal          string `json:"goal" validate:"required"`
}

type nutritionResponse struct {
	Profile  entity.Profile          `json:"profile"`
	Calories nutrition.CalorieResult `json:"calories"`
	BMI      nutrition.BMIResult     `json:"bmi"`
}

func newNutritionResponse(out *usecase.NutritionOutput) nutritionResponse {
	return nutritionResponse{Profile: out.Profile, Calories: out.Calories, BMI: out.BMI}
}

// PlanHandler serves the stateless calculators and the per-user plans.
type PlanHandler struct {
	uc usecase.PlanUsecase
}

// NewPlanHandler is the constructor for PlanHandler, injected by Fx.
func NewPlanHandler(uc usecase.PlanUsecase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// CalculateNutrition returns BMR, TDEE, target calories, macros and BMI.
func (h *PlanHandler) CalculateNutrition(c echo.Context) error {
	var req profileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	profile, err := req.toProfile()
	if err != nil {
		return err
	}

	out, err := h.uc.CalculateNutrition(c.Request().Context(), profile)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newNutritionResponse(out))
}

func (h *PlanHandler) GenerateMealPlan(c echo.Context) error {
	var req mealPlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	goal, err := entity.ParseFitnessGoal(req.Goal)
	if err != nil {
		return err
	}

	plan, err := h.uc.GenerateMealPlan(c.Request().Context(), planner.MealPlanRequest{
		TargetCalories: req.TargetCalories,
		Goal:           goal,
		IncludeSnacks:  req.IncludeSnacks,
		Variant:        req.Variant,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan)
}

// RecommendMeals answers ?mealType=&calories= with alternative meals.
func (h *PlanHandler) RecommendMeals(c echo.Context) error {
	mealType, err := entity.ParseMealType(c.QueryParam("mealType"))
	if err != nil {
		return err
	}
	calories, err := strconv.ParseFloat(strings.TrimSpace(c.QueryParam("calories")), 64)
	if err != nil || calories <= 0 || math.IsNaN(calories) || math.IsInf(calories, 0) {
		return domainerrors.InvalidArgument("calories must be a positive number")
	}

	meals, err := h.uc.RecommendMeals(c.Request().Context(), mealType, calories)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meals)
}

func (h *PlanHandler) GenerateWorkoutPlan(c echo.Context) error {
	var req workoutPlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	level, err := entity.ParseActivityLevel(req.ActivityLevel)
	if err != nil {
		return err
	}
	goal, err := entity.ParseFitnessGoal(req.Goal)
	if err != nil {
		return err
	}

	plan, err := h.uc.GenerateWorkoutPlan(c.Request().Context(), level, goal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan)
}

func (h *PlanHandler) UserNutrition(c echo.Context) error {
	userID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	out, err := h.uc.UserNutrition(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newNutritionResponse(out))
}

// UserMealPlan plans a day for the stored profile. Snacks are included
// unless ?includeSnacks=false.
func (h *PlanHandler) UserMealPlan(c echo.Context) error {
	userID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}
	includeSnacks, err := boolQuery(c, "includeSnacks", true)
	if err != nil {
		return err
	}
	variant, err := intQuery(c, "variant", 0)
	if err != nil {
		return err
	}
	if variant < 0 {
		return domainerrors.InvalidArgument("variant must not be negative")
	}

	plan, err := h.uc.UserMealPlan(c.Request().Context(), userID, includeSnacks, variant)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan)
}

func (h *PlanHandler) UserWorkoutPlan(c echo.Context) error {
	userID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	plan, err := h.uc.UserWorkoutPlan(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan)
}
