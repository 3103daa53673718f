package usecase

import (
	"context"

	"healthplanner/internal/domain/entity"
	"healthplanner/internal/domain/nutrition"
	"healthplanner/internal/domain/planner"

	"github.com/google/uuid"
)

// NutritionOutput is the energy budget of a profile together with its BMI.
type NutritionOutput struct {
	Profile  entity.Profile
	Calories nutrition.CalorieResult
	BMI      nutrition.BMIResult
}

// ExerciseQuery filters the exercise catalog. Nil fields match everything.
type ExerciseQuery struct {
	Category      *entity.ExerciseCategory
	MaxDifficulty *entity.Difficulty
}

// PlanUsecase exposes the calculators and planners, both for ad-hoc profiles
// and for stored users.
type PlanUsecase interface {
	CalculateNutrition(ctx context.Context, profile entity.Profile) (*NutritionOutput, error)
	GenerateMealPlan(ctx context.Context, req planner.MealPlanRequest) (*entity.MealPlan, error)
	RecommendMeals(ctx context.Context, mealType entity.MealType, calories float64) ([]*entity.Meal, error)
	GenerateWorkoutPlan(ctx context.Context, level entity.ActivityLevel, goal entity.FitnessGoal) (*entity.WorkoutPlan, error)

	ListFoods(ctx context.Context, category *entity.FoodCategory) []*entity.FoodItem
	ListExercises(ctx context.Context, query ExerciseQuery) []*entity.Exercise

	UserNutrition(ctx context.Context, userID uuid.UUID) (*NutritionOutput, error)
	// UserMealPlan plans a day at the user's target calories and goal.
	UserMealPlan(ctx context.Context, userID uuid.UUID, includeSnacks bool, variant int) (*entity.MealPlan, error)
	UserWorkoutPlan(ctx context.Context, userID uuid.UUID) (*entity.WorkoutPlan, error)
}
