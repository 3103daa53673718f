package planner_test

import (
	"math"
	"testing"

	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/planner"
	"healthplanner/internal/infra/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyFoods struct{}

func (emptyFoods) Foods() []*entity.FoodItem { return nil }

func (emptyFoods) FoodsByCategory(entity.FoodCategory) []*entity.FoodItem { return nil }

func newMealPlanner() *planner.MealPlanner {
	return planner.NewMealPlanner(catalog.NewStatic())
}

func TestMealPlanner_Generate_TotalWithinBand(t *testing.T) {
	p := newMealPlanner()

	for _, goal := range entity.FitnessGoals {
		for _, target := range []float64{1200, 1800, 2500, 3400} {
			plan, err := p.Generate(planner.MealPlanRequest{TargetCalories: target, Goal: goal})
			require.NoError(t, err)

			require.Len(t, plan.Meals, 3)
			assert.Equal(t, entity.MealBreakfast, plan.Meals[0].Type)
			assert.Equal(t, entity.MealLunch, plan.Meals[1].Type)
			assert.Equal(t, entity.MealDinner, plan.Meals[2].Type)

			assert.InDelta(t, target, plan.TotalCalories, target*0.05, "goal=%s target=%v", goal, target)

			sum := 0.0
			for _, meal := range plan.Meals {
				sum += meal.TotalCalories
			}
			assert.InDelta(t, sum, plan.TotalCalories, 0.1)
		}
	}
}

func TestMealPlanner_Generate_1800WithinReferenceBand(t *testing.T) {
	plan, err := newMealPlanner().Generate(planner.MealPlanRequest{TargetCalories: 1800, Goal: entity.GoalMaintenance})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, plan.TotalCalories, 1600.0)
	assert.LessOrEqual(t, plan.TotalCalories, 2000.0)
	assert.Len(t, plan.Tips, 4)
}

func TestMealPlanner_Generate_SplitFollowsGoal(t *testing.T) {
	p := newMealPlanner()

	loss, err := p.Generate(planner.MealPlanRequest{TargetCalories: 2000, Goal: entity.GoalWeightLoss})
	require.NoError(t, err)
	assert.InDelta(t, 600, loss.Meals[0].TotalCalories, 20)
	assert.InDelta(t, 800, loss.Meals[1].TotalCalories, 20)
	assert.InDelta(t, 600, loss.Meals[2].TotalCalories, 20)

	gain, err := p.Generate(planner.MealPlanRequest{TargetCalories: 2000, Goal: entity.GoalMuscleGain})
	require.NoError(t, err)
	assert.InDelta(t, 500, gain.Meals[0].TotalCalories, 20)
	assert.InDelta(t, 700, gain.Meals[1].TotalCalories, 20)
	assert.InDelta(t, 800, gain.Meals[2].TotalCalories, 20)
}

func TestMealPlanner_Generate_MealsAreDiverse(t *testing.T) {
	plan, err := newMealPlanner().Generate(planner.MealPlanRequest{TargetCalories: 2200, Goal: entity.GoalWeightGain})
	require.NoError(t, err)

	for _, meal := range plan.Meals {
		categories := map[entity.FoodCategory]bool{}
		for _, item := range meal.Items {
			categories[item.Food.Category] = true
			assert.Positive(t, item.AmountG)
		}

		assert.True(t, categories[entity.FoodProtein], "%s has no protein", meal.Type)
		assert.True(t, categories[entity.FoodCarbs], "%s has no carbs", meal.Type)
		assert.True(t, categories[entity.FoodFat] || categories[entity.FoodVegetable], "%s has no fat or vegetable", meal.Type)
	}
}

func TestMealPlanner_Generate_SnacksCountTowardTarget(t *testing.T) {
	plan, err := newMealPlanner().Generate(planner.MealPlanRequest{TargetCalories: 1800, Goal: entity.GoalWeightLoss, IncludeSnacks: true})
	require.NoError(t, err)

	require.Len(t, plan.Meals, 4)
	assert.Equal(t, entity.MealSnack, plan.Meals[3].Type)
	assert.InDelta(t, 180, plan.Meals[3].TotalCalories, 10)
	assert.InDelta(t, 1800, plan.TotalCalories, 90)
}

func TestMealPlanner_Generate_IsDeterministic(t *testing.T) {
	p := newMealPlanner()
	req := planner.MealPlanRequest{TargetCalories: 2100, Goal: entity.GoalMaintenance, Variant: 2}

	first, err := p.Generate(req)
	require.NoError(t, err)
	second, err := p.Generate(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMealPlanner_Generate_InvalidInput(t *testing.T) {
	p := newMealPlanner()

	_, err := p.Generate(planner.MealPlanRequest{TargetCalories: 0, Goal: entity.GoalMaintenance})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	_, err = p.Generate(planner.MealPlanRequest{TargetCalories: 1800, Goal: "lose"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestMealPlanner_Generate_EmptyCatalog(t *testing.T) {
	_, err := planner.NewMealPlanner(emptyFoods{}).Generate(planner.MealPlanRequest{TargetCalories: 1800, Goal: entity.GoalMaintenance})

	assert.ErrorIs(t, err, domainerrors.ErrCatalogExhausted)
}

func TestMealPlanner_Recommendations(t *testing.T) {
	p := newMealPlanner()

	tests := []struct {
		mealType entity.MealType
		target   float64
		band     float64
	}{
		{entity.MealBreakfast, 500, 100},
		{entity.MealLunch, 700, 100},
		{entity.MealDinner, 800, 150},
		{entity.MealSnack, 200, 100},
		{entity.MealBreakfast, 150, 100},
	}

	for _, tt := range tests {
		t.Run(tt.mealType.String(), func(t *testing.T) {
			band, err := planner.RecommendationBand(tt.mealType)
			require.NoError(t, err)
			assert.InDelta(t, tt.band, band, 0)

			meals, err := p.Recommendations(tt.mealType, tt.target)
			require.NoError(t, err)
			require.Len(t, meals, planner.RecommendationCount)

			for _, meal := range meals {
				assert.Equal(t, tt.mealType, meal.Type)
				assert.LessOrEqual(t, math.Abs(meal.TotalCalories-tt.target), tt.band)
			}

			assert.NotEqual(t, meals[0].Items[0].Food.ID, meals[1].Items[0].Food.ID)
			assert.NotEqual(t, meals[1].Items[0].Food.ID, meals[2].Items[0].Food.ID)
		})
	}
}

func TestMealPlanner_Recommendations_InvalidInput(t *testing.T) {
	p := newMealPlanner()

	_, err := p.Recommendations("brunch", 500)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)

	_, err = p.Recommendations(entity.MealLunch, -1)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestMealPlanner_RejectsNonFiniteCalories(t *testing.T) {
	p := newMealPlanner()

	for _, target := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		meals, err := p.Recommendations(entity.MealBreakfast, target)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument, "target=%v", target)
		assert.Nil(t, meals)

		plan, err := p.Generate(planner.MealPlanRequest{TargetCalories: target, Goal: entity.GoalMaintenance})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument, "target=%v", target)
		assert.Nil(t, plan)
	}
}
