package impl

import (
	"context"
	"testing"

	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/nutrition"
	"healthplanner/internal/domain/planner"
	"healthplanner/internal/domain/repository"
	"healthplanner/internal/infra/catalog"
	"healthplanner/internal/infra/random"
	mockRepo "healthplanner/internal/mocks/repository"
	"healthplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type planServiceFixtures struct {
	service  usecase.PlanUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestPlanService(t *testing.T) planServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	static := catalog.NewStatic()

	return planServiceFixtures{
		service: NewPlanService(PlanServiceParams{
			UserRepo:  userRepo,
			Foods:     static,
			Exercises: static,
			Random:    random.New(11),
			Logger:    newDiscardLogger(),
		}),
		userRepo: userRepo,
	}
}

func TestPlanService_CalculateNutrition(t *testing.T) {
	fx := createTestPlanService(t)

	out, err := fx.service.CalculateNutrition(context.Background(), entity.Profile{
		Age:           30,
		WeightKg:      80,
		HeightCm:      180,
		Gender:        entity.GenderMale,
		ActivityLevel: entity.ActivitySedentary,
		Goal:          entity.GoalMaintenance,
	})

	require.NoError(t, err)
	assert.InDelta(t, 1780, out.Calories.BMR, 0.001)
	assert.InDelta(t, 2136, out.Calories.TDEE, 0.001)
	assert.InDelta(t, 2136, out.Calories.TargetCalories, 0.001)
	assert.InDelta(t, 24.69, out.BMI.Value, 0.01)
	assert.Equal(t, nutrition.BMINormal, out.BMI.Category)
}

func TestPlanService_CalculateNutrition_InvalidEnum(t *testing.T) {
	fx := createTestPlanService(t)

	_, err := fx.service.CalculateNutrition(context.Background(), entity.Profile{
		Age: 30, WeightKg: 80, HeightCm: 180, Gender: "x", ActivityLevel: entity.ActivityLight, Goal: entity.GoalMaintenance,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestPlanService_GenerateMealPlan(t *testing.T) {
	fx := createTestPlanService(t)

	plan, err := fx.service.GenerateMealPlan(context.Background(), planner.MealPlanRequest{TargetCalories: 2000, Goal: entity.GoalWeightLoss})

	require.NoError(t, err)
	assert.Len(t, plan.Meals, 3)
	assert.InDelta(t, 2000, plan.TotalCalories, 100)
}

func TestPlanService_RecommendMeals(t *testing.T) {
	fx := createTestPlanService(t)

	meals, err := fx.service.RecommendMeals(context.Background(), entity.MealLunch, 650)

	require.NoError(t, err)
	assert.Len(t, meals, planner.RecommendationCount)
}

func TestPlanService_ListFoods(t *testing.T) {
	fx := createTestPlanService(t)
	ctx := context.Background()
	fruit := entity.FoodFruit

	all := fx.service.ListFoods(ctx, nil)
	fruits := fx.service.ListFoods(ctx, &fruit)

	assert.NotEmpty(t, fruits)
	assert.Less(t, len(fruits), len(all))
	for _, f := range fruits {
		assert.Equal(t, entity.FoodFruit, f.Category)
	}
}

func TestPlanService_ListExercises(t *testing.T) {
	fx := createTestPlanService(t)
	ctx := context.Background()
	strength := entity.ExerciseStrength
	beginner := entity.DifficultyBeginner

	all := fx.service.ListExercises(ctx, usecase.ExerciseQuery{})
	easy := fx.service.ListExercises(ctx, usecase.ExerciseQuery{MaxDifficulty: &beginner})
	easyStrength := fx.service.ListExercises(ctx, usecase.ExerciseQuery{Category: &strength, MaxDifficulty: &beginner})

	assert.Less(t, len(easy), len(all))
	for _, e := range easy {
		assert.Equal(t, entity.DifficultyBeginner, e.Difficulty)
	}
	require.NotEmpty(t, easyStrength)
	for _, e := range easyStrength {
		assert.Equal(t, entity.ExerciseStrength, e.Category)
		assert.Equal(t, entity.DifficultyBeginner, e.Difficulty)
	}
}

func TestPlanService_UserPlans(t *testing.T) {
	fx := createTestPlanService(t)
	ctx := context.Background()
	user := newTestUser()
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	nutritionOut, err := fx.service.UserNutrition(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Profile(), nutritionOut.Profile)

	mealPlan, err := fx.service.UserMealPlan(ctx, user.ID, true, 1)
	require.NoError(t, err)
	assert.Len(t, mealPlan.Meals, 4)
	assert.Equal(t, user.Goal, mealPlan.Goal)
	assert.InDelta(t, nutritionOut.Calories.TargetCalories, mealPlan.TargetCalories, 0.5)

	workoutPlan, err := fx.service.UserWorkoutPlan(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ActivityLevel, workoutPlan.ActivityLevel)
	assert.Equal(t, 4, workoutPlan.SessionsPerWeek)
}

func TestPlanService_UserPlans_UnknownUser(t *testing.T) {
	fx := createTestPlanService(t)
	ctx := context.Background()
	id := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UserNutrition(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = fx.service.UserMealPlan(ctx, id, false, 0)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = fx.service.UserWorkoutPlan(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
