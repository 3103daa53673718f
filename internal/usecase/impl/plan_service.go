package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "healthplanner/internal/delivery/context"
	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/nutrition"
	"healthplanner/internal/domain/planner"
	"healthplanner/internal/domain/repository"
	"healthplanner/internal/domain/service"
	"healthplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type planService struct {
	userRepo       repository.UserRepository
	foods          repository.FoodCatalog
	exercises      repository.ExerciseCatalog
	mealPlanner    *planner.MealPlanner
	workoutPlanner *planner.WorkoutPlanner
	logger         *slog.Logger
}

// PlanServiceParams holds dependencies for PlanService, injected by Fx.
type PlanServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Foods     repository.FoodCatalog
	Exercises repository.ExerciseCatalog
	Random    service.RandomSource
	Logger    *slog.Logger
}

// NewPlanService is the constructor for planService.
func NewPlanService(params PlanServiceParams) usecase.PlanUsecase {
	return &planService{
		userRepo:       params.UserRepo,
		foods:          params.Foods,
		exercises:      params.Exercises,
		mealPlanner:    planner.NewMealPlanner(params.Foods),
		workoutPlanner: planner.NewWorkoutPlanner(params.Exercises, params.Random),
		logger:         params.Logger,
	}
}

func (srv *planService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CalculateNutrition runs the metabolic chain and BMI for a profile.
func (srv *planService) CalculateNutrition(_ context.Context, profile entity.Profile) (*usecase.NutritionOutput, error) {
	calories, err := nutrition.Calculate(profile)
	if err != nil {
		return nil, err
	}

	return &usecase.NutritionOutput{
		Profile:  profile,
		Calories: calories,
		BMI:      nutrition.CalculateBMI(profile.WeightKg, profile.HeightCm),
	}, nil
}

// GenerateMealPlan plans a day for an explicit target.
func (srv *planService) GenerateMealPlan(ctx context.Context, req planner.MealPlanRequest) (*entity.MealPlan, error) {
	plan, err := srv.mealPlanner.Generate(req)
	if err != nil {
		srv.log(ctx).Debug("Meal plan rejected", slog.Float64("target", req.TargetCalories), slog.Any("error", err))

		return nil, err
	}

	return plan, nil
}

// RecommendMeals returns alternative meals for one slot.
func (srv *planService) RecommendMeals(_ context.Context, mealType entity.MealType, calories float64) ([]*entity.Meal, error) {
	return srv.mealPlanner.Recommendations(mealType, calories)
}

// GenerateWorkoutPlan plans a week of sessions.
func (srv *planService) GenerateWorkoutPlan(_ context.Context, level entity.ActivityLevel, goal entity.FitnessGoal) (*entity.WorkoutPlan, error) {
	return srv.workoutPlanner.Generate(level, goal)
}

// ListFoods returns the food catalog, optionally narrowed to one category.
func (srv *planService) ListFoods(_ context.Context, category *entity.FoodCategory) []*entity.FoodItem {
	if category == nil {
		return srv.foods.Foods()
	}

	return srv.foods.FoodsByCategory(*category)
}

// ListExercises returns the exercise catalog filtered by query.
func (srv *planService) ListExercises(_ context.Context, query usecase.ExerciseQuery) []*entity.Exercise {
	ceiling := entity.DifficultyAdvanced
	if query.MaxDifficulty != nil {
		ceiling = *query.MaxDifficulty
	}

	if query.Category != nil {
		return srv.exercises.ExercisesByCategory(*query.Category, ceiling)
	}

	all := srv.exercises.Exercises()
	out := make([]*entity.Exercise, 0, len(all))
	for _, e := range all {
		if e.Difficulty.AtMost(ceiling) {
			out = append(out, e)
		}
	}

	return out
}

// UserNutrition computes the stored user's energy budget.
func (srv *planService) UserNutrition(ctx context.Context, userID uuid.UUID) (*usecase.NutritionOutput, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.CalculateNutrition(ctx, user.Profile())
}

// UserMealPlan plans a day at the user's rounded target calories.
func (srv *planService) UserMealPlan(ctx context.Context, userID uuid.UUID, includeSnacks bool, variant int) (*entity.MealPlan, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	calories, err := nutrition.Calculate(user.Profile())
	if err != nil {
		return nil, err
	}

	return srv.GenerateMealPlan(ctx, planner.MealPlanRequest{
		TargetCalories: math.Round(calories.TargetCalories),
		Goal:           user.Goal,
		IncludeSnacks:  includeSnacks,
		Variant:        variant,
	})
}

// UserWorkoutPlan plans a week for the user's activity level and goal.
func (srv *planService) UserWorkoutPlan(ctx context.Context, userID uuid.UUID) (*entity.WorkoutPlan, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.workoutPlanner.Generate(user.ActivityLevel, user.Goal)
}

func (srv *planService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to find user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
