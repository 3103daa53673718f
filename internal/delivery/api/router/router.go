// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"healthplanner/internal/delivery/api/middleware"
	"healthplanner/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	GoalHandler     *handler.GoalHandler
	ProgressHandler *handler.ProgressHandler
	PlanHandler     *handler.PlanHandler
	CatalogHandler  *handler.CatalogHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	goalHandler     *handler.GoalHandler
	progressHandler *handler.ProgressHandler
	planHandler     *handler.PlanHandler
	catalogHandler  *handler.CatalogHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		goalHandler:     params.GoalHandler,
		progressHandler: params.ProgressHandler,
		planHandler:     params.PlanHandler,
		catalogHandler:  params.CatalogHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	apiV1 := e.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// Stateless calculators
	calculatorGroup := apiV1.Group("/calculator")
	{
		calculatorGroup.POST("/nutrition", r.planHandler.CalculateNutrition)
		calculatorGroup.POST("/meal-plan", r.planHandler.GenerateMealPlan)
		calculatorGroup.GET("/meal-recommendations", r.planHandler.RecommendMeals)
		calculatorGroup.POST("/workout-plan", r.planHandler.GenerateWorkoutPlan)
	}

	catalogGroup := apiV1.Group("/catalog")
	{
		catalogGroup.GET("/foods", r.catalogHandler.ListFoods)
		catalogGroup.GET("/exercises", r.catalogHandler.ListExercises)
	}

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("", r.userHandler.CreateUser)
		// Listing exposes every account, so it needs a token once auth is enabled.
		usersGroup.GET("", r.userHandler.ListUsers, r.authMiddleware.Authenticate)
	}

	// Everything under a single user is owner-only once auth is enabled.
	userGroup := usersGroup.Group("/:userId", r.authMiddleware.Authenticate, r.authMiddleware.RequireSelf)
	{
		userGroup.GET("", r.userHandler.GetUser)
		userGroup.PUT("", r.userHandler.UpdateUser)
		userGroup.PATCH("", r.userHandler.UpdateUser)
		userGroup.DELETE("", r.userHandler.DeleteUser)
	}

	goalsGroup := userGroup.Group("/goals")
	{
		goalsGroup.POST("", r.goalHandler.CreateGoal)
		goalsGroup.GET("", r.goalHandler.ListGoals)
		goalsGroup.GET("/:goalId", r.goalHandler.GetGoal)
		goalsGroup.PUT("/:goalId", r.goalHandler.UpdateGoal)
		goalsGroup.PATCH("/:goalId/progress", r.goalHandler.UpdateProgress)
		goalsGroup.DELETE("/:goalId", r.goalHandler.DeleteGoal)
	}

	progressGroup := userGroup.Group("/progress")
	{
		progressGroup.POST("", r.progressHandler.CreateEntry)
		progressGroup.GET("", r.progressHandler.ListEntries)
		progressGroup.GET("/stats", r.progressHandler.Stats)
		progressGroup.GET("/:entryId", r.progressHandler.GetEntry)
		progressGroup.PUT("/:entryId", r.progressHandler.UpdateEntry)
		progressGroup.DELETE("/:entryId", r.progressHandler.DeleteEntry)
	}

	planGroup := userGroup.Group("/plan")
	{
		planGroup.GET("/nutrition", r.planHandler.UserNutrition)
		planGroup.GET("/meals", r.planHandler.UserMealPlan)
		planGroup.GET("/workouts", r.planHandler.UserWorkoutPlan)
	}
}
