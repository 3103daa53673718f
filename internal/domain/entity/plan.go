package entity

import (
	"strings"

	domainerrors "healthplanner/internal/domain/errors"
)

// MealType identifies a slot in the daily meal plan.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// String returns the string representation of the MealType.
func (m MealType) String() string {
	return string(m)
}

// IsValid checks if the MealType is a valid value.
func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	default:
		return false
	}
}

// ParseMealType converts user input into a MealType.
func ParseMealType(s string) (MealType, error) {
	m := MealType(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", domainerrors.InvalidArgument("unknown meal type %q", s)
	}

	return m, nil
}

// MealItem is a portion of a catalog food.
type MealItem struct {
	Food     *FoodItem `json:"food"`
	AmountG  float64   `json:"amountG"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
}

// Meal is one slot of a plan with its totals summed from the items.
type Meal struct {
	Type          MealType   `json:"type"`
	Items         []MealItem `json:"items"`
	TotalCalories float64    `json:"totalCalories"`
	TotalProtein  float64    `json:"totalProtein"`
	TotalCarbs    float64    `json:"totalCarbs"`
	TotalFat      float64    `json:"totalFat"`
}

// MealPlan is a full day of meals.
type MealPlan struct {
	Goal           FitnessGoal `json:"goal"`
	TargetCalories float64     `json:"targetCalories"`
	TotalCalories  float64     `json:"totalCalories"`
	TotalProtein   float64     `json:"totalProtein"`
	TotalCarbs     float64     `json:"totalCarbs"`
	TotalFat       float64     `json:"totalFat"`
	Meals          []Meal      `json:"meals"`
	Tips           []string    `json:"tips"`
}

// WorkoutFocus is the theme of a single session.
type WorkoutFocus string

const (
	FocusCardio      WorkoutFocus = "cardio"
	FocusStrength    WorkoutFocus = "strength"
	FocusFlexibility WorkoutFocus = "flexibility"
	FocusSports      WorkoutFocus = "sports"
	FocusMixed       WorkoutFocus = "mixed"
)

// String returns the string representation of the WorkoutFocus.
func (f WorkoutFocus) String() string {
	return string(f)
}

// IsValid checks if the WorkoutFocus is a valid value.
func (f WorkoutFocus) IsValid() bool {
	switch f {
	case FocusCardio, FocusStrength, FocusFlexibility, FocusSports, FocusMixed:
		return true
	default:
		return false
	}
}

// WorkoutExercise is an exercise with its share of the session.
type WorkoutExercise struct {
	Exercise          *Exercise `json:"exercise"`
	DurationMin       int       `json:"durationMin"`
	EstimatedCalories float64   `json:"estimatedCalories"`
}

// Workout is a single session.
type Workout struct {
	Name             string            `json:"name"`
	Focus            WorkoutFocus      `json:"focus"`
	Exercises        []WorkoutExercise `json:"exercises"`
	TotalDurationMin int               `json:"totalDurationMin"`
	TotalCalories    float64           `json:"totalCalories"`
}

// WorkoutPlan is a week of sessions.
type WorkoutPlan struct {
	ActivityLevel      ActivityLevel `json:"activityLevel"`
	Goal               FitnessGoal   `json:"goal"`
	DifficultyCeiling  Difficulty    `json:"difficultyCeiling"`
	SessionsPerWeek    int           `json:"sessionsPerWeek"`
	SessionDurationMin int           `json:"sessionDurationMin"`
	TotalExercises     int           `json:"totalExercises"`
	WeeklyDurationMin  int           `json:"weeklyDurationMin"`
	WeeklyCalories     float64       `json:"weeklyCalories"`
	Workouts           []Workout     `json:"workouts"`
}
