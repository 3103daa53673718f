// Package nutrition computes energy expenditure, calorie targets and macro
// splits from a profile. Every function is pure; numeric inputs are not
// range-checked here, only enum values are.
package nutrition

import (
	"math"

	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
)

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

var activityMultipliers = map[entity.ActivityLevel]float64{
	entity.ActivitySedentary:  1.2,
	entity.ActivityLight:      1.375,
	entity.ActivityModerate:   1.55,
	entity.ActivityActive:     1.725,
	entity.ActivityVeryActive: 1.9,
}

var calorieAdjustments = map[entity.FitnessGoal]float64{
	entity.GoalWeightLoss:  -500,
	entity.GoalWeightGain:  500,
	entity.GoalMuscleGain:  300,
	entity.GoalMaintenance: 0,
}

// macroSplit holds whole percentages of total calories.
type macroSplit struct {
	protein, carbs, fat int
}

var macroSplits = map[entity.FitnessGoal]macroSplit{
	entity.GoalWeightLoss:  {protein: 30, carbs: 35, fat: 35},
	entity.GoalMuscleGain:  {protein: 30, carbs: 45, fat: 25},
	entity.GoalWeightGain:  {protein: 25, carbs: 50, fat: 25},
	entity.GoalMaintenance: {protein: 25, carbs: 50, fat: 25},
}

// Macros is a daily macronutrient target in grams.
type Macros struct {
	ProteinG int `json:"proteinG"`
	CarbsG   int `json:"carbsG"`
	FatG     int `json:"fatG"`
}

// Calories converts the grams back into kcal.
func (m Macros) Calories() int {
	return m.ProteinG*kcalPerGramProtein + m.CarbsG*kcalPerGramCarbs + m.FatG*kcalPerGramFat
}

// CalorieResult is everything derived from a profile's energy balance.
type CalorieResult struct {
	BMR            float64 `json:"bmr"`
	TDEE           float64 `json:"tdee"`
	TargetCalories float64 `json:"targetCalories"`
	ProteinG       int     `json:"proteinG"`
	CarbsG         int     `json:"carbsG"`
	FatG           int     `json:"fatG"`
}

// CalculateBMR uses the Mifflin-St Jeor equation.
func CalculateBMR(weightKg, heightCm float64, age int, gender entity.Gender) (float64, error) {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)

	switch gender {
	case entity.GenderMale:
		return base + 5, nil
	case entity.GenderFemale:
		return base - 161, nil
	default:
		return 0, domainerrors.InvalidArgument("unknown gender %q", gender)
	}
}

// ActivityMultiplier returns the TDEE factor for a level.
func ActivityMultiplier(level entity.ActivityLevel) (float64, error) {
	multiplier, ok := activityMultipliers[level]
	if !ok {
		return 0, domainerrors.InvalidArgument("unknown activity level %q", level)
	}

	return multiplier, nil
}

// CalculateTDEE scales bmr by the level's multiplier.
func CalculateTDEE(bmr float64, level entity.ActivityLevel) (float64, error) {
	multiplier, err := ActivityMultiplier(level)
	if err != nil {
		return 0, err
	}

	return bmr * multiplier, nil
}

// CalorieAdjustment is the fixed daily deficit (negative) or surplus for a goal.
func CalorieAdjustment(goal entity.FitnessGoal) (float64, error) {
	adjustment, ok := calorieAdjustments[goal]
	if !ok {
		return 0, domainerrors.InvalidArgument("unknown goal %q", goal)
	}

	return adjustment, nil
}

// TargetCalories applies the goal adjustment to tdee.
func TargetCalories(tdee float64, goal entity.FitnessGoal) (float64, error) {
	adjustment, err := CalorieAdjustment(goal)
	if err != nil {
		return 0, err
	}

	return tdee + adjustment, nil
}

// CalculateMacros splits calories into grams using the goal's percentages.
func CalculateMacros(calories float64, goal entity.FitnessGoal) (Macros, error) {
	split, ok := macroSplits[goal]
	if !ok {
		return Macros{}, domainerrors.InvalidArgument("unknown goal %q", goal)
	}

	return Macros{
		ProteinG: grams(calories, split.protein, kcalPerGramProtein),
		CarbsG:   grams(calories, split.carbs, kcalPerGramCarbs),
		FatG:     grams(calories, split.fat, kcalPerGramFat),
	}, nil
}

func grams(calories float64, pct, kcalPerGram int) int {
	return int(math.Round(calories * float64(pct) / 100 / float64(kcalPerGram)))
}

// Calculate runs the whole chain for a profile.
func Calculate(profile entity.Profile) (CalorieResult, error) {
	bmr, err := CalculateBMR(profile.WeightKg, profile.HeightCm, profile.Age, profile.Gender)
	if err != nil {
		return CalorieResult{}, err
	}

	tdee, err := CalculateTDEE(bmr, profile.ActivityLevel)
	if err != nil {
		return CalorieResult{}, err
	}

	target, err := TargetCalories(tdee, profile.Goal)
	if err != nil {
		return CalorieResult{}, err
	}

	macros, err := CalculateMacros(target, profile.Goal)
	if err != nil {
		return CalorieResult{}, err
	}

	return CalorieResult{
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: target,
		ProteinG:       macros.ProteinG,
		CarbsG:         macros.CarbsG,
		FatG:           macros.FatG,
	}, nil
}
