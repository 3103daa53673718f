package nutrition

import (
	"math"
	"testing"

	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
		age    int
		gender entity.Gender
		want   float64
	}{
		{name: "male", weight: 80, height: 180, age: 25, gender: entity.GenderMale, want: 1805},
		{name: "female", weight: 65, height: 165, age: 30, gender: entity.GenderFemale, want: 1370.25},
		{name: "zero inputs are not rejected", weight: 0, height: 0, age: 0, gender: entity.GenderMale, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateBMR(tt.weight, tt.height, tt.age, tt.gender)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculateBMR_MaleExceedsFemaleBy166(t *testing.T) {
	for _, in := range []struct {
		weight, height float64
		age            int
	}{
		{80, 180, 25},
		{52.3, 158, 61},
		{120, 201, 40},
	} {
		male, err := CalculateBMR(in.weight, in.height, in.age, entity.GenderMale)
		require.NoError(t, err)
		female, err := CalculateBMR(in.weight, in.height, in.age, entity.GenderFemale)
		require.NoError(t, err)

		assert.InDelta(t, 166, male-female, 1e-9)
	}
}

func TestCalculateBMR_LinearInInputs(t *testing.T) {
	base, err := CalculateBMR(70, 170, 30, entity.GenderFemale)
	require.NoError(t, err)

	heavier, _ := CalculateBMR(71, 170, 30, entity.GenderFemale)
	taller, _ := CalculateBMR(70, 171, 30, entity.GenderFemale)
	older, _ := CalculateBMR(70, 170, 31, entity.GenderFemale)

	assert.InDelta(t, 10, heavier-base, 1e-9)
	assert.InDelta(t, 6.25, taller-base, 1e-9)
	assert.InDelta(t, -5, older-base, 1e-9)
}

func TestCalculateBMR_UnknownGender(t *testing.T) {
	_, err := CalculateBMR(80, 180, 25, entity.Gender("other"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestCalculateTDEE(t *testing.T) {
	tests := []struct {
		level entity.ActivityLevel
		want  float64
	}{
		{entity.ActivitySedentary, 1800},
		{entity.ActivityLight, 2062.5},
		{entity.ActivityModerate, 2325},
		{entity.ActivityActive, 2587.5},
		{entity.ActivityVeryActive, 2850},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			got, err := CalculateTDEE(1500, tt.level)
			require.NoError(t, err)

			multiplier, err := ActivityMultiplier(tt.level)
			require.NoError(t, err)

			assert.Equal(t, 1500*multiplier, got)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestActivityMultiplier_CoversEveryLevel(t *testing.T) {
	for _, level := range entity.ActivityLevels {
		_, err := ActivityMultiplier(level)
		assert.NoError(t, err, level)
	}
}

func TestCalculateTDEE_UnknownLevel(t *testing.T) {
	_, err := CalculateTDEE(1500, entity.ActivityLevel("couch"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestCalculateMacros(t *testing.T) {
	tests := []struct {
		name     string
		calories float64
		goal     entity.FitnessGoal
		want     Macros
	}{
		{name: "weight loss", calories: 2000, goal: entity.GoalWeightLoss, want: Macros{ProteinG: 150, CarbsG: 175, FatG: 78}},
		{name: "muscle gain", calories: 2500, goal: entity.GoalMuscleGain, want: Macros{ProteinG: 188, CarbsG: 281, FatG: 69}},
		{name: "weight gain", calories: 3000, goal: entity.GoalWeightGain, want: Macros{ProteinG: 188, CarbsG: 375, FatG: 83}},
		{name: "maintenance", calories: 2200, goal: entity.GoalMaintenance, want: Macros{ProteinG: 138, CarbsG: 275, FatG: 61}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateMacros(tt.calories, tt.goal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateMacros_CaloriesRoundTrip(t *testing.T) {
	// Rounding each gram count moves at most 0.5 g: 2 + 2 + 4.5 kcal.
	const maxDrift = 8.5

	for _, goal := range entity.FitnessGoals {
		for calories := 1200.0; calories <= 4000; calories += 37 {
			macros, err := CalculateMacros(calories, goal)
			require.NoError(t, err)

			drift := math.Abs(float64(macros.Calories()) - calories)
			assert.LessOrEqual(t, drift, maxDrift, "goal=%s calories=%v", goal, calories)
		}
	}
}

func TestCalculateMacros_UnknownGoal(t *testing.T) {
	_, err := CalculateMacros(2000, entity.FitnessGoal("bulk"))

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestTargetCalories(t *testing.T) {
	tests := []struct {
		goal entity.FitnessGoal
		want float64
	}{
		{entity.GoalWeightLoss, 1500},
		{entity.GoalWeightGain, 2500},
		{entity.GoalMuscleGain, 2300},
		{entity.GoalMaintenance, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.goal.String(), func(t *testing.T) {
			got, err := TargetCalories(2000, tt.goal)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculate(t *testing.T) {
	profile := entity.Profile{
		Age:           25,
		WeightKg:      80,
		HeightCm:      180,
		Gender:        entity.GenderMale,
		ActivityLevel: entity.ActivityModerate,
		Goal:          entity.GoalWeightLoss,
	}

	got, err := Calculate(profile)
	require.NoError(t, err)

	assert.InDelta(t, 1805, got.BMR, 1e-9)
	assert.InDelta(t, 1805*1.55, got.TDEE, 1e-9)
	assert.InDelta(t, 1805*1.55-500, got.TargetCalories, 1e-9)

	macros, err := CalculateMacros(got.TargetCalories, entity.GoalWeightLoss)
	require.NoError(t, err)
	assert.Equal(t, macros, Macros{ProteinG: got.ProteinG, CarbsG: got.CarbsG, FatG: got.FatG})
}

func TestCalculate_PropagatesInvalidArgument(t *testing.T) {
	profile := entity.Profile{Age: 25, WeightKg: 80, HeightCm: 180, Gender: entity.GenderMale, ActivityLevel: "athlete", Goal: entity.GoalMaintenance}

	_, err := Calculate(profile)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}
