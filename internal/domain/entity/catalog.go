package entity

import (
	"strings"

	domainerrors "healthplanner/internal/domain/errors"
)

// FoodCategory groups foods by their dominant nutrient.
type FoodCategory string

const (
	FoodProtein   FoodCategory = "protein"
	FoodCarbs     FoodCategory = "carbs"
	FoodFat       FoodCategory = "fat"
	FoodVegetable FoodCategory = "vegetable"
	FoodFruit     FoodCategory = "fruit"
	FoodDairy     FoodCategory = "dairy"
)

// String returns the string representation of the FoodCategory.
func (c FoodCategory) String() string {
	return string(c)
}

// IsValid checks if the FoodCategory is a valid value.
func (c FoodCategory) IsValid() bool {
	switch c {
	case FoodProtein, FoodCarbs, FoodFat, FoodVegetable, FoodFruit, FoodDairy:
		return true
	default:
		return false
	}
}

// ParseFoodCategory converts user input into a FoodCategory.
func ParseFoodCategory(s string) (FoodCategory, error) {
	c := FoodCategory(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", domainerrors.InvalidArgument("unknown food category %q", s)
	}

	return c, nil
}

// FoodItem is a catalog entry; nutrient values are per 100 g.
type FoodItem struct {
	ID              string       `json:"id" yaml:"id"`
	Name            string       `json:"name" yaml:"name"`
	Category        FoodCategory `json:"category" yaml:"category"`
	CaloriesPer100g float64      `json:"caloriesPer100g" yaml:"caloriesPer100g"`
	ProteinG        float64      `json:"proteinG" yaml:"proteinG"`
	CarbsG          float64      `json:"carbsG" yaml:"carbsG"`
	FatG            float64      `json:"fatG" yaml:"fatG"`
	FiberG          *float64     `json:"fiberG,omitempty" yaml:"fiberG,omitempty"`
}

// ExerciseCategory is the kind of training an exercise provides.
type ExerciseCategory string

const (
	ExerciseCardio      ExerciseCategory = "cardio"
	ExerciseStrength    ExerciseCategory = "strength"
	ExerciseFlexibility ExerciseCategory = "flexibility"
	ExerciseSports      ExerciseCategory = "sports"
)

// String returns the string representation of the ExerciseCategory.
func (c ExerciseCategory) String() string {
	return string(c)
}

// IsValid checks if the ExerciseCategory is a valid value.
func (c ExerciseCategory) IsValid() bool {
	switch c {
	case ExerciseCardio, ExerciseStrength, ExerciseFlexibility, ExerciseSports:
		return true
	default:
		return false
	}
}

// ParseExerciseCategory converts user input into an ExerciseCategory.
func ParseExerciseCategory(s string) (ExerciseCategory, error) {
	c := ExerciseCategory(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", domainerrors.InvalidArgument("unknown exercise category %q", s)
	}

	return c, nil
}

// Difficulty is ordered: beginner < intermediate < advanced.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// String returns the string representation of the Difficulty.
func (d Difficulty) String() string {
	return string(d)
}

// IsValid checks if the Difficulty is a valid value.
func (d Difficulty) IsValid() bool {
	return d.Rank() > 0
}

// Rank returns 1..3 for valid difficulties and 0 otherwise.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	default:
		return 0
	}
}

// AtMost reports whether d does not exceed ceiling.
func (d Difficulty) AtMost(ceiling Difficulty) bool {
	return d.IsValid() && d.Rank() <= ceiling.Rank()
}

// ParseDifficulty converts user input into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", domainerrors.InvalidArgument("unknown difficulty %q", s)
	}

	return d, nil
}

// Exercise is a catalog entry.
type Exercise struct {
	ID                string           `json:"id" yaml:"id"`
	Name              string           `json:"name" yaml:"name"`
	Category          ExerciseCategory `json:"category" yaml:"category"`
	Difficulty        Difficulty       `json:"difficulty" yaml:"difficulty"`
	CaloriesPerMinute float64          `json:"caloriesPerMinute" yaml:"caloriesPerMinute"`
	Equipment         []string         `json:"equipment" yaml:"equipment"`
}
