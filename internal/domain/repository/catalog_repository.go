package repository

import "healthplanner/internal/domain/entity"

// FoodCatalog is a read-only source of reference foods. Implementations
// return slices the caller may reorder but must not mutate the entries of.
type FoodCatalog interface {
	// Foods returns every food in catalog order.
	Foods() []*entity.FoodItem

	// FoodsByCategory returns the foods of one category in catalog order.
	FoodsByCategory(category entity.FoodCategory) []*entity.FoodItem
}

// ExerciseCatalog is a read-only source of reference exercises.
type ExerciseCatalog interface {
	// Exercises returns every exercise in catalog order.
	Exercises() []*entity.Exercise

	// ExercisesByCategory returns the exercises of one category whose
	// difficulty does not exceed ceiling, in catalog order.
	ExercisesByCategory(category entity.ExerciseCategory, ceiling entity.Difficulty) []*entity.Exercise
}
