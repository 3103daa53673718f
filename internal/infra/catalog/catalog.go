// Package catalog serves the reference foods and exercises used by the
// planners, either from the built-in tables or from a YAML document.
package catalog

import (
	"healthplanner/internal/domain/entity"
	"healthplanner/internal/domain/repository"

	"github.com/pkg/errors"
)

// Catalog is an immutable, indexed set of foods and exercises. It is safe for
// concurrent use.
type Catalog struct {
	foods         []*entity.FoodItem
	exercises     []*entity.Exercise
	foodIndex     map[entity.FoodCategory][]*entity.FoodItem
	exerciseIndex map[entity.ExerciseCategory][]*entity.Exercise
}

var (
	_ repository.FoodCatalog     = (*Catalog)(nil)
	_ repository.ExerciseCatalog = (*Catalog)(nil)
)

// New validates and indexes the given tables.
func New(foods []*entity.FoodItem, exercises []*entity.Exercise) (*Catalog, error) {
	if err := validateFoods(foods); err != nil {
		return nil, err
	}
	if err := validateExercises(exercises); err != nil {
		return nil, err
	}

	c := &Catalog{
		foods:         foods,
		exercises:     exercises,
		foodIndex:     make(map[entity.FoodCategory][]*entity.FoodItem),
		exerciseIndex: make(map[entity.ExerciseCategory][]*entity.Exercise),
	}
	for _, f := range foods {
		c.foodIndex[f.Category] = append(c.foodIndex[f.Category], f)
	}
	for _, e := range exercises {
		c.exerciseIndex[e.Category] = append(c.exerciseIndex[e.Category], e)
	}

	return c, nil
}

// NewStatic returns the built-in catalog.
func NewStatic() *Catalog {
	c, err := New(builtinFoods, builtinExercises)
	if err != nil {
		panic(err)
	}

	return c
}

// Foods returns every food in catalog order.
func (c *Catalog) Foods() []*entity.FoodItem {
	return append([]*entity.FoodItem(nil), c.foods...)
}

// FoodsByCategory returns the foods of one category in catalog order.
func (c *Catalog) FoodsByCategory(category entity.FoodCategory) []*entity.FoodItem {
	return append([]*entity.FoodItem(nil), c.foodIndex[category]...)
}

// Exercises returns every exercise in catalog order.
func (c *Catalog) Exercises() []*entity.Exercise {
	return append([]*entity.Exercise(nil), c.exercises...)
}

// ExercisesByCategory returns the exercises of one category at or below ceiling.
func (c *Catalog) ExercisesByCategory(category entity.ExerciseCategory, ceiling entity.Difficulty) []*entity.Exercise {
	var out []*entity.Exercise
	for _, e := range c.exerciseIndex[category] {
		if e.Difficulty.AtMost(ceiling) {
			out = append(out, e)
		}
	}

	return out
}

func validateFoods(foods []*entity.FoodItem) error {
	seen := make(map[string]struct{}, len(foods))
	for i, f := range foods {
		switch {
		case f == nil:
			return errors.Errorf("food #%d is empty", i)
		case f.ID == "" || f.Name == "":
			return errors.Errorf("food #%d: id and name are required", i)
		case !f.Category.IsValid():
			return errors.Errorf("food %s: unknown category %q", f.ID, f.Category)
		case f.CaloriesPer100g <= 0:
			return errors.Errorf("food %s: calories per 100g must be positive", f.ID)
		case f.ProteinG < 0 || f.CarbsG < 0 || f.FatG < 0:
			return errors.Errorf("food %s: macros must not be negative", f.ID)
		}

		if _, dup := seen[f.ID]; dup {
			return errors.Errorf("duplicate food id %s", f.ID)
		}
		seen[f.ID] = struct{}{}
	}

	return nil
}

func validateExercises(exercises []*entity.Exercise) error {
	seen := make(map[string]struct{}, len(exercises))
	for i, e := range exercises {
		switch {
		case e == nil:
			return errors.Errorf("exercise #%d is empty", i)
		case e.ID == "" || e.Name == "":
			return errors.Errorf("exercise #%d: id and name are required", i)
		case !e.Category.IsValid():
			return errors.Errorf("exercise %s: unknown category %q", e.ID, e.Category)
		case !e.Difficulty.IsValid():
			return errors.Errorf("exercise %s: unknown difficulty %q", e.ID, e.Difficulty)
		case e.CaloriesPerMinute <= 0:
			return errors.Errorf("exercise %s: calories per minute must be positive", e.ID)
		}

		if _, dup := seen[e.ID]; dup {
			return errors.Errorf("duplicate exercise id %s", e.ID)
		}
		seen[e.ID] = struct{}{}
	}

	return nil
}
