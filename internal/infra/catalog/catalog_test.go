package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"healthplanner/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatic_CoversEveryCategory(t *testing.T) {
	c := NewStatic()

	for _, category := range []entity.FoodCategory{
		entity.FoodProtein, entity.FoodCarbs, entity.FoodFat,
		entity.FoodVegetable, entity.FoodFruit, entity.FoodDairy,
	} {
		assert.GreaterOrEqual(t, len(c.FoodsByCategory(category)), 3, category)
	}

	// Beginners must still get a full session for every focus.
	wantBeginner := map[entity.ExerciseCategory]int{
		entity.ExerciseCardio:      3,
		entity.ExerciseStrength:    4,
		entity.ExerciseFlexibility: 2,
		entity.ExerciseSports:      2,
	}
	for category, want := range wantBeginner {
		got := c.ExercisesByCategory(category, entity.DifficultyBeginner)
		assert.GreaterOrEqual(t, len(got), want, category)
	}
}

func TestCatalog_ExercisesByCategoryRespectsCeiling(t *testing.T) {
	c := NewStatic()

	for _, ceiling := range []entity.Difficulty{entity.DifficultyBeginner, entity.DifficultyIntermediate, entity.DifficultyAdvanced} {
		for _, ex := range c.ExercisesByCategory(entity.ExerciseStrength, ceiling) {
			assert.Equal(t, entity.ExerciseStrength, ex.Category)
			assert.True(t, ex.Difficulty.AtMost(ceiling), "%s above %s", ex.ID, ceiling)
		}
	}

	assert.Greater(t,
		len(c.ExercisesByCategory(entity.ExerciseCardio, entity.DifficultyAdvanced)),
		len(c.ExercisesByCategory(entity.ExerciseCardio, entity.DifficultyBeginner)),
	)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := NewStatic()

	foods := c.FoodsByCategory(entity.FoodFruit)
	foods[0] = nil

	assert.NotNil(t, c.FoodsByCategory(entity.FoodFruit)[0])
}

func TestNew_Validation(t *testing.T) {
	valid := &entity.FoodItem{ID: "a", Name: "A", Category: entity.FoodFruit, CaloriesPer100g: 50}

	tests := []struct {
		name      string
		foods     []*entity.FoodItem
		exercises []*entity.Exercise
		wantErr   string
	}{
		{
			name:    "duplicate food id",
			foods:   []*entity.FoodItem{valid, valid},
			wantErr: "duplicate food id a",
		},
		{
			name:    "unknown food category",
			foods:   []*entity.FoodItem{{ID: "b", Name: "B", Category: "snacks", CaloriesPer100g: 10}},
			wantErr: "unknown category",
		},
		{
			name:    "zero calories",
			foods:   []*entity.FoodItem{{ID: "w", Name: "Water", Category: entity.FoodFruit}},
			wantErr: "must be positive",
		},
		{
			name:      "unknown difficulty",
			exercises: []*entity.Exercise{{ID: "x", Name: "X", Category: entity.ExerciseCardio, Difficulty: "elite", CaloriesPerMinute: 5}},
			wantErr:   "unknown difficulty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.foods, tt.exercises)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

const sampleYAML = `
foods:
  - id: rice
    name: White rice
    category: carbs
    caloriesPer100g: 130
    proteinG: 2.7
    carbsG: 28
    fatG: 0.3
  - id: lentils
    name: Lentils
    category: protein
    caloriesPer100g: 116
    proteinG: 9
    carbsG: 20
    fatG: 0.4
    fiberG: 7.9
`

func TestParse_OverridesFoodsKeepsBuiltinExercises(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	require.Len(t, c.Foods(), 2)
	assert.Equal(t, "lentils", c.FoodsByCategory(entity.FoodProtein)[0].ID)
	require.NotNil(t, c.FoodsByCategory(entity.FoodProtein)[0].FiberG)
	assert.InDelta(t, 7.9, *c.FoodsByCategory(entity.FoodProtein)[0].FiberG, 1e-9)
	assert.Len(t, c.Exercises(), len(builtinExercises))
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("foods: [unterminated"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog yaml")
}

func TestLoad_FromFileBucket(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte(sampleYAML), 0o600))

	c, err := Load(context.Background(), "file://"+dir, "catalog.yaml")
	require.NoError(t, err)

	assert.Len(t, c.Foods(), 2)
}

func TestLoad_MissingKey(t *testing.T) {
	_, err := Load(context.Background(), "file://"+t.TempDir(), "missing.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog missing.yaml")
}
