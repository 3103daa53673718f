package catalog

import "healthplanner/internal/domain/entity"

func fiber(g float64) *float64 { return &g }

// builtinFoods are per-100 g values for common whole foods.
var builtinFoods = []*entity.FoodItem{
	{ID: "chicken-breast", Name: "Chicken breast", Category: entity.FoodProtein, CaloriesPer100g: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6},
	{ID: "salmon", Name: "Salmon", Category: entity.FoodProtein, CaloriesPer100g: 208, ProteinG: 20, CarbsG: 0, FatG: 13},
	{ID: "eggs", Name: "Eggs", Category: entity.FoodProtein, CaloriesPer100g: 155, ProteinG: 13, CarbsG: 1.1, FatG: 11},
	{ID: "turkey-breast", Name: "Turkey breast", Category: entity.FoodProtein, CaloriesPer100g: 135, ProteinG: 30, CarbsG: 0, FatG: 1},
	{ID: "tuna", Name: "Tuna", Category: entity.FoodProtein, CaloriesPer100g: 132, ProteinG: 28, CarbsG: 0, FatG: 1.3},
	{ID: "tofu", Name: "Tofu", Category: entity.FoodProtein, CaloriesPer100g: 76, ProteinG: 8, CarbsG: 1.9, FatG: 4.8, FiberG: fiber(0.3)},

	{ID: "brown-rice", Name: "Brown rice (cooked)", Category: entity.FoodCarbs, CaloriesPer100g: 112, ProteinG: 2.6, CarbsG: 23, FatG: 0.9, FiberG: fiber(1.8)},
	{ID: "oats", Name: "Rolled oats", Category: entity.FoodCarbs, CaloriesPer100g: 389, ProteinG: 17, CarbsG: 66, FatG: 7, FiberG: fiber(10.6)},
	{ID: "wholewheat-bread", Name: "Whole wheat bread", Category: entity.FoodCarbs, CaloriesPer100g: 247, ProteinG: 13, CarbsG: 41, FatG: 3.4, FiberG: fiber(7)},
	{ID: "sweet-potato", Name: "Sweet potato", Category: entity.FoodCarbs, CaloriesPer100g: 86, ProteinG: 1.6, CarbsG: 20, FatG: 0.1, FiberG: fiber(3)},
	{ID: "quinoa", Name: "Quinoa (cooked)", Category: entity.FoodCarbs, CaloriesPer100g: 120, ProteinG: 4.4, CarbsG: 21, FatG: 1.9, FiberG: fiber(2.8)},
	{ID: "wholewheat-pasta", Name: "Whole wheat pasta (cooked)", Category: entity.FoodCarbs, CaloriesPer100g: 124, ProteinG: 5.3, CarbsG: 27, FatG: 0.5, FiberG: fiber(3.9)},

	{ID: "avocado", Name: "Avocado", Category: entity.FoodFat, CaloriesPer100g: 160, ProteinG: 2, CarbsG: 8.5, FatG: 14.7, FiberG: fiber(6.7)},
	{ID: "olive-oil", Name: "Olive oil", Category: entity.FoodFat, CaloriesPer100g: 884, ProteinG: 0, CarbsG: 0, FatG: 100},
	{ID: "almonds", Name: "Almonds", Category: entity.FoodFat, CaloriesPer100g: 579, ProteinG: 21, CarbsG: 22, FatG: 50, FiberG: fiber(12.5)},
	{ID: "peanut-butter", Name: "Peanut butter", Category: entity.FoodFat, CaloriesPer100g: 588, ProteinG: 25, CarbsG: 20, FatG: 50, FiberG: fiber(6)},
	{ID: "walnuts", Name: "Walnuts", Category: entity.FoodFat, CaloriesPer100g: 654, ProteinG: 15, CarbsG: 14, FatG: 65, FiberG: fiber(6.7)},

	{ID: "broccoli", Name: "Broccoli", Category: entity.FoodVegetable, CaloriesPer100g: 34, ProteinG: 2.8, CarbsG: 7, FatG: 0.4, FiberG: fiber(2.6)},
	{ID: "spinach", Name: "Spinach", Category: entity.FoodVegetable, CaloriesPer100g: 23, ProteinG: 2.9, CarbsG: 3.6, FatG: 0.4, FiberG: fiber(2.2)},
	{ID: "carrots", Name: "Carrots", Category: entity.FoodVegetable, CaloriesPer100g: 41, ProteinG: 0.9, CarbsG: 10, FatG: 0.2, FiberG: fiber(2.8)},
	{ID: "bell-pepper", Name: "Bell pepper", Category: entity.FoodVegetable, CaloriesPer100g: 31, ProteinG: 1, CarbsG: 6, FatG: 0.3, FiberG: fiber(2.1)},
	{ID: "green-beans", Name: "Green beans", Category: entity.FoodVegetable, CaloriesPer100g: 31, ProteinG: 1.8, CarbsG: 7, FatG: 0.2, FiberG: fiber(2.7)},

	{ID: "banana", Name: "Banana", Category: entity.FoodFruit, CaloriesPer100g: 89, ProteinG: 1.1, CarbsG: 23, FatG: 0.3, FiberG: fiber(2.6)},
	{ID: "apple", Name: "Apple", Category: entity.FoodFruit, CaloriesPer100g: 52, ProteinG: 0.3, CarbsG: 14, FatG: 0.2, FiberG: fiber(2.4)},
	{ID: "blueberries", Name: "Blueberries", Category: entity.FoodFruit, CaloriesPer100g: 57, ProteinG: 0.7, CarbsG: 14, FatG: 0.3, FiberG: fiber(2.4)},
	{ID: "orange", Name: "Orange", Category: entity.FoodFruit, CaloriesPer100g: 47, ProteinG: 0.9, CarbsG: 12, FatG: 0.1, FiberG: fiber(2.4)},

	{ID: "greek-yogurt", Name: "Greek yogurt (plain, low fat)", Category: entity.FoodDairy, CaloriesPer100g: 59, ProteinG: 10, CarbsG: 3.6, FatG: 0.4},
	{ID: "milk", Name: "Milk (1.5%)", Category: entity.FoodDairy, CaloriesPer100g: 47, ProteinG: 3.4, CarbsG: 5, FatG: 1.5},
	{ID: "cottage-cheese", Name: "Cottage cheese", Category: entity.FoodDairy, CaloriesPer100g: 98, ProteinG: 11, CarbsG: 3.4, FatG: 4.3},
	{ID: "cheddar", Name: "Cheddar", Category: entity.FoodDairy, CaloriesPer100g: 403, ProteinG: 25, CarbsG: 1.3, FatG: 33},
}

// builtinExercises carry rough calories per minute for a 70 kg adult.
var builtinExercises = []*entity.Exercise{
	{ID: "brisk-walking", Name: "Brisk walking", Category: entity.ExerciseCardio, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 4, Equipment: []string{}},
	{ID: "stationary-bike", Name: "Stationary bike", Category: entity.ExerciseCardio, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 6, Equipment: []string{"stationary bike"}},
	{ID: "elliptical", Name: "Elliptical trainer", Category: entity.ExerciseCardio, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 7, Equipment: []string{"elliptical"}},
	{ID: "swimming", Name: "Swimming", Category: entity.ExerciseCardio, Difficulty: entity.DifficultyIntermediate, CaloriesPerMinute: 8, Equipment: []string{"pool"}},
	{ID: "jogging", Name: "Jogging", Category: entity.ExerciseCardio, Difficulty: entity.DifficultyIntermediate, CaloriesPerMinute: 9, Equipment: []string{}},
	{ID: "rowing", Name: "Rowing machine", Category: entity.ExerciseCardio, Difficulty: entity.DifficultyIntermediate, CaloriesPerMinute: 8, Equipment: []string{"rowing machine"}},
	{ID: "jump-rope", Name: "Jump rope", Category: entity.ExerciseCardio, Difficulty: entity.DifficultyIntermediate, CaloriesPerMinute: 11, Equipment: []string{"jump rope"}},
	{ID: "running", Name: "Running", Category: entity.ExerciseCardio, Difficulty: entity.DifficultyAdvanced, CaloriesPerMinute: 12, Equipment: []string{}},
	{ID: "hiit-sprints", Name: "HIIT sprints", Category: entity.ExerciseCardio, Difficulty: entity.DifficultyAdvanced, CaloriesPerMinute: 14, Equipment: []string{}},

	{ID: "bodyweight-squats", Name: "Bodyweight squats", Category: entity.ExerciseStrength, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 5, Equipment: []string{}},
	{ID: "push-ups", Name: "Push-ups", Category: entity.ExerciseStrength, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 6, Equipment: []string{}},
	{ID: "lunges", Name: "Lunges", Category: entity.ExerciseStrength, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 5, Equipment: []string{}},
	{ID: "glute-bridges", Name: "Glute bridges", Category: entity.ExerciseStrength, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 4, Equipment: []string{"mat"}},
	{ID: "plank", Name: "Plank", Category: entity.ExerciseStrength, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 4, Equipment: []string{"mat"}},
	{ID: "dumbbell-rows", Name: "Dumbbell rows", Category: entity.ExerciseStrength, Difficulty: entity.DifficultyIntermediate, CaloriesPerMinute: 6, Equipment: []string{"dumbbells"}},
	{ID: "bench-press", Name: "Bench press", Category: entity.ExerciseStrength, Difficulty: entity.DifficultyIntermediate, CaloriesPerMinute: 7, Equipment: []string{"barbell", "bench"}},
	{ID: "kettlebell-swings", Name: "Kettlebell swings", Category: entity.ExerciseStrength, Difficulty: entity.DifficultyIntermediate, CaloriesPerMinute: 10, Equipment: []string{"kettlebell"}},
	{ID: "deadlift", Name: "Deadlift", Category: entity.ExerciseStrength, Difficulty: entity.DifficultyAdvanced, CaloriesPerMinute: 8, Equipment: []string{"barbell"}},
	{ID: "pull-ups", Name: "Pull-ups", Category: entity.ExerciseStrength, Difficulty: entity.DifficultyAdvanced, CaloriesPerMinute: 9, Equipment: []string{"pull-up bar"}},
	{ID: "barbell-squats", Name: "Barbell back squats", Category: entity.ExerciseStrength, Difficulty: entity.DifficultyAdvanced, CaloriesPerMinute: 8, Equipment: []string{"barbell", "squat rack"}},

	{ID: "stretching", Name: "Full-body stretching", Category: entity.ExerciseFlexibility, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 2.5, Equipment: []string{"mat"}},
	{ID: "yoga", Name: "Yoga", Category: entity.ExerciseFlexibility, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 3, Equipment: []string{"mat"}},
	{ID: "tai-chi", Name: "Tai chi", Category: entity.ExerciseFlexibility, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 3, Equipment: []string{}},
	{ID: "pilates", Name: "Pilates", Category: entity.ExerciseFlexibility, Difficulty: entity.DifficultyIntermediate, CaloriesPerMinute: 4, Equipment: []string{"mat"}},
	{ID: "power-yoga", Name: "Power yoga", Category: entity.ExerciseFlexibility, Difficulty: entity.DifficultyAdvanced, CaloriesPerMinute: 5, Equipment: []string{"mat"}},

	{ID: "badminton", Name: "Badminton", Category: entity.ExerciseSports, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 5, Equipment: []string{"racket", "shuttlecock"}},
	{ID: "table-tennis", Name: "Table tennis", Category: entity.ExerciseSports, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 4, Equipment: []string{"paddle", "table"}},
	{ID: "volleyball", Name: "Volleyball", Category: entity.ExerciseSports, Difficulty: entity.DifficultyBeginner, CaloriesPerMinute: 4, Equipment: []string{"ball"}},
	{ID: "tennis", Name: "Tennis", Category: entity.ExerciseSports, Difficulty: entity.DifficultyIntermediate, CaloriesPerMinute: 7, Equipment: []string{"racket"}},
	{ID: "basketball", Name: "Basketball", Category: entity.ExerciseSports, Difficulty: entity.DifficultyIntermediate, CaloriesPerMinute: 8, Equipment: []string{"ball"}},
	{ID: "football", Name: "Football", Category: entity.ExerciseSports, Difficulty: entity.DifficultyIntermediate, CaloriesPerMinute: 9, Equipment: []string{"ball"}},
	{ID: "boxing", Name: "Boxing", Category: entity.ExerciseSports, Difficulty: entity.DifficultyAdvanced, CaloriesPerMinute: 12, Equipment: []string{"gloves", "heavy bag"}},
}
