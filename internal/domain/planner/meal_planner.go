// Package planner builds daily meal plans and weekly workout plans from the
// reference catalogs.
package planner

import (
	"math"

	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/repository"

	"github.com/pkg/errors"
)

// mealSplit holds the share of the daily target per slot. Breakfast, lunch
// and dinner sum to 1; snack is carved out of the day first when requested.
type mealSplit struct {
	breakfast, lunch, dinner, snack float64
}

var mealSplits = map[entity.FitnessGoal]mealSplit{
	entity.GoalWeightLoss:  {breakfast: 0.30, lunch: 0.40, dinner: 0.30, snack: 0.10},
	entity.GoalWeightGain:  {breakfast: 0.25, lunch: 0.35, dinner: 0.40, snack: 0.15},
	entity.GoalMuscleGain:  {breakfast: 0.25, lunch: 0.35, dinner: 0.40, snack: 0.15},
	entity.GoalMaintenance: {breakfast: 0.25, lunch: 0.35, dinner: 0.40, snack: 0.10},
}

// slot is one food category of a meal template and its share of the meal.
type slot struct {
	category entity.FoodCategory
	share    float64
}

var mealTemplates = map[entity.MealType][]slot{
	entity.MealBreakfast: {
		{category: entity.FoodCarbs, share: 0.35},
		{category: entity.FoodProtein, share: 0.25},
		{category: entity.FoodDairy, share: 0.20},
		{category: entity.FoodFruit, share: 0.10},
		{category: entity.FoodFat, share: 0.10},
	},
	entity.MealLunch: {
		{category: entity.FoodProtein, share: 0.40},
		{category: entity.FoodCarbs, share: 0.35},
		{category: entity.FoodVegetable, share: 0.08},
		{category: entity.FoodFat, share: 0.17},
	},
	entity.MealDinner: {
		{category: entity.FoodProtein, share: 0.40},
		{category: entity.FoodCarbs, share: 0.32},
		{category: entity.FoodVegetable, share: 0.08},
		{category: entity.FoodFat, share: 0.20},
	},
	entity.MealSnack: {
		{category: entity.FoodFruit, share: 0.50},
		{category: entity.FoodDairy, share: 0.50},
	},
}

// recommendationBands is the maximum distance, in kcal, between a
// recommended meal and the requested target.
var recommendationBands = map[entity.MealType]float64{
	entity.MealBreakfast: 100,
	entity.MealLunch:     100,
	entity.MealDinner:    150,
	entity.MealSnack:     100,
}

// RecommendationCount is the number of candidates Recommendations returns.
const RecommendationCount = 3

var mealTips = map[entity.FitnessGoal][]string{
	entity.GoalWeightLoss: {
		"Drink at least two litres of water a day.",
		"Fill half of every plate with vegetables.",
		"Prefer lean proteins such as chicken breast, fish and legumes.",
		"Skip sugary drinks and fried food.",
	},
	entity.GoalWeightGain: {
		"Eat five or six smaller meals spread over the day.",
		"Add calorie-dense healthy fats such as nuts and olive oil.",
		"Include a protein source in every meal.",
		"Have a carbohydrate and protein meal after training.",
	},
	entity.GoalMuscleGain: {
		"Aim for protein at every meal and after each workout.",
		"Eat complex carbohydrates before training for energy.",
		"Add healthy fats such as nuts and olive oil to reach your surplus.",
		"Sleep at least seven hours so muscles can recover.",
	},
	entity.GoalMaintenance: {
		"Keep portion sizes consistent from day to day.",
		"Eat a variety of colourful vegetables and fruit.",
		"Limit processed food and added sugar.",
		"Stay hydrated through the day.",
	},
}

type slotBudget struct {
	mealType entity.MealType
	calories float64
}

// MealPlanRequest describes the day to plan.
type MealPlanRequest struct {
	TargetCalories float64
	Goal           entity.FitnessGoal
	IncludeSnacks  bool
	// Variant rotates food choices so repeated requests can differ.
	Variant int
}

// MealPlanner assembles meals from a food catalog. Selection is a
// deterministic rotation through each category, so equal requests produce
// equal plans.
type MealPlanner struct {
	foods repository.FoodCatalog
}

// NewMealPlanner creates a MealPlanner over foods.
func NewMealPlanner(foods repository.FoodCatalog) *MealPlanner {
	return &MealPlanner{foods: foods}
}

// RecommendationBand returns the tolerance used by Recommendations for mealType.
func RecommendationBand(mealType entity.MealType) (float64, error) {
	band, ok := recommendationBands[mealType]
	if !ok {
		return 0, domainerrors.InvalidArgument("unknown meal type %q", mealType)
	}

	return band, nil
}

// Generate splits the daily target across breakfast, lunch and dinner, plus
// a snack when requested. Snack calories count toward the daily target.
func (p *MealPlanner) Generate(req MealPlanRequest) (*entity.MealPlan, error) {
	split, ok := mealSplits[req.Goal]
	if !ok {
		return nil, domainerrors.InvalidArgument("unknown goal %q", req.Goal)
	}
	if !positiveFinite(req.TargetCalories) {
		return nil, domainerrors.InvalidArgument("target calories must be a positive number, got %v", req.TargetCalories)
	}

	mealBudget := req.TargetCalories
	snackBudget := 0.0
	if req.IncludeSnacks {
		snackBudget = req.TargetCalories * split.snack
		mealBudget -= snackBudget
	}

	budgets := []slotBudget{
		{entity.MealBreakfast, mealBudget * split.breakfast},
		{entity.MealLunch, mealBudget * split.lunch},
		{entity.MealDinner, mealBudget * split.dinner},
	}
	if req.IncludeSnacks {
		budgets = append(budgets, slotBudget{entity.MealSnack, snackBudget})
	}

	plan := &entity.MealPlan{
		Goal:           req.Goal,
		TargetCalories: req.TargetCalories,
		Meals:          make([]entity.Meal, 0, len(budgets)),
		Tips:           append([]string(nil), mealTips[req.Goal]...),
	}

	for i, b := range budgets {
		meal, err := p.buildMeal(b.mealType, b.calories, req.Variant+i)
		if err != nil {
			return nil, err
		}

		plan.Meals = append(plan.Meals, *meal)
		plan.TotalCalories += meal.TotalCalories
		plan.TotalProtein += meal.TotalProtein
		plan.TotalCarbs += meal.TotalCarbs
		plan.TotalFat += meal.TotalFat
	}

	plan.TotalCalories = round1(plan.TotalCalories)
	plan.TotalProtein = round1(plan.TotalProtein)
	plan.TotalCarbs = round1(plan.TotalCarbs)
	plan.TotalFat = round1(plan.TotalFat)

	return plan, nil
}

// Recommendations returns RecommendationCount alternative meals for one slot,
// each within RecommendationBand of calorieTarget.
func (p *MealPlanner) Recommendations(mealType entity.MealType, calorieTarget float64) ([]*entity.Meal, error) {
	band, err := RecommendationBand(mealType)
	if err != nil {
		return nil, err
	}
	if !positiveFinite(calorieTarget) {
		return nil, domainerrors.InvalidArgument("calorie target must be a positive number, got %v", calorieTarget)
	}

	meals := make([]*entity.Meal, 0, RecommendationCount)
	for variant := range RecommendationCount {
		meal, err := p.buildMeal(mealType, calorieTarget, variant)
		if err != nil {
			return nil, err
		}
		if math.Abs(meal.TotalCalories-calorieTarget) > band {
			return nil, errors.WithStack(domainerrors.ErrCatalogExhausted.WithDetails("no foods fit the calorie band"))
		}

		meals = append(meals, meal)
	}

	return meals, nil
}

// buildMeal fills each template slot with one food, sized so the slot gets
// its share of budget. Slots whose category is empty are dropped and the
// remaining shares are scaled up to cover the whole budget.
func (p *MealPlanner) buildMeal(mealType entity.MealType, budget float64, variant int) (*entity.Meal, error) {
	template := mealTemplates[mealType]

	type choice struct {
		food  *entity.FoodItem
		share float64
	}

	choices := make([]choice, 0, len(template))
	totalShare := 0.0
	for i, s := range template {
		food := pickFood(p.foods.FoodsByCategory(s.category), variant+i)
		if food == nil {
			continue
		}

		choices = append(choices, choice{food: food, share: s.share})
		totalShare += s.share
	}

	if len(choices) == 0 {
		return nil, errors.WithStack(domainerrors.ErrCatalogExhausted.WithDetails("no foods available for " + mealType.String()))
	}

	meal := &entity.Meal{Type: mealType, Items: make([]entity.MealItem, 0, len(choices))}
	for _, c := range choices {
		grams := math.Round(budget * c.share / totalShare / c.food.CaloriesPer100g * 100)
		if grams <= 0 {
			continue
		}

		item := portion(c.food, grams)
		meal.Items = append(meal.Items, item)
		meal.TotalCalories += item.Calories
		meal.TotalProtein += item.Protein
		meal.TotalCarbs += item.Carbs
		meal.TotalFat += item.Fat
	}

	meal.TotalCalories = round1(meal.TotalCalories)
	meal.TotalProtein = round1(meal.TotalProtein)
	meal.TotalCarbs = round1(meal.TotalCarbs)
	meal.TotalFat = round1(meal.TotalFat)

	return meal, nil
}

// pickFood rotates through foods, skipping entries without energy.
func pickFood(foods []*entity.FoodItem, offset int) *entity.FoodItem {
	n := len(foods)
	for i := range n {
		food := foods[((offset+i)%n+n)%n]
		if food.CaloriesPer100g > 0 {
			return food
		}
	}

	return nil
}

func portion(food *entity.FoodItem, grams float64) entity.MealItem {
	factor := grams / 100

	return entity.MealItem{
		Food:     food,
		AmountG:  grams,
		Calories: round1(food.CaloriesPer100g * factor),
		Protein:  round1(food.ProteinG * factor),
		Carbs:    round1(food.CarbsG * factor),
		Fat:      round1(food.FatG * factor),
	}
}

// positiveFinite rejects NaN and the infinities along with non-positive values.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
