// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	domainerrors "healthplanner/internal/domain/errors"
)

// Gender selects the constant term of the BMR equation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

// ParseGender converts user input into a Gender.
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	if !g.IsValid() {
		return "", domainerrors.InvalidArgument("unknown gender %q", s)
	}

	return g, nil
}

// ActivityLevel is the self-reported amount of weekly physical activity.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ActivityLevels lists every level in ascending order.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

// activityAliases maps the long-form names used by older clients.
var activityAliases = map[string]ActivityLevel{
	"lightly_active":    ActivityLight,
	"moderately_active": ActivityModerate,
	"extremely_active":  ActivityVeryActive,
	"very-active":       ActivityVeryActive,
}

// String returns the string representation of the ActivityLevel.
func (a ActivityLevel) String() string {
	return string(a)
}

// IsValid checks if the ActivityLevel is a valid value.
func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	default:
		return false
	}
}

// ParseActivityLevel accepts canonical names first, then the legacy aliases.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if level := ActivityLevel(key); level.IsValid() {
		return level, nil
	}
	if level, ok := activityAliases[key]; ok {
		return level, nil
	}

	return "", domainerrors.InvalidArgument("unknown activity level %q", s)
}

// FitnessGoal is what the user wants their body weight or composition to do.
type FitnessGoal string

const (
	GoalWeightLoss  FitnessGoal = "weight_loss"
	GoalWeightGain  FitnessGoal = "weight_gain"
	GoalMuscleGain  FitnessGoal = "muscle_gain"
	GoalMaintenance FitnessGoal = "maintenance"
)

// FitnessGoals lists every goal.
var FitnessGoals = []FitnessGoal{GoalWeightLoss, GoalWeightGain, GoalMuscleGain, GoalMaintenance}

// String returns the string representation of the FitnessGoal.
func (g FitnessGoal) String() string {
	return string(g)
}

// IsValid checks if the FitnessGoal is a valid value.
func (g FitnessGoal) IsValid() bool {
	switch g {
	case GoalWeightLoss, GoalWeightGain, GoalMuscleGain, GoalMaintenance:
		return true
	default:
		return false
	}
}

// ParseFitnessGoal accepts both snake_case and kebab-case spellings.
func ParseFitnessGoal(s string) (FitnessGoal, error) {
	g := FitnessGoal(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !g.IsValid() {
		return "", domainerrors.InvalidArgument("unknown goal %q", s)
	}

	return g, nil
}

// Profile is the biometric snapshot every plan is computed from.
type Profile struct {
	Age           int           `json:"age"`
	WeightKg      float64       `json:"weightKg"`
	HeightCm      float64       `json:"heightCm"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          FitnessGoal   `json:"goal"`
}
