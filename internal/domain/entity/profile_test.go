package entity

import (
	"testing"

	domainerrors "healthplanner/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActivityLevel(t *testing.T) {
	tests := []struct {
		in   string
		want ActivityLevel
	}{
		{"sedentary", ActivitySedentary},
		{"light", ActivityLight},
		{"lightly_active", ActivityLight},
		{"moderate", ActivityModerate},
		{"moderately_active", ActivityModerate},
		{"active", ActivityActive},
		{"very_active", ActivityVeryActive},
		{"Very-Active", ActivityVeryActive},
		{"extremely_active", ActivityVeryActive},
		{" SEDENTARY ", ActivitySedentary},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseActivityLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseActivityLevel_Unknown(t *testing.T) {
	_, err := ParseActivityLevel("couch_potato")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "couch_potato")
}

func TestParseFitnessGoal(t *testing.T) {
	got, err := ParseFitnessGoal("muscle-gain")
	require.NoError(t, err)
	assert.Equal(t, GoalMuscleGain, got)

	_, err = ParseFitnessGoal("lose")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestParseGender(t *testing.T) {
	got, err := ParseGender("Female")
	require.NoError(t, err)
	assert.Equal(t, GenderFemale, got)

	_, err = ParseGender("x")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestDifficulty_AtMost(t *testing.T) {
	assert.True(t, DifficultyBeginner.AtMost(DifficultyBeginner))
	assert.True(t, DifficultyBeginner.AtMost(DifficultyAdvanced))
	assert.True(t, DifficultyIntermediate.AtMost(DifficultyIntermediate))
	assert.False(t, DifficultyAdvanced.AtMost(DifficultyIntermediate))
	assert.False(t, Difficulty("expert").AtMost(DifficultyAdvanced))
}

func TestGoal_ProgressPercentage(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{name: "halfway", current: 5, target: 10, want: 50},
		{name: "capped", current: 15, target: 10, want: 100},
		{name: "zero target", current: 3, target: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Goal{CurrentValue: tt.current, TargetValue: tt.target}
			assert.InDelta(t, tt.want, g.ProgressPercentage(), 1e-9)
		})
	}
}

func TestGoal_ApplyProgress(t *testing.T) {
	g := &Goal{Status: GoalStatusActive, TargetValue: 10}

	assert.False(t, g.ApplyProgress(9, g.UpdatedAt))
	assert.Equal(t, GoalStatusActive, g.Status)

	assert.True(t, g.ApplyProgress(10, g.UpdatedAt))
	assert.Equal(t, GoalStatusCompleted, g.Status)

	paused := &Goal{Status: GoalStatusPaused, TargetValue: 10}
	assert.False(t, paused.ApplyProgress(12, paused.UpdatedAt))
	assert.Equal(t, GoalStatusPaused, paused.Status)
}
