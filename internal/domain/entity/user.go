// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a person whose biometrics drive their plans.
type User struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`                     // Display name, at most 100 characters.
	Email          string        `json:"email"`                    // Unique, stored lower-cased.
	PasswordHash   string        `json:"-"`                        // Empty when the user has no login.
	Age            int           `json:"age"`                      // Years, 13..120.
	WeightKg       float64       `json:"weightKg"`                 // 20..500.
	HeightCm       float64       `json:"heightCm"`                 // 100..250.
	Gender         Gender        `json:"gender"`
	ActivityLevel  ActivityLevel `json:"activityLevel"`
	Goal           FitnessGoal   `json:"goal"`
	TargetWeightKg *float64      `json:"targetWeightKg,omitempty"` // Optional, 20..500.
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// Profile projects the planning inputs out of the user record.
func (u *User) Profile() Profile {
	return Profile{
		Age:           u.Age,
		WeightKg:      u.WeightKg,
		HeightCm:      u.HeightCm,
		Gender:        u.Gender,
		ActivityLevel: u.ActivityLevel,
		Goal:          u.Goal,
	}
}

// HasPassword reports whether the user can log in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
