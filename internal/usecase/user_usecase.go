// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"healthplanner/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create a user. Password is
// optional; users without one cannot log in.
type CreateUserInput struct {
	Name           string
	Email          string
	Password       string
	Age            int
	WeightKg       float64
	HeightCm       float64
	Gender         entity.Gender
	ActivityLevel  entity.ActivityLevel
	Goal           entity.FitnessGoal
	TargetWeightKg *float64
}

// UpdateUserInput carries a partial update. Nil fields are left unchanged.
type UpdateUserInput struct {
	Name           *string
	Email          *string
	Password       *string
	Age            *int
	WeightKg       *float64
	HeightCm       *float64
	Gender         *entity.Gender
	ActivityLevel  *entity.ActivityLevel
	Goal           *entity.FitnessGoal
	TargetWeightKg *float64
}

// UserUsecase defines the user profile operations.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes the user together with their goals and progress entries.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
