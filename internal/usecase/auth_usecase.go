package usecase

import (
	"context"

	"healthplanner/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// TokenOutput returns the generated tokens after a successful login or refresh.
type TokenOutput struct {
	AccessToken  string
	RefreshToken string
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64
	User      *entity.User
}

// AuthUsecase issues and checks bearer tokens.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenOutput, error)

	// Authenticate validates an access token and returns its user id.
	Authenticate(ctx context.Context, accessToken string) (uuid.UUID, error)
}
