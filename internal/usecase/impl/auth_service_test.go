package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/repository"
	"healthplanner/internal/domain/service"
	mockRepo "healthplanner/internal/mocks/repository"
	mockSvc "healthplanner/internal/mocks/service"
	"healthplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return authServiceFixtures{
		service: NewAuthService(AuthServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()
	user.PasswordHash = "hash"

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret-pass", "hash").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().AccessTokenDuration().Return(15 * time.Minute)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: " ADA@example.com", Password: "secret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, int64(900), out.ExpiresIn)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("no password set", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(newTestUser(), nil)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newTestUser()
		user.PasswordHash = "hash"
		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token", service.TokenTypeRefresh).
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return("a2", "r2", nil)
	fx.tokenService.EXPECT().AccessTokenDuration().Return(time.Minute)

	out, err := fx.service.Refresh(ctx, "refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "a2", out.AccessToken)
	assert.Equal(t, "r2", out.RefreshToken)
	assert.Equal(t, int64(60), out.ExpiresIn)
}

func TestAuthService_Refresh_Invalid(t *testing.T) {
	ctx := context.Background()

	t.Run("bad token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().
			ValidateToken("garbage", service.TokenTypeRefresh).
			Return(nil, errors.New("token is malformed"))

		_, err := fx.service.Refresh(ctx, "garbage")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthService(t)
		id := uuid.New()
		fx.tokenService.EXPECT().
			ValidateToken("refresh-token", service.TokenTypeRefresh).
			Return(&service.Claims{UserID: id}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Refresh(ctx, "refresh-token")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		fx := createTestAuthService(t)
		id := uuid.New()
		fx.tokenService.EXPECT().
			ValidateToken("access-token", service.TokenTypeAccess).
			Return(&service.Claims{UserID: id, Type: service.TokenTypeAccess}, nil)

		got, err := fx.service.Authenticate(ctx, "access-token")

		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("empty", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Authenticate(ctx, "")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("rejected", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().
			ValidateToken("refresh-token", service.TokenTypeAccess).
			Return(nil, errors.New("unexpected token type"))

		_, err := fx.service.Authenticate(ctx, "refresh-token")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
