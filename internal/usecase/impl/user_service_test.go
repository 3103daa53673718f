package impl

import (
	"context"
	"testing"

	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/repository"
	mockRepo "healthplanner/internal/mocks/repository"
	mockSvc "healthplanner/internal/mocks/service"
	"healthplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	goalRepo     *mockRepo.MockGoalRepository
	progressRepo *mockRepo.MockProgressRepository
	hasher       *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	goalRepo := mockRepo.NewMockGoalRepository(t)
	progressRepo := mockRepo.NewMockProgressRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		GoalRepo:     goalRepo,
		ProgressRepo: progressRepo,
		Hasher:       hasher,
		Logger:       newDiscardLogger(),
	})
	service.(*userService).now = fixedClock

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		goalRepo:     goalRepo,
		progressRepo: progressRepo,
		hasher:       hasher,
	}
}

func validCreateUserInput() *usecase.CreateUserInput {
	return &usecase.CreateUserInput{
		Name:          "  Ada Lovelace ",
		Email:         " Ada@Example.COM ",
		Age:           36,
		WeightKg:      60,
		HeightCm:      165,
		Gender:        entity.GenderFemale,
		ActivityLevel: entity.ActivityLight,
		Goal:          entity.GoalWeightLoss,
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	var stored *entity.User
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { stored = user }).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, validCreateUserInput())

	require.NoError(t, err)
	assert.Same(t, stored, user)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, fixedNow, user.CreatedAt)
	assert.Equal(t, fixedNow, user.UpdatedAt)
}

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := validCreateUserInput()
	input.Password = "correct-horse"

	fx.hasher.EXPECT().Hash("correct-horse").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.True(t, user.HasPassword())
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrEmailTaken)

	_, err := fx.service.CreateUser(ctx, validCreateUserInput())

	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

func TestUserService_CreateUser_InvalidEnums(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.CreateUserInput)
	}{
		{"gender", func(in *usecase.CreateUserInput) { in.Gender = "other" }},
		{"activity level", func(in *usecase.CreateUserInput) { in.ActivityLevel = "couch" }},
		{"goal", func(in *usecase.CreateUserInput) { in.Goal = "bulk" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			input := validCreateUserInput()
			tt.mutate(input)

			_, err := fx.service.CreateUser(context.Background(), input)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
		})
	}
}

func TestUserService_CreateUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	input := validCreateUserInput()
	input.Password = "correct-horse"
	fx.hasher.EXPECT().Hash("correct-horse").Return("", errors.New("cost too high"))

	_, err := fx.service.CreateUser(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_GetUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.GetUser(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	users := []*entity.User{newTestUser(), newTestUser()}

	fx.userRepo.EXPECT().List(ctx).Return(users, nil)

	got, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUserService_UpdateUser_Partial(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := newTestUser()
	original := *user

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	got, err := fx.service.UpdateUser(ctx, user.ID, &usecase.UpdateUserInput{
		Email:          ptr("NEW@example.com"),
		Password:       ptr("new-password"),
		WeightKg:       ptr(68.5),
		Goal:           ptr(entity.GoalMuscleGain),
		TargetWeightKg: ptr(72.0),
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "new-hash", got.PasswordHash)
	assert.InDelta(t, 68.5, got.WeightKg, 0)
	assert.Equal(t, entity.GoalMuscleGain, got.Goal)
	require.NotNil(t, got.TargetWeightKg)
	assert.InDelta(t, 72.0, *got.TargetWeightKg, 0)

	assert.Equal(t, original.Name, got.Name)
	assert.Equal(t, original.Age, got.Age)
	assert.Equal(t, original.ActivityLevel, got.ActivityLevel)
}

func TestUserService_UpdateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(repository.ErrEmailTaken)

	_, err := fx.service.UpdateUser(ctx, user.ID, &usecase.UpdateUserInput{Email: ptr("taken@example.com")})

	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

func TestUserService_UpdateUser_InvalidGender(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	_, err := fx.service.UpdateUser(ctx, user.ID, &usecase.UpdateUserInput{Gender: ptr(entity.Gender("x"))})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestUserService_DeleteUser_Cascades(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.progressRepo.EXPECT().DeleteByUser(ctx, user.ID).Return(int64(4), nil)
	fx.goalRepo.EXPECT().DeleteByUser(ctx, user.ID).Return(int64(2), nil)
	fx.userRepo.EXPECT().Delete(ctx, user.ID).Return(nil)

	require.NoError(t, fx.service.DeleteUser(ctx, user.ID))
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteUser_StopsOnCascadeFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := newTestUser()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to delete progress entries")

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.progressRepo.EXPECT().DeleteByUser(ctx, user.ID).Return(int64(0), dbErr)

	err := fx.service.DeleteUser(ctx, user.ID)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
