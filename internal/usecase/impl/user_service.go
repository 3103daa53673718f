// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "healthplanner/internal/delivery/context"
	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/repository"
	"healthplanner/internal/domain/service"
	"healthplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	goalRepo     repository.GoalRepository
	progressRepo repository.ProgressRepository
	hasher       service.PasswordHasher
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	GoalRepo     repository.GoalRepository
	ProgressRepo repository.ProgressRepository
	Hasher       service.PasswordHasher
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		goalRepo:     params.GoalRepo,
		progressRepo: params.ProgressRepo,
		hasher:       params.Hasher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser stores a new user. The email is normalised before the
// uniqueness check so that case variants collide.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Creating user", slog.String("email", email))

	if err := validateProfileEnums(input.Gender, input.ActivityLevel, input.Goal); err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	user := &entity.User{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(input.Name),
		Email:          email,
		Age:            input.Age,
		WeightKg:       input.WeightKg,
		HeightCm:       input.HeightCm,
		Gender:         input.Gender,
		ActivityLevel:  input.ActivityLevel,
		Goal:           input.Goal,
		TargetWeightKg: input.TargetWeightKg,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if input.Password != "" {
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		user.PasswordHash = hash
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			srv.log(ctx).Warn("Email already registered", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrEmailExists, "failed to create user")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("User created", slog.Any("userID", user.ID))

	return user, nil
}

// GetUser retrieves a single user.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return srv.findUser(ctx, id)
}

// ListUsers returns all users, newest first.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser applies the non-nil fields of input.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user", slog.Any("userID", id))

	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = normalizeEmail(*input.Email)
	}
	if input.Age != nil {
		user.Age = *input.Age
	}
	if input.WeightKg != nil {
		user.WeightKg = *input.WeightKg
	}
	if input.HeightCm != nil {
		user.HeightCm = *input.HeightCm
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.ActivityLevel != nil {
		user.ActivityLevel = *input.ActivityLevel
	}
	if input.Goal != nil {
		user.Goal = *input.Goal
	}
	if input.TargetWeightKg != nil {
		target := *input.TargetWeightKg
		user.TargetWeightKg = &target
	}

	if err := validateProfileEnums(user.Gender, user.ActivityLevel, user.Goal); err != nil {
		return nil, err
	}

	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.Any("userID", id), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		user.PasswordHash = hash
	}

	user.UpdatedAt = srv.now().UTC()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, errors.Wrap(domainerrors.ErrEmailExists, "failed to update user")
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to update user")
		default:
			return nil, errors.Wrap(err, "failed to update user")
		}
	}

	return user, nil
}

// DeleteUser removes the user's progress entries and goals before the user
// record itself.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting user", slog.Any("userID", id))

	if _, err := srv.findUser(ctx, id); err != nil {
		return err
	}

	entries, err := srv.progressRepo.DeleteByUser(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete progress entries")
	}

	goals, err := srv.goalRepo.DeleteByUser(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete goals")
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "failed to delete user")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Debug("User deleted",
		slog.Any("userID", id),
		slog.Int64("goals", goals),
		slog.Int64("progressEntries", entries),
	)

	return nil
}

func (srv *userService) findUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to find user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateProfileEnums(gender entity.Gender, level entity.ActivityLevel, goal entity.FitnessGoal) error {
	if !gender.IsValid() {
		return domainerrors.InvalidArgument("unknown gender %q", gender)
	}
	if !level.IsValid() {
		return domainerrors.InvalidArgument("unknown activity level %q", level)
	}
	if !goal.IsValid() {
		return domainerrors.InvalidArgument("unknown goal %q", goal)
	}

	return nil
}
