package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "healthplanner/internal/delivery/context"
	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/repository"
	"healthplanner/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minStatsDays = 1
	maxStatsDays = 365
)

type progressService struct {
	userRepo     repository.UserRepository
	goalRepo     repository.GoalRepository
	progressRepo repository.ProgressRepository
	logger       *slog.Logger
	now          func() time.Time
}

// ProgressServiceParams holds dependencies for ProgressService, injected by Fx.
type ProgressServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	GoalRepo     repository.GoalRepository
	ProgressRepo repository.ProgressRepository
	Logger       *slog.Logger
}

// NewProgressService is the constructor for progressService.
func NewProgressService(params ProgressServiceParams) usecase.ProgressUsecase {
	return &progressService{
		userRepo:     params.UserRepo,
		goalRepo:     params.GoalRepo,
		progressRepo: params.ProgressRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *progressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEntry logs a new entry. A referenced goal must belong to the user.
func (srv *progressService) CreateEntry(ctx context.Context, userID uuid.UUID, input *usecase.CreateProgressInput) (*entity.ProgressEntry, error) {
	if err := validateMetrics(&input.ProgressMetrics); err != nil {
		return nil, err
	}
	if err := srv.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := srv.ensureGoal(ctx, userID, input.GoalID); err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	entry := &entity.ProgressEntry{
		ID:        uuid.New(),
		UserID:    userID,
		GoalID:    input.GoalID,
		Date:      now,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Date != nil {
		entry.Date = input.Date.UTC()
	}
	applyMetrics(entry, &input.ProgressMetrics)

	if err := srv.progressRepo.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create progress entry")
	}

	srv.log(ctx).Debug("Progress entry created", slog.Any("entryID", entry.ID), slog.Any("userID", userID))

	return entry, nil
}

// GetEntry returns one of the user's entries.
func (srv *progressService) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*entity.ProgressEntry, error) {
	return srv.findOwnedEntry(ctx, userID, entryID)
}

// ListEntries returns the user's entries, newest first.
func (srv *progressService) ListEntries(ctx context.Context, userID uuid.UUID, filter repository.ProgressFilter) ([]*entity.ProgressEntry, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, domainerrors.InvalidArgument("endDate is before startDate")
	}
	if err := srv.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	entries, err := srv.progressRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list progress entries")
	}

	return entries, nil
}

// UpdateEntry applies the non-nil fields of input.
func (srv *progressService) UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, input *usecase.UpdateProgressInput) (*entity.ProgressEntry, error) {
	if err := validateMetrics(&input.ProgressMetrics); err != nil {
		return nil, err
	}

	entry, err := srv.findOwnedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if input.GoalID != nil {
		if err := srv.ensureGoal(ctx, userID, input.GoalID); err != nil {
			return nil, err
		}
		goalID := *input.GoalID
		entry.GoalID = &goalID
	}
	if input.Date != nil {
		entry.Date = input.Date.UTC()
	}
	if input.Notes != nil {
		entry.Notes = *input.Notes
	}
	applyMetrics(entry, &input.ProgressMetrics)
	entry.UpdatedAt = srv.now().UTC()

	if err := srv.progressRepo.Update(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProgressNotFound, "failed to update progress entry")
		}

		return nil, errors.Wrap(err, "failed to update progress entry")
	}

	return entry, nil
}

// DeleteEntry removes one of the user's entries.
func (srv *progressService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	if _, err := srv.findOwnedEntry(ctx, userID, entryID); err != nil {
		return err
	}

	if err := srv.progressRepo.Delete(ctx, entryID); err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return errors.Wrap(domainerrors.ErrProgressNotFound, "failed to delete progress entry")
		}

		return errors.Wrap(err, "failed to delete progress entry")
	}

	return nil
}

// Stats aggregates the entries dated within the trailing days.
func (srv *progressService) Stats(ctx context.Context, userID uuid.UUID, days int) (*entity.ProgressStats, error) {
	if days < minStatsDays || days > maxStatsDays {
		return nil, domainerrors.InvalidArgument("days must be between %d and %d, got %d", minStatsDays, maxStatsDays, days)
	}
	if err := srv.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	start := srv.now().UTC().AddDate(0, 0, -days)
	entries, err := srv.progressRepo.FindByUser(ctx, userID, repository.ProgressFilter{StartDate: &start})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load progress entries")
	}

	return aggregateProgress(days, entries), nil
}

// aggregateProgress computes averages over the entries that carry each
// metric. Series are ordered by ascending date.
func aggregateProgress(days int, entries []*entity.ProgressEntry) *entity.ProgressStats {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b *entity.ProgressEntry) int {
		return a.Date.Compare(b.Date)
	})

	stats := &entity.ProgressStats{
		Days:         days,
		TotalEntries: len(sorted),
		WeightData:   []entity.DatedValue{},
		CalorieData:  []entity.DatedValue{},
	}

	var weight, calories, sleep, mood, energy mean
	for _, e := range sorted {
		if e.WeightKg != nil {
			weight.add(*e.WeightKg)
			stats.WeightData = append(stats.WeightData, entity.DatedValue{Date: e.Date, Value: *e.WeightKg})
		}
		if e.Calories != nil {
			calories.add(*e.Calories)
			stats.CalorieData = append(stats.CalorieData, entity.DatedValue{Date: e.Date, Value: *e.Calories})
		}
		if e.SleepHours != nil {
			sleep.add(*e.SleepHours)
		}
		if e.Mood != nil {
			mood.add(float64(*e.Mood))
		}
		if e.Energy != nil {
			energy.add(float64(*e.Energy))
		}
		if e.ExerciseMinutes != nil {
			stats.TotalExerciseMinutes += *e.ExerciseMinutes
		}
	}

	stats.AverageWeight = weight.value()
	stats.AverageCalories = calories.value()
	stats.AverageSleep = sleep.value()
	stats.AverageMood = mood.value()
	stats.AverageEnergy = energy.value()

	if n := len(stats.WeightData); n > 1 {
		stats.WeightChange = stats.WeightData[n-1].Value - stats.WeightData[0].Value
	}

	return stats
}

type mean struct {
	sum   float64
	count int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.count++
}

func (m *mean) value() float64 {
	if m.count == 0 {
		return 0
	}

	return m.sum / float64(m.count)
}

func (srv *progressService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "failed to find user")
		}

		return errors.Wrap(err, "failed to find user")
	}

	return nil
}

func (srv *progressService) ensureGoal(ctx context.Context, userID uuid.UUID, goalID *uuid.UUID) error {
	if goalID == nil {
		return nil
	}

	goal, err := srv.goalRepo.FindByID(ctx, *goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return errors.Wrap(domainerrors.ErrGoalNotFound, "failed to find goal")
		}

		return errors.Wrap(err, "failed to find goal")
	}
	if goal.UserID != userID {
		return errors.Wrap(domainerrors.ErrGoalNotFound, "goal belongs to another user")
	}

	return nil
}

func (srv *progressService) findOwnedEntry(ctx context.Context, userID, entryID uuid.UUID) (*entity.ProgressEntry, error) {
	entry, err := srv.progressRepo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProgressNotFound, "failed to find progress entry")
		}

		return nil, errors.Wrap(err, "failed to find progress entry")
	}

	if entry.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrProgressNotFound, "entry belongs to another user")
	}

	return entry, nil
}

func applyMetrics(entry *entity.ProgressEntry, m *usecase.ProgressMetrics) {
	setFloat(&entry.WeightKg, m.WeightKg)
	setFloat(&entry.BodyFatPct, m.BodyFatPct)
	setFloat(&entry.MuscleMassKg, m.MuscleMassKg)
	setFloat(&entry.Calories, m.Calories)
	setFloat(&entry.ProteinG, m.ProteinG)
	setFloat(&entry.CarbsG, m.CarbsG)
	setFloat(&entry.FatG, m.FatG)
	setFloat(&entry.WaterL, m.WaterL)
	setFloat(&entry.SleepHours, m.SleepHours)
	setInt(&entry.Steps, m.Steps)
	setInt(&entry.ExerciseMinutes, m.ExerciseMinutes)
	setInt(&entry.Mood, m.Mood)
	setInt(&entry.Energy, m.Energy)
}

func setFloat(dst **float64, src *float64) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func setInt(dst **int, src *int) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

type floatRange struct {
	name     string
	value    *float64
	min, max float64
}

type intRange struct {
	name     string
	value    *int
	min, max int
}

// validateMetrics checks the inclusive bounds of every metric that is set.
func validateMetrics(m *usecase.ProgressMetrics) error {
	floats := []floatRange{
		{"weightKg", m.WeightKg, 20, 500},
		{"bodyFatPct", m.BodyFatPct, 0, 100},
		{"muscleMassKg", m.MuscleMassKg, 0, 200},
		{"calories", m.Calories, 0, 10000},
		{"proteinG", m.ProteinG, 0, 1000},
		{"carbsG", m.CarbsG, 0, 2000},
		{"fatG", m.FatG, 0, 500},
		{"waterL", m.WaterL, 0, 20},
		{"sleepHours", m.SleepHours, 0, 24},
	}
	for _, r := range floats {
		if r.value != nil && (*r.value < r.min || *r.value > r.max) {
			return domainerrors.InvalidArgument("%s must be between %v and %v, got %v", r.name, r.min, r.max, *r.value)
		}
	}

	ints := []intRange{
		{"steps", m.Steps, 0, 100000},
		{"exerciseMinutes", m.ExerciseMinutes, 0, 1440},
		{"mood", m.Mood, 1, 10},
		{"energy", m.Energy, 1, 10},
	}
	for _, r := range ints {
		if r.value != nil && (*r.value < r.min || *r.value > r.max) {
			return domainerrors.InvalidArgument("%s must be between %d and %d, got %d", r.name, r.min, r.max, *r.value)
		}
	}

	return nil
}
