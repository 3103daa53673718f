package postgres

import (
	"context"

	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/repository"
	"healthplanner/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository returns the GORM-backed ProgressRepository.
func NewProgressRepository(db *gorm.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (repo *progressRepository) Create(ctx context.Context, entry *entity.ProgressEntry) error {
	if err := repo.db.WithContext(ctx).Create(fromProgressDomain(entry)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create progress entry")
	}

	return nil
}

func (repo *progressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProgressEntry, error) {
	var row model.ProgressModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProgressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find progress entry")
	}

	return toProgressDomain(&row), nil
}

func (repo *progressRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter repository.ProgressFilter) ([]*entity.ProgressEntry, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.GoalID != nil {
		query = query.Where("goal_id = ?", *filter.GoalID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var rows []model.ProgressModel
	if err := query.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list progress entries")
	}

	entries := make([]*entity.ProgressEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, toProgressDomain(&rows[i]))
	}

	return entries, nil
}

func (repo *progressRepository) Update(ctx context.Context, entry *entity.ProgressEntry) error {
	res := repo.db.WithContext(ctx).
		Model(&model.ProgressModel{}).
		Where("id = ?", entry.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(fromProgressDomain(entry))
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update progress entry")
	}
	if res.RowsAffected == 0 {
		return repository.ErrProgressNotFound
	}

	return nil
}

func (repo *progressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := repo.db.WithContext(ctx).Delete(&model.ProgressModel{}, "id = ?", id)
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete progress entry")
	}
	if res.RowsAffected == 0 {
		return repository.ErrProgressNotFound
	}

	return nil
}

func (repo *progressRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&model.ProgressModel{}, "user_id = ?", userID)
	if res.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete user progress")
	}

	return res.RowsAffected, nil
}

func fromProgressDomain(p *entity.ProgressEntry) *model.ProgressModel {
	return &model.ProgressModel{
		ID:              p.ID,
		UserID:          p.UserID,
		GoalID:          p.GoalID,
		Date:            p.Date,
		WeightKg:        p.WeightKg,
		BodyFatPct:      p.BodyFatPct,
		MuscleMassKg:    p.MuscleMassKg,
		Calories:        p.Calories,
		ProteinG:        p.ProteinG,
		CarbsG:          p.CarbsG,
		FatG:            p.FatG,
		WaterL:          p.WaterL,
		SleepHours:      p.SleepHours,
		Steps:           p.Steps,
		ExerciseMinutes: p.ExerciseMinutes,
		Mood:            p.Mood,
		Energy:          p.Energy,
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toProgressDomain(m *model.ProgressModel) *entity.ProgressEntry {
	return &entity.ProgressEntry{
		ID:              m.ID,
		UserID:          m.UserID,
		GoalID:          m.GoalID,
		Date:            m.Date,
		WeightKg:        m.WeightKg,
		BodyFatPct:      m.BodyFatPct,
		MuscleMassKg:    m.MuscleMassKg,
		Calories:        m.Calories,
		ProteinG:        m.ProteinG,
		CarbsG:          m.CarbsG,
		FatG:            m.FatG,
		WaterL:          m.WaterL,
		SleepHours:      m.SleepHours,
		Steps:           m.Steps,
		ExerciseMinutes: m.ExerciseMinutes,
		Mood:            m.Mood,
		Energy:          m.Energy,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
