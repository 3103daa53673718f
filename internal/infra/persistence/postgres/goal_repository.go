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

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository returns the GORM-backed GoalRepository.
func NewGoalRepository(db *gorm.DB) repository.GoalRepository {
	return &goalRepository{db: db}
}

func (repo *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	if err := repo.db.WithContext(ctx).Create(fromGoalDomain(goal)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create goal")
	}

	return nil
}

func (repo *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var row model.GoalModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGoalNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find goal")
	}

	return toGoalDomain(&row), nil
}

func (repo *goalRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter repository.GoalFilter) ([]*entity.Goal, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var rows []model.GoalModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list goals")
	}

	goals := make([]*entity.Goal, 0, len(rows))
	for i := range rows {
		goals = append(goals, toGoalDomain(&rows[i]))
	}

	return goals, nil
}

func (repo *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	res := repo.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ?", goal.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(fromGoalDomain(goal))
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update goal")
	}
	if res.RowsAffected == 0 {
		return repository.ErrGoalNotFound
	}

	return nil
}

func (repo *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := repo.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete goal")
	}
	if res.RowsAffected == 0 {
		return repository.ErrGoalNotFound
	}

	return nil
}

func (repo *goalRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&model.GoalModel{}, "user_id = ?", userID)
	if res.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete user goals")
	}

	return res.RowsAffected, nil
}

func fromGoalDomain(g *entity.Goal) *model.GoalModel {
	return &model.GoalModel{
		ID:           g.ID,
		UserID:       g.UserID,
		Title:        g.Title,
		Description:  g.Description,
		Type:         string(g.Type),
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		TargetDate:   g.TargetDate,
		Status:       string(g.Status),
		Priority:     string(g.Priority),
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func toGoalDomain(m *model.GoalModel) *entity.Goal {
	return &entity.Goal{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		Description:  m.Description,
		Type:         entity.GoalType(m.Type),
		TargetValue:  m.TargetValue,
		CurrentValue: m.CurrentValue,
		Unit:         m.Unit,
		TargetDate:   m.TargetDate,
		Status:       entity.GoalStatus(m.Status),
		Priority:     entity.GoalPriority(m.Priority),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
