package mongo

import (
	"context"

	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type goalRepository struct {
	coll *mongo.Collection
}

// NewGoalRepository returns a GoalRepository backed by the goals collection.
func NewGoalRepository(db *mongo.Database) repository.GoalRepository {
	return &goalRepository{coll: db.Collection(goalsCollection)}
}

func (repo *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	if _, err := repo.coll.InsertOne(ctx, fromGoal(goal)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create goal")
	}

	return nil
}

func (repo *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var doc goalDocument
	if err := repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrGoalNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find goal")
	}

	return doc.toEntity()
}

func (repo *goalRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter repository.GoalFilter) ([]*entity.Goal, error) {
	query := bson.D{{Key: "userId", Value: userID.String()}}
	if filter.Status != nil {
		query = append(query, bson.E{Key: "status", Value: string(*filter.Status)})
	}

	cursor, err := repo.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list goals")
	}

	return decodeAll(ctx, cursor, (*goalDocument).toEntity)
}

func (repo *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	doc := fromGoal(goal)

	res, err := repo.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: doc.ID}}, doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update goal")
	}
	if res.MatchedCount == 0 {
		return repository.ErrGoalNotFound
	}

	return nil
}

func (repo *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete goal")
	}
	if res.DeletedCount == 0 {
		return repository.ErrGoalNotFound
	}

	return nil
}

func (repo *goalRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	res, err := repo.coll.DeleteMany(ctx, bson.D{{Key: "userId", Value: userID.String()}})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete user goals")
	}

	return res.DeletedCount, nil
}
