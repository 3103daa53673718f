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

type progressRepository struct {
	coll *mongo.Collection
}

// NewProgressRepository returns a ProgressRepository backed by the progress collection.
func NewProgressRepository(db *mongo.Database) repository.ProgressRepository {
	return &progressRepository{coll: db.Collection(progressCollection)}
}

func (repo *progressRepository) Create(ctx context.Context, entry *entity.ProgressEntry) error {
	if _, err := repo.coll.InsertOne(ctx, fromProgress(entry)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create progress entry")
	}

	return nil
}

func (repo *progressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProgressEntry, error) {
	var doc progressDocument
	if err := repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProgressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find progress entry")
	}

	return doc.toEntity()
}

func (repo *progressRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter repository.ProgressFilter) ([]*entity.ProgressEntry, error) {
	cursor, err := repo.coll.Find(ctx, progressQuery(userID, filter), options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list progress entries")
	}

	return decodeAll(ctx, cursor, (*progressDocument).toEntity)
}

func (repo *progressRepository) Update(ctx context.Context, entry *entity.ProgressEntry) error {
	doc := fromProgress(entry)

	res, err := repo.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: doc.ID}}, doc)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update progress entry")
	}
	if res.MatchedCount == 0 {
		return repository.ErrProgressNotFound
	}

	return nil
}

func (repo *progressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete progress entry")
	}
	if res.DeletedCount == 0 {
		return repository.ErrProgressNotFound
	}

	return nil
}

func (repo *progressRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	res, err := repo.coll.DeleteMany(ctx, bson.D{{Key: "userId", Value: userID.String()}})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete user progress")
	}

	return res.DeletedCount, nil
}

func progressQuery(userID uuid.UUID, filter repository.ProgressFilter) bson.D {
	query := bson.D{{Key: "userId", Value: userID.String()}}
	if filter.GoalID != nil {
		query = append(query, bson.E{Key: "goalId", Value: filter.GoalID.String()})
	}

	date := bson.D{}
	if filter.StartDate != nil {
		date = append(date, bson.E{Key: "$gte", Value: *filter.StartDate})
	}
	if filter.EndDate != nil {
		date = append(date, bson.E{Key: "$lte", Value: *filter.EndDate})
	}
	if len(date) > 0 {
		query = append(query, bson.E{Key: "date", Value: date})
	}

	return query
}
