package mongo

import (
	"testing"
	"time"

	"healthplanner/internal/domain/entity"
	"healthplanner/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func ptr[T any](v T) *T { return &v }

func TestUserDocument_BSONRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	user := &entity.User{
		ID:             uuid.New(),
		Name:           "Ada",
		Email:          "ada@example.com",
		Age:            30,
		WeightKg:       70,
		HeightCm:       175,
		Gender:         entity.GenderFemale,
		ActivityLevel:  entity.ActivityModerate,
		Goal:           entity.GoalMaintenance,
		TargetWeightKg: ptr(65.0),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	raw, err := bson.Marshal(fromUser(user))
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.Equal(t, user.ID.String(), fields["_id"])
	assert.NotContains(t, fields, "passwordHash")

	var doc userDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	got, err := doc.toEntity()
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProgressDocument_GoalID(t *testing.T) {
	goalID := uuid.New()
	entry := &entity.ProgressEntry{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		GoalID:   &goalID,
		Date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		WeightKg: ptr(80.5),
		Mood:     ptr(7),
	}

	doc := fromProgress(entry)
	require.NotNil(t, doc.GoalID)
	assert.Equal(t, goalID.String(), *doc.GoalID)

	got, err := doc.toEntity()
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestGoalDocument_InvalidID(t *testing.T) {
	_, err := (&goalDocument{ID: "nope", UserID: uuid.NewString()}).toEntity()
	assert.Error(t, err)
}

func TestProgressQuery(t *testing.T) {
	userID := uuid.New()
	goalID := uuid.New()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	q := progressQuery(userID, repository.ProgressFilter{GoalID: &goalID, StartDate: &start, EndDate: &end})

	assert.Equal(t, bson.D{
		{Key: "userId", Value: userID.String()},
		{Key: "goalId", Value: goalID.String()},
		{Key: "date", Value: bson.D{{Key: "$gte", Value: start}, {Key: "$lte", Value: end}}},
	}, q)

	assert.Equal(t, bson.D{{Key: "userId", Value: userID.String()}}, progressQuery(userID, repository.ProgressFilter{}))
}
