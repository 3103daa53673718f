package impl

import (
	"io"
	"log/slog"
	"time"

	"healthplanner/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestUser() *entity.User {
	return &entity.User{
		ID:            uuid.New(),
		Name:          "Ada",
		Email:         "ada@example.com",
		Age:           30,
		WeightKg:      70,
		HeightCm:      175,
		Gender:        entity.GenderMale,
		ActivityLevel: entity.ActivityModerate,
		Goal:          entity.GoalMaintenance,
		CreatedAt:     fixedNow,
		UpdatedAt:     fixedNow,
	}
}

func ptr[T any](v T) *T { return &v }
