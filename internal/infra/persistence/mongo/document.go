package mongo

import (
	"time"

	"healthplanner/internal/domain/entity"

	"github.com/google/uuid"
)

// Documents store UUIDs as their canonical string form so that ids stay
// readable in the shell and match the ids the API returns.

type userDocument struct {
	ID             string    `bson:"_id"`
	Name           string    `bson:"name"`
	Email          string    `bson:"email"`
	PasswordHash   string    `bson:"passwordHash,omitempty"`
	Age            int       `bson:"age"`
	WeightKg       float64   `bson:"weightKg"`
	HeightCm       float64   `bson:"heightCm"`
	Gender         string    `bson:"gender"`
	ActivityLevel  string    `bson:"activityLevel"`
	Goal           string    `bson:"goal"`
	TargetWeightKg *float64  `bson:"targetWeightKg,omitempty"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

func fromUser(u *entity.User) *userDocument {
	return &userDocument{
		ID:             u.ID.String(),
		Name:           u.Name,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Age:            u.Age,
		WeightKg:       u.WeightKg,
		HeightCm:       u.HeightCm,
		Gender:         string(u.Gender),
		ActivityLevel:  string(u.ActivityLevel),
		Goal:           string(u.Goal),
		TargetWeightKg: u.TargetWeightKg,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (d *userDocument) toEntity() (*entity.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:             id,
		Name:           d.Name,
		Email:          d.Email,
		PasswordHash:   d.PasswordHash,
		Age:            d.Age,
		WeightKg:       d.WeightKg,
		HeightCm:       d.HeightCm,
		Gender:         entity.Gender(d.Gender),
		ActivityLevel:  entity.ActivityLevel(d.ActivityLevel),
		Goal:           entity.FitnessGoal(d.Goal),
		TargetWeightKg: d.TargetWeightKg,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}, nil
}

type goalDocument struct {
	ID           string    `bson:"_id"`
	UserID       string    `bson:"userId"`
	Title        string    `bson:"title"`
	Description  string    `bson:"description,omitempty"`
	Type         string    `bson:"type"`
	TargetValue  float64   `bson:"targetValue"`
	CurrentValue float64   `bson:"currentValue"`
	Unit         string    `bson:"unit"`
	TargetDate   time.Time `bson:"targetDate"`
	Status       string    `bson:"status"`
	Priority     string    `bson:"priority"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func fromGoal(g *entity.Goal) *goalDocument {
	return &goalDocument{
		ID:           g.ID.String(),
		UserID:       g.UserID.String(),
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

func (d *goalDocument) toEntity() (*entity.Goal, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}

	return &entity.Goal{
		ID:           id,
		UserID:       userID,
		Title:        d.Title,
		Description:  d.Description,
		Type:         entity.GoalType(d.Type),
		TargetValue:  d.TargetValue,
		CurrentValue: d.CurrentValue,
		Unit:         d.Unit,
		TargetDate:   d.TargetDate,
		Status:       entity.GoalStatus(d.Status),
		Priority:     entity.GoalPriority(d.Priority),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

type progressDocument struct {
	ID              string    `bson:"_id"`
	UserID          string    `bson:"userId"`
	GoalID          *string   `bson:"goalId,omitempty"`
	Date            time.Time `bson:"date"`
	WeightKg        *float64  `bson:"weightKg,omitempty"`
	BodyFatPct      *float64  `bson:"bodyFatPct,omitempty"`
	MuscleMassKg    *float64  `bson:"muscleMassKg,omitempty"`
	Calories        *float64  `bson:"calories,omitempty"`
	ProteinG        *float64  `bson:"proteinG,omitempty"`
	CarbsG          *float64  `bson:"carbsG,omitempty"`
	FatG            *float64  `bson:"fatG,omitempty"`
	WaterL          *float64  `bson:"waterL,omitempty"`
	SleepHours      *float64  `bson:"sleepHours,omitempty"`
	Steps           *int      `bson:"steps,omitempty"`
	ExerciseMinutes *int      `bson:"exerciseMinutes,omitempty"`
	Mood            *int      `bson:"mood,omitempty"`
	Energy          *int      `bson:"energy,omitempty"`
	Notes           string    `bson:"notes,omitempty"`
	CreatedAt       time.Time `bson:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt"`
}

func fromProgress(p *entity.ProgressEntry) *progressDocument {
	d := &progressDocument{
		ID:              p.ID.String(),
		UserID:          p.UserID.String(),
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
	if p.GoalID != nil {
		goalID := p.GoalID.String()
		d.GoalID = &goalID
	}

	return d
}

func (d *progressDocument) toEntity() (*entity.ProgressEntry, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, err
	}

	p := &entity.ProgressEntry{
		ID:              id,
		UserID:          userID,
		Date:            d.Date,
		WeightKg:        d.WeightKg,
		BodyFatPct:      d.BodyFatPct,
		MuscleMassKg:    d.MuscleMassKg,
		Calories:        d.Calories,
		ProteinG:        d.ProteinG,
		CarbsG:          d.CarbsG,
		FatG:            d.FatG,
		WaterL:          d.WaterL,
		SleepHours:      d.SleepHours,
		Steps:           d.Steps,
		ExerciseMinutes: d.ExerciseMinutes,
		Mood:            d.Mood,
		Energy:          d.Energy,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
	if d.GoalID != nil {
		goalID, err := uuid.Parse(*d.GoalID)
		if err != nil {
			return nil, err
		}
		p.GoalID = &goalID
	}

	return p, nil
}
