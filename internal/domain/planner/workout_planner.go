package planner

import (
	"math"
	"strconv"

	"healthplanner/internal/domain/entity"
	domainerrors "healthplanner/internal/domain/errors"
	"healthplanner/internal/domain/repository"
	"healthplanner/internal/domain/service"
)

// schedule is the weekly volume and difficulty ceiling of an activity level.
type schedule struct {
	sessionsPerWeek int
	durationMin     int
	ceiling         entity.Difficulty
}

var schedules = map[entity.ActivityLevel]schedule{
	entity.ActivitySedentary:  {sessionsPerWeek: 2, durationMin: 20, ceiling: entity.DifficultyBeginner},
	entity.ActivityLight:      {sessionsPerWeek: 3, durationMin: 30, ceiling: entity.DifficultyBeginner},
	entity.ActivityModerate:   {sessionsPerWeek: 4, durationMin: 40, ceiling: entity.DifficultyIntermediate},
	entity.ActivityActive:     {sessionsPerWeek: 5, durationMin: 45, ceiling: entity.DifficultyIntermediate},
	entity.ActivityVeryActive: {sessionsPerWeek: 6, durationMin: 60, ceiling: entity.DifficultyAdvanced},
}

var sessionTemplates = map[entity.FitnessGoal][]entity.WorkoutFocus{
	entity.GoalWeightLoss: {
		entity.FocusCardio, entity.FocusCardio, entity.FocusStrength,
		entity.FocusCardio, entity.FocusFlexibility, entity.FocusSports,
	},
	entity.GoalMuscleGain: {
		entity.FocusStrength, entity.FocusStrength, entity.FocusStrength,
		entity.FocusCardio, entity.FocusStrength, entity.FocusFlexibility,
	},
	entity.GoalWeightGain: {
		entity.FocusStrength, entity.FocusStrength, entity.FocusCardio,
		entity.FocusStrength, entity.FocusSports, entity.FocusFlexibility,
	},
	entity.GoalMaintenance: {
		entity.FocusCardio, entity.FocusStrength, entity.FocusFlexibility,
		entity.FocusSports, entity.FocusCardio, entity.FocusStrength,
	},
}

// draw is how many exercises of a category a focus samples.
type draw struct {
	category entity.ExerciseCategory
	count    int
}

var focusDraws = map[entity.WorkoutFocus][]draw{
	entity.FocusCardio:      {{entity.ExerciseCardio, 3}},
	entity.FocusStrength:    {{entity.ExerciseStrength, 4}},
	entity.FocusFlexibility: {{entity.ExerciseFlexibility, 2}},
	entity.FocusSports:      {{entity.ExerciseSports, 2}},
	entity.FocusMixed: {
		{entity.ExerciseCardio, 1},
		{entity.ExerciseStrength, 2},
		{entity.ExerciseFlexibility, 1},
	},
}

// WorkoutPlanner samples sessions from an exercise catalog.
type WorkoutPlanner struct {
	exercises repository.ExerciseCatalog
	rng       service.RandomSource
}

// NewWorkoutPlanner creates a WorkoutPlanner. rng must be safe for
// concurrent use if the planner is shared across goroutines.
func NewWorkoutPlanner(exercises repository.ExerciseCatalog, rng service.RandomSource) *WorkoutPlanner {
	return &WorkoutPlanner{exercises: exercises, rng: rng}
}

// DifficultyCeiling returns the hardest difficulty allowed for level.
func DifficultyCeiling(level entity.ActivityLevel) (entity.Difficulty, error) {
	s, ok := schedules[level]
	if !ok {
		return "", domainerrors.InvalidArgument("unknown activity level %q", level)
	}

	return s.ceiling, nil
}

// Generate builds a week of sessions for the level and goal.
func (p *WorkoutPlanner) Generate(level entity.ActivityLevel, goal entity.FitnessGoal) (*entity.WorkoutPlan, error) {
	s, ok := schedules[level]
	if !ok {
		return nil, domainerrors.InvalidArgument("unknown activity level %q", level)
	}
	template, ok := sessionTemplates[goal]
	if !ok {
		return nil, domainerrors.InvalidArgument("unknown goal %q", goal)
	}

	sessions := min(s.sessionsPerWeek, len(template))
	plan := &entity.WorkoutPlan{
		ActivityLevel:      level,
		Goal:               goal,
		DifficultyCeiling:  s.ceiling,
		SessionsPerWeek:    s.sessionsPerWeek,
		SessionDurationMin: s.durationMin,
		Workouts:           make([]entity.Workout, 0, sessions),
	}

	for i := range sessions {
		workout, err := p.Session("Session "+strconv.Itoa(i+1), template[i], s.durationMin, s.ceiling)
		if err != nil {
			return nil, err
		}

		plan.Workouts = append(plan.Workouts, *workout)
		plan.TotalExercises += len(workout.Exercises)
		plan.WeeklyDurationMin += workout.TotalDurationMin
		plan.WeeklyCalories += workout.TotalCalories
	}
	plan.WeeklyCalories = round1(plan.WeeklyCalories)

	return plan, nil
}

// Session samples exercises for one focus. Categories with fewer eligible
// exercises than requested contribute all of them.
func (p *WorkoutPlanner) Session(name string, focus entity.WorkoutFocus, durationMin int, ceiling entity.Difficulty) (*entity.Workout, error) {
	draws, ok := focusDraws[focus]
	if !ok {
		return nil, domainerrors.InvalidArgument("unknown workout focus %q", focus)
	}
	if !ceiling.IsValid() {
		return nil, domainerrors.InvalidArgument("unknown difficulty %q", ceiling)
	}

	var selected []*entity.Exercise
	for _, d := range draws {
		selected = append(selected, p.sample(p.exercises.ExercisesByCategory(d.category, ceiling), d.count)...)
	}

	workout := &entity.Workout{
		Name:      name,
		Focus:     focus,
		Exercises: make([]entity.WorkoutExercise, 0, len(selected)),
	}
	if len(selected) == 0 {
		return workout, nil
	}

	perExercise := int(math.Round(float64(durationMin) / float64(len(selected))))
	for _, ex := range selected {
		calories := round1(ex.CaloriesPerMinute * float64(perExercise))

		workout.Exercises = append(workout.Exercises, entity.WorkoutExercise{
			Exercise:          ex,
			DurationMin:       perExercise,
			EstimatedCalories: calories,
		})
		workout.TotalDurationMin += perExercise
		workout.TotalCalories += calories
	}
	workout.TotalCalories = round1(workout.TotalCalories)

	return workout, nil
}

// sample returns up to n distinct exercises chosen uniformly.
func (p *WorkoutPlanner) sample(pool []*entity.Exercise, n int) []*entity.Exercise {
	candidates := append([]*entity.Exercise(nil), pool...)
	if len(candidates) > 1 {
		p.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	return candidates[:min(n, len(candidates))]
}
