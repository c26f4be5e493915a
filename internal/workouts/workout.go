package workouts

import "time"

type Workout struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	Name            string    `json:"name"`
	Date            time.Time `json:"date"`
	Notes           *string   `json:"notes,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
}

// ExerciseEntry is a single performed set within a workout.
type ExerciseEntry struct {
	ID           int      `json:"id"`
	WorkoutID    int      `json:"workout_id"`
	ExerciseName string   `json:"exercise_name"`
	SetIndex     int      `json:"set_index"`
	Reps         int      `json:"reps"`
	Weight       float64  `json:"weight"`
	RPE          *float64 `json:"rpe,omitempty"`
	Tempo        *string  `json:"tempo,omitempty"`
}
