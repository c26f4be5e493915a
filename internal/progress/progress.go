package progress

import "time"

// Entry is a body-progress snapshot (weight, bodyfat, tape measurements).
type Entry struct {
	ID           int                `json:"id"`
	UserID       int                `json:"user_id"`
	Date         time.Time          `json:"date"`
	Weight       *float64           `json:"weight,omitempty"`
	Bodyfat      *float64           `json:"bodyfat,omitempty"`
	Measurements map[string]float64 `json:"measurements,omitempty"`
	PhotoURL     *string            `json:"photo_url,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
}

// TrendPoint aggregates one calendar date of sets for a single exercise.
type TrendPoint struct {
	Date        string   `json:"date"`
	TotalVolume float64  `json:"total_volume"`
	AvgRPE      *float64 `json:"avg_rpe"`
	SetsCount   int      `json:"sets_count"`
}

// SetRecord is a single performed set together with its workout date,
// as returned by the personal record queries.
type SetRecord struct {
	ID           int       `json:"id"`
	WorkoutID    int       `json:"workout_id"`
	ExerciseName string    `json:"exercise_name"`
	Reps         int       `json:"reps"`
	Weight       float64   `json:"weight"`
	Volume       float64   `json:"volume"`
	RPE          *float64  `json:"rpe"`
	Date         time.Time `json:"date"`
}

type Trend struct {
	Exercise string       `json:"exercise"`
	From     string       `json:"from"`
	To       string       `json:"to"`
	Points   []TrendPoint `json:"points"`
}

type PersonalRecords struct {
	Exercise      string     `json:"exercise"`
	BestWeightSet *SetRecord `json:"best_weight_set"`
	BestVolumeSet *SetRecord `json:"best_volume_set"`
}

type Summary struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	WorkoutCount int     `json:"workout_count"`
	SetsCount    int     `json:"sets_count"`
	TotalVolume  float64 `json:"total_volume"`
}
