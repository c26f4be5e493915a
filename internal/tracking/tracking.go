package tracking

import "time"

// Entry is one day of free-form tracking: intake, sleep and steps.
type Entry struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	Date       time.Time `json:"date"`
	Calories   *float64  `json:"calories,omitempty"`
	Protein    *float64  `json:"protein,omitempty"`
	Carbs      *float64  `json:"carbs,omitempty"`
	Fats       *float64  `json:"fats,omitempty"`
	SleepHours *float64  `json:"sleep_hours,omitempty"`
	Steps      *int      `json:"steps,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
}
