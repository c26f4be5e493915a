package nutrition

import "time"

// Log is one nutrition entry: calories plus macros, with free-form micros.
type Log struct {
	ID       int                `json:"id"`
	UserID   int                `json:"user_id"`
	Date     time.Time          `json:"date"`
	Calories float64            `json:"calories"`
	Protein  float64            `json:"protein"`
	Carbs    float64            `json:"carbs"`
	Fats     float64            `json:"fats"`
	Micros   map[string]float64 `json:"micros"`
}
