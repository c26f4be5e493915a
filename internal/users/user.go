package users

import "time"

type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Profile
	CreatedAt time.Time `json:"created_at"`

	// never serialized
	PasswordHash string `json:"-"`
}

// Profile holds the user-editable part of the account.
type Profile struct {
	Name              *string  `json:"name"`
	Age               *int     `json:"age"`
	Weight            *float64 `json:"weight"`
	Height            *float64 `json:"height"`
	BodyFatPercentage *float64 `json:"body_fat_percentage"`
	BodyGoal          *string  `json:"body_goal"`
}
