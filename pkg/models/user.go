package models

import "time"

// User is the currently logged in user.
//
// It is only used to partition expenses and budgets, no credentials are stored.
type User struct {
	ID        string    `json:"id" example:"user_1704451100000"`
	Email     string    `json:"email" example:"jane@example.com"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-05T10:38:20.000000Z"`
}

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports if the theme is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}
