package models

import (
	"time"

	"github.com/google/uuid"
)

// GameSessionDB represents a completed round row. Append-only.
type GameSessionDB struct {
	SessionID    uuid.UUID `db:"session_id"`
	UserID       uuid.UUID `db:"user_id"`
	Clicks       int64     `db:"clicks"`
	GameDuration float64   `db:"game_duration"`
	CoinsEarned  int64     `db:"coins_earned"`
	PlayedAt     time.Time `db:"played_at"`
}

// SubmitGameRequest represents the JSON body for submitting a completed round.
// Both fields are required; pointers distinguish missing from zero.
// swagger:model SubmitGameRequest
type SubmitGameRequest struct {
	// Click count of the round
	// required: true
	// example: 87
	Clicks *int64 `json:"clicks"`

	// Round duration in seconds
	// required: true
	// example: 12.0
	GameDuration *float64 `json:"game_duration"`
}

// SubmitGameResponse represents a successful round submission response
// swagger:model SubmitGameResponse
type SubmitGameResponse struct {
	// Coins earned this round, achievements excluded
	// example: 101
	CoinsEarned int64 `json:"coins_earned"`

	// Achievements unlocked by this round
	NewAchievements []UnlockedAchievement `json:"new_achievements"`

	// Profile after the round and any achievement rewards
	Profile Profile `json:"profile"`

	// Most recent rounds, newest first
	History []RoundRecord `json:"history"`
}

// SubmitGameErrorResponse represents an error response for a round submission
// swagger:model SubmitGameErrorResponse
type SubmitGameErrorResponse struct {
	// Error message
	// example: invalid clicks or duration
	Error string `json:"error"`
}
