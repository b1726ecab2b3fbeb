package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDB represents a player profile row in the database.
// Coins never go negative; the click and game counters only grow.
type ProfileDB struct {
	UserID             uuid.UUID `db:"user_id"`
	Coins              int64     `db:"coins"`
	TotalClicks        int64     `db:"total_clicks"`
	BestClicksPerRound int64     `db:"best_clicks_per_round"`
	TotalGamesPlayed   int64     `db:"total_games_played"`
	BattleWins         int64     `db:"battle_wins"`
	Badge1ID           *int64    `db:"badge_1_id"`
	Badge2ID           *int64    `db:"badge_2_id"`
	Badge3ID           *int64    `db:"badge_3_id"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// Profile represents the player profile as returned to clients
// swagger:model Profile
type Profile struct {
	// Username
	// example: john_doe
	Username string `json:"username"`

	// Profile creation time, RFC 3339
	// example: 2025-01-02T15:04:05Z
	CreatedAt string `json:"created_at"`

	// Battle wins
	// example: 0
	BattleWins int64 `json:"battle_wins"`

	// Coin balance
	// example: 1250
	Coins int64 `json:"coins"`

	// Lifetime click total
	// example: 4200
	TotalClicks int64 `json:"total_clicks"`

	// Best single-round click count
	// example: 120
	BestClicksPerRound int64 `json:"best_clicks_per_round"`

	// Rounds played
	// example: 37
	TotalGamesPlayed int64 `json:"total_games_played"`
}

// NewProfile builds the client-facing profile from a database row.
func NewProfile(username string, p *ProfileDB) Profile {
	return Profile{
		Username:           username,
		CreatedAt:          p.CreatedAt.UTC().Format(time.RFC3339),
		BattleWins:         p.BattleWins,
		Coins:              p.Coins,
		TotalClicks:        p.TotalClicks,
		BestClicksPerRound: p.BestClicksPerRound,
		TotalGamesPlayed:   p.TotalGamesPlayed,
	}
}
