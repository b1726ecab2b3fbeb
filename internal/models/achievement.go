package models

import (
	"time"

	"github.com/google/uuid"
)

// Achievement trigger types
const (
	AchievementTotalClicks = "total_clicks"
	AchievementSingleRound = "single_round"
	AchievementTotalGames  = "total_games"
)

// AchievementDB represents an achievement definition row. Immutable after seeding.
type AchievementDB struct {
	AchievementID   int64  `db:"achievement_id"`
	Name            string `db:"name"`
	Description     string `db:"description"`
	AchievementType string `db:"achievement_type"`
	TargetValue     int64  `db:"target_value"`
	RewardCoins     int64  `db:"reward_coins"`
	Icon            string `db:"icon"`
}

// PlayerAchievementDB represents an unlock row. Created exactly once per
// (user, achievement) and never mutated afterwards.
type PlayerAchievementDB struct {
	UserID        uuid.UUID `db:"user_id"`
	AchievementID int64     `db:"achievement_id"`
	UnlockedAt    time.Time `db:"unlocked_at"`
	RewardClaimed bool      `db:"reward_claimed"`
}

// AchievementInfo represents one achievement in the achievements listing
// swagger:model AchievementInfo
type AchievementInfo struct {
	// Achievement identifier
	// example: 4
	ID int64 `json:"id"`

	// Name
	// example: Round Breaker
	Name string `json:"name"`

	// Description
	Description string `json:"description"`

	// Trigger type
	// example: single_round
	Type string `json:"type"`

	// Target value of the trigger
	// example: 50
	TargetValue int64 `json:"target_value"`

	// Coins granted on unlock
	// example: 100
	RewardCoins int64 `json:"reward_coins"`

	// Display icon
	// example: ⚡
	Icon string `json:"icon"`

	// Whether the caller has unlocked it
	// example: true
	Unlocked bool `json:"unlocked"`
}

// UnlockedAchievement represents an achievement unlocked by a round submission
// swagger:model UnlockedAchievement
type UnlockedAchievement struct {
	// Achievement identifier
	// example: 4
	ID int64 `json:"id"`

	// Name
	// example: Round Breaker
	Name string `json:"name"`

	// Description
	Description string `json:"description"`

	// Display icon
	// example: ⚡
	Icon string `json:"icon"`

	// Coins granted
	// example: 100
	RewardCoins int64 `json:"reward_coins"`
}

// AchievementsResponse represents the achievements listing response
// swagger:model AchievementsResponse
type AchievementsResponse struct {
	Achievements []AchievementInfo `json:"achievements"`
}

// AchievementsErrorResponse represents an error response for the achievements listing
// swagger:model AchievementsErrorResponse
type AchievementsErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}
