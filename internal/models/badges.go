package models

// Badge represents one of the player's selected display badges
// swagger:model Badge
type Badge struct {
	// Achievement identifier backing the badge
	// example: 4
	ID int64 `json:"id"`

	// Display icon
	// example: ⚡
	Icon string `json:"icon"`

	// Achievement name
	// example: Round Breaker
	Name string `json:"name"`
}

// UpdateBadgesRequest represents the JSON body for badge selection.
// A nil slot clears the badge.
// swagger:model UpdateBadgesRequest
type UpdateBadgesRequest struct {
	// First badge slot
	// example: 4
	Badge1ID *int64 `json:"badge_1_id"`

	// Second badge slot
	// example: 7
	Badge2ID *int64 `json:"badge_2_id"`

	// Third badge slot
	Badge3ID *int64 `json:"badge_3_id"`
}

// BadgesResponse represents a successful badge update response
// swagger:model BadgesResponse
type BadgesResponse struct {
	// Selected badges in slot order; null for empty slots
	Badges []*Badge `json:"badges"`
}

// BadgesErrorResponse represents an error response for badge selection
// swagger:model BadgesErrorResponse
type BadgesErrorResponse struct {
	// Error message
	// example: achievement not unlocked
	Error string `json:"error"`
}

// OwnedUpgrade represents an owned upgrade in the profile view
// swagger:model OwnedUpgrade
type OwnedUpgrade struct {
	// Current level
	// example: 2
	Level int64 `json:"level"`

	// Aggregate effect value (per-level effect times level)
	// example: 4.0
	EffectValue float64 `json:"effect_value"`
}

// ProfileAchievement represents an unlocked achievement in the profile view
// swagger:model ProfileAchievement
type ProfileAchievement struct {
	// Achievement identifier
	// example: 4
	ID int64 `json:"id"`

	// Name
	// example: Round Breaker
	Name string `json:"name"`

	// Display icon
	// example: ⚡
	Icon string `json:"icon"`

	// Whether the coin reward was granted
	// example: true
	RewardClaimed bool `json:"reward_claimed"`
}

// ProfileResponse represents the full profile view
// swagger:model ProfileResponse
type ProfileResponse struct {
	Profile Profile `json:"profile"`

	// Owned upgrades keyed by item type
	Purchases map[string]OwnedUpgrade `json:"purchases"`

	// Unlocked achievements
	Achievements []ProfileAchievement `json:"achievements"`

	// Selected display badges in slot order; null for empty slots
	Badges []*Badge `json:"badges"`
}

// ProfileErrorResponse represents an error response for the profile view
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}
