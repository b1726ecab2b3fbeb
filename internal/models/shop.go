package models

import (
	"time"

	"github.com/google/uuid"
)

// Shop item types
const (
	ItemTypeTimeExtension = "time_extension"
	ItemTypeExtraButton   = "extra_button"
	ItemTypeAutoClicker   = "auto_clicker"
)

// ShopItemDB represents a shop item definition row. Immutable after seeding.
type ShopItemDB struct {
	ItemID      int64     `db:"item_id"`
	Name        string    `db:"name"`
	ItemType    string    `db:"item_type"`
	Description string    `db:"description"`
	BasePrice   int64     `db:"base_price"`
	EffectValue float64   `db:"effect_value"`
	MaxLevel    int64     `db:"max_level"`
	CreatedAt   time.Time `db:"created_at"`
}

// PurchaseDB represents a player's upgrade ownership row.
// At most one row exists per (user, item); price_paid holds the price of the
// most recent level purchase only.
type PurchaseDB struct {
	UserID      uuid.UUID `db:"user_id"`
	ItemID      int64     `db:"item_id"`
	Level       int64     `db:"level"`
	PricePaid   int64     `db:"price_paid"`
	PurchasedAt time.Time `db:"purchased_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ShopListItem represents one shop item in the catalog listing
// swagger:model ShopListItem
type ShopListItem struct {
	// Item identifier
	// example: 1
	ID int64 `json:"id"`

	// Item name
	// example: Extra Click Button
	Name string `json:"name"`

	// Item type
	// example: extra_button
	Type string `json:"type"`

	// Description
	Description string `json:"description"`

	// Base price in coins
	// example: 100
	BasePrice int64 `json:"base_price"`

	// Per-level effect value
	// example: 1.0
	EffectValue float64 `json:"effect_value"`

	// Maximum level
	// example: 5
	MaxLevel int64 `json:"max_level"`

	// Caller's current level; zero when unauthenticated or never purchased
	// example: 2
	CurrentLevel int64 `json:"current_level"`

	// Price of the next level; null at max level
	// example: 300
	NextLevelPrice *int64 `json:"next_level_price"`

	// Whether the caller may purchase the next level
	// example: true
	CanUpgrade bool `json:"can_upgrade"`

	// Whether the extra-button prerequisite still blocks this item
	// example: false
	RequiresExtraButton bool `json:"requires_extra_button"`

	// Whether the caller has never purchased this item
	// example: false
	IsUnpurchased bool `json:"is_unpurchased"`
}

// ShopResponse represents the catalog listing response
// swagger:model ShopResponse
type ShopResponse struct {
	Items []ShopListItem `json:"items"`
}

// ShopErrorResponse represents an error response for the shop listing
// swagger:model ShopErrorResponse
type ShopErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}
