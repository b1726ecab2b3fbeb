package models

// PurchaseRequest represents the JSON body for purchasing a shop item
// swagger:model PurchaseRequest
type PurchaseRequest struct {
	// Item identifier
	// required: true
	// example: 1
	ItemID *int64 `json:"item_id"`
}

// PurchaseResponse represents a successful purchase response
// swagger:model PurchaseResponse
type PurchaseResponse struct {
	// New level after the purchase
	// example: 2
	NewLevel int64 `json:"new_level"`

	// Remaining coin balance
	// example: 850
	CoinsRemaining int64 `json:"coins_remaining"`

	// Item name
	// example: Extra Click Button
	ItemName string `json:"item_name"`

	// Price of the next level; null at max level
	// example: 300
	NextLevelPrice *int64 `json:"next_level_price"`

	// Whether a further upgrade is possible
	// example: true
	CanUpgrade bool `json:"can_upgrade"`

	// Maximum level of the item
	// example: 5
	MaxLevel int64 `json:"max_level"`
}

// PurchaseErrorResponse represents an error response for a purchase
// swagger:model PurchaseErrorResponse
type PurchaseErrorResponse struct {
	// Error message
	// example: insufficient funds
	Error string `json:"error"`
}
