package models

// Game event types published to the event stream.
const (
	EventRoundSubmitted = "round_submitted"
	EventItemPurchased  = "item_purchased"
)

// GameEvent is the payload published to Kafka for downstream telemetry
// consumers. Publishing is best effort and never blocks game operations.
type GameEvent struct {
	EventID     string  `json:"event_id"`
	EventType   string  `json:"event_type"`
	UserID      string  `json:"user_id"`
	Timestamp   int64   `json:"timestamp"`
	Clicks      int64   `json:"clicks,omitempty"`
	CoinsEarned int64   `json:"coins_earned,omitempty"`
	Duration    float64 `json:"duration,omitempty"`
	ItemID      int64   `json:"item_id,omitempty"`
	NewLevel    int64   `json:"new_level,omitempty"`
	PricePaid   int64   `json:"price_paid,omitempty"`
}
