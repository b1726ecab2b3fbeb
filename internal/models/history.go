package models

import "time"

// RoundRecord represents one completed round in the history listing
// swagger:model RoundRecord
type RoundRecord struct {
	// Click count
	// example: 87
	Clicks int64 `json:"clicks"`

	// Round duration in seconds
	// example: 12.0
	GameDuration float64 `json:"game_duration"`

	// Coins earned
	// example: 101
	CoinsEarned int64 `json:"coins_earned"`

	// Completion time, RFC 3339
	// example: 2025-01-02T15:04:05Z
	PlayedAt string `json:"played_at"`
}

// NewRoundRecord builds the client-facing record from a database row.
func NewRoundRecord(s *GameSessionDB) RoundRecord {
	return RoundRecord{
		Clicks:       s.Clicks,
		GameDuration: s.GameDuration,
		CoinsEarned:  s.CoinsEarned,
		PlayedAt:     s.PlayedAt.UTC().Format(time.RFC3339),
	}
}

// HistoryResponse represents the round history response
// swagger:model HistoryResponse
type HistoryResponse struct {
	History []RoundRecord `json:"history"`
}

// HistoryErrorResponse represents an error response for the history listing
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// example: invalid limit
	Error string `json:"error"`
}
