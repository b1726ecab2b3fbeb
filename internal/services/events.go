package services

import (
	"context"
	"encoding/json"

	"github.com/Kaimin018/ClickFast/internal/logger"
	"github.com/Kaimin018/ClickFast/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishGameEvent publishes a game event to Kafka. A nil writer skips
// publishing; failures are logged and never fail the game operation.
func publishGameEvent(ctx context.Context, writer KafkaWriter, event models.GameEvent) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal game event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish game event", "event_id", event.EventID, "type", event.EventType, "error", err)
	} else {
		logger.Log.Infow("game event published", "event_id", event.EventID, "type", event.EventType)
	}
}
