package repositories

import (
	"context"
	"strings"

	"github.com/Kaimin018/ClickFast/internal/logger"
	"github.com/Kaimin018/ClickFast/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// GameSessionWriteRepository appends completed rounds to the history log.
type GameSessionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewGameSessionWriteRepository(db *sqlx.DB, txGetter TxGetter) *GameSessionWriteRepository {
	return &GameSessionWriteRepository{db: db, txGetter: txGetter}
}

// Save appends one round. History rows are never updated or deleted.
func (r *GameSessionWriteRepository) Save(ctx context.Context, userID uuid.UUID, clicks int64, gameDuration float64, coinsEarned int64) error {
	const query = `
		INSERT INTO game_sessions (session_id, user_id, clicks, game_duration, coins_earned, played_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	args := []any{uuid.New(), userID, clicks, gameDuration, coinsEarned}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// GameSessionReadRepository reads the history log.
type GameSessionReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewGameSessionReadRepository(db *sqlx.DB, txGetter TxGetter) *GameSessionReadRepository {
	return &GameSessionReadRepository{db: db, txGetter: txGetter}
}

// ListRecent returns the player's most recent rounds, newest first.
func (r *GameSessionReadRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.GameSessionDB, error) {
	const query = `
		SELECT session_id, user_id, clicks, game_duration, coins_earned, played_at
		FROM game_sessions
		WHERE user_id = $1
		ORDER BY played_at DESC, session_id DESC
		LIMIT $2
	`

	var sessions []models.GameSessionDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &sessions, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(sessions),
		"error", err,
	)

	return sessions, err
}
