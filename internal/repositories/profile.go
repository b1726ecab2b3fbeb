package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Kaimin018/ClickFast/internal/logger"
	"github.com/Kaimin018/ClickFast/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const profileColumns = `
	user_id, coins, total_clicks, best_clicks_per_round, total_games_played,
	battle_wins, badge_1_id, badge_2_id, badge_3_id, created_at, updated_at
`

type ProfileReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProfileReadRepository(db *sqlx.DB, txGetter TxGetter) *ProfileReadRepository {
	return &ProfileReadRepository{db: db, txGetter: txGetter}
}

// GetByUserID returns the profile for the user, or nil when absent.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	var profile models.ProfileDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &profile, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetForUpdate locks the profile row for the remainder of the request
// transaction and returns it, or nil when absent. Must run inside a transaction.
func (r *ProfileReadRepository) GetForUpdate(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1 FOR UPDATE`

	var profile models.ProfileDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &profile, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter TxGetter) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

// SaveIfAbsent creates an all-zero profile for the user unless one already
// exists. Idempotent; an existing profile is never overwritten.
func (r *ProfileWriteRepository) SaveIfAbsent(ctx context.Context, userID uuid.UUID) error {
	const query = `
		INSERT INTO profiles (user_id, coins, total_clicks, best_clicks_per_round,
		                      total_games_played, battle_wins, created_at, updated_at)
		VALUES ($1, 0, 0, 0, 0, 0, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ApplyRound folds a completed round into the profile counters: coins and
// total clicks grow by the round's amounts, the games counter by one, and the
// best-round record rises only on a strict improvement.
func (r *ProfileWriteRepository) ApplyRound(ctx context.Context, userID uuid.UUID, clicks, coinsEarned int64) (*models.ProfileDB, error) {
	query := `
		UPDATE profiles
		SET coins = coins + $2,
		    total_clicks = total_clicks + $3,
		    total_games_played = total_games_played + 1,
		    best_clicks_per_round = GREATEST(best_clicks_per_round, $3),
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + profileColumns

	var profile models.ProfileDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &profile, query, userID, coinsEarned, clicks)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, coinsEarned, clicks},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Credit adds amount to the profile's coin balance and returns the new balance.
func (r *ProfileWriteRepository) Credit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error) {
	const query = `
		UPDATE profiles
		SET coins = coins + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING coins
	`

	var coins int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &coins, query, userID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount},
		"result", coins,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return coins, nil
}

// Debit subtracts amount from the coin balance and returns the new balance.
// Returns sql.ErrNoRows when the balance does not cover the amount; the row is
// left untouched in that case.
func (r *ProfileWriteRepository) Debit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error) {
	const query = `
		UPDATE profiles
		SET coins = coins - $2, updated_at = NOW()
		WHERE user_id = $1 AND coins >= $2
		RETURNING coins
	`

	var coins int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &coins, query, userID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, amount},
		"result", coins,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return coins, nil
}

// SetBadges replaces the three badge slots.
func (r *ProfileWriteRepository) SetBadges(ctx context.Context, userID uuid.UUID, badge1, badge2, badge3 *int64) error {
	const query = `
		UPDATE profiles
		SET badge_1_id = $2, badge_2_id = $3, badge_3_id = $4, updated_at = NOW()
		WHERE user_id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, badge1, badge2, badge3)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, badge1, badge2, badge3},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
