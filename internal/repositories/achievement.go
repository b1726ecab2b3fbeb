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

// AchievementReadRepository reads achievement definitions and unlock rows.
type AchievementReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAchievementReadRepository(db *sqlx.DB, txGetter TxGetter) *AchievementReadRepository {
	return &AchievementReadRepository{db: db, txGetter: txGetter}
}

// List returns all achievement definitions in id order.
func (r *AchievementReadRepository) List(ctx context.Context) ([]models.AchievementDB, error) {
	const query = `
		SELECT achievement_id, name, description, achievement_type, target_value, reward_coins, icon
		FROM achievements
		ORDER BY achievement_id
	`

	var achievements []models.AchievementDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &achievements, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(achievements),
		"error", err,
	)

	return achievements, err
}

// GetByID returns the achievement definition with the given id, or nil when absent.
func (r *AchievementReadRepository) GetByID(ctx context.Context, achievementID int64) (*models.AchievementDB, error) {
	const query = `
		SELECT achievement_id, name, description, achievement_type, target_value, reward_coins, icon
		FROM achievements
		WHERE achievement_id = $1
	`

	var achievement models.AchievementDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &achievement, query, achievementID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{achievementID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &achievement, nil
}

// ListUnlockedIDs returns the set of achievement ids the player has unlocked.
// One query, consumed as a set for membership tests.
func (r *AchievementReadRepository) ListUnlockedIDs(ctx context.Context, userID uuid.UUID) (map[int64]struct{}, error) {
	const query = `
		SELECT achievement_id
		FROM player_achievements
		WHERE user_id = $1
	`

	var ids []int64
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ids, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(ids),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	unlocked := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		unlocked[id] = struct{}{}
	}
	return unlocked, nil
}

// ListUnlocks returns the player's unlock rows.
func (r *AchievementReadRepository) ListUnlocks(ctx context.Context, userID uuid.UUID) ([]models.PlayerAchievementDB, error) {
	const query = `
		SELECT user_id, achievement_id, unlocked_at, reward_claimed
		FROM player_achievements
		WHERE user_id = $1
		ORDER BY unlocked_at
	`

	var unlocks []models.PlayerAchievementDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &unlocks, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(unlocks),
		"error", err,
	)

	return unlocks, err
}

// AchievementWriteRepository creates unlock rows.
type AchievementWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAchievementWriteRepository(db *sqlx.DB, txGetter TxGetter) *AchievementWriteRepository {
	return &AchievementWriteRepository{db: db, txGetter: txGetter}
}

// SaveUnlock records the unlock once. Returns false without error when the
// unlock row already exists, so a concurrent double-evaluation never grants twice.
func (r *AchievementWriteRepository) SaveUnlock(ctx context.Context, userID uuid.UUID, achievementID int64, rewardClaimed bool) (bool, error) {
	const query = `
		INSERT INTO player_achievements (user_id, achievement_id, unlocked_at, reward_claimed)
		VALUES ($1, $2, NOW(), $3)
		ON CONFLICT (user_id, achievement_id) DO NOTHING
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, achievementID, rewardClaimed)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, achievementID, rewardClaimed},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
