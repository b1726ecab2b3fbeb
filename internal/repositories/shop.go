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

// ShopItemReadRepository reads the static shop catalog. The catalog never
// changes at request time, so these queries skip the request transaction.
type ShopItemReadRepository struct {
	db *sqlx.DB
}

func NewShopItemReadRepository(db *sqlx.DB) *ShopItemReadRepository {
	return &ShopItemReadRepository{db: db}
}

// List returns all shop items in id order.
func (r *ShopItemReadRepository) List(ctx context.Context) ([]models.ShopItemDB, error) {
	const query = `
		SELECT item_id, name, item_type, description, base_price, effect_value, max_level, created_at
		FROM shop_items
		ORDER BY item_id
	`

	var items []models.ShopItemDB
	err := r.db.SelectContext(ctx, &items, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(items),
		"error", err,
	)

	return items, err
}

// GetByID returns the shop item with the given id, or nil when absent.
func (r *ShopItemReadRepository) GetByID(ctx context.Context, itemID int64) (*models.ShopItemDB, error) {
	const query = `
		SELECT item_id, name, item_type, description, base_price, effect_value, max_level, created_at
		FROM shop_items
		WHERE item_id = $1
	`

	var item models.ShopItemDB
	err := r.db.GetContext(ctx, &item, query, itemID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByType returns the shop item of the given type, or nil when absent.
// The catalog holds one item per type.
func (r *ShopItemReadRepository) GetByType(ctx context.Context, itemType string) (*models.ShopItemDB, error) {
	const query = `
		SELECT item_id, name, item_type, description, base_price, effect_value, max_level, created_at
		FROM shop_items
		WHERE item_type = $1
		ORDER BY item_id
		LIMIT 1
	`

	var item models.ShopItemDB
	err := r.db.GetContext(ctx, &item, query, itemType)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemType},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// PurchaseReadRepository reads the per-player upgrade ledger.
type PurchaseReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPurchaseReadRepository(db *sqlx.DB, txGetter TxGetter) *PurchaseReadRepository {
	return &PurchaseReadRepository{db: db, txGetter: txGetter}
}

// ListByUser returns all of the player's ledger rows.
func (r *PurchaseReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PurchaseDB, error) {
	const query = `
		SELECT user_id, item_id, level, price_paid, purchased_at, updated_at
		FROM player_purchases
		WHERE user_id = $1
	`

	var purchases []models.PurchaseDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &purchases, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(purchases),
		"error", err,
	)

	return purchases, err
}

// GetByUserAndItem returns the player's ledger row for the item, or nil when
// the item was never purchased.
func (r *PurchaseReadRepository) GetByUserAndItem(ctx context.Context, userID uuid.UUID, itemID int64) (*models.PurchaseDB, error) {
	const query = `
		SELECT user_id, item_id, level, price_paid, purchased_at, updated_at
		FROM player_purchases
		WHERE user_id = $1 AND item_id = $2
	`

	var purchase models.PurchaseDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &purchase, query, userID, itemID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, itemID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

// PurchaseWriteRepository mutates the upgrade ledger.
type PurchaseWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPurchaseWriteRepository(db *sqlx.DB, txGetter TxGetter) *PurchaseWriteRepository {
	return &PurchaseWriteRepository{db: db, txGetter: txGetter}
}

// Save upserts the player's ledger row for the item. The level is set, not
// incremented, and price_paid is overwritten with the given value.
func (r *PurchaseWriteRepository) Save(ctx context.Context, userID uuid.UUID, itemID, level, pricePaid int64) error {
	const query = `
		INSERT INTO player_purchases (user_id, item_id, level, price_paid, purchased_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, item_id)
		DO UPDATE SET level = EXCLUDED.level, price_paid = EXCLUDED.price_paid, updated_at = NOW()
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, itemID, level, pricePaid)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, itemID, level, pricePaid},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
