package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Kaimin018/ClickFast/internal/logger"
	"github.com/Kaimin018/ClickFast/internal/models"
	"github.com/redis/go-redis/v9"
)

const shopCatalogKey = "shop:catalog"

// ShopCatalogCacheRepository caches the static shop catalog in Redis.
// The catalog only changes on reseeding, so a TTL-bounded JSON blob suffices.
type ShopCatalogCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewShopCatalogCacheRepository creates a new cache repository with the given TTL.
func NewShopCatalogCacheRepository(client *redis.Client, expiration time.Duration) *ShopCatalogCacheRepository {
	return &ShopCatalogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetItems fetches the cached catalog. A cache miss is an error the caller
// falls through to the database on.
func (r *ShopCatalogCacheRepository) GetItems(ctx context.Context) ([]models.ShopItemDB, error) {
	val, err := r.client.Get(ctx, shopCatalogKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", shopCatalogKey,
			"error", err,
		)
		return nil, err
	}

	var items []models.ShopItemDB
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		logger.Log.Errorw("failed to decode cached shop catalog", "key", shopCatalogKey, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", shopCatalogKey,
		"result", len(items),
		"error", nil,
	)

	return items, nil
}

// SetItems caches the catalog with the configured expiration.
func (r *ShopCatalogCacheRepository) SetItems(ctx context.Context, items []models.ShopItemDB) error {
	data, err := json.Marshal(items)
	if err != nil {
		logger.Log.Errorw("failed to encode shop catalog", "key", shopCatalogKey, "error", err)
		return err
	}

	err = r.client.Set(ctx, shopCatalogKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", shopCatalogKey,
		"items", len(items),
		"result", "ok",
		"error", err,
	)

	return err
}
