package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Kaimin018/ClickFast/internal/logger"
	"github.com/Kaimin018/ClickFast/internal/models"
	"github.com/google/uuid"
)

// Error variables
var (
	// ErrItemNotFound is returned when the referenced shop item does not exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrAlreadyMaxLevel is returned when the item is already at its maximum level.
	ErrAlreadyMaxLevel = errors.New("max level reached")
	// ErrMissingPrerequisite is returned when the auto clicker is bought without an extra button.
	ErrMissingPrerequisite = errors.New("extra click button required")
	// ErrInsufficientFunds is returned when the player's coins do not cover the price.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ShopItemReader defines shop catalog read operations used by services.
type ShopItemReader interface {
	List(ctx context.Context) ([]models.ShopItemDB, error)
	GetByID(ctx context.Context, itemID int64) (*models.ShopItemDB, error)
	GetByType(ctx context.Context, itemType string) (*models.ShopItemDB, error)
}

// ShopCatalogCache caches the static shop catalog.
type ShopCatalogCache interface {
	GetItems(ctx context.Context) ([]models.ShopItemDB, error)
	SetItems(ctx context.Context, items []models.ShopItemDB) error
}

// PurchaseReader defines upgrade ledger read operations used by services.
type PurchaseReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.PurchaseDB, error)
	GetByUserAndItem(ctx context.Context, userID uuid.UUID, itemID int64) (*models.PurchaseDB, error)
}

// PurchaseWriter defines upgrade ledger write operations used by services.
type PurchaseWriter interface {
	Save(ctx context.Context, userID uuid.UUID, itemID, level, pricePaid int64) error
}

// ShopService handles catalog listing and the purchase state machine.
type ShopService struct {
	itemReader     ShopItemReader
	catalogCache   ShopCatalogCache
	purchaseReader PurchaseReader
	purchaseWriter PurchaseWriter
	profileReader  ProfileReader
	profileWriter  ProfileWriter
	kafkaWriter    KafkaWriter
}

// NewShopService creates a new ShopService.
func NewShopService(
	itemReader ShopItemReader,
	catalogCache ShopCatalogCache,
	purchaseReader PurchaseReader,
	purchaseWriter PurchaseWriter,
	profileReader ProfileReader,
	profileWriter ProfileWriter,
	kafkaWriter KafkaWriter,
) *ShopService {
	return &ShopService{
		itemReader:     itemReader,
		catalogCache:   catalogCache,
		purchaseReader: purchaseReader,
		purchaseWriter: purchaseWriter,
		profileReader:  profileReader,
		profileWriter:  profileWriter,
		kafkaWriter:    kafkaWriter,
	}
}

// catalogItems reads the shop catalog through the cache, falling back to the
// database and refilling the cache on a miss.
func (s *ShopService) catalogItems(ctx context.Context) ([]models.ShopItemDB, error) {
	if s.catalogCache != nil {
		if items, err := s.catalogCache.GetItems(ctx); err == nil {
			return items, nil
		}
	}

	items, err := s.itemReader.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.catalogCache != nil {
		if err := s.catalogCache.SetItems(ctx, items); err != nil {
			logger.Log.Errorw("failed to cache shop catalog", "error", err)
		}
	}

	return items, nil
}

// ListItems returns the shop catalog. When userID is non-nil the per-player
// fields (current level, upgradability, prerequisite flag) are populated.
func (s *ShopService) ListItems(ctx context.Context, userID *uuid.UUID) ([]models.ShopListItem, error) {
	items, err := s.catalogItems(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read shop catalog", "error", err)
		return nil, err
	}

	purchasesByItem := make(map[int64]models.PurchaseDB)
	var extraButtonLevel int64
	if userID != nil {
		purchases, err := s.purchaseReader.ListByUser(ctx, *userID)
		if err != nil {
			logger.Log.Errorw("failed to read purchases", "userID", *userID, "error", err)
			return nil, err
		}
		for _, p := range purchases {
			purchasesByItem[p.ItemID] = p
		}
		for i := range items {
			if items[i].ItemType == models.ItemTypeExtraButton {
				if p, ok := purchasesByItem[items[i].ItemID]; ok {
					extraButtonLevel = p.Level
				}
			}
		}
	}

	listing := make([]models.ShopListItem, 0, len(items))
	for i := range items {
		item := &items[i]

		var currentLevel int64
		if p, ok := purchasesByItem[item.ItemID]; ok {
			currentLevel = p.Level
		}

		var nextLevelPrice *int64
		if currentLevel < item.MaxLevel {
			price := item.BasePrice * (currentLevel + 1)
			nextLevelPrice = &price
		}

		canUpgrade := currentLevel < item.MaxLevel && nextLevelPrice != nil

		// An auto clicker without the extra button stays locked until the
		// player owns one, unless the player already has an auto clicker.
		prerequisiteBlocks := item.ItemType == models.ItemTypeAutoClicker &&
			extraButtonLevel == 0 && currentLevel == 0
		if prerequisiteBlocks {
			canUpgrade = false
		}

		listing = append(listing, models.ShopListItem{
			ID:                  item.ItemID,
			Name:                item.Name,
			Type:                item.ItemType,
			Description:         item.Description,
			BasePrice:           item.BasePrice,
			EffectValue:         item.EffectValue,
			MaxLevel:            item.MaxLevel,
			CurrentLevel:        currentLevel,
			NextLevelPrice:      nextLevelPrice,
			CanUpgrade:          canUpgrade,
			RequiresExtraButton: prerequisiteBlocks,
			IsUnpurchased:       currentLevel == 0 && currentLevel < item.MaxLevel,
		})
	}

	return listing, nil
}

// Purchase buys the next level of an item for the player. It locks the
// player's profile row for the duration, so concurrent purchases and round
// submissions for the same player serialize. On success the ledger row holds
// the new level and the price of this purchase; the first extra-button
// purchase also attaches a level-1 auto clicker for free when the player has
// no auto-clicker row yet.
func (s *ShopService) Purchase(ctx context.Context, userID uuid.UUID, itemID int64) (*models.PurchaseResponse, error) {
	item, err := s.itemReader.GetByID(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("failed to read shop item", "itemID", itemID, "error", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if err := s.profileWriter.SaveIfAbsent(ctx, userID); err != nil {
		logger.Log.Errorw("failed to ensure profile", "userID", userID, "error", err)
		return nil, err
	}
	if _, err := s.profileReader.GetForUpdate(ctx, userID); err != nil {
		logger.Log.Errorw("failed to lock profile", "userID", userID, "error", err)
		return nil, err
	}

	purchase, err := s.purchaseReader.GetByUserAndItem(ctx, userID, itemID)
	if err != nil {
		logger.Log.Errorw("failed to read purchase", "userID", userID, "itemID", itemID, "error", err)
		return nil, err
	}
	var currentLevel int64
	if purchase != nil {
		currentLevel = purchase.Level
	}

	// Re-leveling an owned auto clicker never re-checks the prerequisite.
	if item.ItemType == models.ItemTypeAutoClicker && currentLevel == 0 {
		if err := s.checkAutoClickerPrerequisite(ctx, userID); err != nil {
			return nil, err
		}
	}

	if currentLevel >= item.MaxLevel {
		return nil, ErrAlreadyMaxLevel
	}

	price := item.BasePrice * (currentLevel + 1)

	coinsRemaining, err := s.profileWriter.Debit(ctx, userID, price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit coins", "userID", userID, "price", price, "error", err)
		return nil, err
	}

	newLevel := currentLevel + 1
	if err := s.purchaseWriter.Save(ctx, userID, itemID, newLevel, price); err != nil {
		logger.Log.Errorw("failed to save purchase", "userID", userID, "itemID", itemID, "error", err)
		return nil, err
	}

	if item.ItemType == models.ItemTypeExtraButton && newLevel == 1 {
		if err := s.attachFreeAutoClicker(ctx, userID); err != nil {
			return nil, err
		}
	}

	var nextLevelPrice *int64
	if newLevel < item.MaxLevel {
		next := item.BasePrice * (newLevel + 1)
		nextLevelPrice = &next
	}

	publishGameEvent(ctx, s.kafkaWriter, models.GameEvent{
		EventID:   uuid.NewString(),
		EventType: models.EventItemPurchased,
		UserID:    userID.String(),
		Timestamp: time.Now().Unix(),
		ItemID:    itemID,
		NewLevel:  newLevel,
		PricePaid: price,
	})

	return &models.PurchaseResponse{
		NewLevel:       newLevel,
		CoinsRemaining: coinsRemaining,
		ItemName:       item.Name,
		NextLevelPrice: nextLevelPrice,
		CanUpgrade:     newLevel < item.MaxLevel,
		MaxLevel:       item.MaxLevel,
	}, nil
}

// checkAutoClickerPrerequisite fails unless the player's extra button is at
// level 1 or higher.
func (s *ShopService) checkAutoClickerPrerequisite(ctx context.Context, userID uuid.UUID) error {
	extraButton, err := s.itemReader.GetByType(ctx, models.ItemTypeExtraButton)
	if err != nil {
		logger.Log.Errorw("failed to read extra button item", "error", err)
		return err
	}
	if extraButton == nil {
		return nil
	}

	owned, err := s.purchaseReader.GetByUserAndItem(ctx, userID, extraButton.ItemID)
	if err != nil {
		logger.Log.Errorw("failed to read extra button purchase", "userID", userID, "error", err)
		return err
	}
	if owned == nil || owned.Level < 1 {
		return ErrMissingPrerequisite
	}
	return nil
}

// attachFreeAutoClicker creates a level-1 auto-clicker ledger row at no cost.
// Skipped when any auto-clicker row already exists, regardless of its level.
func (s *ShopService) attachFreeAutoClicker(ctx context.Context, userID uuid.UUID) error {
	autoClicker, err := s.itemReader.GetByType(ctx, models.ItemTypeAutoClicker)
	if err != nil {
		logger.Log.Errorw("failed to read auto clicker item", "error", err)
		return err
	}
	if autoClicker == nil {
		return nil
	}

	existing, err := s.purchaseReader.GetByUserAndItem(ctx, userID, autoClicker.ItemID)
	if err != nil {
		logger.Log.Errorw("failed to read auto clicker purchase", "userID", userID, "error", err)
		return err
	}
	if existing != nil {
		return nil
	}

	if err := s.purchaseWriter.Save(ctx, userID, autoClicker.ItemID, 1, 0); err != nil {
		logger.Log.Errorw("failed to attach free auto clicker", "userID", userID, "error", err)
		return err
	}

	logger.Log.Infow("free auto clicker attached", "userID", userID, "itemID", autoClicker.ItemID)
	return nil
}
