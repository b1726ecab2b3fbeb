package services

import (
	"context"
	"errors"

	"github.com/Kaimin018/ClickFast/internal/logger"
	"github.com/Kaimin018/ClickFast/internal/models"
	"github.com/google/uuid"
)

// Error variables
var (
	// ErrAchievementNotFound is returned when a badge references an unknown achievement.
	ErrAchievementNotFound = errors.New("achievement not found")
	// ErrAchievementLocked is returned when a badge references an achievement the player has not unlocked.
	ErrAchievementLocked = errors.New("achievement not unlocked")
)

// ProfileService serves the full profile view, the achievements listing, and
// badge selection.
type ProfileService struct {
	userReader        UserReader
	profileReader     ProfileReader
	profileWriter     ProfileWriter
	purchaseReader    PurchaseReader
	itemReader        ShopItemReader
	achievementReader AchievementReader
}

// NewProfileService creates a new ProfileService.
func NewProfileService(
	userReader UserReader,
	profileReader ProfileReader,
	profileWriter ProfileWriter,
	purchaseReader PurchaseReader,
	itemReader ShopItemReader,
	achievementReader AchievementReader,
) *ProfileService {
	return &ProfileService{
		userReader:        userReader,
		profileReader:     profileReader,
		profileWriter:     profileWriter,
		purchaseReader:    purchaseReader,
		itemReader:        itemReader,
		achievementReader: achievementReader,
	}
}

// GetProfile returns the player's counters, owned upgrades keyed by item
// type, unlocked achievements, and selected badges. The profile is created
// with zeroed counters on first access. The username comes from the user
// store, not the token claim.
func (svc *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error) {
	user, err := svc.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to read user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	if err := svc.profileWriter.SaveIfAbsent(ctx, userID); err != nil {
		logger.Log.Errorw("failed to ensure profile", "userID", userID, "err", err)
		return nil, err
	}
	profileRow, err := svc.profileReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to read profile", "userID", userID, "err", err)
		return nil, err
	}
	if profileRow == nil {
		return nil, ErrProfileNotFound
	}

	items, err := svc.itemReader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list shop items", "err", err)
		return nil, err
	}
	itemsByID := make(map[int64]models.ShopItemDB, len(items))
	for _, item := range items {
		itemsByID[item.ItemID] = item
	}

	purchases, err := svc.purchaseReader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list purchases", "userID", userID, "err", err)
		return nil, err
	}
	owned := make(map[string]models.OwnedUpgrade, len(purchases))
	for _, p := range purchases {
		item, ok := itemsByID[p.ItemID]
		if !ok {
			continue
		}
		owned[item.ItemType] = models.OwnedUpgrade{
			Level:       p.Level,
			EffectValue: item.EffectValue * float64(p.Level),
		}
	}

	definitions, err := svc.achievementReader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list achievement definitions", "err", err)
		return nil, err
	}
	defsByID := make(map[int64]models.AchievementDB, len(definitions))
	for _, def := range definitions {
		defsByID[def.AchievementID] = def
	}

	unlocks, err := svc.achievementReader.ListUnlocks(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list unlocks", "userID", userID, "err", err)
		return nil, err
	}
	unlocked := make([]models.ProfileAchievement, 0, len(unlocks))
	unlockedIDs := make(map[int64]struct{}, len(unlocks))
	for _, u := range unlocks {
		unlockedIDs[u.AchievementID] = struct{}{}
		def, ok := defsByID[u.AchievementID]
		if !ok {
			continue
		}
		unlocked = append(unlocked, models.ProfileAchievement{
			ID:            def.AchievementID,
			Name:          def.Name,
			Icon:          def.Icon,
			RewardClaimed: u.RewardClaimed,
		})
	}

	badges := resolveBadges(
		[]*int64{profileRow.Badge1ID, profileRow.Badge2ID, profileRow.Badge3ID},
		defsByID, unlockedIDs,
	)

	profile := models.NewProfile(user.Username, profileRow)
	return &models.ProfileResponse{
		Profile:      profile,
		Purchases:    owned,
		Achievements: unlocked,
		Badges:       badges,
	}, nil
}

// ListAchievements returns every achievement definition with the caller's
// unlock state.
func (svc *ProfileService) ListAchievements(ctx context.Context, userID uuid.UUID) ([]models.AchievementInfo, error) {
	definitions, err := svc.achievementReader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list achievement definitions", "err", err)
		return nil, err
	}

	unlockedIDs, err := svc.achievementReader.ListUnlockedIDs(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list unlocked achievements", "userID", userID, "err", err)
		return nil, err
	}

	infos := make([]models.AchievementInfo, 0, len(definitions))
	for _, def := range definitions {
		_, has := unlockedIDs[def.AchievementID]
		infos = append(infos, models.AchievementInfo{
			ID:          def.AchievementID,
			Name:        def.Name,
			Description: def.Description,
			Type:        def.AchievementType,
			TargetValue: def.TargetValue,
			RewardCoins: def.RewardCoins,
			Icon:        def.Icon,
			Unlocked:    has,
		})
	}

	return infos, nil
}

// UpdateBadges replaces the player's three badge slots. Every non-empty slot
// must reference an existing achievement the player has unlocked.
func (svc *ProfileService) UpdateBadges(ctx context.Context, userID uuid.UUID, badge1, badge2, badge3 *int64) ([]*models.Badge, error) {
	if err := svc.profileWriter.SaveIfAbsent(ctx, userID); err != nil {
		logger.Log.Errorw("failed to ensure profile", "userID", userID, "err", err)
		return nil, err
	}

	unlockedIDs, err := svc.achievementReader.ListUnlockedIDs(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list unlocked achievements", "userID", userID, "err", err)
		return nil, err
	}

	slots := []*int64{badge1, badge2, badge3}
	defsByID := make(map[int64]models.AchievementDB, len(slots))
	for _, slot := range slots {
		if slot == nil {
			continue
		}
		if _, ok := unlockedIDs[*slot]; !ok {
			return nil, ErrAchievementLocked
		}
		def, err := svc.achievementReader.GetByID(ctx, *slot)
		if err != nil {
			logger.Log.Errorw("failed to read achievement", "achievementID", *slot, "err", err)
			return nil, err
		}
		if def == nil {
			return nil, ErrAchievementNotFound
		}
		defsByID[def.AchievementID] = *def
	}

	if err := svc.profileWriter.SetBadges(ctx, userID, badge1, badge2, badge3); err != nil {
		logger.Log.Errorw("failed to set badges", "userID", userID, "err", err)
		return nil, err
	}

	unlockedSet := make(map[int64]struct{}, len(unlockedIDs))
	for id := range unlockedIDs {
		unlockedSet[id] = struct{}{}
	}
	return resolveBadges(slots, defsByID, unlockedSet), nil
}

// resolveBadges maps badge slots to display metadata, keeping slot order and
// leaving nil any slot that is empty, unknown, or not unlocked.
func resolveBadges(slots []*int64, defsByID map[int64]models.AchievementDB, unlockedIDs map[int64]struct{}) []*models.Badge {
	badges := make([]*models.Badge, 0, len(slots))
	for _, slot := range slots {
		if slot == nil {
			badges = append(badges, nil)
			continue
		}
		def, ok := defsByID[*slot]
		if !ok {
			badges = append(badges, nil)
			continue
		}
		if _, ok := unlockedIDs[*slot]; !ok {
			badges = append(badges, nil)
			continue
		}
		badges = append(badges, &models.Badge{
			ID:   def.AchievementID,
			Icon: def.Icon,
			Name: def.Name,
		})
	}
	return badges
}
