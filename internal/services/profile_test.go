package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Kaimin018/ClickFast/internal/models"
)

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userReader := NewMockUserReader(ctrl)
	profileReader := NewMockProfileReader(ctrl)
	profileWriter := NewMockProfileWriter(ctrl)
	purchaseReader := NewMockPurchaseReader(ctrl)
	itemReader := NewMockShopItemReader(ctrl)
	achReader := NewMockAchievementReader(ctrl)

	badge := int64(1)
	// The username comes from the user row, not the caller.
	userReader.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, Username: "john_doe"}, nil)
	profileWriter.EXPECT().SaveIfAbsent(ctx, userID).Return(nil)
	profileReader.EXPECT().GetByUserID(ctx, userID).Return(&models.ProfileDB{
		UserID:             userID,
		Coins:              1250,
		TotalClicks:        4200,
		BestClicksPerRound: 120,
		TotalGamesPlayed:   37,
		Badge1ID:           &badge,
	}, nil)
	itemReader.EXPECT().List(ctx).Return(shopCatalog(), nil)
	purchaseReader.EXPECT().ListByUser(ctx, userID).Return([]models.PurchaseDB{
		{UserID: userID, ItemID: 1, Level: 3, PricePaid: 150},
		{UserID: userID, ItemID: 3, Level: 1, PricePaid: 0},
	}, nil)
	achReader.EXPECT().List(ctx).Return([]models.AchievementDB{
		{AchievementID: 1, Name: "First Steps", Icon: "👣", AchievementType: models.AchievementTotalClicks, TargetValue: 100, RewardCoins: 50},
		{AchievementID: 2, Name: "Click Master", Icon: "⭐", AchievementType: models.AchievementTotalClicks, TargetValue: 1000, RewardCoins: 500},
	}, nil)
	achReader.EXPECT().ListUnlocks(ctx, userID).Return([]models.PlayerAchievementDB{
		{UserID: userID, AchievementID: 1, RewardClaimed: true},
	}, nil)

	svc := NewProfileService(userReader, profileReader, profileWriter, purchaseReader, itemReader, achReader)
	resp, err := svc.GetProfile(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, "john_doe", resp.Profile.Username)
	assert.Equal(t, int64(1250), resp.Profile.Coins)

	// Owned upgrades are keyed by item type with the cumulative effect.
	assert.Len(t, resp.Purchases, 2)
	assert.Equal(t, int64(3), resp.Purchases[models.ItemTypeTimeExtension].Level)
	assert.Equal(t, 6.0, resp.Purchases[models.ItemTypeTimeExtension].EffectValue)
	assert.Equal(t, int64(1), resp.Purchases[models.ItemTypeAutoClicker].Level)

	assert.Len(t, resp.Achievements, 1)
	assert.Equal(t, "First Steps", resp.Achievements[0].Name)
	assert.True(t, resp.Achievements[0].RewardClaimed)

	// Slot 1 carries the selected badge; empty slots stay nil.
	assert.Len(t, resp.Badges, 3)
	assert.Equal(t, int64(1), resp.Badges[0].ID)
	assert.Nil(t, resp.Badges[1])
	assert.Nil(t, resp.Badges[2])
}

func TestProfileService_GetProfile_UnknownUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userReader := NewMockUserReader(ctrl)
	userReader.EXPECT().GetByID(ctx, userID).Return(nil, nil)

	svc := NewProfileService(userReader, nil, nil, nil, nil, nil)
	_, err := svc.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, ErrUserDoesNotExist)
}

func TestProfileService_ListAchievements(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	achReader := NewMockAchievementReader(ctrl)
	achReader.EXPECT().List(ctx).Return([]models.AchievementDB{
		{AchievementID: 1, Name: "First Steps", AchievementType: models.AchievementTotalClicks, TargetValue: 100, RewardCoins: 50},
		{AchievementID: 4, Name: "Quick Fingers", AchievementType: models.AchievementSingleRound, TargetValue: 50, RewardCoins: 100},
	}, nil)
	achReader.EXPECT().ListUnlockedIDs(ctx, userID).Return(map[int64]struct{}{4: {}}, nil)

	svc := NewProfileService(nil, nil, nil, nil, nil, achReader)
	infos, err := svc.ListAchievements(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, infos, 2)
	assert.False(t, infos[0].Unlocked)
	assert.True(t, infos[1].Unlocked)
	assert.Equal(t, models.AchievementSingleRound, infos[1].Type)
}

func TestProfileService_UpdateBadges(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profileWriter := NewMockProfileWriter(ctrl)
	achReader := NewMockAchievementReader(ctrl)

	badge1 := int64(1)
	badge2 := int64(4)

	profileWriter.EXPECT().SaveIfAbsent(ctx, userID).Return(nil)
	achReader.EXPECT().ListUnlockedIDs(ctx, userID).Return(map[int64]struct{}{1: {}, 4: {}}, nil)
	achReader.EXPECT().GetByID(ctx, int64(1)).Return(&models.AchievementDB{AchievementID: 1, Name: "First Steps", Icon: "👣"}, nil)
	achReader.EXPECT().GetByID(ctx, int64(4)).Return(&models.AchievementDB{AchievementID: 4, Name: "Quick Fingers", Icon: "⚡"}, nil)
	profileWriter.EXPECT().SetBadges(ctx, userID, &badge1, &badge2, nil).Return(nil)

	svc := NewProfileService(nil, nil, profileWriter, nil, nil, achReader)
	badges, err := svc.UpdateBadges(ctx, userID, &badge1, &badge2, nil)

	assert.NoError(t, err)
	assert.Len(t, badges, 3)
	assert.Equal(t, "First Steps", badges[0].Name)
	assert.Equal(t, "Quick Fingers", badges[1].Name)
	assert.Nil(t, badges[2])
}

func TestProfileService_UpdateBadges_Locked(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profileWriter := NewMockProfileWriter(ctrl)
	achReader := NewMockAchievementReader(ctrl)

	badge1 := int64(9)

	profileWriter.EXPECT().SaveIfAbsent(ctx, userID).Return(nil)
	achReader.EXPECT().ListUnlockedIDs(ctx, userID).Return(map[int64]struct{}{1: {}}, nil)

	svc := NewProfileService(nil, nil, profileWriter, nil, nil, achReader)
	_, err := svc.UpdateBadges(ctx, userID, &badge1, nil, nil)

	assert.ErrorIs(t, err, ErrAchievementLocked)
}

func TestProfileService_UpdateBadges_UnknownAchievement(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profileWriter := NewMockProfileWriter(ctrl)
	achReader := NewMockAchievementReader(ctrl)

	badge1 := int64(42)

	profileWriter.EXPECT().SaveIfAbsent(ctx, userID).Return(nil)
	// The unlock row survived a deleted definition.
	achReader.EXPECT().ListUnlockedIDs(ctx, userID).Return(map[int64]struct{}{42: {}}, nil)
	achReader.EXPECT().GetByID(ctx, int64(42)).Return(nil, nil)

	svc := NewProfileService(nil, nil, profileWriter, nil, nil, achReader)
	_, err := svc.UpdateBadges(ctx, userID, &badge1, nil, nil)

	assert.ErrorIs(t, err, ErrAchievementNotFound)
}
