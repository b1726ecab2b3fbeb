package services

import (
	"context"
	"time"

	"github.com/Kaimin018/ClickFast/internal/logger"
	"github.com/Kaimin018/ClickFast/internal/models"
	"github.com/google/uuid"
)

// recentHistorySize is how many rounds a submission response carries back,
// matching the default history page the client renders.
const recentHistorySize = 10

// ProfileReader defines profile read operations used by services.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// ProfileWriter defines profile write operations used by services.
type ProfileWriter interface {
	SaveIfAbsent(ctx context.Context, userID uuid.UUID) error
	ApplyRound(ctx context.Context, userID uuid.UUID, clicks, coinsEarned int64) (*models.ProfileDB, error)
	Credit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error)
	Debit(ctx context.Context, userID uuid.UUID, amount int64) (int64, error)
	SetBadges(ctx context.Context, userID uuid.UUID, badge1, badge2, badge3 *int64) error
}

// AchievementReader defines achievement read operations used by services.
type AchievementReader interface {
	List(ctx context.Context) ([]models.AchievementDB, error)
	GetByID(ctx context.Context, achievementID int64) (*models.AchievementDB, error)
	ListUnlockedIDs(ctx context.Context, userID uuid.UUID) (map[int64]struct{}, error)
	ListUnlocks(ctx context.Context, userID uuid.UUID) ([]models.PlayerAchievementDB, error)
}

// AchievementWriter defines achievement write operations used by services.
type AchievementWriter interface {
	SaveUnlock(ctx context.Context, userID uuid.UUID, achievementID int64, rewardClaimed bool) (bool, error)
}

// GameSessionWriter appends completed rounds to the history log.
type GameSessionWriter interface {
	Save(ctx context.Context, userID uuid.UUID, clicks int64, gameDuration float64, coinsEarned int64) error
}

// GameSessionReader reads the history log.
type GameSessionReader interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.GameSessionDB, error)
}

// GameService handles round submission: reward application, achievement
// evaluation, and history recording, all inside one request transaction with
// the submitting player's profile row locked for the duration.
type GameService struct {
	profileReader     ProfileReader
	profileWriter     ProfileWriter
	achievementReader AchievementReader
	achievementWriter AchievementWriter
	sessionWriter     GameSessionWriter
	sessionReader     GameSessionReader
	kafkaWriter       KafkaWriter
}

// NewGameService creates a new GameService.
func NewGameService(
	profileReader ProfileReader,
	profileWriter ProfileWriter,
	achievementReader AchievementReader,
	achievementWriter AchievementWriter,
	sessionWriter GameSessionWriter,
	sessionReader GameSessionReader,
	kafkaWriter KafkaWriter,
) *GameService {
	return &GameService{
		profileReader:     profileReader,
		profileWriter:     profileWriter,
		achievementReader: achievementReader,
		achievementWriter: achievementWriter,
		sessionWriter:     sessionWriter,
		sessionReader:     sessionReader,
		kafkaWriter:       kafkaWriter,
	}
}

// SubmitRound applies one completed round for the player and returns the
// coins earned, any achievements it unlocked, the updated profile, and the
// most recent history.
func (s *GameService) SubmitRound(ctx context.Context, userID uuid.UUID, username string, clicks int64, duration float64) (*models.SubmitGameResponse, error) {
	if err := s.profileWriter.SaveIfAbsent(ctx, userID); err != nil {
		logger.Log.Errorw("failed to ensure profile", "userID", userID, "error", err)
		return nil, err
	}

	// Lock the profile row so concurrent submissions and purchases for the
	// same player serialize.
	if _, err := s.profileReader.GetForUpdate(ctx, userID); err != nil {
		logger.Log.Errorw("failed to lock profile", "userID", userID, "error", err)
		return nil, err
	}

	coinsEarned := ComputeReward(clicks, duration)

	profile, err := s.profileWriter.ApplyRound(ctx, userID, clicks, coinsEarned)
	if err != nil {
		logger.Log.Errorw("failed to apply round", "userID", userID, "clicks", clicks, "error", err)
		return nil, err
	}

	newAchievements, err := s.evaluateAchievements(ctx, userID, profile, clicks)
	if err != nil {
		return nil, err
	}

	if err := s.sessionWriter.Save(ctx, userID, clicks, duration, coinsEarned); err != nil {
		logger.Log.Errorw("failed to append round to history", "userID", userID, "error", err)
		return nil, err
	}

	sessions, err := s.sessionReader.ListRecent(ctx, userID, recentHistorySize)
	if err != nil {
		logger.Log.Errorw("failed to read recent history", "userID", userID, "error", err)
		return nil, err
	}

	history := make([]models.RoundRecord, 0, len(sessions))
	for i := range sessions {
		history = append(history, models.NewRoundRecord(&sessions[i]))
	}

	publishGameEvent(ctx, s.kafkaWriter, models.GameEvent{
		EventID:     uuid.NewString(),
		EventType:   models.EventRoundSubmitted,
		UserID:      userID.String(),
		Timestamp:   time.Now().Unix(),
		Clicks:      clicks,
		CoinsEarned: coinsEarned,
		Duration:    duration,
	})

	return &models.SubmitGameResponse{
		CoinsEarned:     coinsEarned,
		NewAchievements: newAchievements,
		Profile:         models.NewProfile(username, profile),
		History:         history,
	}, nil
}

// evaluateAchievements unlocks every not-yet-unlocked achievement whose
// condition the post-round state satisfies, credits its reward, and mutates
// profile.Coins to reflect the credits. All qualifying achievements unlock in
// the same pass.
func (s *GameService) evaluateAchievements(ctx context.Context, userID uuid.UUID, profile *models.ProfileDB, roundClicks int64) ([]models.UnlockedAchievement, error) {
	definitions, err := s.achievementReader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list achievement definitions", "error", err)
		return nil, err
	}

	unlockedIDs, err := s.achievementReader.ListUnlockedIDs(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list unlocked achievements", "userID", userID, "error", err)
		return nil, err
	}

	newAchievements := make([]models.UnlockedAchievement, 0)

	for i := range definitions {
		def := &definitions[i]
		if _, ok := unlockedIDs[def.AchievementID]; ok {
			continue
		}

		var qualified bool
		switch def.AchievementType {
		case models.AchievementTotalClicks:
			qualified = profile.TotalClicks >= def.TargetValue
		case models.AchievementSingleRound:
			qualified = roundClicks >= def.TargetValue
		case models.AchievementTotalGames:
			qualified = profile.TotalGamesPlayed >= def.TargetValue
		}
		if !qualified {
			continue
		}

		// The reward is granted in the same unit as the unlock, so the row
		// is written with the reward already claimed. A zero reward still
		// marks the unlock.
		created, err := s.achievementWriter.SaveUnlock(ctx, userID, def.AchievementID, def.RewardCoins > 0)
		if err != nil {
			logger.Log.Errorw("failed to save unlock", "userID", userID, "achievementID", def.AchievementID, "error", err)
			return nil, err
		}
		if !created {
			// Lost a race with another submission; that one granted the reward.
			continue
		}

		if def.RewardCoins > 0 {
			coins, err := s.profileWriter.Credit(ctx, userID, def.RewardCoins)
			if err != nil {
				logger.Log.Errorw("failed to credit achievement reward", "userID", userID, "achievementID", def.AchievementID, "error", err)
				return nil, err
			}
			profile.Coins = coins
		}

		newAchievements = append(newAchievements, models.UnlockedAchievement{
			ID:          def.AchievementID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			RewardCoins: def.RewardCoins,
		})
	}

	return newAchievements, nil
}
