// Command seed applies the database schema and loads the static game
// catalog: the three shop items and the nine achievements. Safe to run
// repeatedly; existing rows are left untouched.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/Kaimin018/ClickFast/internal/logger"
	"github.com/Kaimin018/ClickFast/internal/models"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const schema = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

CREATE TABLE IF NOT EXISTS users (
	user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	username VARCHAR(50) NOT NULL UNIQUE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS profiles (
	user_id UUID PRIMARY KEY REFERENCES users(user_id),
	coins BIGINT NOT NULL DEFAULT 0 CHECK (coins >= 0),
	total_clicks BIGINT NOT NULL DEFAULT 0,
	best_clicks_per_round BIGINT NOT NULL DEFAULT 0,
	total_games_played BIGINT NOT NULL DEFAULT 0,
	battle_wins BIGINT NOT NULL DEFAULT 0,
	badge_1_id BIGINT,
	badge_2_id BIGINT,
	badge_3_id BIGINT,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS shop_items (
	item_id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	item_type VARCHAR(50) NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	base_price BIGINT NOT NULL,
	effect_value DOUBLE PRECISION NOT NULL,
	max_level BIGINT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS player_purchases (
	user_id UUID NOT NULL REFERENCES users(user_id),
	item_id BIGINT NOT NULL REFERENCES shop_items(item_id),
	level BIGINT NOT NULL DEFAULT 1,
	price_paid BIGINT NOT NULL DEFAULT 0,
	purchased_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
	PRIMARY KEY (user_id, item_id)
);

CREATE TABLE IF NOT EXISTS achievements (
	achievement_id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	achievement_type VARCHAR(50) NOT NULL,
	target_value BIGINT NOT NULL,
	reward_coins BIGINT NOT NULL DEFAULT 0,
	icon VARCHAR(16) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS player_achievements (
	user_id UUID NOT NULL REFERENCES users(user_id),
	achievement_id BIGINT NOT NULL REFERENCES achievements(achievement_id),
	unlocked_at TIMESTAMP NOT NULL DEFAULT NOW(),
	reward_claimed BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (user_id, achievement_id)
);

CREATE TABLE IF NOT EXISTS game_sessions (
	session_id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(user_id),
	clicks BIGINT NOT NULL,
	game_duration DOUBLE PRECISION NOT NULL,
	coins_earned BIGINT NOT NULL,
	played_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_game_sessions_user_played
	ON game_sessions (user_id, played_at DESC);
`

type shopItemSeed struct {
	Name        string
	ItemType    string
	Description string
	BasePrice   int64
	EffectValue float64
	MaxLevel    int64
}

type achievementSeed struct {
	Name            string
	Description     string
	AchievementType string
	TargetValue     int64
	RewardCoins     int64
	Icon            string
}

var shopItems = []shopItemSeed{
	{
		Name:        "Time Extension",
		ItemType:    models.ItemTypeTimeExtension,
		Description: "Adds 2 seconds to every round per level",
		BasePrice:   50,
		EffectValue: 2.0,
		MaxLevel:    10,
	},
	{
		Name:        "Extra Click Button",
		ItemType:    models.ItemTypeExtraButton,
		Description: "Adds one more click button per level",
		BasePrice:   100,
		EffectValue: 1.0,
		MaxLevel:    5,
	},
	{
		Name:        "Auto Clicker",
		ItemType:    models.ItemTypeAutoClicker,
		Description: "Clicks once per second per level; requires an extra click button",
		BasePrice:   200,
		EffectValue: 1.0,
		MaxLevel:    10,
	},
}

var achievements = []achievementSeed{
	{Name: "First Steps", Description: "Reach 100 total clicks", AchievementType: models.AchievementTotalClicks, TargetValue: 100, RewardCoins: 50, Icon: "👣"},
	{Name: "Click Master", Description: "Reach 1,000 total clicks", AchievementType: models.AchievementTotalClicks, TargetValue: 1000, RewardCoins: 500, Icon: "⭐"},
	{Name: "Click Legend", Description: "Reach 10,000 total clicks", AchievementType: models.AchievementTotalClicks, TargetValue: 10000, RewardCoins: 5000, Icon: "👑"},
	{Name: "Quick Fingers", Description: "Score 50 clicks in a single round", AchievementType: models.AchievementSingleRound, TargetValue: 50, RewardCoins: 100, Icon: "⚡"},
	{Name: "Speed Demon", Description: "Score 100 clicks in a single round", AchievementType: models.AchievementSingleRound, TargetValue: 100, RewardCoins: 500, Icon: "🔥"},
	{Name: "Round Breaker", Description: "Score 200 clicks in a single round", AchievementType: models.AchievementSingleRound, TargetValue: 200, RewardCoins: 2000, Icon: "💥"},
	{Name: "Getting Started", Description: "Play 10 rounds", AchievementType: models.AchievementTotalGames, TargetValue: 10, RewardCoins: 100, Icon: "🎮"},
	{Name: "Regular Player", Description: "Play 50 rounds", AchievementType: models.AchievementTotalGames, TargetValue: 50, RewardCoins: 500, Icon: "🏅"},
	{Name: "Devoted Player", Description: "Play 100 rounds", AchievementType: models.AchievementTotalGames, TargetValue: 100, RewardCoins: 2000, Icon: "🏆"},
}

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	if err := run(context.Background(), *configPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}

func run(ctx context.Context, configPath string) error {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	if err := logger.Initialize(getEnv("APP_LOG_LEVEL", "info")); err != nil {
		return err
	}
	defer logger.Sync()

	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return err
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", "clickfast"),
	)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	logger.Log.Info("schema applied")

	for _, item := range shopItems {
		res, err := db.ExecContext(ctx, `
			INSERT INTO shop_items (name, item_type, description, base_price, effect_value, max_level)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (item_type) DO NOTHING
		`, item.Name, item.ItemType, item.Description, item.BasePrice, item.EffectValue, item.MaxLevel)
		if err != nil {
			return fmt.Errorf("seed shop item %q: %w", item.Name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			logger.Log.Infow("shop item created", "name", item.Name, "type", item.ItemType)
		}
	}

	for _, ach := range achievements {
		res, err := db.ExecContext(ctx, `
			INSERT INTO achievements (name, description, achievement_type, target_value, reward_coins, icon)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (name) DO NOTHING
		`, ach.Name, ach.Description, ach.AchievementType, ach.TargetValue, ach.RewardCoins, ach.Icon)
		if err != nil {
			return fmt.Errorf("seed achievement %q: %w", ach.Name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			logger.Log.Infow("achievement created", "name", ach.Name, "type", ach.AchievementType)
		}
	}

	logger.Log.Info("seeding complete")
	return nil
}
