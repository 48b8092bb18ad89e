package config

import (
	"log"
	"os"
	"time"

	"discord-guard/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from environment variables and the optional
// guard_config.yaml tunables file.
func Load() (*model.Config, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	superuserID := os.Getenv("SUPERUSER_ID")
	if superuserID == "" {
		log.Println("Warning: SUPERUSER_ID not set, admin commands will be unusable")
	}

	punishRoleID := os.Getenv("PUNISH_ROLE_ID")
	if punishRoleID == "" {
		log.Println("Warning: PUNISH_ROLE_ID not set, enforcement will always skip")
	}

	logChannelID := os.Getenv("LOG_CHANNEL_ID")
	if logChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, logging will be disabled")
	}

	dbPath := os.Getenv("GUARD_DB_PATH")
	if dbPath == "" {
		dbPath = "data/guard.db"
	}

	guardCfg, err := loadGuardConfig()
	if err != nil {
		return nil, err
	}

	return &model.Config{
		BotToken:     token,
		SuperuserID:  superuserID,
		PunishRoleID: punishRoleID,
		LogChannelID: logChannelID,
		DBPath:       dbPath,
		Guard:        guardCfg,
	}, nil
}

// loadGuardConfig reads data/guard_config.yaml if present; every key has a
// default so the file is optional.
func loadGuardConfig() (model.GuardConfig, error) {
	v := viper.New()
	v.SetConfigName("guard_config")
	v.SetConfigType("yaml")
	v.AddConfigPath("data")

	v.SetDefault("punish_duration_minutes", 30)
	v.SetDefault("audit_window_seconds", 30)
	v.SetDefault("audit_lookback", 6)
	v.SetDefault("reconcile_interval_seconds", 60)
	v.SetDefault("metrics_addr", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return model.GuardConfig{}, err
		}
		log.Println("Warning: guard_config.yaml not found, using defaults")
	}

	return model.GuardConfig{
		PunishDuration:    time.Duration(v.GetInt("punish_duration_minutes")) * time.Minute,
		AuditWindow:       time.Duration(v.GetInt("audit_window_seconds")) * time.Second,
		AuditLookback:     v.GetInt("audit_lookback"),
		ReconcileInterval: time.Duration(v.GetInt("reconcile_interval_seconds")) * time.Second,
		MetricsAddr:       v.GetString("metrics_addr"),
	}, nil
}
