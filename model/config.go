package model

import "time"

// GuardConfig holds the tunables of the protection engine. Values come from
// data/guard_config.yaml with defaults applied; see config.Load.
type GuardConfig struct {
	PunishDuration    time.Duration
	AuditWindow       time.Duration
	AuditLookback     int
	ReconcileInterval time.Duration
	MetricsAddr       string
}

// Config 存储应用程序的配置
type Config struct {
	BotToken     string
	SuperuserID  string
	PunishRoleID string
	LogChannelID string
	DBPath       string
	Guard        GuardConfig
}
