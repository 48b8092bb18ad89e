package guard

import (
	"log"
	"time"

	"discord-guard/model"
	"discord-guard/utils/database/incidents"

	"github.com/jmoiron/sqlx"
)

// Service owns the punishment lifecycle: audit-log attribution, enforcement,
// and expiry reconciliation. It holds the ledger handle and hands every
// platform call to the Platform interface.
type Service struct {
	platform Platform
	ledger   *Ledger
	db       *sqlx.DB // incident history; nil disables recording
	cfg      *model.Config

	// selfID returns the bot's own user ID. It is a closure over the session
	// state because the ID is only known after the gateway Ready.
	selfID func() string

	// now is the clock; swapped out in tests.
	now func() time.Time
}

func New(platform Platform, ledger *Ledger, db *sqlx.DB, cfg *model.Config, selfID func() string) *Service {
	return &Service{
		platform: platform,
		ledger:   ledger,
		db:       db,
		cfg:      cfg,
		selfID:   selfID,
		now:      time.Now,
	}
}

// Ledger exposes the ledger handle for read-side consumers (commands, tests).
func (s *Service) Ledger() *Ledger {
	return s.ledger
}

// recordIncident appends to the forensic history, best-effort. Failures are
// logged and never affect the punishment path.
func (s *Service) recordIncident(guildID, userID, username, action, detail string) {
	if s.db == nil {
		return
	}
	record := model.IncidentRecord{
		GuildID:   guildID,
		UserID:    userID,
		Username:  username,
		Action:    action,
		Detail:    detail,
		Timestamp: s.now().UTC().Unix(),
	}
	if _, err := incidents.Add(s.db, record); err != nil {
		log.Printf("[guard] Failed to record incident for user %s: %v", userID, err)
	}
}
