package guard

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Resolve attributes a structural-change event to the member who performed
// it, by scanning the guild audit log for the given action kind.
//
// Audit logs are a shared, high-churn feed and entries can lag the gateway
// event by a few seconds, so two filters apply: the entry must target the
// changed object, and it must have been created within the configured
// freshness window. An old entry for the same target must never be
// attributed to a stale actor.
//
// A miss (no fresh matching entry, actor left the guild, or the query
// itself failed) returns nil; it is never an error at this boundary.
func (s *Service) Resolve(guildID string, action discordgo.AuditLogAction, targetID string) *discordgo.Member {
	auditLog, err := s.platform.GuildAuditLog(guildID, "", "", int(action), s.cfg.Guard.AuditLookback)
	if err != nil {
		log.Printf("[guard] Audit log query failed for guild %s: %v", guildID, err)
		return nil
	}

	now := s.now().UTC()
	for _, entry := range auditLog.AuditLogEntries {
		if entry.TargetID != targetID {
			continue
		}
		createdAt, err := discordgo.SnowflakeTimestamp(entry.ID)
		if err != nil || now.Sub(createdAt) > s.cfg.Guard.AuditWindow {
			continue
		}

		// Audit entries carry only a user reference; upgrade it to a full
		// guild member. A failed lookup means the actor already left.
		member, err := s.platform.GuildMember(guildID, entry.UserID)
		if err != nil {
			return nil
		}
		return member
	}
	return nil
}
