package guard

import (
	"log"

	"discord-guard/metrics"
	"discord-guard/model"

	"github.com/bwmarrin/discordgo"
)

// Sweep removes every expired ledger entry, then clears the punish role
// from each affected actor in every guild where they are still a member.
//
// Ledger removal happens first: a concurrent "is this actor punished" query
// must not see an entry the sweep has already claimed. Role removals after
// that are best-effort with no retry; a persistently unreachable platform
// must not grow the sweep unboundedly, and a stray leftover role can always
// be cleared with a manual unpunish.
func (s *Service) Sweep() {
	expired := s.ledger.CollectExpired(s.now().UTC())
	metrics.Sweeps.Inc()
	if len(expired) == 0 {
		return
	}

	guilds, err := s.platform.UserGuilds(100, "", "", false)
	if err != nil {
		log.Printf("[guard] Sweep could not list guilds: %v", err)
		return
	}

	for _, userID := range expired {
		for _, guild := range guilds {
			member, err := s.platform.GuildMember(guild.ID, userID)
			if err != nil {
				continue // not a member there
			}
			if !hasRole(member.Roles, s.cfg.PunishRoleID) {
				continue
			}
			err = s.platform.GuildMemberRoleRemove(guild.ID, userID, s.cfg.PunishRoleID, discordgo.WithAuditLogReason(reasonExpired))
			if err != nil {
				log.Printf("[guard] Failed to auto-remove punish role from %s in guild %s: %v", userID, guild.ID, err)
				continue
			}
			log.Printf("[guard] Auto-removed punish role from %s in guild %s", userID, guild.ID)
			s.recordIncident(guild.ID, userID, member.User.Username, model.IncidentExpire, "expired")
			metrics.Releases.WithLabelValues("expired").Inc()
		}
	}
}
