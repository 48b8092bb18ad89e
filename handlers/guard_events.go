package handlers

import (
	"log"

	"discord-guard/bot"
	"discord-guard/guard"
	"discord-guard/metrics"
	"discord-guard/utils"

	"github.com/bwmarrin/discordgo"
)

// addGuardHandlers wires the structural-change events into the guard.
// discordgo runs each handler on its own goroutine, so events on different
// targets resolve and enforce concurrently; the ledger tolerates same-actor
// races by last-write-wins on expiry.
func addGuardHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, c *discordgo.ChannelCreate) {
		handleStructuralChange(b, c.GuildID, discordgo.AuditLogActionChannelCreate, c.ID, "channel_create")
	})
	b.Session.AddHandler(func(s *discordgo.Session, c *discordgo.ChannelDelete) {
		handleStructuralChange(b, c.GuildID, discordgo.AuditLogActionChannelDelete, c.ID, "channel_delete")
	})
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.GuildRoleCreate) {
		handleStructuralChange(b, r.GuildID, discordgo.AuditLogActionRoleCreate, r.Role.ID, "role_create")
	})
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.GuildRoleDelete) {
		handleStructuralChange(b, r.GuildID, discordgo.AuditLogActionRoleDelete, r.RoleID, "role_delete")
	})
}

func handleStructuralChange(b *bot.Bot, guildID string, action discordgo.AuditLogAction, targetID, kind string) {
	if guildID == "" {
		return // DM channel events carry no guild
	}
	metrics.EventsSeen.WithLabelValues(kind).Inc()

	actor := b.Guard.Resolve(guildID, action, targetID)
	if actor == nil {
		// No fresh audit entry attributes this change; not actionable.
		metrics.ResolutionMisses.Inc()
		return
	}

	res := b.Guard.Enforce(guildID, actor, kind)
	switch res.Status {
	case guard.StatusApplied:
		log.Printf("[guard] Punished %s for %s in guild %s", actor.User.Username, kind, guildID)
		utils.LogWarn(b.Session, b.GetConfig().LogChannelID, "Guard", "Punish",
			"Punished "+actor.User.Username+" ("+actor.User.ID+") for "+kind)
	case guard.StatusSkipped, guard.StatusFailed:
		log.Printf("[guard] Could not punish %s: %s", actor.User.Username, res.Reason)
	}
}
