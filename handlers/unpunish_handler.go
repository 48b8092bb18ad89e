package handlers

import (
	"log"

	"discord-guard/bot"
	"discord-guard/guard"
	"discord-guard/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleUnpunish manually releases a member from punishment. Safe to call
// for a member who is not punished; the ledger is left clean either way.
func HandleUnpunish(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		utils.SendErrorResponse(s, i, "No member given.")
		return
	}
	user := options[0].UserValue(s)
	if user == nil {
		utils.SendErrorResponse(s, i, "No member given.")
		return
	}

	member, err := s.GuildMember(i.GuildID, user.ID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Could not fetch that member.")
		return
	}

	res := b.Guard.Release(i.GuildID, member, "manual")
	switch res.Status {
	case guard.StatusRemoved:
		log.Printf("[guard] Manually released %s in guild %s", user.Username, i.GuildID)
		utils.SendSimpleResponse(s, i, "✅ Removed punish role from "+user.Mention())
	default:
		utils.SendErrorResponse(s, i, res.Reason)
	}
}
