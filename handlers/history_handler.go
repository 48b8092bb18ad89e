package handlers

import (
	"fmt"
	"strings"
	"time"

	"discord-guard/bot"
	"discord-guard/utils"
	"discord-guard/utils/database/incidents"

	"github.com/bwmarrin/discordgo"
)

// HandleHistory shows the most recent guard incidents for the guild.
func HandleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	count := 10
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "count" {
			count = int(opt.IntValue())
		}
	}
	if count < 1 || count > 25 {
		count = 10
	}

	records, err := incidents.RecentByGuild(b.DB, i.GuildID, count)
	if err != nil {
		utils.SendErrorResponse(s, i, "Could not read the incident history.")
		return
	}
	if len(records) == 0 {
		utils.SendSimpleResponse(s, i, "No guard incidents recorded for this guild.")
		return
	}

	var builder strings.Builder
	for _, r := range records {
		ts := time.Unix(r.Timestamp, 0).UTC().Format("2006-01-02 15:04:05")
		builder.WriteString(fmt.Sprintf("`#%d` %s — **%s** <@%s> (%s)\n",
			r.IncidentID, ts, r.Action, r.UserID, r.Detail))
	}

	utils.SendEmbedResponse(s, i, &discordgo.MessageEmbed{
		Title:       "Recent guard incidents",
		Description: builder.String(),
		Color:       0xffa500,
	})
}
