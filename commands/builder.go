package commands

import (
	"discord-guard/commands/defs"

	"github.com/bwmarrin/discordgo"
)

// All returns the full guard command set registered per guild.
func All() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.Ping,
		defs.Status,
		defs.Unpunish,
		defs.Lockdown,
		defs.Unlockdown,
		defs.History,
	}
}
