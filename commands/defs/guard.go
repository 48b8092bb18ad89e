package defs

import "github.com/bwmarrin/discordgo"

var Ping = &discordgo.ApplicationCommand{
	Name:        "ping",
	Description: "Check if bot is alive (superuser only).",
}

var Status = &discordgo.ApplicationCommand{
	Name:        "status",
	Description: "Show host and session status (superuser only).",
}

var Unpunish = &discordgo.ApplicationCommand{
	Name:        "unpunish",
	Description: "Remove the punish role from a user (superuser only).",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "The user to release",
			Required:    true,
		},
	},
}

var Lockdown = &discordgo.ApplicationCommand{
	Name:        "lockdown",
	Description: "Lock all channels (superuser only).",
}

var Unlockdown = &discordgo.ApplicationCommand{
	Name:        "unlockdown",
	Description: "Unlock all channels (superuser only).",
}

var History = &discordgo.ApplicationCommand{
	Name:        "history",
	Description: "Show recent guard incidents for this guild (superuser only).",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "count",
			Description: "How many incidents to show (default 10)",
			Required:    false,
		},
	},
}
