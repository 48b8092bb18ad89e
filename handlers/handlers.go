package handlers

import (
	"log"

	"discord-guard/bot"
	"discord-guard/utils"

	"github.com/bwmarrin/discordgo"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

// superuserOnly wraps a command handler with the fixed-superuser gate. Every
// administrative command is rejected for anyone else with a visible response
// and no state change.
func superuserOnly(b *bot.Bot, h func(s *discordgo.Session, i *discordgo.InteractionCreate)) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !utils.IsSuperuser(i, b.GetConfig().SuperuserID) {
			utils.SendSimpleResponse(s, i, "⛔ You are not authorized.")
			return
		}
		h(s, i)
	}
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"ping": superuserOnly(b, func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			utils.SendSimpleResponse(s, i, "✅ Pong! Bot is running.")
		}),
		"status": superuserOnly(b, func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			SystemInfoHandler(s, i)
		}),
		"unpunish": superuserOnly(b, func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleUnpunish(s, i, b)
		}),
		"lockdown": superuserOnly(b, func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleLockdown(s, i, b)
		}),
		"unlockdown": superuserOnly(b, func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleUnlockdown(s, i, b)
		}),
		"history": superuserOnly(b, func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleHistory(s, i, b)
		}),
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	})
	addGuardHandlers(b)
}
