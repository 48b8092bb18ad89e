package handlers

import (
	"fmt"
	"log"

	"discord-guard/bot"
	"discord-guard/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleLockdown denies default message sending across the guild's text and
// voice channels. The permission sweep can take a while on large guilds, so
// the response is deferred.
func HandleLockdown(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Error deferring lockdown response: %v", err)
		return
	}

	locked, failures := b.Guard.Lockdown(i.GuildID)
	msg := fmt.Sprintf("🔒 Lockdown enabled: %d channels blocked.", locked)
	if failures > 0 {
		msg += fmt.Sprintf(" (%d channels failed)", failures)
	}
	utils.SendFollowUp(s, i.Interaction, msg)
	utils.LogWarn(s, b.GetConfig().LogChannelID, "Guard", "Lockdown",
		fmt.Sprintf("Lockdown enabled in guild %s (%d locked, %d failed)", i.GuildID, locked, failures))
}

// HandleUnlockdown resets the send-permission override on every text and
// voice channel.
func HandleUnlockdown(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Error deferring unlockdown response: %v", err)
		return
	}

	unlocked, failures := b.Guard.Unlockdown(i.GuildID)
	msg := fmt.Sprintf("🔓 Lockdown lifted: %d channels restored.", unlocked)
	if failures > 0 {
		msg += fmt.Sprintf(" (%d channels failed)", failures)
	}
	utils.SendFollowUp(s, i.Interaction, msg)
	utils.LogInfo(s, b.GetConfig().LogChannelID, "Guard", "Unlockdown",
		fmt.Sprintf("Lockdown lifted in guild %s (%d restored, %d failed)", i.GuildID, unlocked, failures))
}
