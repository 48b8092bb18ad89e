package guard

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Lockdown denies message sending for the everyone role on every text and
// voice channel of the guild. Each channel is handled independently; a
// failure on one is logged and the rest still get processed. Returns how
// many channels were locked and how many attempts failed.
func (s *Service) Lockdown(guildID string) (locked, failures int) {
	channels, err := s.platform.GuildChannels(guildID)
	if err != nil {
		log.Printf("[guard] Lockdown could not list channels for guild %s: %v", guildID, err)
		return 0, 1
	}

	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildText && ch.Type != discordgo.ChannelTypeGuildVoice {
			continue
		}
		allow, deny := everyoneOverwrite(ch, guildID)
		err := s.platform.ChannelPermissionSet(ch.ID, guildID, discordgo.PermissionOverwriteTypeRole,
			allow&^discordgo.PermissionSendMessages,
			deny|discordgo.PermissionSendMessages,
			discordgo.WithAuditLogReason("Lockdown enabled"))
		if err != nil {
			log.Printf("[guard] Failed to lock channel %s: %v", ch.ID, err)
			failures++
			continue
		}
		locked++
	}
	return locked, failures
}

// Unlockdown resets the send-messages bit on the everyone overwrite back to
// inherited. When clearing the bit leaves an empty overwrite, the overwrite
// is deleted outright. Channels without an overwrite are untouched.
func (s *Service) Unlockdown(guildID string) (unlocked, failures int) {
	channels, err := s.platform.GuildChannels(guildID)
	if err != nil {
		log.Printf("[guard] Unlockdown could not list channels for guild %s: %v", guildID, err)
		return 0, 1
	}

	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildText && ch.Type != discordgo.ChannelTypeGuildVoice {
			continue
		}
		if !hasEveryoneOverwrite(ch, guildID) {
			continue
		}
		allow, deny := everyoneOverwrite(ch, guildID)
		allow &^= discordgo.PermissionSendMessages
		deny &^= discordgo.PermissionSendMessages

		if allow == 0 && deny == 0 {
			err = s.platform.ChannelPermissionDelete(ch.ID, guildID)
		} else {
			err = s.platform.ChannelPermissionSet(ch.ID, guildID, discordgo.PermissionOverwriteTypeRole,
				allow, deny, discordgo.WithAuditLogReason("Lockdown disabled"))
		}
		if err != nil {
			log.Printf("[guard] Failed to unlock channel %s: %v", ch.ID, err)
			failures++
			continue
		}
		unlocked++
	}
	return unlocked, failures
}

// everyoneOverwrite returns the current allow/deny masks of the channel's
// everyone-role overwrite. The everyone role shares its ID with the guild.
func everyoneOverwrite(ch *discordgo.Channel, guildID string) (allow, deny int64) {
	for _, ow := range ch.PermissionOverwrites {
		if ow.ID == guildID && ow.Type == discordgo.PermissionOverwriteTypeRole {
			return ow.Allow, ow.Deny
		}
	}
	return 0, 0
}

func hasEveryoneOverwrite(ch *discordgo.Channel, guildID string) bool {
	for _, ow := range ch.PermissionOverwrites {
		if ow.ID == guildID && ow.Type == discordgo.PermissionOverwriteTypeRole {
			return true
		}
	}
	return false
}
