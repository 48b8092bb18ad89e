package utils

import "github.com/bwmarrin/discordgo"

// InteractionUserID returns the invoking user's ID for both guild and DM
// interactions.
func InteractionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// IsSuperuser reports whether the interaction was invoked by the configured
// superuser. An empty superuser ID authorizes nobody.
func IsSuperuser(i *discordgo.InteractionCreate, superuserID string) bool {
	return superuserID != "" && InteractionUserID(i) == superuserID
}
