package tasks

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"discord-guard/utils/database/incidents"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

// GenerateGuardReportEmbed builds a per-guild summary of guard activity
// over the given window.
func GenerateGuardReportEmbed(db *sqlx.DB, guildID string, duration time.Duration) (*discordgo.MessageEmbed, error) {
	since := time.Now().Add(-duration)
	counts, err := incidents.CountByActionSince(db, guildID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get incident counts for guild %s: %v", guildID, err)
	}

	total := 0
	var actions []string
	for action, n := range counts {
		total += n
		actions = append(actions, action)
	}
	sort.Strings(actions)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("### Guard activity over the past %s\n", duration.String()))
	builder.WriteString(fmt.Sprintf("**Total incidents: %d**\n\n", total))
	for _, action := range actions {
		builder.WriteString(fmt.Sprintf("- %s: %d\n", action, counts[action]))
	}
	if total == 0 {
		builder.WriteString("No guard activity.\n")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Guard Report",
		Description: builder.String(),
		Timestamp:   time.Now().Format(time.RFC3339),
		Color:       0x00ff00,
	}
	return embed, nil
}

// SendGuardReport posts the activity summary for one guild to the log
// channel.
func SendGuardReport(s *discordgo.Session, db *sqlx.DB, channelID, guildID string, duration time.Duration) {
	if db == nil {
		return
	}
	embed, err := GenerateGuardReportEmbed(db, guildID, duration)
	if err != nil {
		log.Printf("Failed to generate guard report embed: %v", err)
		return
	}
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("Failed to send guard report to channel %s: %v", channelID, err)
	}
}
