package guard

import (
	"fmt"
	"strconv"
	"time"

	"discord-guard/model"

	"github.com/bwmarrin/discordgo"
)

type roleChange struct {
	guildID, userID, roleID string
}

type permChange struct {
	channelID, targetID string
	allow, deny         int64
}

// fakePlatform implements Platform with canned data and call recording.
type fakePlatform struct {
	guilds     map[string]*discordgo.Guild
	members    map[string]*discordgo.Member // guildID/userID
	auditLogs  map[int]*discordgo.GuildAuditLog
	auditErr   error
	userGuilds []*discordgo.UserGuild
	channels   map[string][]*discordgo.Channel

	roleAddErr    error
	roleRemoveErr map[string]error // guildID/userID
	permSetErr    map[string]error // channelID

	roleAdds    []roleChange
	roleRemoves []roleChange
	permSets    []permChange
	permDeletes []string
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		guilds:        make(map[string]*discordgo.Guild),
		members:       make(map[string]*discordgo.Member),
		auditLogs:     make(map[int]*discordgo.GuildAuditLog),
		channels:      make(map[string][]*discordgo.Channel),
		roleRemoveErr: make(map[string]error),
		permSetErr:    make(map[string]error),
	}
}

func (f *fakePlatform) Guild(guildID string, _ ...discordgo.RequestOption) (*discordgo.Guild, error) {
	g, ok := f.guilds[guildID]
	if !ok {
		return nil, fmt.Errorf("unknown guild %s", guildID)
	}
	return g, nil
}

func (f *fakePlatform) GuildAuditLog(guildID, _, _ string, actionType, _ int, _ ...discordgo.RequestOption) (*discordgo.GuildAuditLog, error) {
	if f.auditErr != nil {
		return nil, f.auditErr
	}
	if al, ok := f.auditLogs[actionType]; ok {
		return al, nil
	}
	return &discordgo.GuildAuditLog{}, nil
}

func (f *fakePlatform) GuildMember(guildID, userID string, _ ...discordgo.RequestOption) (*discordgo.Member, error) {
	m, ok := f.members[guildID+"/"+userID]
	if !ok {
		return nil, fmt.Errorf("unknown member %s in guild %s", userID, guildID)
	}
	return m, nil
}

func (f *fakePlatform) GuildMemberRoleAdd(guildID, userID, roleID string, _ ...discordgo.RequestOption) error {
	if f.roleAddErr != nil {
		return f.roleAddErr
	}
	f.roleAdds = append(f.roleAdds, roleChange{guildID, userID, roleID})
	return nil
}

func (f *fakePlatform) GuildMemberRoleRemove(guildID, userID, roleID string, _ ...discordgo.RequestOption) error {
	if err := f.roleRemoveErr[guildID+"/"+userID]; err != nil {
		return err
	}
	f.roleRemoves = append(f.roleRemoves, roleChange{guildID, userID, roleID})
	return nil
}

func (f *fakePlatform) UserGuilds(_ int, _, _ string, _ bool, _ ...discordgo.RequestOption) ([]*discordgo.UserGuild, error) {
	return f.userGuilds, nil
}

func (f *fakePlatform) GuildChannels(guildID string, _ ...discordgo.RequestOption) ([]*discordgo.Channel, error) {
	return f.channels[guildID], nil
}

func (f *fakePlatform) ChannelPermissionSet(channelID, targetID string, _ discordgo.PermissionOverwriteType, allow, deny int64, _ ...discordgo.RequestOption) error {
	if err := f.permSetErr[channelID]; err != nil {
		return err
	}
	f.permSets = append(f.permSets, permChange{channelID, targetID, allow, deny})
	return nil
}

func (f *fakePlatform) ChannelPermissionDelete(channelID, targetID string, _ ...discordgo.RequestOption) error {
	f.permDeletes = append(f.permDeletes, channelID)
	return nil
}

// Shared fixture IDs.
const (
	testGuildID  = "guild-1"
	punishRoleID = "role-punish"
	botUserID    = "bot-user"
	superuserID  = "superuser"
	ownerID      = "owner"
)

// addGuild installs a guild whose punish role sits below the bot's top role.
func (f *fakePlatform) addGuild(guildID string) *discordgo.Guild {
	g := &discordgo.Guild{
		ID:      guildID,
		OwnerID: ownerID,
		Roles: []*discordgo.Role{
			{ID: guildID, Position: 0}, // everyone
			{ID: punishRoleID, Position: 5},
			{ID: "role-bot", Position: 10},
		},
	}
	f.guilds[guildID] = g
	f.members[guildID+"/"+botUserID] = &discordgo.Member{
		User:  &discordgo.User{ID: botUserID, Bot: true},
		Roles: []string{"role-bot"},
	}
	return g
}

func (f *fakePlatform) addMember(guildID, userID string, roles ...string) *discordgo.Member {
	m := &discordgo.Member{
		User:  &discordgo.User{ID: userID, Username: "user-" + userID},
		Roles: roles,
	}
	f.members[guildID+"/"+userID] = m
	return m
}

func testConfig() *model.Config {
	return &model.Config{
		SuperuserID:  superuserID,
		PunishRoleID: punishRoleID,
		Guard: model.GuardConfig{
			PunishDuration:    30 * time.Minute,
			AuditWindow:       30 * time.Second,
			AuditLookback:     6,
			ReconcileInterval: time.Minute,
		},
	}
}

// newTestService wires a Service around the fake with a fixed clock.
func newTestService(f *fakePlatform, now time.Time) *Service {
	s := New(f, NewLedger(), nil, testConfig(), func() string { return botUserID })
	s.now = func() time.Time { return now }
	return s
}

// snowflakeAt encodes a timestamp as a Discord snowflake ID.
func snowflakeAt(t time.Time) string {
	ms := t.UnixMilli() - 1420070400000
	return strconv.FormatInt(ms<<22, 10)
}

func auditEntry(action discordgo.AuditLogAction, targetID, userID string, createdAt time.Time) *discordgo.AuditLogEntry {
	at := action
	return &discordgo.AuditLogEntry{
		ID:         snowflakeAt(createdAt),
		TargetID:   targetID,
		UserID:     userID,
		ActionType: &at,
	}
}
