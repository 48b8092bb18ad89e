package guard

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnforceApplies(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f := newFakePlatform()
	f.addGuild(testGuildID)
	actor := f.addMember(testGuildID, "actor")
	s := newTestService(f, now)

	res := s.Enforce(testGuildID, actor, "channel_delete")

	assert.Equal(t, StatusApplied, res.Status)
	require.Len(t, f.roleAdds, 1)
	assert.Equal(t, roleChange{testGuildID, "actor", punishRoleID}, f.roleAdds[0])

	exp, ok := s.Ledger().Expiry("actor")
	require.True(t, ok)
	assert.Equal(t, now.Add(30*time.Minute), exp)
}

func TestEnforceTwiceOverwritesSingleEntry(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f := newFakePlatform()
	f.addGuild(testGuildID)
	actor := f.addMember(testGuildID, "actor")
	s := newTestService(f, now)

	require.Equal(t, StatusApplied, s.Enforce(testGuildID, actor, "channel_delete").Status)

	later := now.Add(5 * time.Minute)
	s.now = func() time.Time { return later }
	require.Equal(t, StatusApplied, s.Enforce(testGuildID, actor, "role_delete").Status)

	assert.Equal(t, 1, s.Ledger().Len())
	exp, _ := s.Ledger().Expiry("actor")
	assert.Equal(t, later.Add(30*time.Minute), exp)
}

func TestEnforcePreconditions(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		setup      func(f *fakePlatform) *discordgo.Member
		wantReason string
	}{
		{
			name: "punish role missing",
			setup: func(f *fakePlatform) *discordgo.Member {
				g := f.addGuild(testGuildID)
				g.Roles = []*discordgo.Role{{ID: testGuildID, Position: 0}}
				return f.addMember(testGuildID, "actor")
			},
			wantReason: MsgRoleNotFound,
		},
		{
			name: "actor is a bot",
			setup: func(f *fakePlatform) *discordgo.Member {
				f.addGuild(testGuildID)
				m := f.addMember(testGuildID, "actor")
				m.User.Bot = true
				return m
			},
			wantReason: MsgBot,
		},
		{
			name: "actor is the guild owner",
			setup: func(f *fakePlatform) *discordgo.Member {
				f.addGuild(testGuildID)
				return f.addMember(testGuildID, ownerID)
			},
			wantReason: MsgOwner,
		},
		{
			name: "actor is the superuser",
			setup: func(f *fakePlatform) *discordgo.Member {
				f.addGuild(testGuildID)
				return f.addMember(testGuildID, superuserID)
			},
			wantReason: MsgSuperuser,
		},
		{
			name: "bot top role not above punish role",
			setup: func(f *fakePlatform) *discordgo.Member {
				f.addGuild(testGuildID)
				f.members[testGuildID+"/"+botUserID].Roles = nil
				return f.addMember(testGuildID, "actor")
			},
			wantReason: MsgHierarchy,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakePlatform()
			actor := tc.setup(f)
			s := newTestService(f, now)

			res := s.Enforce(testGuildID, actor, "channel_delete")

			assert.Equal(t, StatusSkipped, res.Status)
			assert.Equal(t, tc.wantReason, res.Reason)
			assert.Empty(t, f.roleAdds, "no role grant must be issued")
			assert.Equal(t, 0, s.Ledger().Len(), "ledger must stay untouched")
		})
	}
}

func TestEnforcePlatformFailureLeavesLedgerUntouched(t *testing.T) {
	f := newFakePlatform()
	f.addGuild(testGuildID)
	actor := f.addMember(testGuildID, "actor")
	f.roleAddErr = errors.New("403 forbidden")
	s := newTestService(f, time.Now())

	res := s.Enforce(testGuildID, actor, "channel_delete")

	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, 0, s.Ledger().Len())
}

func TestReleaseRemovesRoleAndEntry(t *testing.T) {
	f := newFakePlatform()
	f.addGuild(testGuildID)
	actor := f.addMember(testGuildID, "actor", punishRoleID)
	s := newTestService(f, time.Now())
	s.Ledger().Punish("actor", time.Now().Add(time.Hour))

	res := s.Release(testGuildID, actor, "manual")

	assert.Equal(t, StatusRemoved, res.Status)
	require.Len(t, f.roleRemoves, 1)
	assert.Equal(t, roleChange{testGuildID, "actor", punishRoleID}, f.roleRemoves[0])
	assert.False(t, s.Ledger().Punished("actor"))
}

func TestReleaseIsIdempotent(t *testing.T) {
	f := newFakePlatform()
	f.addGuild(testGuildID)
	actor := f.addMember(testGuildID, "actor") // no punish role, no ledger entry
	s := newTestService(f, time.Now())

	first := s.Release(testGuildID, actor, "manual")
	second := s.Release(testGuildID, actor, "manual")

	assert.Equal(t, StatusRemoved, first.Status)
	assert.Equal(t, StatusRemoved, second.Status)
	assert.Empty(t, f.roleRemoves, "no platform mutation for an unpunished member")
	assert.Equal(t, 0, s.Ledger().Len())
}

func TestReleasePlatformFailureKeepsLedgerEntry(t *testing.T) {
	f := newFakePlatform()
	f.addGuild(testGuildID)
	actor := f.addMember(testGuildID, "actor", punishRoleID)
	f.roleRemoveErr[testGuildID+"/actor"] = errors.New("502")
	s := newTestService(f, time.Now())
	s.Ledger().Punish("actor", time.Now().Add(time.Hour))

	res := s.Release(testGuildID, actor, "manual")

	assert.Equal(t, StatusFailed, res.Status)
	assert.True(t, s.Ledger().Punished("actor"))
}
