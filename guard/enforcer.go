package guard

import (
	"fmt"

	"discord-guard/metrics"
	"discord-guard/model"

	"github.com/bwmarrin/discordgo"
)

// Audit-log reason strings attached to role mutations.
const (
	reasonPunish        = "Anti-nuke protection"
	reasonManualRelease = "Punish expired/unpunished manually"
	reasonExpired       = "Punish duration expired"
)

// Enforce assigns the punish role to the member and records the punishment
// in the ledger. Preconditions are checked in order; the first failing one
// short-circuits with a skip and nothing is mutated. The ledger is written
// only after the role grant succeeds, so it never claims an enforcement
// that did not take effect. trigger names the action kind that provoked
// enforcement and is recorded in the incident history.
func (s *Service) Enforce(guildID string, member *discordgo.Member, trigger string) Result {
	guild, err := s.platform.Guild(guildID)
	if err != nil {
		return failed(fmt.Sprintf("Could not fetch guild: %v", err))
	}

	role := findRole(guild.Roles, s.cfg.PunishRoleID)
	if role == nil {
		return s.skip(CodeRoleMissing, MsgRoleNotFound)
	}
	if member.User.Bot {
		return s.skip(CodeBot, MsgBot)
	}
	if guild.OwnerID == member.User.ID {
		return s.skip(CodeOwner, MsgOwner)
	}
	if s.cfg.SuperuserID != "" && member.User.ID == s.cfg.SuperuserID {
		return s.skip(CodeSuperuser, MsgSuperuser)
	}

	me, err := s.platform.GuildMember(guildID, s.selfID())
	if err != nil {
		return failed(fmt.Sprintf("Could not fetch own member: %v", err))
	}
	if topRolePosition(guild.Roles, me.Roles) <= role.Position {
		return s.skip(CodeHierarchy, MsgHierarchy)
	}

	err = s.platform.GuildMemberRoleAdd(guildID, member.User.ID, role.ID, discordgo.WithAuditLogReason(reasonPunish))
	if err != nil {
		return failed(fmt.Sprintf("Could not assign punish role: %v", err))
	}

	s.ledger.Punish(member.User.ID, s.now().UTC().Add(s.cfg.Guard.PunishDuration))
	s.recordIncident(guildID, member.User.ID, member.User.Username, model.IncidentPunish, trigger)
	metrics.PunishmentsApplied.Inc()
	return applied()
}

// Release removes the punish role if the member currently carries it and
// deletes any ledger entry. It is idempotent: releasing an unpunished
// member succeeds and still guarantees ledger cleanliness. Only a platform
// error on the actual role removal leaves the ledger entry in place.
func (s *Service) Release(guildID string, member *discordgo.Member, cause string) Result {
	guild, err := s.platform.Guild(guildID)
	if err != nil {
		return failed(fmt.Sprintf("Could not fetch guild: %v", err))
	}

	role := findRole(guild.Roles, s.cfg.PunishRoleID)
	if role == nil {
		return s.skip(CodeRoleMissing, MsgRoleNotFound)
	}

	if hasRole(member.Roles, role.ID) {
		err := s.platform.GuildMemberRoleRemove(guildID, member.User.ID, role.ID, discordgo.WithAuditLogReason(reasonManualRelease))
		if err != nil {
			return failed(fmt.Sprintf("Could not remove punish role: %v", err))
		}
	}

	s.ledger.Release(member.User.ID)
	s.recordIncident(guildID, member.User.ID, member.User.Username, model.IncidentManualRelease, cause)
	metrics.Releases.WithLabelValues(cause).Inc()
	return removed()
}

func (s *Service) skip(code, reason string) Result {
	metrics.PunishmentsSkipped.WithLabelValues(code).Inc()
	return skipped(code, reason)
}

func findRole(roles []*discordgo.Role, roleID string) *discordgo.Role {
	for _, r := range roles {
		if r.ID == roleID {
			return r
		}
	}
	return nil
}

func hasRole(memberRoles []string, roleID string) bool {
	for _, id := range memberRoles {
		if id == roleID {
			return true
		}
	}
	return false
}

// topRolePosition returns the highest position among the member's roles.
// The everyone role sits at position 0, which is also the floor for a
// member with no roles.
func topRolePosition(guildRoles []*discordgo.Role, memberRoles []string) int {
	top := 0
	for _, r := range guildRoles {
		if r.Position > top && hasRole(memberRoles, r.ID) {
			top = r.Position
		}
	}
	return top
}
