package permission

import (
	"errors"
	"slices"

	"locus-bot/internal/settings"
	"locus-bot/internal/utils/runtime"
)

const (
	TierMember           = "Member"
	TierModerator        = "Moderator"
	TierAdministrator    = "Administrator"
	TierServerOwner      = "Server Owner"
	TierBotAdministrator = "Bot Administrator"
	TierBotOwner         = "Bot Owner"
)

// DefaultTiers returns the built-in tier table. botAdmins are user IDs of the
// bot administrators and ownerId is the bot application's owner.
func DefaultTiers(botAdmins []string, ownerId string) *Tiers {
	tiers, err := NewTiers(
		Tier{Level: 0, Name: TierMember, Check: Always},
		Tier{Level: 1, Name: TierModerator, Check: hasRoleSetting(settings.ModRoleName)},
		Tier{Level: 2, Name: TierAdministrator, Check: hasRoleSetting(settings.AdminRoleName)},
		Tier{Level: 3, Name: TierServerOwner, Check: isGuildOwner},
		Tier{Level: 9, Name: TierBotAdministrator, Check: isOneOf(botAdmins)},
		Tier{Level: 10, Name: TierBotOwner, Check: isOwner(ownerId)},
	)
	runtime.Must(err)

	return tiers
}

func hasRoleSetting(key settings.Key) Predicate {
	return func(s Subject) (bool, error) {
		name := s.Setting(key)
		if name == "" {
			return false, nil
		}
		return s.HasRoleNamed(name)
	}
}

func isGuildOwner(s Subject) (bool, error) {
	ownerId, err := s.GuildOwnerID()
	if err != nil {
		return false, err
	}
	return ownerId == s.AuthorID(), nil
}

func isOneOf(userIds []string) Predicate {
	ids := slices.Clone(userIds)
	return func(s Subject) (bool, error) {
		return slices.Contains(ids, s.AuthorID()), nil
	}
}

func isOwner(ownerId string) Predicate {
	return func(s Subject) (bool, error) {
		if ownerId == "" {
			return false, errors.New("application owner is unknown")
		}
		return ownerId == s.AuthorID(), nil
	}
}
