package permission

import (
	"sort"

	"github.com/bwmarrin/discordgo"
)

// capabilities maps platform permission names to their bits.
var capabilities = map[string]int64{
	"CREATE_INSTANT_INVITE": discordgo.PermissionCreateInstantInvite,
	"KICK_MEMBERS":          discordgo.PermissionKickMembers,
	"BAN_MEMBERS":           discordgo.PermissionBanMembers,
	"ADMINISTRATOR":         discordgo.PermissionAdministrator,
	"MANAGE_CHANNELS":       discordgo.PermissionManageChannels,
	"MANAGE_GUILD":          discordgo.PermissionManageServer,
	"ADD_REACTIONS":         discordgo.PermissionAddReactions,
	"VIEW_AUDIT_LOG":        discordgo.PermissionViewAuditLogs,
	"VIEW_CHANNEL":          discordgo.PermissionViewChannel,
	"SEND_MESSAGES":         discordgo.PermissionSendMessages,
	"MANAGE_MESSAGES":       discordgo.PermissionManageMessages,
	"EMBED_LINKS":           discordgo.PermissionEmbedLinks,
	"ATTACH_FILES":          discordgo.PermissionAttachFiles,
	"READ_MESSAGE_HISTORY":  discordgo.PermissionReadMessageHistory,
	"MENTION_EVERYONE":      discordgo.PermissionMentionEveryone,
	"CHANGE_NICKNAME":       discordgo.PermissionChangeNickname,
	"MANAGE_NICKNAMES":      discordgo.PermissionManageNicknames,
	"MANAGE_ROLES":          discordgo.PermissionManageRoles,
	"MANAGE_WEBHOOKS":       discordgo.PermissionManageWebhooks,
	"MANAGE_EMOJIS":         discordgo.PermissionManageEmojis,
}

// Capability returns the permission bit named name.
func Capability(name string) (int64, bool) {
	bit, ok := capabilities[name]
	return bit, ok
}

// CapabilitiesOf returns the sorted names of the capabilities set in bits.
func CapabilitiesOf(bits int64) []string {
	var names []string
	for name, bit := range capabilities {
		if bits&bit == bit {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// AnyCapability reports whether bits grant at least one of required. ADMINISTRATOR
// grants everything. Unknown names never match.
func AnyCapability(bits int64, required []string) bool {
	if len(required) == 0 {
		return false
	}
	if bits&discordgo.PermissionAdministrator != 0 {
		return true
	}

	for _, name := range required {
		if bit, ok := capabilities[name]; ok && bits&bit == bit {
			return true
		}
	}
	return false
}
