package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Session is the subset of *discordgo.Session used by the bot.
type Session interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEdit(channelID string, messageID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID string, messageID string, options ...discordgo.RequestOption) error

	UserChannelPermissions(userID string, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error)

	Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	GuildMember(guildID string, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	GuildBanCreateWithReason(guildID string, userID string, reason string, days int, options ...discordgo.RequestOption) error
	GuildMemberDeleteWithReason(guildID string, userID string, reason string, options ...discordgo.RequestOption) error
	GuildEmojiCreate(guildID string, data *discordgo.EmojiParams, options ...discordgo.RequestOption) (*discordgo.Emoji, error)
	GuildEmojiDelete(guildID string, emojiID string, options ...discordgo.RequestOption) error

	AddHandler(handler interface{}) func()
	HeartbeatLatency() time.Duration
}

var _ Session = (*discordgo.Session)(nil)

// Guild returns the guild from the gateway state when s is a live session, and
// from the REST API otherwise.
func Guild(s Session, guildID string) (*discordgo.Guild, error) {
	if ds, ok := s.(*discordgo.Session); ok && ds.State != nil {
		if g, err := ds.State.Guild(guildID); err == nil {
			return g, nil
		}
	}
	return s.Guild(guildID)
}

// Member returns the guild member from the gateway state when available.
func Member(s Session, guildID string, userID string) (*discordgo.Member, error) {
	if ds, ok := s.(*discordgo.Session); ok && ds.State != nil {
		if m, err := ds.State.Member(guildID, userID); err == nil {
			return m, nil
		}
	}
	return s.GuildMember(guildID, userID)
}

// ChannelNamed finds a text channel of the guild by name.
func ChannelNamed(s Session, guildID string, name string) (*discordgo.Channel, bool) {
	var channels []*discordgo.Channel
	if g, err := Guild(s, guildID); err == nil && len(g.Channels) > 0 {
		channels = g.Channels
	} else if fetched, err := s.GuildChannels(guildID); err == nil {
		channels = fetched
	}

	for _, c := range channels {
		if c.Type == discordgo.ChannelTypeGuildText && c.Name == name {
			return c, true
		}
	}
	return nil, false
}
