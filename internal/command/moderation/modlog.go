package moderation

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"locus-bot/internal/command"
	"locus-bot/internal/discord"
	"locus-bot/internal/settings"
)

// postModLog records a moderation action in the guild's mod log channel, when it exists.
func postModLog(mc *command.Context, action string, target *discordgo.User, reason string) {
	channel, ok := discord.ChannelNamed(mc.Session, mc.GuildID(), mc.Setting(settings.ModLogChannel))
	if !ok {
		return
	}

	if reason == "" {
		reason = "No reason given"
	}

	embed := &discordgo.MessageEmbed{
		Color:       discord.ColorError,
		Title:       action,
		Description: fmt.Sprintf("**User**: %s (%s)\n**Moderator**: %s (%s)\n**Reason**: %s", target.String(), target.ID, mc.Author().String(), mc.AuthorID(), reason),
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	if _, err := mc.Session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		mc.Logger.Errorw("failed to post mod log", "guildId", mc.GuildID(), "channelId", channel.ID, "error", err)
	}
}
