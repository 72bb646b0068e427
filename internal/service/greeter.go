package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"locus-bot/internal/discord"
	"locus-bot/internal/settings"
)

const userPlaceholder = "{{user}}"

// Greeter posts the guild's welcome and bye messages when members join or leave.
type Greeter struct {
	logger   *zap.SugaredLogger
	session  discord.Session
	settings settingsSource
}

func NewGreeter(logger *zap.SugaredLogger, session discord.Session, settings settingsSource) *Greeter {
	return &Greeter{
		logger:   logger,
		session:  session,
		settings: settings,
	}
}

func (g *Greeter) Welcome(ctx context.Context, guildId string, user *discordgo.User) error {
	return g.greet(ctx, guildId, user, settings.WelcomeEnabled, settings.WelcomeChannel, settings.WelcomeMessage)
}

func (g *Greeter) Bye(ctx context.Context, guildId string, user *discordgo.User) error {
	return g.greet(ctx, guildId, user, settings.ByeEnabled, settings.ByeChannel, settings.ByeMessage)
}

func (g *Greeter) greet(ctx context.Context, guildId string, user *discordgo.User, enabled settings.Key, channel settings.Key, message settings.Key) error {
	if user == nil || user.Bot {
		return nil
	}

	effective, err := g.settings.Effective(ctx, guildId)
	if err != nil {
		return err
	}
	if !effective.Bool(enabled) {
		return nil
	}

	c, ok := discord.ChannelNamed(g.session, guildId, effective.Get(channel))
	if !ok {
		g.logger.Debugw("greeting channel not found", "guildId", guildId, "channel", effective.Get(channel))
		return nil
	}

	text := strings.ReplaceAll(effective.Get(message), userPlaceholder, user.Mention())
	_, err = g.session.ChannelMessageSend(c.ID, text)
	return err
}

// Handlers returns the discordgo handlers for member joins and leaves.
func (g *Greeter) Handlers(ctx context.Context) []interface{} {
	return []interface{}{
		func(_ *discordgo.Session, m *discordgo.GuildMemberAdd) {
			if err := g.Welcome(ctx, m.GuildID, m.User); err != nil {
				g.logger.Errorw("failed to welcome member", "guildId", m.GuildID, "error", err)
			}
		},
		func(_ *discordgo.Session, m *discordgo.GuildMemberRemove) {
			if err := g.Bye(ctx, m.GuildID, m.User); err != nil {
				g.logger.Errorw("failed to say bye to member", "guildId", m.GuildID, "error", err)
			}
		},
	}
}
