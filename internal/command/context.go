package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"locus-bot/internal/discord"
	"locus-bot/internal/permission"
	"locus-bot/internal/settings"
)

var _ permission.Subject = (*Context)(nil)

// Context is the per-message unit of work handed to commands.
type Context struct {
	Session  discord.Session
	Message  *discordgo.Message
	Settings settings.Settings
	Logger   *zap.SugaredLogger

	// InvocationId correlates the log lines of one command invocation.
	InvocationId string
}

func (c *Context) AuthorID() string {
	return c.Message.Author.ID
}

func (c *Context) Author() *discordgo.User {
	return c.Message.Author
}

func (c *Context) GuildID() string {
	return c.Message.GuildID
}

func (c *Context) ChannelID() string {
	return c.Message.ChannelID
}

func (c *Context) InGuild() bool {
	return c.Message.GuildID != ""
}

func (c *Context) Setting(key settings.Key) string {
	return c.Settings.Get(key)
}

func (c *Context) Guild() (*discordgo.Guild, error) {
	if !c.InGuild() {
		return nil, fmt.Errorf("message %s was not sent in a guild", c.Message.ID)
	}
	return discord.Guild(c.Session, c.GuildID())
}

func (c *Context) GuildOwnerID() (string, error) {
	g, err := c.Guild()
	if err != nil {
		return "", err
	}
	return g.OwnerID, nil
}

// Member returns the author's guild member, preferring the copy attached to the message.
func (c *Context) Member() (*discordgo.Member, error) {
	if c.Message.Member != nil {
		return c.Message.Member, nil
	}
	if !c.InGuild() {
		return nil, fmt.Errorf("message %s was not sent in a guild", c.Message.ID)
	}
	return discord.Member(c.Session, c.GuildID(), c.AuthorID())
}

// HasRoleNamed reports whether the author holds a guild role named name, ignoring case.
func (c *Context) HasRoleNamed(name string) (bool, error) {
	g, err := c.Guild()
	if err != nil {
		return false, err
	}
	member, err := c.Member()
	if err != nil {
		return false, err
	}

	for _, role := range g.Roles {
		if !strings.EqualFold(role.Name, name) {
			continue
		}
		for _, id := range member.Roles {
			if id == role.ID {
				return true, nil
			}
		}
	}
	return false, nil
}

// Permissions returns the author's permission bits in the message channel.
func (c *Context) Permissions() (int64, error) {
	return c.Session.UserChannelPermissions(c.AuthorID(), c.ChannelID())
}

func (c *Context) Send(content string) (*discordgo.Message, error) {
	return c.Session.ChannelMessageSend(c.ChannelID(), content)
}

func (c *Context) SendEmbed(embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return c.Session.ChannelMessageSendEmbed(c.ChannelID(), embed)
}

// Error, Success and Info send a notice and only log when sending fails.

func (c *Context) Error(text string) {
	c.notify(discord.ErrorEmbed(text))
}

func (c *Context) Success(text string) {
	c.notify(discord.SuccessEmbed(text))
}

func (c *Context) Info(text string) {
	c.notify(discord.InfoEmbed(text))
}

func (c *Context) notify(embed *discordgo.MessageEmbed) {
	if _, err := c.SendEmbed(embed); err != nil {
		c.Logger.Errorw("failed to send notice", "channelId", c.ChannelID(), "invocationId", c.InvocationId, "error", err)
	}
}
