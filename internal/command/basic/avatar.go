package basic

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"locus-bot/internal/command"
	"locus-bot/internal/discord"
)

type Avatar struct{}

func NewAvatar() *Avatar {
	return &Avatar{}
}

func (a *Avatar) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:        "avatar",
		Description: "Display self or mentioned users avatar",
		Category:    "Basic",
		Usage:       []string{"avatar", "avatar [user mention]"},
		Aliases:     []string{"av"},
	}
}

func (a *Avatar) Run(_ context.Context, mc *command.Context, _ []string, _ int) error {
	mentions := mc.Message.Mentions
	if len(mentions) > 1 {
		mc.Error("Can only grab one users avatar")
		return nil
	}

	user := mc.Author()
	if len(mentions) == 1 {
		user = mentions[0]
	}

	url := user.AvatarURL("1024")
	embed := &discordgo.MessageEmbed{
		Color:       discord.ColorAvatar,
		Author:      &discordgo.MessageEmbedAuthor{Name: user.Username},
		Image:       &discordgo.MessageEmbedImage{URL: url},
		Description: fmt.Sprintf("**[AVATAR URL](%s)**", url),
	}

	if _, err := mc.SendEmbed(embed); err != nil {
		return fmt.Errorf("failed to send avatar: %w", err)
	}
	return nil
}
