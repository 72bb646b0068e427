package moderation

import (
	"context"
	"fmt"
	"strings"

	"locus-bot/internal/command"
	"locus-bot/internal/discord"
	"locus-bot/internal/permission"
)

type Kick struct{}

func NewKick() *Kick {
	return &Kick{}
}

func (k *Kick) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:                 "kick",
		Description:          "Kick a mentioned user off the server",
		Category:             "Moderation",
		Usage:                []string{"kick [user mention(s)]", "kick [user mention(s)] -r [reason]"},
		RequiredTier:         permission.TierModerator,
		RequiredCapabilities: []string{"KICK_MEMBERS"},
	}
}

func (k *Kick) Run(_ context.Context, mc *command.Context, args []string, _ int) error {
	if len(mc.Message.Mentions) == 0 {
		mc.Error("You didn't mention any users to kick")
		return nil
	}

	reason, _ := flagValue(args, reasonFlag)

	var kicked []string
	failed := false
	for _, user := range mc.Message.Mentions {
		if _, err := discord.Member(mc.Session, mc.GuildID(), user.ID); err != nil {
			mc.Error(fmt.Sprintf("User %s is not in this guild", user.String()))
			continue
		}

		if err := mc.Session.GuildMemberDeleteWithReason(mc.GuildID(), user.ID, reason); err != nil {
			mc.Logger.Errorw("failed to kick user", "guildId", mc.GuildID(), "userId", user.ID, "error", err)
			mc.Error(apiMessage(err, fmt.Sprintf("Failed to kick user %s", user.String())))
			failed = true
			continue
		}

		kicked = append(kicked, user.String())
		postModLog(mc, "Kick", user, reason)
	}

	if !failed && len(kicked) > 0 {
		mc.Success(fmt.Sprintf("Successfully kicked user(s) %s", strings.Join(kicked, " ")))
	}
	return nil
}
