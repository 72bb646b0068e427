package moderation

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"locus-bot/internal/command"
	"locus-bot/internal/discord"
	"locus-bot/internal/permission"
)

const maxBanDays = 7

type Ban struct{}

func NewBan() *Ban {
	return &Ban{}
}

func (b *Ban) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:                 "ban",
		Description:          "Bans a mentioned user or users. You can specify the amount of days of messages to remove",
		Category:             "Moderation",
		Usage:                []string{"ban [user mention(s)]", "ban [user mention(s)] -d [days] -r [reason]"},
		RequiredTier:         permission.TierModerator,
		RequiredCapabilities: []string{"BAN_MEMBERS"},
	}
}

func (b *Ban) Run(_ context.Context, mc *command.Context, args []string, _ int) error {
	if len(mc.Message.Mentions) == 0 {
		mc.Error("You didn't mention any users to ban")
		return nil
	}

	days := 0
	if value, ok := flagValue(args, daysFlag); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 || parsed > maxBanDays {
			mc.Error(fmt.Sprintf("Days must be a number between 0 and %d", maxBanDays))
			return nil
		}
		days = parsed
	}
	reason, _ := flagValue(args, reasonFlag)

	var banned []string
	failed := false
	for _, user := range mc.Message.Mentions {
		if _, err := discord.Member(mc.Session, mc.GuildID(), user.ID); err != nil {
			mc.Error(fmt.Sprintf("User %s is not in this guild", user.String()))
			continue
		}

		if err := mc.Session.GuildBanCreateWithReason(mc.GuildID(), user.ID, reason, days); err != nil {
			mc.Logger.Errorw("failed to ban user", "guildId", mc.GuildID(), "userId", user.ID, "error", err)
			mc.Error(apiMessage(err, fmt.Sprintf("Failed to ban user: **%s**", user.String())))
			failed = true
			continue
		}

		banned = append(banned, user.String())
		postModLog(mc, "Ban", user, reason)
	}

	if !failed && len(banned) > 0 {
		mc.Success(fmt.Sprintf("Successfully banned user(s) %s", strings.Join(banned, " ")))
	}
	return nil
}
