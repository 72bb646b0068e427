package information

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"locus-bot/internal/command"
	"locus-bot/internal/discord"
)

var verificationLevels = map[discordgo.VerificationLevel]string{
	discordgo.VerificationLevelNone:     "None (Unrestricted)",
	discordgo.VerificationLevelLow:      "Low (Must have a verified email on their Discord account)",
	discordgo.VerificationLevelMedium:   "Medium (Must also be registered on discord for longer than 5 minutes)",
	discordgo.VerificationLevelHigh:     "High (Must also be a member of this server for longer than 10 minutes)",
	discordgo.VerificationLevelVeryHigh: "Very High (Must also have a verified phone on their discord account)",
}

type Server struct{}

func NewServer() *Server {
	return &Server{}
}

func (s *Server) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:        "server",
		Description: "Shows server information",
		Category:    "Information",
		Usage:       []string{"server"},
	}
}

func (s *Server) Run(_ context.Context, mc *command.Context, _ []string, _ int) error {
	g, err := mc.Guild()
	if err != nil {
		mc.Error("Failed to fetch the server information")
		return fmt.Errorf("failed to get guild: %w", err)
	}

	embed := &discordgo.MessageEmbed{
		Color:       discord.ColorServer,
		Description: fmt.Sprintf("Server Id: %s\nServer Owner: <@%s>", g.ID, g.OwnerID),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Verification Level:", Value: verificationLevels[g.VerificationLevel]},
			{Name: "Members:", Value: strconv.Itoa(g.MemberCount), Inline: true},
			{Name: "Channels:", Value: channelSummary(g.Channels), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if created, err := discordgo.SnowflakeTimestamp(g.ID); err == nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Server creation Date:", Value: created.UTC().Format(time.RFC1123)})
	}
	if member, err := mc.Member(); err == nil && !member.JoinedAt.IsZero() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "You joined at:", Value: member.JoinedAt.UTC().Format(time.RFC1123)})
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Server Boosts",
		Value: fmt.Sprintf("Level: %d\nBoosts: %d", g.PremiumTier, g.PremiumSubscriptionCount),
	})
	if g.Banner != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "**Server Banner**", Value: fmt.Sprintf("[BANNER URL](%s)", g.BannerURL("1024"))})
	}
	if g.Icon != "" {
		iconURL := g.IconURL("256")
		embed.Author = &discordgo.MessageEmbedAuthor{Name: g.Name, IconURL: iconURL}
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: iconURL}
	} else {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: g.Name}
	}

	if _, err := mc.SendEmbed(embed); err != nil {
		return fmt.Errorf("failed to send server info: %w", err)
	}
	return nil
}

func channelSummary(channels []*discordgo.Channel) string {
	text, voice := 0, 0
	for _, c := range channels {
		switch c.Type {
		case discordgo.ChannelTypeGuildText:
			text++
		case discordgo.ChannelTypeGuildVoice:
			voice++
		}
	}
	return fmt.Sprintf("%d (%d text, %d voice)", len(channels), text, voice)
}
