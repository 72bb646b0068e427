package system

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"locus-bot/internal/command"
	"locus-bot/internal/discord"
	"locus-bot/internal/permission"
	"locus-bot/internal/settings"
)

type Help struct {
	registry *command.Registry
	tiers    *permission.Tiers
}

func NewHelp(registry *command.Registry, tiers *permission.Tiers) *Help {
	return &Help{
		registry: registry,
		tiers:    tiers,
	}
}

func (h *Help) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:        "help",
		Description: "Help for the bot showcasing its different commands",
		Category:    "System",
		Usage:       []string{"help [command name]"},
		Aliases:     []string{"h"},
	}
}

func (h *Help) Run(_ context.Context, mc *command.Context, args []string, level int) error {
	if len(args) == 0 {
		return h.showAll(mc, level)
	}

	name := strings.ToLower(args[0])
	cmd, ok := h.registry.Lookup(name)
	if !ok {
		mc.Error(fmt.Sprintf("Command %s does not exist!", args[0]))
		return nil
	}

	d := cmd.Descriptor()
	if !h.allowed(d, level) {
		mc.Error(fmt.Sprintf("You do not have permission to view the help of the command %s", args[0]))
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Color:       discord.ColorSuccess,
		Title:       fmt.Sprintf("Command name: _%s_", d.Name),
		Description: d.Description,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Usage", Value: strings.Join(d.Usage, "\n")},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if len(d.Aliases) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Aliases", Value: strings.Join(d.Aliases, ", ")})
	}

	if _, err := mc.SendEmbed(embed); err != nil {
		return fmt.Errorf("failed to send help: %w", err)
	}
	return nil
}

func (h *Help) showAll(mc *command.Context, level int) error {
	embed := &discordgo.MessageEmbed{
		Color:       discord.ColorSuccess,
		Title:       "Available Commands",
		Description: fmt.Sprintf("Use `%shelp [command name]` to get more information about a specific command", mc.Setting(settings.Prefix)),
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	// All is sorted by category, so each category is one contiguous run.
	var category string
	var names []string
	flush := func() {
		if len(names) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: category, Value: strings.Join(names, ", ")})
		}
	}
	for _, cmd := range h.registry.All() {
		d := cmd.Descriptor()
		if !d.Enabled() || !h.allowed(d, level) || (d.GuildOnly() && !mc.InGuild()) {
			continue
		}
		if d.Category != category {
			flush()
			category, names = d.Category, nil
		}
		names = append(names, d.Name)
	}
	flush()

	if _, err := mc.SendEmbed(embed); err != nil {
		return fmt.Errorf("failed to send help: %w", err)
	}
	return nil
}

// allowed hides commands whose tier is unknown.
func (h *Help) allowed(d command.Descriptor, level int) bool {
	required, ok := h.tiers.Level(d.RequiredTier)
	return ok && level >= required
}
