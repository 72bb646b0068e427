package system

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"locus-bot/internal/command"
	"locus-bot/internal/discord"
	"locus-bot/internal/permission"
	"locus-bot/internal/settings"
)

var (
	yesResponses = []string{"y", "yes", "accept"}
	noResponses  = []string{"n", "no", "cancel", "deny", "reject"}
)

type settingsStore interface {
	Set(ctx context.Context, guildId string, key settings.Key, value string) error
	Reset(ctx context.Context, guildId string, key settings.Key) error
	IsOverridden(ctx context.Context, guildId string, key settings.Key) (bool, error)
}

type Settings struct {
	store           settingsStore
	responseTimeout time.Duration
}

func NewSettings(store settingsStore, responseTimeout time.Duration) *Settings {
	return &Settings{
		store:           store,
		responseTimeout: responseTimeout,
	}
}

func (s *Settings) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:         "settings",
		Description:  "Update/change or check current server settings",
		Category:     "System",
		Usage:        []string{"settings [get/set/reset] [key] [value]"},
		Aliases:      []string{"sets"},
		RequiredTier: permission.TierAdministrator,
	}
}

func (s *Settings) Run(ctx context.Context, mc *command.Context, args []string, _ int) error {
	var action, rawKey string
	if len(args) > 0 {
		action = args[0]
	}
	if len(args) > 1 {
		rawKey = args[1]
	}

	switch action {
	case "set", "edit":
		key, ok := s.validateKey(mc, rawKey)
		if !ok {
			return nil
		}
		return s.set(ctx, mc, key, strings.Join(args[2:], " "))
	case "reset", "delete", "del":
		key, ok := s.validateKey(mc, rawKey)
		if !ok {
			return nil
		}
		return s.reset(ctx, mc, key)
	case "get", "view":
		key, ok := s.validateKey(mc, rawKey)
		if !ok {
			return nil
		}
		mc.Success(fmt.Sprintf("**%s** is currently set to **%s** for this server.", key, mc.Setting(key)))
		return nil
	default:
		return s.list(mc)
	}
}

func (s *Settings) validateKey(mc *command.Context, rawKey string) (settings.Key, bool) {
	if rawKey == "" {
		mc.Logger.Debugw("settings command denied due to an empty key", "invocationId", mc.InvocationId)
		mc.Error("You must specify a key to edit or view.")
		return "", false
	}

	key, err := settings.ParseKey(rawKey)
	if err != nil {
		mc.Logger.Debugw("settings command denied due to a nonexistent key", "key", rawKey, "invocationId", mc.InvocationId)
		mc.Error("The key you specified does not exist in the settings.")
		return "", false
	}

	return key, true
}

func (s *Settings) set(ctx context.Context, mc *command.Context, key settings.Key, value string) error {
	if value == "" {
		mc.Error("Please specify a value for the setting")
		return nil
	}
	if value == mc.Setting(key) {
		mc.Error("The setting you're trying to modify already has that value")
		return nil
	}

	if err := s.store.Set(ctx, mc.GuildID(), key, value); err != nil {
		mc.Error("Failed to update the setting, please try again later.")
		return err
	}

	mc.Settings[key] = value
	mc.Success(fmt.Sprintf("**%s** has been successfully set to **%s**", key, value))
	return nil
}

func (s *Settings) reset(ctx context.Context, mc *command.Context, key settings.Key) error {
	overridden, err := s.store.IsOverridden(ctx, mc.GuildID(), key)
	if err != nil {
		mc.Error("Failed to read the settings, please try again later.")
		return err
	}
	if !overridden {
		mc.Error(fmt.Sprintf("The setting **%s** is already set to default", key))
		return nil
	}

	prompt := discord.ConfirmEmbed(fmt.Sprintf("Are you **sure** you want to reset %s to its default value?", key))
	response, err := discord.AwaitResponse(ctx, mc.Session, mc.ChannelID(), mc.AuthorID(), prompt, s.responseTimeout)
	if err != nil && !errors.Is(err, discord.ErrResponseTimeout) {
		return fmt.Errorf("failed to await confirmation: %w", err)
	}

	response = strings.ToLower(strings.TrimSpace(response))
	switch {
	case contains(yesResponses, response):
		if err := s.store.Reset(ctx, mc.GuildID(), key); err != nil {
			mc.Error("Failed to update the setting, please try again later.")
			return err
		}

		def, _ := settings.Default(key)
		mc.Settings[key] = def
		mc.Success(fmt.Sprintf("**%s** has been reset to its default value.", key))
	case contains(noResponses, response):
		mc.Success(fmt.Sprintf("The value for **%s** will remain as **%s**", key, mc.Setting(key)))
	default:
		mc.Error("The command has timed out or your response was not valid.")
	}
	return nil
}

func (s *Settings) list(mc *command.Context) error {
	var keys, values strings.Builder
	for _, key := range settings.Keys() {
		keys.WriteString(string(key) + "\n")
		values.WriteString(mc.Setting(key) + "\n")
	}

	guildName := mc.GuildID()
	if g, err := mc.Guild(); err == nil {
		guildName = g.Name
	}

	embed := &discordgo.MessageEmbed{
		Color:       discord.ColorSuccess,
		Description: fmt.Sprintf("Viewing all settings for **%s**", guildName),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Setting", Value: keys.String(), Inline: true},
			{Name: "Value", Value: values.String(), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, err := mc.SendEmbed(embed); err != nil {
		return fmt.Errorf("failed to send settings: %w", err)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
