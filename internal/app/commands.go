package app

import (
	"fmt"
	"net/http"
	"time"

	"locus-bot/internal/command"
	"locus-bot/internal/command/basic"
	"locus-bot/internal/command/information"
	"locus-bot/internal/command/leveling"
	"locus-bot/internal/command/moderation"
	"locus-bot/internal/command/system"
	"locus-bot/internal/config"
	"locus-bot/internal/permission"
	"locus-bot/internal/settings"
	"locus-bot/internal/xp"
)

const emoteFetchTimeout = 10 * time.Second

func newRegistry(cfg *config.Config, tiers *permission.Tiers, store *settings.Store, ledger *xp.Ledger) (*command.Registry, error) {
	registry := command.NewRegistry()

	commands := []command.Command{
		basic.NewAvatar(),
		information.NewPing(),
		information.NewServer(),
		leveling.NewExperience(ledger),
		moderation.NewKick(),
		moderation.NewBan(),
		moderation.NewEmote(&http.Client{Timeout: emoteFetchTimeout}),
		system.NewHelp(registry, tiers),
		system.NewSettings(store, cfg.Discord.ResponseTimeout),
	}

	for _, cmd := range commands {
		if err := registry.Register(cmd); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", cmd.Descriptor().Name, err)
		}
	}

	return registry, nil
}
