package information

import (
	"context"
	"fmt"

	"locus-bot/internal/command"
)

type Ping struct{}

func NewPing() *Ping {
	return &Ping{}
}

func (p *Ping) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:        "ping",
		Description: "Check the current API response time and latency",
		Category:    "Information",
		Usage:       []string{"ping"},
		Aliases:     []string{"latency", "ms"},
	}
}

func (p *Ping) Run(_ context.Context, mc *command.Context, _ []string, _ int) error {
	pong, err := mc.Send(":ping_pong: | Ping!")
	if err != nil {
		return fmt.Errorf("failed to send ping: %w", err)
	}

	latency := pong.Timestamp.Sub(mc.Message.Timestamp)
	content := fmt.Sprintf(":ping_pong: | Pong! (Latency: %dms, Heartbeat: %dms)",
		latency.Milliseconds(), mc.Session.HeartbeatLatency().Milliseconds())

	if _, err := mc.Session.ChannelMessageEdit(pong.ChannelID, pong.ID, content); err != nil {
		return fmt.Errorf("failed to edit ping: %w", err)
	}
	return nil
}
