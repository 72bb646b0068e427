package service

import (
	"context"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// NewMessageHandler adapts d to a discordgo MessageCreate handler. Command
// errors and panics are logged and never reach the gateway loop.
func NewMessageHandler(ctx context.Context, logger *zap.SugaredLogger, d *Dispatcher) func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorw("panic while handling message", "messageId", m.ID, "panic", r, "stack", string(debug.Stack()))
			}
		}()

		outcome, err := d.Dispatch(ctx, m.Message)
		if err != nil {
			logger.Errorw("failed to handle message", "messageId", m.ID, "guildId", m.GuildID, "outcome", outcome.String(), "error", err)
			return
		}

		logger.Debugw("handled message", "messageId", m.ID, "outcome", outcome.String())
	}
}
