package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// BridgeLogger routes discordgo's package logger into logger.
func BridgeLogger(logger *zap.SugaredLogger) {
	logger = logger.Named("discordgo")

	discordgo.Logger = func(msgL int, _ int, format string, a ...interface{}) {
		msg := strings.ReplaceAll(fmt.Sprintf(format, a...), "\n", "")

		switch msgL {
		case discordgo.LogError:
			logger.Error(msg)
		case discordgo.LogWarning:
			logger.Warn(msg)
		case discordgo.LogInformational:
			logger.Info(msg)
		default:
			logger.Debug(msg)
		}
	}
}
