package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	ColorError   = 0xD0021B
	ColorSuccess = 0x7ED321
	ColorInfo    = 0xF1DF37
	ColorConfirm = 0xBC42F5
	ColorServer  = 0x4287F5
	ColorAvatar  = 0xFF00FF
)

func ErrorEmbed(text string) *discordgo.MessageEmbed {
	return notice(ColorError, ":octagonal_sign: | "+text)
}

func SuccessEmbed(text string) *discordgo.MessageEmbed {
	return notice(ColorSuccess, ":white_check_mark: | "+text)
}

func InfoEmbed(text string) *discordgo.MessageEmbed {
	return notice(ColorInfo, ":warning: | "+text)
}

// ConfirmEmbed asks a yes/no question.
func ConfirmEmbed(question string) *discordgo.MessageEmbed {
	e := notice(ColorConfirm, ":question: | "+question)
	e.Footer = &discordgo.MessageEmbedFooter{Text: `Respond with "yes" or "no"`}
	return e
}

func notice(color int, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       color,
		Description: description,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}
