package moderation

import (
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	daysFlag   = "-d"
	reasonFlag = "-r"
)

// flagValue joins the tokens following flag up to the next known flag.
func flagValue(args []string, flag string) (string, bool) {
	for i, arg := range args {
		if arg != flag {
			continue
		}

		var value []string
		for _, next := range args[i+1:] {
			if next == daysFlag || next == reasonFlag {
				break
			}
			value = append(value, next)
		}
		return strings.Join(value, " "), true
	}
	return "", false
}

// apiMessage returns the message of a Discord API error, or fallback.
func apiMessage(err error, fallback string) string {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil && restErr.Message.Message != "" {
		return restErr.Message.Message
	}
	return fallback
}
