package discord

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
)

var ErrResponseTimeout = errors.New("timed out waiting for a response")

// AwaitResponse posts prompt to the channel and returns the content of the next
// message userID sends there. ErrResponseTimeout is returned once timeout passes.
func AwaitResponse(ctx context.Context, s Session, channelID string, userID string, prompt *discordgo.MessageEmbed, timeout time.Duration) (string, error) {
	responses := make(chan string, 1)

	// Registered before the prompt is sent so a fast reply is not missed.
	remove := s.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m.ChannelID != channelID || m.Author == nil || m.Author.ID != userID {
			return
		}
		select {
		case responses <- m.Content:
		default:
		}
	})
	defer remove()

	if _, err := s.ChannelMessageSendEmbed(channelID, prompt); err != nil {
		return "", err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case response := <-responses:
		return response, nil
	case <-timer.C:
		return "", ErrResponseTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
