package discord_test

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"locus-bot/internal/discord"
	"locus-bot/internal/discord/discordtest"
)

func TestAwaitResponse(t *testing.T) {
	s := discordtest.NewSession()
	s.OnSend = func(sent discordtest.Sent) {
		// Other users and channels are ignored.
		go func() {
			s.EmitMessage(&discordgo.Message{ChannelID: "c1", Author: &discordgo.User{ID: "someone-else"}, Content: "no"})
			s.EmitMessage(&discordgo.Message{ChannelID: "c2", Author: &discordgo.User{ID: "u1"}, Content: "no"})
			s.EmitMessage(&discordgo.Message{ChannelID: "c1", Author: &discordgo.User{ID: "u1"}, Content: "yes"})
		}()
	}

	response, err := discord.AwaitResponse(context.Background(), s, "c1", "u1", discord.ConfirmEmbed("Sure?"), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "yes", response)
	assert.Zero(t, s.Handlers())
	require.Len(t, s.SentMessages(), 1)
}

func TestAwaitResponse_Timeout(t *testing.T) {
	s := discordtest.NewSession()

	_, err := discord.AwaitResponse(context.Background(), s, "c1", "u1", discord.ConfirmEmbed("Sure?"), 10*time.Millisecond)
	assert.ErrorIs(t, err, discord.ErrResponseTimeout)
	assert.Zero(t, s.Handlers())
}

func TestAwaitResponse_Cancelled(t *testing.T) {
	s := discordtest.NewSession()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := discord.AwaitResponse(ctx, s, "c1", "u1", discord.ConfirmEmbed("Sure?"), time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmbeds(t *testing.T) {
	e := discord.ErrorEmbed("nope")
	assert.Equal(t, ":octagonal_sign: | nope", e.Description)
	assert.Equal(t, discord.ColorError, e.Color)

	assert.Equal(t, ":white_check_mark: | ok", discord.SuccessEmbed("ok").Description)
	assert.Equal(t, ":warning: | hey", discord.InfoEmbed("hey").Description)

	c := discord.ConfirmEmbed("Sure?")
	require.NotNil(t, c.Footer)
	assert.Equal(t, discord.ColorConfirm, c.Color)
}
