package system

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"locus-bot/internal/command"
	"locus-bot/internal/discord/discordtest"
	"locus-bot/internal/permission"
)

type stubCommand struct {
	descriptor command.Descriptor
}

func (c stubCommand) Descriptor() command.Descriptor {
	return c.descriptor
}

func (c stubCommand) Run(context.Context, *command.Context, []string, int) error {
	return nil
}

func newTestHelp(t *testing.T) *Help {
	registry := command.NewRegistry()
	help := NewHelp(registry, permission.DefaultTiers(nil, "owner"))

	require.NoError(t, registry.Register(help))
	require.NoError(t, registry.Register(stubCommand{command.Descriptor{Name: "ping", Category: "Information", Aliases: []string{"ms"}}}))
	require.NoError(t, registry.Register(stubCommand{command.Descriptor{Name: "kick", Category: "Moderation", RequiredTier: permission.TierModerator}}))
	require.NoError(t, registry.Register(stubCommand{command.Descriptor{Name: "secret", Category: "Information", Disabled: true}}))
	require.NoError(t, registry.Register(stubCommand{command.Descriptor{Name: "broken", Category: "Information", RequiredTier: "Janitor"}}))
	require.NoError(t, registry.Register(NewSettings(nil, 0)))

	return help
}

func TestHelp_ShowAll(t *testing.T) {
	tests := map[string]struct {
		level int
		want  []*discordgo.MessageEmbedField
	}{
		"member": {
			level: 0,
			want: []*discordgo.MessageEmbedField{
				{Name: "Information", Value: "ping"},
				{Name: "System", Value: "help"},
			},
		},
		"administrator": {
			level: 2,
			want: []*discordgo.MessageEmbedField{
				{Name: "Information", Value: "ping"},
				{Name: "Moderation", Value: "kick"},
				{Name: "System", Value: "help, settings"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := discordtest.NewSession()
			mc := newTestContext(s, nil)

			require.NoError(t, newTestHelp(t).Run(context.Background(), mc, nil, tt.level))

			sent := s.SentMessages()
			require.Len(t, sent, 1)
			assert.Equal(t, "Available Commands", sent[0].Embed.Title)
			assert.Equal(t, "Use `!help [command name]` to get more information about a specific command", sent[0].Embed.Description)
			assert.Equal(t, tt.want, sent[0].Embed.Fields)
		})
	}
}

func TestHelp_Command(t *testing.T) {
	s := discordtest.NewSession()
	require.NoError(t, newTestHelp(t).Run(context.Background(), newTestContext(s, nil), []string{"ms"}, 0))

	sent := s.SentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, "Command name: _ping_", sent[0].Embed.Title)
	assert.Equal(t, command.DefaultDescription, sent[0].Embed.Description)
	require.Len(t, sent[0].Embed.Fields, 2)
	assert.Equal(t, "ms", sent[0].Embed.Fields[1].Value)

	s = discordtest.NewSession()
	require.NoError(t, newTestHelp(t).Run(context.Background(), newTestContext(s, nil), []string{"kick"}, 0))
	assert.Equal(t, []string{":octagonal_sign: | You do not have permission to view the help of the command kick"}, s.Descriptions())

	s = discordtest.NewSession()
	require.NoError(t, newTestHelp(t).Run(context.Background(), newTestContext(s, nil), []string{"dance"}, 10))
	assert.Equal(t, []string{":octagonal_sign: | Command dance does not exist!"}, s.Descriptions())
}
