package moderation

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
	"locus-bot/internal/command"
	"locus-bot/internal/permission"
)

const (
	emojiCDN = "https://cdn.discordapp.com/emojis/"

	// maxEmojiSize is the upload limit of the emoji endpoint.
	maxEmojiSize = 256 * 1024
)

var customEmoji = regexp.MustCompile(`^<a?:(\w+):(\d+)>$`)

type Emote struct {
	client *http.Client
}

func NewEmote(client *http.Client) *Emote {
	return &Emote{client: client}
}

func (e *Emote) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:                 "emote",
		Description:          "Add or remove emojis on the server",
		Category:             "Moderation",
		Usage:                []string{"emote add [name] <emote or emote url>", "emote remove <emote>"},
		RequiredTier:         permission.TierModerator,
		RequiredCapabilities: []string{"MANAGE_EMOJIS"},
	}
}

func (e *Emote) Run(ctx context.Context, mc *command.Context, args []string, _ int) error {
	if len(args) == 0 {
		mc.Error("You must specify an action (add/remove)")
		return nil
	}

	switch action := strings.ToLower(args[0]); action {
	case "add":
		return e.add(ctx, mc, args[1:])
	case "remove":
		return e.remove(mc, args[1:])
	default:
		mc.Error(fmt.Sprintf("%s is not a valid action", args[0]))
		return nil
	}
}

func (e *Emote) add(ctx context.Context, mc *command.Context, args []string) error {
	var name, source string
	switch len(args) {
	case 0:
		mc.Error("You must specify an emote or an emote url to add")
		return nil
	case 1:
		source = args[0]
		name = emoteName(source)
	default:
		name, source = args[0], args[1]
	}

	url := source
	if !isURL(source) {
		match := customEmoji.FindStringSubmatch(source)
		if match == nil {
			mc.Error(fmt.Sprintf("%s is not a custom emote or an url", source))
			return nil
		}
		url = emojiCDN + match[2] + ".png"
	}

	image, err := e.fetchImage(ctx, url)
	if err != nil {
		mc.Logger.Errorw("failed to fetch emote image", "url", url, "error", err)
		mc.Error("Error adding the emote")
		return nil
	}

	created, err := mc.Session.GuildEmojiCreate(mc.GuildID(), &discordgo.EmojiParams{Name: name, Image: image})
	if err != nil {
		mc.Logger.Errorw("failed to create emote", "guildId", mc.GuildID(), "name", name, "error", err)
		mc.Error("Error adding the emote")
		return nil
	}

	mc.Success(fmt.Sprintf("emote %s added", created.Name))
	return nil
}

func (e *Emote) remove(mc *command.Context, args []string) error {
	if len(args) == 0 {
		mc.Error("You must specify the emote to remove")
		return nil
	}

	match := customEmoji.FindStringSubmatch(args[0])
	if match == nil {
		mc.Error("Emote does not exist in this guild")
		return nil
	}

	g, err := mc.Guild()
	if err != nil {
		return fmt.Errorf("failed to get guild: %w", err)
	}

	var target *discordgo.Emoji
	for _, emoji := range g.Emojis {
		if emoji.ID == match[2] {
			target = emoji
			break
		}
	}
	if target == nil {
		mc.Error("Emote does not exist in this guild")
		return nil
	}

	if err := mc.Session.GuildEmojiDelete(mc.GuildID(), target.ID); err != nil {
		mc.Logger.Errorw("failed to delete emote", "guildId", mc.GuildID(), "emojiId", target.ID, "error", err)
		mc.Error("Error removing the emote")
		return nil
	}

	mc.Success(fmt.Sprintf("emote %s removed", target.Name))
	return nil
}

// fetchImage downloads url and returns it as a data URI.
func (e *Emote) fetchImage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxEmojiSize+1))
	if err != nil {
		return "", err
	}
	if len(body) > maxEmojiSize {
		return "", fmt.Errorf("image is larger than %d bytes", maxEmojiSize)
	}

	contentType := http.DetectContentType(body)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("unsupported content type %s", contentType)
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(body)), nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// emoteName derives a name from a custom emote or from the file name of an url.
func emoteName(source string) string {
	if match := customEmoji.FindStringSubmatch(source); match != nil {
		return match[1]
	}

	name := source[strings.LastIndex(source, "/")+1:]
	if i := strings.Index(name, "?"); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}
