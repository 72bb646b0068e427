// Package discordtest provides an in-memory discord.Session for tests.
package discordtest

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

var ErrNotFound = errors.New("not found")

type Sent struct {
	ChannelID string
	MessageID string
	Content   string
	Embed     *discordgo.MessageEmbed
}

type Ban struct {
	GuildID string
	UserID  string
	Reason  string
	Days    int
}

type Kick struct {
	GuildID string
	UserID  string
	Reason  string
}

// Session records every outbound call. Guilds, members and permissions are
// served from the exported maps, which must be populated before use.
type Session struct {
	mu sync.Mutex

	Guilds  map[string]*discordgo.Guild
	Members map[string]*discordgo.Member // keyed by guildID + "/" + userID

	// Permissions are keyed by userID + "/" + channelID.
	Permissions    map[string]int64
	PermissionsErr error

	SendErr  error
	KickErr  error
	BanErr   error
	EmojiErr error

	// OnSend is called after every recorded message, outside the lock.
	OnSend func(sent Sent)

	Sent    []Sent
	Edits   []Sent
	Deleted []string
	Bans    []Ban
	Kicks   []Kick

	CreatedEmojis []*discordgo.EmojiParams
	DeletedEmojis []string

	handlers []interface{}
	nextId   int
}

func NewSession() *Session {
	return &Session{
		Guilds:      make(map[string]*discordgo.Guild),
		Members:     make(map[string]*discordgo.Member),
		Permissions: make(map[string]int64),
	}
}

func (s *Session) record(channelID string, content string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	s.mu.Lock()
	if s.SendErr != nil {
		s.mu.Unlock()
		return nil, s.SendErr
	}
	s.nextId++
	sent := Sent{ChannelID: channelID, MessageID: "m" + strconv.Itoa(s.nextId), Content: content, Embed: embed}
	s.Sent = append(s.Sent, sent)
	onSend := s.OnSend
	s.mu.Unlock()

	if onSend != nil {
		onSend(sent)
	}

	msg := &discordgo.Message{ID: sent.MessageID, ChannelID: channelID, Content: content, Timestamp: time.Now()}
	if embed != nil {
		msg.Embeds = []*discordgo.MessageEmbed{embed}
	}
	return msg, nil
}

func (s *Session) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	return s.record(channelID, content, nil)
}

func (s *Session) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	return s.record(channelID, "", embed)
}

func (s *Session) ChannelMessageEdit(channelID string, messageID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Edits = append(s.Edits, Sent{ChannelID: channelID, MessageID: messageID, Content: content})
	return &discordgo.Message{ID: messageID, ChannelID: channelID, Content: content}, nil
}

func (s *Session) ChannelMessageDelete(_ string, messageID string, _ ...discordgo.RequestOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deleted = append(s.Deleted, messageID)
	return nil
}

func (s *Session) UserChannelPermissions(userID string, channelID string, _ ...discordgo.RequestOption) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PermissionsErr != nil {
		return 0, s.PermissionsErr
	}
	return s.Permissions[userID+"/"+channelID], nil
}

func (s *Session) Guild(guildID string, _ ...discordgo.RequestOption) (*discordgo.Guild, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.Guilds[guildID]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

func (s *Session) GuildMember(guildID string, userID string, _ ...discordgo.RequestOption) (*discordgo.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.Members[guildID+"/"+userID]
	if !ok {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *Session) GuildChannels(guildID string, _ ...discordgo.RequestOption) ([]*discordgo.Channel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.Guilds[guildID]
	if !ok {
		return nil, ErrNotFound
	}
	return g.Channels, nil
}

func (s *Session) GuildBanCreateWithReason(guildID string, userID string, reason string, days int, _ ...discordgo.RequestOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.BanErr != nil {
		return s.BanErr
	}
	s.Bans = append(s.Bans, Ban{GuildID: guildID, UserID: userID, Reason: reason, Days: days})
	return nil
}

func (s *Session) GuildMemberDeleteWithReason(guildID string, userID string, reason string, _ ...discordgo.RequestOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.KickErr != nil {
		return s.KickErr
	}
	s.Kicks = append(s.Kicks, Kick{GuildID: guildID, UserID: userID, Reason: reason})
	return nil
}

func (s *Session) GuildEmojiCreate(_ string, data *discordgo.EmojiParams, _ ...discordgo.RequestOption) (*discordgo.Emoji, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.EmojiErr != nil {
		return nil, s.EmojiErr
	}
	s.CreatedEmojis = append(s.CreatedEmojis, data)
	return &discordgo.Emoji{ID: strconv.Itoa(len(s.CreatedEmojis)), Name: data.Name}, nil
}

func (s *Session) GuildEmojiDelete(_ string, emojiID string, _ ...discordgo.RequestOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.EmojiErr != nil {
		return s.EmojiErr
	}
	s.DeletedEmojis = append(s.DeletedEmojis, emojiID)
	return nil
}

func (s *Session) AddHandler(handler interface{}) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := len(s.handlers)
	s.handlers = append(s.handlers, handler)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.handlers[idx] = nil
	}
}

func (s *Session) HeartbeatLatency() time.Duration {
	return 42 * time.Millisecond
}

// EmitMessage delivers m to every registered MessageCreate handler.
func (s *Session) EmitMessage(m *discordgo.Message) {
	s.mu.Lock()
	handlers := make([]interface{}, len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.Unlock()

	for _, h := range handlers {
		if fn, ok := h.(func(*discordgo.Session, *discordgo.MessageCreate)); ok {
			fn(nil, &discordgo.MessageCreate{Message: m})
		}
	}
}

// Handlers returns the number of registered handlers that have not been removed.
func (s *Session) Handlers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, h := range s.handlers {
		if h != nil {
			n++
		}
	}
	return n
}

// SentMessages returns a snapshot of the recorded messages.
func (s *Session) SentMessages() []Sent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Sent, len(s.Sent))
	copy(out, s.Sent)
	return out
}

// Descriptions returns the text or embed description of every recorded message.
func (s *Session) Descriptions() []string {
	var out []string
	for _, sent := range s.SentMessages() {
		if sent.Embed != nil {
			out = append(out, sent.Embed.Description)
		} else {
			out = append(out, sent.Content)
		}
	}
	return out
}

// DeletedMessages returns a snapshot of the deleted message ids.
func (s *Session) DeletedMessages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.Deleted))
	copy(out, s.Deleted)
	return out
}
