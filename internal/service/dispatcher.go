package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"locus-bot/internal/command"
	"locus-bot/internal/discord"
	"locus-bot/internal/permission"
	"locus-bot/internal/repository/model"
	"locus-bot/internal/settings"
)

const prefixNoticeTTL = 10 * time.Second

const (
	dmNotice            = "Sorry, the bot cannot be used in DMs yet."
	guildOnlyNotice     = "This command can only be used inside a server."
	misconfiguredNotice = "The command you're trying to execute was not properly configured. Please contact the bot's admin."
	unauthorizedNotice  = "You do not have enough permission to use this command."
)

// Outcome is the step at which a message left the dispatch pipeline.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeDirectMessage
	OutcomeNoSendPermission
	OutcomeSettingsUnavailable
	OutcomePrefixQuery
	OutcomeNotCommand
	OutcomeUnknownCommand
	OutcomeDisabled
	OutcomeThrottled
	OutcomeGuildOnly
	OutcomeMisconfigured
	OutcomeUnauthorized
	OutcomeInvoked
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeDirectMessage:
		return "direct_message"
	case OutcomeNoSendPermission:
		return "no_send_permission"
	case OutcomeSettingsUnavailable:
		return "settings_unavailable"
	case OutcomePrefixQuery:
		return "prefix_query"
	case OutcomeNotCommand:
		return "not_command"
	case OutcomeUnknownCommand:
		return "unknown_command"
	case OutcomeDisabled:
		return "disabled"
	case OutcomeThrottled:
		return "throttled"
	case OutcomeGuildOnly:
		return "guild_only"
	case OutcomeMisconfigured:
		return "misconfigured"
	case OutcomeUnauthorized:
		return "unauthorized"
	case OutcomeInvoked:
		return "invoked"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

type settingsSource interface {
	Effective(ctx context.Context, guildId string) (settings.Settings, error)
}

type xpAwarder interface {
	OnMessage(ctx context.Context, guildId string, userId string, userName string, now time.Time) (*model.XpRecord, error)
}

type Dispatcher struct {
	logger   *zap.SugaredLogger
	session  discord.Session
	botId    string
	mention  *regexp.Regexp
	registry *command.Registry
	resolver *permission.Resolver
	settings settingsSource
	xp       xpAwarder
	limiter  *userLimiter

	noticeTTL time.Duration
	now       func() time.Time

	xpWg sync.WaitGroup
}

type DispatcherOption func(d *Dispatcher)

// WithThrottle limits each user to rate commands per second with the given burst.
func WithThrottle(rate float64, burst int) DispatcherOption {
	return func(d *Dispatcher) {
		d.limiter = newUserLimiter(rate, burst)
	}
}

func withNoticeTTL(ttl time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.noticeTTL = ttl
	}
}

func NewDispatcher(logger *zap.SugaredLogger, session discord.Session, botId string, registry *command.Registry,
	resolver *permission.Resolver, settings settingsSource, xp xpAwarder, opts ...DispatcherOption) *Dispatcher {

	d := &Dispatcher{
		logger:    logger,
		session:   session,
		botId:     botId,
		mention:   regexp.MustCompile(fmt.Sprintf(`^<@!?%s>\s?$`, regexp.QuoteMeta(botId))),
		registry:  registry,
		resolver:  resolver,
		settings:  settings,
		xp:        xp,
		noticeTTL: prefixNoticeTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch runs one inbound message through the command pipeline. The error
// returned by an invoked command is passed through unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, m *discordgo.Message) (Outcome, error) {
	if m.Author == nil || m.Author.Bot {
		return OutcomeIgnored, nil
	}

	mc := &command.Context{
		Session: d.session,
		Message: m,
		Logger:  d.logger,
	}

	if !mc.InGuild() {
		if _, err := mc.SendEmbed(discord.InfoEmbed(dmNotice)); err != nil {
			d.logger.Errorw("failed to send direct message notice", "userId", m.Author.ID, "error", err)
		}
		return OutcomeDirectMessage, nil
	}

	d.awardXp(ctx, m)

	perms, err := d.session.UserChannelPermissions(d.botId, m.ChannelID)
	if err != nil {
		d.logger.Debugw("failed to read bot channel permissions", "channelId", m.ChannelID, "error", err)
		return OutcomeNoSendPermission, nil
	}
	if perms&discordgo.PermissionSendMessages == 0 {
		return OutcomeNoSendPermission, nil
	}

	effective, err := d.settings.Effective(ctx, m.GuildID)
	if err != nil {
		return OutcomeSettingsUnavailable, fmt.Errorf("failed to resolve settings: %w", err)
	}
	mc.Settings = effective
	prefix := effective.Get(settings.Prefix)

	if d.mention.MatchString(m.Content) {
		d.replyPrefix(mc, prefix)
		return OutcomePrefixQuery, nil
	}

	if !strings.HasPrefix(m.Content, prefix) {
		return OutcomeNotCommand, nil
	}

	args := strings.Fields(m.Content[len(prefix):])
	if len(args) == 0 {
		return OutcomeNotCommand, nil
	}
	name := strings.ToLower(args[0])
	args = args[1:]

	cmd, ok := d.registry.Lookup(name)
	if !ok {
		return OutcomeUnknownCommand, nil
	}
	descriptor := cmd.Descriptor()

	if !descriptor.Enabled() {
		d.logger.Debugw("ignoring disabled command", "commandName", descriptor.Name, "actorId", m.Author.ID)
		return OutcomeDisabled, nil
	}

	if d.limiter != nil && !d.limiter.allow(m.Author.ID) {
		d.logger.Debugw("throttled command", "commandName", descriptor.Name, "actorId", m.Author.ID)
		return OutcomeThrottled, nil
	}

	if descriptor.GuildOnly() && !mc.InGuild() {
		mc.Error(guildOnlyNotice)
		return OutcomeGuildOnly, nil
	}

	if _, ok := d.resolver.Tiers().Level(descriptor.RequiredTier); !ok {
		d.logger.Warnw("command requires an unknown permission tier", "commandName", descriptor.Name, "tier", descriptor.RequiredTier)
		mc.Error(misconfiguredNotice)
		return OutcomeMisconfigured, nil
	}

	tier := d.resolver.Resolve(mc)

	authorized, err := d.authorize(mc, tier, descriptor)
	if err != nil {
		d.logger.Warnw("failed to authorize command", "commandName", descriptor.Name, "error", err)
		mc.Error(misconfiguredNotice)
		return OutcomeMisconfigured, nil
	}
	if !authorized {
		if effective.Bool(settings.SystemNotice) {
			mc.Error(unauthorizedNotice)
		}
		return OutcomeUnauthorized, nil
	}

	mc.InvocationId = uuid.New().String()
	d.logger.Infow("executing command",
		"actorTag", m.Author.String(),
		"actorId", m.Author.ID,
		"commandName", descriptor.Name,
		"invocationId", mc.InvocationId,
		"level", tier.Level,
	)

	return OutcomeInvoked, cmd.Run(ctx, mc, args, tier.Level)
}

// authorize falls back to the author's channel permissions when the resolved
// tier is too low and the command accepts a capability instead.
func (d *Dispatcher) authorize(mc *command.Context, tier permission.Tier, descriptor command.Descriptor) (bool, error) {
	ok, err := d.resolver.Authorized(tier, descriptor.RequiredTier)
	if err != nil || ok {
		return ok, err
	}
	if len(descriptor.RequiredCapabilities) == 0 {
		return false, nil
	}

	perms, err := mc.Permissions()
	if err != nil {
		d.logger.Debugw("failed to read author permissions", "actorId", mc.AuthorID(), "error", err)
		return false, nil
	}

	return permission.AnyCapability(perms, descriptor.RequiredCapabilities), nil
}

func (d *Dispatcher) replyPrefix(mc *command.Context, prefix string) {
	reply, err := mc.SendEmbed(discord.InfoEmbed(fmt.Sprintf("The current prefix for this server is: %s", prefix)))
	if err != nil {
		d.logger.Errorw("failed to reply with prefix", "guildId", mc.GuildID(), "error", err)
		return
	}

	time.AfterFunc(d.noticeTTL, func() {
		if err := d.session.ChannelMessageDelete(reply.ChannelID, reply.ID); err != nil {
			d.logger.Debugw("failed to delete prefix notice", "messageId", reply.ID, "error", err)
		}
	})
}

// awardXp updates the author's XP in the background. Failures are logged only.
func (d *Dispatcher) awardXp(ctx context.Context, m *discordgo.Message) {
	ctx = context.WithoutCancel(ctx)
	now := d.now()

	d.xpWg.Add(1)
	go func() {
		defer d.xpWg.Done()

		if _, err := d.xp.OnMessage(ctx, m.GuildID, m.Author.ID, m.Author.Username, now); err != nil {
			d.logger.Errorw("failed to update xp", "guildId", m.GuildID, "userId", m.Author.ID, "error", err)
		}
	}()
}

// Wait blocks until every pending XP update has finished.
func (d *Dispatcher) Wait() {
	d.xpWg.Wait()
}
