package app

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"locus-bot/internal/config"
	"locus-bot/internal/discord"
	"locus-bot/internal/kafka/notifier"
	"locus-bot/internal/permission"
	"locus-bot/internal/repository"
	"locus-bot/internal/service"
	"locus-bot/internal/settings"
	"locus-bot/internal/xp"
)

const intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMembers |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

func Run(cfg *config.Config, logger *zap.SugaredLogger) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	wg := &sync.WaitGroup{}

	delayedCtx, repoCancel := context.WithCancel(context.Background())
	delayedWg := &sync.WaitGroup{}

	xpRepo, err := repository.NewMongoRepository(delayedCtx, logger, delayedWg, cfg.MongoDB)
	if err != nil {
		logger.Fatalw("failed to create xp repository", "error", err)
	}

	settingsRepo, err := repository.NewRedisRepository(delayedCtx, logger, delayedWg, cfg.Redis)
	if err != nil {
		logger.Fatalw("failed to create settings repository", "error", err)
	}

	notif := createNotifier(delayedCtx, delayedWg, logger, cfg)

	store := settings.NewStore(logger, settingsRepo, notif)
	ledger := xp.NewLedger(logger, xpRepo, notif, xp.Policy{
		Cooldown: cfg.Xp.Cooldown,
		MinAward: cfg.Xp.MinAward,
		MaxAward: cfg.Xp.MaxAward,
	})

	healthSrv := service.RunServices(ctx, logger, wg, cfg)

	discord.BridgeLogger(logger)
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		logger.Fatalw("failed to create discord session", "error", err)
	}
	session.Identify.Intents = intents

	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		logger.Infow("connected to discord", "user", r.User.String(), "guilds", len(r.Guilds))
		service.SetReady(healthSrv)
	})

	if err := session.Open(); err != nil {
		logger.Fatalw("failed to open discord session", "error", err)
	}

	self, err := session.User("@me")
	if err != nil {
		logger.Fatalw("failed to fetch bot user", "error", err)
	}

	var ownerId string
	if application, err := session.Application("@me"); err != nil {
		logger.Warnw("failed to fetch application, the Bot Owner tier is unreachable", "error", err)
	} else if application.Owner != nil {
		ownerId = application.Owner.ID
	}

	tiers := permission.DefaultTiers(cfg.Discord.BotAdmins, ownerId)

	registry, err := newRegistry(cfg, tiers, store, ledger)
	if err != nil {
		logger.Fatalw("failed to register commands", "error", err)
	}
	logger.Infow("registered commands", "count", registry.Len())

	var opts []service.DispatcherOption
	if cfg.Discord.CommandRate > 0 {
		opts = append(opts, service.WithThrottle(cfg.Discord.CommandRate, cfg.Discord.CommandBurst))
	}

	dispatcher := service.NewDispatcher(logger, session, self.ID, registry, permission.NewResolver(logger, tiers), store, ledger, opts...)
	session.AddHandler(service.NewMessageHandler(ctx, logger, dispatcher))

	for _, handler := range service.NewGreeter(logger, session, store).Handlers(ctx) {
		session.AddHandler(handler)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()

		if err := session.Close(); err != nil {
			logger.Errorw("failed to close discord session", "error", err)
		}
		dispatcher.Wait()
	}()

	wg.Wait()
	logger.Info("shutting down")

	logger.Info("shutting down delayed services")
	repoCancel()
	delayedWg.Wait()
}

func createNotifier(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg *config.Config) notifier.Notifier {
	if !cfg.Kafka.Enabled {
		logger.Info("kafka disabled, change notifications are not published")
		return notifier.NewNoopNotifier()
	}

	return notifier.NewKafkaNotifier(ctx, wg, logger, cfg.Kafka)
}
