package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"locus-bot/internal/utils/runtime"
)

const (
	discordTokenFlag    = "discord-token"
	botAdminsFlag       = "bot-admins"
	developmentFlag     = "development"
	grpcPortFlag        = "port"
	mongoDBURIFlag      = "mongodb-uri"
	redisAddrFlag       = "redis-addr"
	redisPasswordFlag   = "redis-password"
	redisDBFlag         = "redis-db"
	kafkaEnabledFlag    = "kafka-enabled"
	kafkaHostFlag       = "kafka-host"
	kafkaPortFlag       = "kafka-port"
	xpCooldownFlag      = "xp-cooldown"
	xpMinFlag           = "xp-min"
	xpMaxFlag           = "xp-max"
	responseTimeoutFlag = "response-timeout"
	commandRateFlag     = "command-rate"
	commandBurstFlag    = "command-burst"
)

type Config struct {
	Discord DiscordConfig
	MongoDB MongoDBConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Xp      XpConfig

	Development bool

	GRPCPort int `validate:"min=1,max=65535"`
}

type DiscordConfig struct {
	Token string `validate:"required"`

	// BotAdmins are user IDs granted the Bot Administrator tier.
	BotAdmins []string

	// ResponseTimeout bounds how long a command waits for a user's text reply.
	ResponseTimeout time.Duration `validate:"gt=0"`

	// CommandRate is the per-user command rate in commands per second. Zero disables throttling.
	CommandRate  float64 `validate:"gte=0"`
	CommandBurst int     `validate:"gte=0"`
}

type MongoDBConfig struct {
	URI string `validate:"required"`
}

type RedisConfig struct {
	Addr     string `validate:"required"`
	Password string
	DB       int `validate:"gte=0"`
}

type KafkaConfig struct {
	Enabled bool
	Host    string
	Port    int
}

type XpConfig struct {
	Cooldown time.Duration `validate:"gte=0"`
	MinAward int           `validate:"gte=0"`
	MaxAward int           `validate:"gtefield=MinAward"`
}

func LoadGlobalConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, falling back to environment variables")
	}

	viper.SetDefault(discordTokenFlag, "")
	viper.SetDefault(botAdminsFlag, []string{})
	viper.SetDefault(developmentFlag, true)
	viper.SetDefault(grpcPortFlag, 10010)
	viper.SetDefault(mongoDBURIFlag, "mongodb://localhost:27017")
	viper.SetDefault(redisAddrFlag, "localhost:6379")
	viper.SetDefault(redisPasswordFlag, "")
	viper.SetDefault(redisDBFlag, 0)
	viper.SetDefault(kafkaEnabledFlag, false)
	viper.SetDefault(kafkaHostFlag, "localhost")
	viper.SetDefault(kafkaPortFlag, 9092)
	viper.SetDefault(xpCooldownFlag, 120*time.Second)
	viper.SetDefault(xpMinFlag, 15)
	viper.SetDefault(xpMaxFlag, 25)
	viper.SetDefault(responseTimeoutFlag, 15*time.Second)
	viper.SetDefault(commandRateFlag, 0.0)
	viper.SetDefault(commandBurstFlag, 3)

	pflag.String(discordTokenFlag, viper.GetString(discordTokenFlag), "Discord bot token")
	pflag.StringSlice(botAdminsFlag, viper.GetStringSlice(botAdminsFlag), "Discord user IDs of the bot administrators")
	pflag.Bool(developmentFlag, viper.GetBool(developmentFlag), "Development mode")
	pflag.Int32(grpcPortFlag, viper.GetInt32(grpcPortFlag), "gRPC health port")
	pflag.String(mongoDBURIFlag, viper.GetString(mongoDBURIFlag), "MongoDB URI")
	pflag.String(redisAddrFlag, viper.GetString(redisAddrFlag), "Redis address")
	pflag.String(redisPasswordFlag, viper.GetString(redisPasswordFlag), "Redis password")
	pflag.Int(redisDBFlag, viper.GetInt(redisDBFlag), "Redis database index")
	pflag.Bool(kafkaEnabledFlag, viper.GetBool(kafkaEnabledFlag), "Publish change notifications to Kafka")
	pflag.String(kafkaHostFlag, viper.GetString(kafkaHostFlag), "Kafka host")
	pflag.Int32(kafkaPortFlag, viper.GetInt32(kafkaPortFlag), "Kafka port")
	pflag.Duration(xpCooldownFlag, viper.GetDuration(xpCooldownFlag), "Minimum time between XP awards")
	pflag.Int(xpMinFlag, viper.GetInt(xpMinFlag), "Minimum XP award (inclusive)")
	pflag.Int(xpMaxFlag, viper.GetInt(xpMaxFlag), "Maximum XP award (exclusive)")
	pflag.Duration(responseTimeoutFlag, viper.GetDuration(responseTimeoutFlag), "Timeout when awaiting a user's response")
	pflag.Float64(commandRateFlag, viper.GetFloat64(commandRateFlag), "Per-user commands per second, 0 disables")
	pflag.Int(commandBurstFlag, viper.GetInt(commandBurstFlag), "Per-user command burst")
	pflag.Parse()

	runtime.Must(viper.BindPFlags(pflag.CommandLine))

	// Bind the viper flags to environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, key := range []string{
		discordTokenFlag, botAdminsFlag, developmentFlag, grpcPortFlag, mongoDBURIFlag,
		redisAddrFlag, redisPasswordFlag, redisDBFlag, kafkaEnabledFlag, kafkaHostFlag,
		kafkaPortFlag, xpCooldownFlag, xpMinFlag, xpMaxFlag, responseTimeoutFlag,
		commandRateFlag, commandBurstFlag,
	} {
		runtime.Must(viper.BindEnv(key))
	}

	cfg := &Config{
		Discord: DiscordConfig{
			Token:           viper.GetString(discordTokenFlag),
			BotAdmins:       viper.GetStringSlice(botAdminsFlag),
			ResponseTimeout: viper.GetDuration(responseTimeoutFlag),
			CommandRate:     viper.GetFloat64(commandRateFlag),
			CommandBurst:    viper.GetInt(commandBurstFlag),
		},
		MongoDB: MongoDBConfig{
			URI: viper.GetString(mongoDBURIFlag),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString(redisAddrFlag),
			Password: viper.GetString(redisPasswordFlag),
			DB:       viper.GetInt(redisDBFlag),
		},
		Kafka: KafkaConfig{
			Enabled: viper.GetBool(kafkaEnabledFlag),
			Host:    viper.GetString(kafkaHostFlag),
			Port:    int(viper.GetInt32(kafkaPortFlag)),
		},
		Xp: XpConfig{
			Cooldown: viper.GetDuration(xpCooldownFlag),
			MinAward: viper.GetInt(xpMinFlag),
			MaxAward: viper.GetInt(xpMaxFlag),
		},
		Development: viper.GetBool(developmentFlag),
		GRPCPort:    int(viper.GetInt32(grpcPortFlag)),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags of a loaded config.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
