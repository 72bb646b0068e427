package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"locus-bot/internal/config"
	"locus-bot/internal/repository/model"
)

const topic = "locus-bot"

const (
	messageTypeHeader = "X-Message-Type"
	messageIdHeader   = "X-Message-Id"

	xpUpdateType       = "XpUpdateMessage"
	settingsUpdateType = "SettingsUpdateMessage"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaNotifier struct {
	logger *zap.SugaredLogger
	w      messageWriter
}

func NewKafkaNotifier(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig) Notifier {
	w := &kafka.Writer{
		Addr:        kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:       topic,
		Async:       true,
		Balancer:    &kafka.Hash{},
		ErrorLogger: zap.NewStdLog(logger.Desugar()),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down kafka writer")
		if err := w.Close(); err != nil {
			logger.Errorw("failed to close kafka writer", "error", err)
		}
	}()

	return &kafkaNotifier{
		logger: logger,
		w:      w,
	}
}

func (k *kafkaNotifier) XpUpdate(ctx context.Context, record *model.XpRecord, level int, levelUp bool) error {
	msg := &XpUpdateMessage{
		GuildId:  record.GuildId,
		UserId:   record.UserId,
		UserName: record.UserName,
		XpAmount: record.XpAmount,
		Level:    level,
		LevelUp:  levelUp,
	}
	if err := k.publishMessage(ctx, xpUpdateType, record.GuildId, msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (k *kafkaNotifier) SettingsUpdate(ctx context.Context, guildId string, key string, value string, changeType SettingsChangeType) error {
	msg := &SettingsUpdateMessage{GuildId: guildId, Key: key, Value: value, ChangeType: changeType}
	if err := k.publishMessage(ctx, settingsUpdateType, guildId, msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// publishMessage keys messages by guild so updates for one guild stay ordered.
func (k *kafkaNotifier) publishMessage(ctx context.Context, messageType string, guildId string, message any) error {
	bytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := k.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(guildId),
		Value: bytes,
		Headers: []kafka.Header{
			{Key: messageTypeHeader, Value: []byte(messageType)},
			{Key: messageIdHeader, Value: []byte(uuid.NewString())},
		},
	}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
