package xp

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"locus-bot/internal/kafka/notifier"
	"locus-bot/internal/repository"
	"locus-bot/internal/repository/model"
)

type Policy struct {
	// Cooldown is the time that must pass strictly before a user is awarded again.
	Cooldown time.Duration

	// MinAward is inclusive, MaxAward exclusive.
	MinAward int
	MaxAward int
}

func DefaultPolicy() Policy {
	return Policy{
		Cooldown: 120 * time.Second,
		MinAward: 15,
		MaxAward: 25,
	}
}

// Ledger awards experience for messages. Calls for the same (guild, user) are serialized.
type Ledger struct {
	logger *zap.SugaredLogger
	repo   repository.XpRepository
	notif  notifier.Notifier
	policy Policy

	intN  func(n int) int
	locks *keyedMutex
}

func NewLedger(logger *zap.SugaredLogger, repo repository.XpRepository, notif notifier.Notifier, policy Policy) *Ledger {
	return &Ledger{
		logger: logger,
		repo:   repo,
		notif:  notif,
		policy: policy,
		intN:   rand.Intn,
		locks:  newKeyedMutex(),
	}
}

// OnMessage creates the record with an initial award, awards again once the
// cooldown has passed, and otherwise returns the record unchanged.
func (l *Ledger) OnMessage(ctx context.Context, guildId string, userId string, userName string, now time.Time) (*model.XpRecord, error) {
	unlock := l.locks.Lock(guildId + ":" + userId)
	defer unlock()

	record, err := l.repo.GetXpRecord(ctx, guildId, userId)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("failed to get xp record: %w", err)
		}

		record = &model.XpRecord{
			GuildId:  guildId,
			UserId:   userId,
			UserName: userName,
			XpAmount: l.award(),
			LastXp:   now.Unix(),
		}
		if err := l.repo.CreateXpRecord(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to create xp record: %w", err)
		}

		l.notify(ctx, record, 0)
		return record, nil
	}

	if now.Unix()-record.LastXp <= int64(l.policy.Cooldown/time.Second) {
		return record, nil
	}

	previous := record.XpAmount
	record.XpAmount += l.award()
	record.LastXp = now.Unix()
	record.UserName = userName

	if err := l.repo.UpdateXpRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update xp record: %w", err)
	}

	l.notify(ctx, record, previous)
	return record, nil
}

// Get returns the stored record, or mongo.ErrNoDocuments.
func (l *Ledger) Get(ctx context.Context, guildId string, userId string) (*model.XpRecord, error) {
	return l.repo.GetXpRecord(ctx, guildId, userId)
}

func (l *Ledger) award() int64 {
	spread := l.policy.MaxAward - l.policy.MinAward
	if spread <= 0 {
		return int64(l.policy.MinAward)
	}
	return int64(l.policy.MinAward + l.intN(spread))
}

func (l *Ledger) notify(ctx context.Context, record *model.XpRecord, previous int64) {
	level := LevelFromXp(record.XpAmount)
	levelUp := level > LevelFromXp(previous)

	if err := l.notif.XpUpdate(ctx, record, level, levelUp); err != nil {
		l.logger.Errorw("failed to notify xp update", "guildId", record.GuildId, "userId", record.UserId, "error", err)
	}
}
