package settings

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"locus-bot/internal/kafka/notifier"
	"locus-bot/internal/repository"
)

// PersistenceError wraps a failed read or write of the override record.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s settings: %s", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Store merges the sparse per-guild override record with the defaults.
type Store struct {
	logger *zap.SugaredLogger
	repo   repository.SettingsRepository
	notif  notifier.Notifier
}

func NewStore(logger *zap.SugaredLogger, repo repository.SettingsRepository, notif notifier.Notifier) *Store {
	return &Store{
		logger: logger,
		repo:   repo,
		notif:  notif,
	}
}

// Effective returns the defaults with the guild's overrides applied on top.
func (s *Store) Effective(ctx context.Context, guildId string) (Settings, error) {
	overrides, err := s.Overrides(ctx, guildId)
	if err != nil {
		return nil, err
	}

	effective := Defaults()
	for k, v := range overrides {
		effective[k] = v
	}

	return effective, nil
}

// Overrides returns the known keys stored in the guild's override record.
func (s *Store) Overrides(ctx context.Context, guildId string) (map[Key]string, error) {
	stored, err := s.repo.GetOverrides(ctx, guildId)
	if err != nil {
		return nil, &PersistenceError{Op: "read", Err: err}
	}

	overrides := make(map[Key]string, len(stored))
	for k, v := range stored {
		key, err := ParseKey(k)
		if err != nil {
			s.logger.Debugw("ignoring unknown stored setting", "guildId", guildId, "key", k)
			continue
		}
		overrides[key] = v
	}

	return overrides, nil
}

func (s *Store) IsOverridden(ctx context.Context, guildId string, key Key) (bool, error) {
	if _, ok := Default(key); !ok {
		return false, ErrUnknownKey
	}

	overrides, err := s.Overrides(ctx, guildId)
	if err != nil {
		return false, err
	}

	_, ok := overrides[key]
	return ok, nil
}

func (s *Store) Get(ctx context.Context, guildId string, key Key) (string, error) {
	if _, ok := Default(key); !ok {
		return "", ErrUnknownKey
	}

	effective, err := s.Effective(ctx, guildId)
	if err != nil {
		return "", err
	}

	return effective[key], nil
}

// Set stores value as an override of key. A value equal to the default removes
// the override instead, so later default changes still reach the guild.
func (s *Store) Set(ctx context.Context, guildId string, key Key, value string) error {
	def, ok := Default(key)
	if !ok {
		return ErrUnknownKey
	}

	if value == def {
		if err := s.repo.DeleteOverride(ctx, guildId, string(key)); err != nil {
			return &PersistenceError{Op: "write", Err: err}
		}
	} else {
		if err := s.repo.SetOverride(ctx, guildId, string(key), value); err != nil {
			return &PersistenceError{Op: "write", Err: err}
		}
	}

	s.notify(ctx, guildId, key, value, notifier.SettingsChangeSet)
	return nil
}

// Reset removes the override of key unconditionally.
func (s *Store) Reset(ctx context.Context, guildId string, key Key) error {
	if _, ok := Default(key); !ok {
		return ErrUnknownKey
	}

	if err := s.repo.DeleteOverride(ctx, guildId, string(key)); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}

	s.notify(ctx, guildId, key, "", notifier.SettingsChangeReset)
	return nil
}

func (s *Store) notify(ctx context.Context, guildId string, key Key, value string, changeType notifier.SettingsChangeType) {
	if err := s.notif.SettingsUpdate(ctx, guildId, string(key), value, changeType); err != nil {
		s.logger.Errorw("failed to notify settings update", "guildId", guildId, "key", key, "error", err)
	}
}
