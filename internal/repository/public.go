package repository

import (
	"context"

	"locus-bot/internal/repository/model"
)

//go:generate mockgen -source=public.go -destination=mock_repository.go -package=repository

// XpRepository stores XpRecords. GetXpRecord and UpdateXpRecord return
// mongo.ErrNoDocuments when no record exists for the key.
type XpRepository interface {
	GetXpRecord(ctx context.Context, guildId string, userId string) (*model.XpRecord, error)
	CreateXpRecord(ctx context.Context, record *model.XpRecord) error
	UpdateXpRecord(ctx context.Context, record *model.XpRecord) error
}

// SettingsRepository stores the sparse per-guild settings override record.
type SettingsRepository interface {
	GetOverrides(ctx context.Context, guildId string) (map[string]string, error)
	SetOverride(ctx context.Context, guildId string, key string, value string) error
	DeleteOverride(ctx context.Context, guildId string, key string) error
}
