package notifier

import (
	"context"

	"locus-bot/internal/repository/model"
)

//go:generate mockgen -source=public.go -destination=mock_notifier.go -package=notifier

type Notifier interface {
	XpUpdate(ctx context.Context, record *model.XpRecord, level int, levelUp bool) error
	SettingsUpdate(ctx context.Context, guildId string, key string, value string, changeType SettingsChangeType) error
}

type SettingsChangeType string

const (
	SettingsChangeSet   SettingsChangeType = "SET"
	SettingsChangeReset SettingsChangeType = "RESET"
)

type XpUpdateMessage struct {
	GuildId  string `json:"guildId"`
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
	XpAmount int64  `json:"xpAmount"`
	Level    int    `json:"level"`
	LevelUp  bool   `json:"levelUp"`
}

type SettingsUpdateMessage struct {
	GuildId    string             `json:"guildId"`
	Key        string             `json:"key"`
	Value      string             `json:"value,omitempty"`
	ChangeType SettingsChangeType `json:"changeType"`
}
