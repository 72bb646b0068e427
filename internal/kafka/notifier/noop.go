package notifier

import (
	"context"

	"locus-bot/internal/repository/model"
)

type noopNotifier struct{}

// NewNoopNotifier returns a Notifier that drops every update. Used when kafka is disabled.
func NewNoopNotifier() Notifier {
	return noopNotifier{}
}

func (noopNotifier) XpUpdate(context.Context, *model.XpRecord, int, bool) error {
	return nil
}

func (noopNotifier) SettingsUpdate(context.Context, string, string, string, SettingsChangeType) error {
	return nil
}
