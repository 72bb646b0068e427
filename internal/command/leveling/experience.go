package leveling

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"locus-bot/internal/command"
	"locus-bot/internal/repository/model"
	"locus-bot/internal/xp"
)

type recordSource interface {
	Get(ctx context.Context, guildId string, userId string) (*model.XpRecord, error)
}

type Experience struct {
	records recordSource
}

func NewExperience(records recordSource) *Experience {
	return &Experience{records: records}
}

func (e *Experience) Descriptor() command.Descriptor {
	return command.Descriptor{
		Name:        "experience",
		Description: "Check your current xp level",
		Category:    "XP",
		Usage:       []string{"experience"},
		Aliases:     []string{"xp", "rank"},
	}
}

func (e *Experience) Run(ctx context.Context, mc *command.Context, _ []string, _ int) error {
	record, err := e.records.Get(ctx, mc.GuildID(), mc.AuthorID())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			mc.Error("Database entry for this user does not exist")
			return nil
		}

		mc.Error("Failed to fetch your experience, please try again later.")
		return fmt.Errorf("failed to get xp record: %w", err)
	}

	level, current, required := xp.Progress(record.XpAmount)
	mc.Success(fmt.Sprintf("Viewing current xp and level\n**Current XP**: %d\n**Current Level**: %d\n**Next Level**: %d/%d",
		record.XpAmount, level, current, required))
	return nil
}
