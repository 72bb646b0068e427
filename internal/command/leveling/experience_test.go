package leveling

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"locus-bot/internal/command"
	"locus-bot/internal/discord/discordtest"
	"locus-bot/internal/repository"
	"locus-bot/internal/repository/model"
)

// repoSource serves records straight from an XpRepository.
type repoSource struct {
	repo repository.XpRepository
}

func (s repoSource) Get(ctx context.Context, guildId string, userId string) (*model.XpRecord, error) {
	return s.repo.GetXpRecord(ctx, guildId, userId)
}

func TestExperience_Run(t *testing.T) {
	tests := map[string]struct {
		record *model.XpRecord
		dbErr  error

		wantNotice string
		wantErr    bool
	}{
		"existing record": {
			record:     &model.XpRecord{GuildId: "g1", UserId: "u1", XpAmount: 120},
			wantNotice: ":white_check_mark: | Viewing current xp and level\n**Current XP**: 120\n**Current Level**: 2\n**Next Level**: 20/155",
		},
		"fresh user": {
			record:     &model.XpRecord{GuildId: "g1", UserId: "u1", XpAmount: 0},
			wantNotice: ":white_check_mark: | Viewing current xp and level\n**Current XP**: 0\n**Current Level**: 1\n**Next Level**: 0/100",
		},
		"no record": {
			dbErr:      mongo.ErrNoDocuments,
			wantNotice: ":octagonal_sign: | Database entry for this user does not exist",
		},
		"database failure": {
			dbErr:      errors.New("connection reset"),
			wantNotice: ":octagonal_sign: | Failed to fetch your experience, please try again later.",
			wantErr:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockCntrl := gomock.NewController(t)
			mockRepo := repository.NewMockXpRepository(mockCntrl)
			mockRepo.EXPECT().GetXpRecord(gomock.Any(), "g1", "u1").Return(tt.record, tt.dbErr)

			s := discordtest.NewSession()
			mc := &command.Context{
				Session: s,
				Message: &discordgo.Message{ChannelID: "c1", GuildID: "g1", Author: &discordgo.User{ID: "u1"}},
				Logger:  zap.NewNop().Sugar(),
			}

			err := NewExperience(repoSource{repo: mockRepo}).Run(context.Background(), mc, nil, 0)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, []string{tt.wantNotice}, s.Descriptions())
		})
	}
}
