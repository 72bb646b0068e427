package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"locus-bot/internal/kafka/notifier"
	"locus-bot/internal/repository"
)

const testGuildId = "100000000000000001"

var errDatabase = errors.New("database unavailable")

type storeMocks struct {
	repo  *repository.MockSettingsRepository
	notif *notifier.MockNotifier
}

func newTestStore(t *testing.T) (*Store, storeMocks) {
	ctrl := gomock.NewController(t)
	m := storeMocks{
		repo:  repository.NewMockSettingsRepository(ctrl),
		notif: notifier.NewMockNotifier(ctrl),
	}
	return NewStore(zap.NewNop().Sugar(), m.repo, m.notif), m
}

func TestStore_Effective(t *testing.T) {
	tests := map[string]struct {
		overrides map[string]string
		repoErr   error

		want    Settings
		wantErr error
	}{
		"no overrides equals defaults": {
			overrides: map[string]string{},
			want:      Defaults(),
		},
		"override applied on top": {
			overrides: map[string]string{"prefix": "?", "welcomeChannel": "general-chat"},
			want: func() Settings {
				s := Defaults()
				s[Prefix] = "?"
				s[WelcomeChannel] = "general-chat"
				return s
			}(),
		},
		"unknown stored key ignored": {
			overrides: map[string]string{"legacyKey": "value"},
			want:      Defaults(),
		},
		"repository failure": {
			repoErr: errDatabase,
			wantErr: errDatabase,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, m := newTestStore(t)
			m.repo.EXPECT().GetOverrides(gomock.Any(), testGuildId).Return(tt.overrides, tt.repoErr)

			got, err := s.Effective(context.Background(), testGuildId)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var persistenceErr *PersistenceError
				assert.ErrorAs(t, err, &persistenceErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(Keys()))
		})
	}
}

func TestStore_Set(t *testing.T) {
	tests := map[string]struct {
		key   Key
		value string

		mocks   func(m storeMocks)
		wantErr error
	}{
		"non-default value stored": {
			key:   WelcomeChannel,
			value: "general-chat",
			mocks: func(m storeMocks) {
				m.repo.EXPECT().SetOverride(gomock.Any(), testGuildId, "welcomeChannel", "general-chat").Return(nil)
				m.notif.EXPECT().SettingsUpdate(gomock.Any(), testGuildId, "welcomeChannel", "general-chat", notifier.SettingsChangeSet).Return(nil)
			},
		},
		"default value removes override": {
			key:   WelcomeChannel,
			value: "general",
			mocks: func(m storeMocks) {
				m.repo.EXPECT().DeleteOverride(gomock.Any(), testGuildId, "welcomeChannel").Return(nil)
				m.notif.EXPECT().SettingsUpdate(gomock.Any(), testGuildId, "welcomeChannel", "general", notifier.SettingsChangeSet).Return(nil)
			},
		},
		"unknown key": {
			key:     Key("nope"),
			value:   "x",
			mocks:   func(m storeMocks) {},
			wantErr: ErrUnknownKey,
		},
		"repository failure": {
			key:   Prefix,
			value: "?",
			mocks: func(m storeMocks) {
				m.repo.EXPECT().SetOverride(gomock.Any(), testGuildId, "prefix", "?").Return(errDatabase)
			},
			wantErr: errDatabase,
		},
		"notifier failure is not returned": {
			key:   Prefix,
			value: "?",
			mocks: func(m storeMocks) {
				m.repo.EXPECT().SetOverride(gomock.Any(), testGuildId, "prefix", "?").Return(nil)
				m.notif.EXPECT().SettingsUpdate(gomock.Any(), testGuildId, "prefix", "?", notifier.SettingsChangeSet).Return(errors.New("kafka down"))
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, m := newTestStore(t)
			tt.mocks(m)

			err := s.Set(context.Background(), testGuildId, tt.key, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStore_Reset(t *testing.T) {
	s, m := newTestStore(t)

	m.repo.EXPECT().DeleteOverride(gomock.Any(), testGuildId, "prefix").Return(nil)
	m.notif.EXPECT().SettingsUpdate(gomock.Any(), testGuildId, "prefix", "", notifier.SettingsChangeReset).Return(nil)
	assert.NoError(t, s.Reset(context.Background(), testGuildId, Prefix))

	assert.ErrorIs(t, s.Reset(context.Background(), testGuildId, Key("nope")), ErrUnknownKey)
}

func TestStore_Get(t *testing.T) {
	s, m := newTestStore(t)

	m.repo.EXPECT().GetOverrides(gomock.Any(), testGuildId).Return(map[string]string{"prefix": "?"}, nil)
	value, err := s.Get(context.Background(), testGuildId, Prefix)
	require.NoError(t, err)
	assert.Equal(t, "?", value)

	m.repo.EXPECT().GetOverrides(gomock.Any(), testGuildId).Return(map[string]string{}, nil)
	value, err = s.Get(context.Background(), testGuildId, ModRoleName)
	require.NoError(t, err)
	assert.Equal(t, "Moderator", value)

	_, err = s.Get(context.Background(), testGuildId, Key("nope"))
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestStore_IsOverridden(t *testing.T) {
	s, m := newTestStore(t)

	m.repo.EXPECT().GetOverrides(gomock.Any(), testGuildId).Return(map[string]string{"prefix": "?"}, nil).Times(2)

	overridden, err := s.IsOverridden(context.Background(), testGuildId, Prefix)
	require.NoError(t, err)
	assert.True(t, overridden)

	overridden, err = s.IsOverridden(context.Background(), testGuildId, ByeChannel)
	require.NoError(t, err)
	assert.False(t, overridden)
}

func TestParseKey(t *testing.T) {
	key, err := ParseKey("modLogChannel")
	assert.NoError(t, err)
	assert.Equal(t, ModLogChannel, key)

	_, err = ParseKey("modlogchannel")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestSettings_Bool(t *testing.T) {
	s := Defaults()
	assert.True(t, s.Bool(SystemNotice))
	assert.False(t, s.Bool(WelcomeEnabled))

	s[SystemNotice] = "nonsense"
	assert.False(t, s.Bool(SystemNotice))
}
