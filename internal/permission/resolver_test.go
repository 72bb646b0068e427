package permission

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"locus-bot/internal/settings"
)

type testSubject struct {
	authorId string
	ownerId  string
	ownerErr error
	roles    []string
	roleErr  error
	settings settings.Settings
}

func (s testSubject) AuthorID() string {
	return s.authorId
}

func (s testSubject) GuildOwnerID() (string, error) {
	return s.ownerId, s.ownerErr
}

func (s testSubject) HasRoleNamed(name string) (bool, error) {
	if s.roleErr != nil {
		return false, s.roleErr
	}
	for _, role := range s.roles {
		if strings.EqualFold(role, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s testSubject) Setting(key settings.Key) string {
	if s.settings == nil {
		return settings.Defaults().Get(key)
	}
	return s.settings.Get(key)
}

func TestResolver_Resolve(t *testing.T) {
	resolver := NewResolver(zap.NewNop().Sugar(), DefaultTiers([]string{"admin-1"}, "owner-1"))

	renamed := settings.Defaults()
	renamed[settings.ModRoleName] = "Helpers"

	tests := map[string]struct {
		subject testSubject
		want    string
	}{
		"plain member": {
			subject: testSubject{authorId: "u1", ownerId: "guild-owner"},
			want:    TierMember,
		},
		"moderator role case insensitive": {
			subject: testSubject{authorId: "u1", ownerId: "guild-owner", roles: []string{"moderator"}},
			want:    TierModerator,
		},
		"moderator role follows settings": {
			subject: testSubject{authorId: "u1", ownerId: "guild-owner", roles: []string{"Helpers"}, settings: renamed},
			want:    TierModerator,
		},
		"default moderator role ignored after rename": {
			subject: testSubject{authorId: "u1", ownerId: "guild-owner", roles: []string{"Moderator"}, settings: renamed},
			want:    TierMember,
		},
		"administrator beats moderator": {
			subject: testSubject{authorId: "u1", ownerId: "guild-owner", roles: []string{"Moderator", "Administrator"}},
			want:    TierAdministrator,
		},
		"guild owner": {
			subject: testSubject{authorId: "guild-owner", ownerId: "guild-owner"},
			want:    TierServerOwner,
		},
		"bot administrator": {
			subject: testSubject{authorId: "admin-1", ownerId: "guild-owner"},
			want:    TierBotAdministrator,
		},
		"bot owner": {
			subject: testSubject{authorId: "owner-1", ownerId: "owner-1"},
			want:    TierBotOwner,
		},
		"failing checks count as false": {
			subject: testSubject{authorId: "u1", ownerErr: errors.New("no guild"), roleErr: errors.New("no member")},
			want:    TierMember,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.subject).Name)
		})
	}
}

func TestResolver_Resolve_AlwaysReturnsTier(t *testing.T) {
	failing := func(Subject) (bool, error) { return false, errors.New("boom") }
	never := func(Subject) (bool, error) { return false, nil }

	tiers, err := NewTiers(
		Tier{Level: 5, Name: "high", Check: failing},
		Tier{Level: 0, Name: "low", Check: Always},
		Tier{Level: 3, Name: "mid", Check: never},
	)
	require.NoError(t, err)

	resolver := NewResolver(zap.NewNop().Sugar(), tiers)
	assert.Equal(t, "low", resolver.Resolve(testSubject{}).Name)
}

func TestResolver_Authorized(t *testing.T) {
	resolver := NewResolver(zap.NewNop().Sugar(), DefaultTiers(nil, "owner-1"))
	moderator := Tier{Level: 1, Name: TierModerator}

	ok, err := resolver.Authorized(moderator, TierMember)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = resolver.Authorized(moderator, TierModerator)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = resolver.Authorized(moderator, TierAdministrator)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = resolver.Authorized(moderator, "Janitor")
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestNewTiers(t *testing.T) {
	tests := map[string]struct {
		tiers   []Tier
		wantErr bool
	}{
		"valid": {
			tiers: []Tier{{Level: 0, Name: "a", Check: Always}, {Level: 1, Name: "b", Check: Always}},
		},
		"empty": {
			wantErr: true,
		},
		"duplicate name": {
			tiers:   []Tier{{Level: 0, Name: "a", Check: Always}, {Level: 1, Name: "a", Check: Always}},
			wantErr: true,
		},
		"duplicate level": {
			tiers:   []Tier{{Level: 0, Name: "a", Check: Always}, {Level: 0, Name: "b", Check: Always}},
			wantErr: true,
		},
		"missing check": {
			tiers:   []Tier{{Level: 0, Name: "a"}},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewTiers(tt.tiers...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTiers_SortedDescending(t *testing.T) {
	tiers := DefaultTiers(nil, "")
	all := tiers.All()
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i-1].Level, all[i].Level)
	}
	assert.Equal(t, TierMember, tiers.Lowest().Name)

	level, ok := tiers.Level(TierServerOwner)
	assert.True(t, ok)
	assert.Equal(t, 3, level)
}
