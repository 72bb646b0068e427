package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGuildId = "100000000000000001"

func newTestRedisRepository(t *testing.T) (*redisRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return newRedisRepository(client), mr
}

func TestRedisRepository_GetOverrides(t *testing.T) {
	r, mr := newTestRedisRepository(t)

	// No record yet
	overrides, err := r.GetOverrides(context.Background(), testGuildId)
	require.NoError(t, err)
	assert.NotNil(t, overrides)
	assert.Empty(t, overrides)

	mr.HSet("settings:"+testGuildId, "prefix", "?")
	mr.HSet("settings:"+testGuildId, "modRoleName", "Mods")
	mr.HSet("settings:other", "prefix", "$")

	overrides, err = r.GetOverrides(context.Background(), testGuildId)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"prefix": "?", "modRoleName": "Mods"}, overrides)
}

func TestRedisRepository_SetOverride(t *testing.T) {
	r, mr := newTestRedisRepository(t)

	err := r.SetOverride(context.Background(), testGuildId, "prefix", "?")
	require.NoError(t, err)
	assert.Equal(t, "?", mr.HGet("settings:"+testGuildId, "prefix"))

	// Overwrite
	err = r.SetOverride(context.Background(), testGuildId, "prefix", ">>")
	require.NoError(t, err)
	assert.Equal(t, ">>", mr.HGet("settings:"+testGuildId, "prefix"))
}

func TestRedisRepository_DeleteOverride(t *testing.T) {
	r, mr := newTestRedisRepository(t)

	mr.HSet("settings:"+testGuildId, "prefix", "?")
	mr.HSet("settings:"+testGuildId, "systemNotice", "false")

	err := r.DeleteOverride(context.Background(), testGuildId, "prefix")
	require.NoError(t, err)

	overrides, err := r.GetOverrides(context.Background(), testGuildId)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"systemNotice": "false"}, overrides)

	// Deleting an absent key is not an error
	err = r.DeleteOverride(context.Background(), testGuildId, "prefix")
	assert.NoError(t, err)
}

func TestRedisRepository_Unavailable(t *testing.T) {
	r, mr := newTestRedisRepository(t)
	mr.Close()

	_, err := r.GetOverrides(context.Background(), testGuildId)
	assert.Error(t, err)
}
