package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file with every field set
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `log-level: debug
draw-policy: phase
storage: redis
session-ttl: 15m
redis:
  host: cache
  port: "6380"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: the values come from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "phase", conf.DrawPolicy)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, 15*time.Minute, conf.SessionTTL)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "reset", conf.DrawPolicy)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, time.Hour, conf.SessionTTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Env overrides defaults", func(t *testing.T) {
		// Given: environment overrides
		t.Setenv("DRAW_POLICY", "phase")
		t.Setenv("REDIS_HOST", "redis.local")

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		// Then: the env values win
		require.NoError(t, err)
		assert.Equal(t, "phase", conf.DrawPolicy)
		assert.Equal(t, "redis.local:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("session-ttl: [not a duration"), 0o600))

		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestRedis_GetRedisAddr(t *testing.T) {
	assert.Equal(t, "", (&Redis{Host: "", Port: "6379"}).GetRedisAddr())
	assert.Equal(t, "h:1", (&Redis{Host: "h", Port: "1"}).GetRedisAddr())
}
