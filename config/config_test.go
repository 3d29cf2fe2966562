package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"CONFIG_FILE", "PORT", "REDIS_URL", "REDIS_TOKEN", "QUEUE_KEY", "LOCK_KEY", "LOCK_TTL",
		"MAX_INSERT_ATTEMPTS", "NOTION_BASE_URL", "NOTION_VERSION", "GOOGLE_CLOUD_PROJECT", "DATASTORE_NAMESPACE"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "task_queue", cfg.QueueKey)
	assert.Equal(t, "task_queue_lock", cfg.LockKey)
	assert.Equal(t, 60*time.Second, cfg.LockTTL)
	assert.Equal(t, 3, cfg.MaxInsertAttempts)
	assert.Equal(t, 2*time.Second, cfg.DefaultRetryAfter)
	assert.Equal(t, "taskqueue", cfg.DatastoreNamespace)
}

func TestLoadMissingRedisURL(t *testing.T) {
	clearEnv(t)

	_, err := Load()

	assert.EqualError(t, err, "Missing mandatory setting REDIS_URL")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
Port: "8080"
RedisURL: redis://from-file:6379
LockTTL: 30s
QueueKey: jobs
`), 0o600)
	assert.NoError(t, err)

	clearEnv(t)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("REDIS_URL", "rediss://default@upstash.example:6379")
	t.Setenv("REDIS_TOKEN", "token")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "rediss://default@upstash.example:6379", cfg.RedisURL)
	assert.Equal(t, "token", cfg.RedisToken)
	assert.Equal(t, 30*time.Second, cfg.LockTTL)
	assert.Equal(t, "jobs", cfg.QueueKey)
}

func TestLoadInvalidValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Unparsable ttl", key: "LOCK_TTL", value: "a minute"},
		{name: "Negative ttl", key: "LOCK_TTL", value: "-1s"},
		{name: "Unparsable attempts", key: "MAX_INSERT_ATTEMPTS", value: "three"},
		{name: "Zero attempts", key: "MAX_INSERT_ATTEMPTS", value: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("REDIS_URL", "redis://localhost:6379")
			t.Setenv(tc.key, tc.value)

			_, err := Load()

			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()

	assert.Error(t, err)
}
