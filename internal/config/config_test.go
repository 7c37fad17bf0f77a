package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/school-bells/internal/schedule"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "timezone: America/New_York\n"))
	require.NoError(t, err)

	assert.Equal(t, StoreFile, cfg.Store.Type)
	assert.Equal(t, "data", cfg.Store.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, schedule.DefaultFridayRule(), cfg.Friday.Rule())
	assert.Equal(t, 10*time.Minute, cfg.Calendar.GetCacheTTL())
	assert.Equal(t, 15*time.Second, cfg.Watch.GetInterval())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
log:
  level: debug
store:
  type: redis
  redis:
    addr: localhost:6379
    password: ${REDIS_PASSWORD}
    ttl: 24h
friday:
  winter_start: 12
  winter_day_start: 15
watch:
  interval: 1m
`))
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, cfg.Store.Type)
	assert.Equal(t, "localhost:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Store.Redis.GetTTL())
	assert.Equal(t, time.December, cfg.Friday.Rule().WinterStart)
	assert.Equal(t, 15, cfg.Friday.Rule().WinterDayStart)
	assert.Equal(t, time.March, cfg.Friday.Rule().WinterEnd)
	assert.Equal(t, time.Minute, cfg.Watch.GetInterval())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SCHOOL_BELLS_STORE_TYPE", "mongo")
	t.Setenv("SCHOOL_BELLS_STORE_MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load(writeConfig(t, "store:\n  type: file\n"))
	require.NoError(t, err)

	assert.Equal(t, StoreMongo, cfg.Store.Type)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Store.Mongo.URI)
	assert.Equal(t, "school_bells", cfg.Store.Mongo.Database)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Unknown store type", "store:\n  type: postgres\n"},
		{"Redis without address", "store:\n  type: redis\n"},
		{"Unknown log level", "log:\n  level: loud\n"},
		{"Month out of range", "friday:\n  winter_end: 13\n"},
		{"Day out of range", "friday:\n  winter_day_end: 0\n"},
		{"Bad timezone", "timezone: Mars/Olympus\n"},
		{"Blob without bucket", "blob:\n  endpoint: localhost:9000\n  bucket: \"\"\n"},
		{"Key format without month", "calendar:\n  key_format: calendar/%d\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback time.Duration
		want     time.Duration
	}{
		{"Empty", "", time.Hour, time.Hour},
		{"Valid", "90s", time.Hour, 90 * time.Second},
		{"Garbage", "soon", time.Hour, time.Hour},
		{"Negative", "-5m", time.Hour, time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDuration(tt.value, tt.fallback))
		})
	}
}
