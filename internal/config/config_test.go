package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{
	"APP_ENV", "APP_PORT", "APP_HOST", "LOG_LEVEL", "DB_DRIVER", "DB_PATH", "DB_PASSWORD",
	"DB_CONNECT_RETRIES", "SEED_ON_START", "DEFAULT_LIST_LIMIT", "MAX_LIST_LIMIT",
}

// clearConfigEnv blanks every variable LoadConfig reads for the duration of the test
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configVars {
		t.Setenv(key, "")
	}
}

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("NUTRITION_TEST_KEY", "from_env")
	t.Setenv("NUTRITION_EMPTY_KEY", "")

	assert.Equal(t, "from_env", GetEnvWithDefault("NUTRITION_TEST_KEY", "default"))
	assert.Equal(t, "default_value", GetEnvWithDefault("NUTRITION_EMPTY_KEY", "default_value"))
	assert.Equal(t, "", GetEnvWithDefault("NUTRITION_MISSING_KEY", ""))
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("SEED_ON_START", "true")
	assert.True(t, GetEnvAsType("SEED_ON_START", false))

	t.Setenv("SEED_ON_START", "sometimes")
	assert.False(t, GetEnvAsType("SEED_ON_START", false), "malformed bool falls back to the default")

	t.Setenv("NUTRITION_INT", "12")
	assert.Equal(t, 12, GetEnvAsType("NUTRITION_INT", 7))
	assert.Equal(t, 7, GetEnvAsType("NUTRITION_MISSING_INT", 7))
	assert.Equal(t, "x", GetEnvAsType("NUTRITION_MISSING_STR", "x"))
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_CONNECT_RETRIES", "5")
	t.Setenv("SEED_ON_START", "true")
	t.Setenv("DEFAULT_LIST_LIMIT", "20")
	t.Setenv("MAX_LIST_LIMIT", "50")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 5, cfg.Database().ConnectAttempts)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, 20, cfg.DefaultListLimit)
	assert.Equal(t, 50, cfg.MaxListLimit)
	assert.Equal(t, logrus.DebugLevel, cfg.LogrusLevel())
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "nutrition.db", cfg.DBPath)
	assert.Equal(t, 1, cfg.DBConnectAttempts)
	assert.Equal(t, 100, cfg.DefaultListLimit)
	assert.Equal(t, 500, cfg.MaxListLimit)
	assert.False(t, cfg.SeedOnStart)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"invalid port", map[string]string{"APP_PORT": "not_a_number"}},
		{"port out of range", map[string]string{"APP_PORT": "70000"}},
		{"unknown driver", map[string]string{"DB_DRIVER": "oracle"}},
		{"invalid retries", map[string]string{"DB_CONNECT_RETRIES": "many"}},
		{"max below default limit", map[string]string{"DEFAULT_LIST_LIMIT": "50", "MAX_LIST_LIMIT": "10"}},
		{"non positive list limit", map[string]string{"DEFAULT_LIST_LIMIT": "0"}},
		{"invalid max limit number", map[string]string{"MAX_LIST_LIMIT": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestConfigStringMasksPassword(t *testing.T) {
	cfg := &Config{DBPassword: "s3cret"}
	assert.NotContains(t, cfg.String(), "s3cret")
	assert.Contains(t, cfg.String(), "[REDACTED]")
}

func TestLogLevels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, LevelForEnvironment("development"))
	assert.Equal(t, logrus.ErrorLevel, LevelForEnvironment("production"))
	assert.Equal(t, logrus.InfoLevel, LevelForEnvironment("staging"))

	cfg := &Config{LogLevel: "loud", Environment: "production"}
	assert.Equal(t, logrus.ErrorLevel, cfg.LogrusLevel(), "unparseable LOG_LEVEL falls back to the environment")
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	b.Setenv("BENCH_KEY", "test_value")
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
