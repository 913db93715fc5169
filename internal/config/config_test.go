package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ksliga/league-api/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points ENV_FILE at a missing file so a developer .env never leaks
// into assertions.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_URL", "")
	t.Setenv("STORE_DRIVER", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.True(t, cfg.SeedDemoData)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.SwaggerEnabled)
	assert.False(t, cfg.LogoStorageEnabled)
	assert.True(t, cfg.LogoStorageCircuit.Enabled)
	assert.Equal(t, 8, cfg.OverviewGoalWorkers)
	assert.Equal(t, logging.LevelInfo, cfg.LogLevel)
}

func TestLoad_AppEnvValidation(t *testing.T) {
	isolate(t)
	t.Setenv("APP_ENV", "invalid")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_StoreDriver(t *testing.T) {
	t.Run("db url implies postgres", func(t *testing.T) {
		isolate(t)
		t.Setenv("DB_URL", "postgres://u:p@localhost:5432/ksliga?sslmode=disable")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, StorePostgres, cfg.StoreDriver)
		assert.False(t, cfg.SeedDemoData)
	})

	t.Run("postgres requires db url", func(t *testing.T) {
		isolate(t)
		t.Setenv("STORE_DRIVER", "postgres")

		_, err := Load()
		require.ErrorContains(t, err, "DB_URL")
	})

	t.Run("unknown driver", func(t *testing.T) {
		isolate(t)
		t.Setenv("STORE_DRIVER", "mongo")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestLoad_ProdRequiresAdminPassword(t *testing.T) {
	isolate(t)
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	_, err := Load()
	require.ErrorContains(t, err, "ADMIN_PASSWORD")

	t.Setenv("ADMIN_PASSWORD", "secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.SwaggerEnabled)
	assert.False(t, cfg.SeedDemoData)
}

func TestLoad_LogoStorageRequiresR2Settings(t *testing.T) {
	isolate(t)
	t.Setenv("LOGO_STORAGE_ENABLED", "true")
	t.Setenv("R2_ACCOUNT_ID", "acc")
	t.Setenv("R2_ACCESS_KEY_ID", "key")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET", "")
	t.Setenv("R2_PUBLIC_BASE_URL", "https://cdn.ksliga.test")

	_, err := Load()
	require.ErrorContains(t, err, "R2_BUCKET")

	t.Setenv("R2_BUCKET", "logos")
	t.Setenv("LOGO_STORAGE_CIRCUIT_FAILURE_COUNT", "3")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.LogoStorageEnabled)
	assert.Equal(t, 3, cfg.LogoStorageCircuit.FailureThreshold)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"CACHE_TTL":             "-1s",
		"CACHE_ENABLED":         "maybe",
		"APP_READ_TIMEOUT":      "soon",
		"DB_MAX_OPEN_CONNS":     "0",
		"OVERVIEW_GOAL_WORKERS": "x",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			isolate(t)
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_UptraceDSN(t *testing.T) {
	t.Run("required when enabled", func(t *testing.T) {
		isolate(t)
		t.Setenv("UPTRACE_ENABLED", "true")
		t.Setenv("UPTRACE_DSN", "")
		t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("read from otlp headers", func(t *testing.T) {
		isolate(t)
		t.Setenv("UPTRACE_ENABLED", "true")
		t.Setenv("UPTRACE_DSN", "")
		t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "https://token@api.uptrace.dev?grpc=4317", cfg.UptraceDSN)
	})
}

func TestLoad_DotEnvFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_HTTP_ADDR=:9191\nAPP_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	// keys written by godotenv must not outlive the test
	t.Setenv("APP_HTTP_ADDR", "")
	t.Setenv("APP_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("APP_HTTP_ADDR"))
	require.NoError(t, os.Unsetenv("APP_LOG_LEVEL"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9191", cfg.HTTPAddr)
	assert.Equal(t, logging.LevelDebug, cfg.LogLevel)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitCSV(" a, ,b ,"))
	assert.Empty(t, splitCSV(""))
}

func TestLoadMigration(t *testing.T) {
	t.Run("requires db url", func(t *testing.T) {
		isolate(t)

		_, err := LoadMigration()
		require.ErrorContains(t, err, "DB_URL")
	})

	t.Run("defaults", func(t *testing.T) {
		isolate(t)
		t.Setenv("DB_URL", "postgres://u:p@localhost:5432/ksliga")
		t.Setenv("DB_APPLICATION_NAME", "")
		t.Setenv("MIGRATIONS_DIR", "/srv/migrations")

		cfg, err := LoadMigration()
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@localhost:5432/ksliga", cfg.DBURL)
		assert.Equal(t, "ksliga-migrate", cfg.ApplicationName)
		assert.Equal(t, "/srv/migrations", cfg.MigrationsDir)
	})
}
