package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ksliga/league-api/internal/platform/logging"
	"github.com/ksliga/league-api/internal/platform/resilience"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv          string
	ServiceName     string
	ServiceVersion  string
	HTTPAddr        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        logging.Level

	StoreDriver       string
	SeedDemoData      bool
	DBURL             string
	DBApplicationName string
	DBMaxOpenConns    int

	CacheEnabled bool
	CacheTTL     time.Duration

	CORSAllowedOrigins  []string
	SwaggerEnabled      bool
	AdminPassword       string
	AdminPasswordHash   string
	OverviewGoalWorkers int

	LogoStorageEnabled bool
	R2AccountID        string
	R2AccessKeyID      string
	R2SecretAccessKey  string
	R2Bucket           string
	R2PublicBaseURL    string
	LogoStorageTimeout time.Duration
	LogoStorageCircuit resilience.CircuitBreakerConfig

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PprofEnabled bool
	PprofAddr    string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

// Load reads configuration from the environment. Variables from ENV_FILE
// (default .env) are applied first without overriding the real environment.
func Load() (Config, error) {
	if err := loadDotEnv(getEnv("ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "ksliga-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   strings.TrimSpace(getEnv("APP_HTTP_ADDR", ":8080")),
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		DBURL:                      strings.TrimSpace(getEnv("DB_URL", "")),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AdminPassword:              os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash:          strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		R2AccountID:                strings.TrimSpace(getEnv("R2_ACCOUNT_ID", "")),
		R2AccessKeyID:              strings.TrimSpace(getEnv("R2_ACCESS_KEY_ID", "")),
		R2SecretAccessKey:          strings.TrimSpace(getEnv("R2_SECRET_ACCESS_KEY", "")),
		R2Bucket:                   strings.TrimSpace(getEnv("R2_BUCKET", "")),
		R2PublicBaseURL:            strings.TrimSpace(getEnv("R2_PUBLIC_BASE_URL", "")),
		UptraceDSN:                 strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PprofAddr:                  strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		PyroscopeServerAddress:     strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if cfg.ReadTimeout, err = getEnvAsPositiveDuration("APP_READ_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getEnvAsPositiveDuration("APP_WRITE_TIMEOUT", 15*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getEnvAsPositiveDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	if err := cfg.loadStore(); err != nil {
		return Config{}, err
	}
	if err := cfg.loadHTTPFeatures(); err != nil {
		return Config{}, err
	}
	if err := cfg.loadLogoStorage(); err != nil {
		return Config{}, err
	}
	if err := cfg.loadObservability(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg *Config) loadStore() error {
	driver := strings.ToLower(strings.TrimSpace(getEnv("STORE_DRIVER", "")))
	if driver == "" {
		driver = StoreMemory
		if cfg.DBURL != "" {
			driver = StorePostgres
		}
	}
	switch driver {
	case StoreMemory, StorePostgres:
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q: valid values are %s, %s", driver, StoreMemory, StorePostgres)
	}
	if driver == StorePostgres && cfg.DBURL == "" {
		return fmt.Errorf("DB_URL is required when STORE_DRIVER=%s", StorePostgres)
	}
	cfg.StoreDriver = driver

	var err error
	if cfg.SeedDemoData, err = getEnvAsBool("SEED_DEMO_DATA", driver == StoreMemory && cfg.AppEnv != EnvProd); err != nil {
		return err
	}
	cfg.DBApplicationName = strings.TrimSpace(getEnv("DB_APPLICATION_NAME", cfg.ServiceName))
	if cfg.DBMaxOpenConns, err = getEnvAsInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.DBMaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}

	if cfg.CacheEnabled, err = getEnvAsBool("CACHE_ENABLED", true); err != nil {
		return err
	}
	if cfg.CacheTTL, err = getEnvAsPositiveDuration("CACHE_TTL", 30*time.Second); err != nil {
		return err
	}
	return nil
}

func (cfg *Config) loadHTTPFeatures() error {
	swaggerDefault := cfg.AppEnv != EnvProd

	var err error
	if cfg.SwaggerEnabled, err = getEnvAsBool("SWAGGER_ENABLED", swaggerDefault); err != nil {
		return err
	}
	if cfg.OverviewGoalWorkers, err = getEnvAsInt("OVERVIEW_GOAL_WORKERS", 8); err != nil {
		return fmt.Errorf("parse OVERVIEW_GOAL_WORKERS: %w", err)
	}
	if cfg.OverviewGoalWorkers < 1 {
		return fmt.Errorf("OVERVIEW_GOAL_WORKERS must be >= 1")
	}
	if cfg.AppEnv == EnvProd && cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required when APP_ENV=%s", EnvProd)
	}
	return nil
}

func (cfg *Config) loadLogoStorage() error {
	var err error
	if cfg.LogoStorageEnabled, err = getEnvAsBool("LOGO_STORAGE_ENABLED", false); err != nil {
		return err
	}
	if cfg.LogoStorageTimeout, err = getEnvAsPositiveDuration("LOGO_STORAGE_TIMEOUT", 15*time.Second); err != nil {
		return err
	}

	circuit := resilience.DefaultCircuitBreakerConfig()
	if circuit.Enabled, err = getEnvAsBool("LOGO_STORAGE_CIRCUIT_ENABLED", circuit.Enabled); err != nil {
		return err
	}
	if circuit.FailureThreshold, err = getEnvAsInt("LOGO_STORAGE_CIRCUIT_FAILURE_COUNT", circuit.FailureThreshold); err != nil {
		return fmt.Errorf("parse LOGO_STORAGE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuit.FailureThreshold < 1 {
		return fmt.Errorf("LOGO_STORAGE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if circuit.OpenTimeout, err = getEnvAsPositiveDuration("LOGO_STORAGE_CIRCUIT_OPEN_TIMEOUT", circuit.OpenTimeout); err != nil {
		return err
	}
	if circuit.HalfOpenMaxReq, err = getEnvAsInt("LOGO_STORAGE_CIRCUIT_HALF_OPEN_MAX_REQ", circuit.HalfOpenMaxReq); err != nil {
		return fmt.Errorf("parse LOGO_STORAGE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuit.HalfOpenMaxReq < 1 {
		return fmt.Errorf("LOGO_STORAGE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	cfg.LogoStorageCircuit = circuit

	if !cfg.LogoStorageEnabled {
		return nil
	}
	required := map[string]string{
		"R2_ACCOUNT_ID":        cfg.R2AccountID,
		"R2_ACCESS_KEY_ID":     cfg.R2AccessKeyID,
		"R2_SECRET_ACCESS_KEY": cfg.R2SecretAccessKey,
		"R2_BUCKET":            cfg.R2Bucket,
		"R2_PUBLIC_BASE_URL":   cfg.R2PublicBaseURL,
	}
	for _, key := range []string{"R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET", "R2_PUBLIC_BASE_URL"} {
		if required[key] == "" {
			return fmt.Errorf("%s is required when LOGO_STORAGE_ENABLED=true", key)
		}
	}
	return nil
}

func (cfg *Config) loadObservability() error {
	var err error
	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return err
	}
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.UptraceLogsEnabled, err = getEnvAsBool("UPTRACE_LOGS_ENABLED", true); err != nil {
		return err
	}

	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", false); err != nil {
		return err
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return err
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if cfg.PyroscopeUploadRate, err = getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", 15*time.Second); err != nil {
		return err
	}
	return nil
}

func loadDotEnv(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func getEnvAsPositiveDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

// MigrationConfig is the subset of settings the migration CLI needs.
type MigrationConfig struct {
	DBURL           string
	ApplicationName string
	MigrationsDir   string
	LogLevel        logging.Level
}

// LoadMigration reads the migration CLI settings from the same environment
// and dotenv file as Load.
func LoadMigration() (MigrationConfig, error) {
	if err := loadDotEnv(getEnv("ENV_FILE", ".env")); err != nil {
		return MigrationConfig{}, err
	}

	cfg := MigrationConfig{
		DBURL:           strings.TrimSpace(getEnv("DB_URL", "")),
		ApplicationName: strings.TrimSpace(getEnv("DB_APPLICATION_NAME", "ksliga-migrate")),
		MigrationsDir:   strings.TrimSpace(getEnv("MIGRATIONS_DIR", "")),
		LogLevel:        parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if cfg.DBURL == "" {
		return MigrationConfig{}, fmt.Errorf("DB_URL is required")
	}

	return cfg, nil
}
