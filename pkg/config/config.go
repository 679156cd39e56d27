package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	JWT         JWTConfig
	CORS        CORSConfig
	Log         LogConfig
	Metrics     MetricsConfig
	Exports     ExportsConfig
	ReportCards ReportCardsConfig
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	// DevTokenEnabled mounts the unauthenticated token endpoint.
	DevTokenEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig toggles the Prometheus endpoint and request instrumentation.
type MetricsConfig struct {
	Enabled bool
}

// ExportsConfig controls CSV/PDF rendering of report cards.
type ExportsConfig struct {
	Enabled  bool
	PDFTitle string
}

// ReportCardsConfig tunes the in-memory report card registry.
type ReportCardsConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.JWT = JWTConfig{
		Secret:          v.GetString("JWT_SECRET"),
		Expiration:      parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		DevTokenEnabled: v.GetBool("ENABLE_DEV_TOKEN"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("ENABLE_METRICS"),
	}

	cfg.Exports = ExportsConfig{
		Enabled:  v.GetBool("ENABLE_EXPORTS"),
		PDFTitle: v.GetString("EXPORT_PDF_TITLE"),
	}

	defaultPageSize := v.GetInt("REPORT_CARDS_DEFAULT_PAGE_SIZE")
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	maxPageSize := v.GetInt("REPORT_CARDS_MAX_PAGE_SIZE")
	if maxPageSize < defaultPageSize {
		maxPageSize = defaultPageSize
	}
	cfg.ReportCards = ReportCardsConfig{
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("ENABLE_DEV_TOKEN", false)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_METRICS", true)
	v.SetDefault("ENABLE_EXPORTS", true)
	v.SetDefault("EXPORT_PDF_TITLE", "Report Card")

	v.SetDefault("REPORT_CARDS_DEFAULT_PAGE_SIZE", 20)
	v.SetDefault("REPORT_CARDS_MAX_PAGE_SIZE", 100)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// DevTokenAllowed reports whether /auth/dev-token may be mounted. It needs
// the explicit flag and is never served in production.
func (c *Config) DevTokenAllowed() bool {
	return c.JWT.DevTokenEnabled && c.Env != EnvProduction
}
