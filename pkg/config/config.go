package config

import (
	"errors"
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

	Database DatabaseConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	Catalog  CatalogConfig
	Planner  PlannerConfig
	Chat     ChatConfig
	Scraper  ScraperConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CatalogConfig tunes catalog lookups and caching.
type CatalogConfig struct {
	CacheTTL     time.Duration
	SeedFallback bool
}

// PlannerConfig carries the credit-load thresholds used by plan validation.
type PlannerConfig struct {
	DefaultCourseCredits int
	MinTermCredits       int
	MaxTermCredits       int
}

// ChatConfig configures the advising chat pipeline (retrieval + generation).
type ChatConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	MaxTokens      int
	RetrieveK      int
	RequestTimeout time.Duration
}

// ScraperConfig governs the background catalog/club/document scrapers.
type ScraperConfig struct {
	Enabled          bool
	CourseCatalogURL string
	ClubDirectoryURL string
	DocumentURLs     []string
	UserAgent        string
	RequestTimeout   time.Duration
	Workers          int
	Retries          int
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
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Catalog = CatalogConfig{
		CacheTTL:     parseDuration(v.GetString("CATALOG_CACHE_TTL"), 10*time.Minute),
		SeedFallback: v.GetBool("CATALOG_SEED_FALLBACK"),
	}

	cfg.Planner = PlannerConfig{
		DefaultCourseCredits: v.GetInt("DEFAULT_COURSE_CREDITS"),
		MinTermCredits:       v.GetInt("CREDIT_LOAD_MIN"),
		MaxTermCredits:       v.GetInt("CREDIT_LOAD_MAX"),
	}

	cfg.Chat = ChatConfig{
		APIKey:         v.GetString("ANTHROPIC_API_KEY"),
		BaseURL:        v.GetString("ANTHROPIC_BASE_URL"),
		Model:          v.GetString("CHAT_MODEL"),
		MaxTokens:      v.GetInt("CHAT_MAX_TOKENS"),
		RetrieveK:      v.GetInt("CHAT_RETRIEVE_K"),
		RequestTimeout: parseDuration(v.GetString("CHAT_REQUEST_TIMEOUT"), 60*time.Second),
	}

	cfg.Scraper = ScraperConfig{
		Enabled:          v.GetBool("ENABLE_SCRAPERS"),
		CourseCatalogURL: v.GetString("SCRAPER_COURSE_CATALOG_URL"),
		ClubDirectoryURL: v.GetString("SCRAPER_CLUB_DIRECTORY_URL"),
		DocumentURLs:     splitAndTrim(v.GetString("SCRAPER_DOCUMENT_URLS")),
		UserAgent:        v.GetString("SCRAPER_USER_AGENT"),
		RequestTimeout:   parseDuration(v.GetString("SCRAPER_REQUEST_TIMEOUT"), 30*time.Second),
		Workers:          v.GetInt("SCRAPER_WORKERS"),
		Retries:          v.GetInt("SCRAPER_RETRIES"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8000)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "advisor")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CATALOG_CACHE_TTL", "10m")
	v.SetDefault("CATALOG_SEED_FALLBACK", true)

	v.SetDefault("DEFAULT_COURSE_CREDITS", 3)
	v.SetDefault("CREDIT_LOAD_MIN", 12)
	v.SetDefault("CREDIT_LOAD_MAX", 18)

	v.SetDefault("ANTHROPIC_API_KEY", "")
	v.SetDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com")
	v.SetDefault("CHAT_MODEL", "claude-sonnet-4-20250514")
	v.SetDefault("CHAT_MAX_TOKENS", 1024)
	v.SetDefault("CHAT_RETRIEVE_K", 4)
	v.SetDefault("CHAT_REQUEST_TIMEOUT", "60s")

	v.SetDefault("ENABLE_SCRAPERS", false)
	v.SetDefault("SCRAPER_COURSE_CATALOG_URL", "https://louslist.org/CS.html")
	v.SetDefault("SCRAPER_CLUB_DIRECTORY_URL", "https://virginia.presence.io/organizations")
	v.SetDefault("SCRAPER_DOCUMENT_URLS", "")
	v.SetDefault("SCRAPER_USER_AGENT", "advisor-api-scraper/1.0")
	v.SetDefault("SCRAPER_REQUEST_TIMEOUT", "30s")
	v.SetDefault("SCRAPER_WORKERS", 1)
	v.SetDefault("SCRAPER_RETRIES", 3)
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
