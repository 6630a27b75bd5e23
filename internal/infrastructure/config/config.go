package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	// TallyWriteAtomic uses the storage engine's own increment primitive.
	TallyWriteAtomic = "atomic"
	// TallyWriteSerialized funnels read-modify-write cycles for an item through one lock.
	TallyWriteSerialized = "serialized"
)

// Config holds application configuration values.
type Config struct {
	Port               string
	StorageDriver      string
	TallyWriteMode     string
	MongoURI           string
	MongoDBName        string
	DatabaseURL        string
	RedisURL           string
	TallyCacheTTL      time.Duration
	ClientTokenSecret  string
	ClientTokenTTL     time.Duration
	AdminKeyHash       string
	RateLimitPerSecond float64
	CORSAllowedOrigins []string
	LogLevel           string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
		TallyWriteMode:     strings.ToLower(getEnv("TALLY_WRITE_MODE", TallyWriteAtomic)),
		MongoURI:           getEnv("MONGODB_URI", ""),
		MongoDBName:        getEnv("MONGODB_DB_NAME", "votetally"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		TallyCacheTTL:      time.Second * time.Duration(getEnvAsInt("TALLY_CACHE_TTL_SECONDS", 30)),
		ClientTokenSecret:  getEnv("CLIENT_TOKEN_SECRET", ""),
		ClientTokenTTL:     time.Hour * time.Duration(getEnvAsInt("CLIENT_TOKEN_TTL_HOURS", 24*365)),
		AdminKeyHash:       getEnv("ADMIN_KEY_HASH", ""),
		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

func (c *Config) GetPort() string                  { return c.Port }
func (c *Config) GetStorageDriver() string         { return c.StorageDriver }
func (c *Config) GetTallyWriteMode() string        { return c.TallyWriteMode }
func (c *Config) GetMongoURI() string              { return c.MongoURI }
func (c *Config) GetMongoDBName() string           { return c.MongoDBName }
func (c *Config) GetDatabaseURL() string           { return c.DatabaseURL }
func (c *Config) GetRedisURL() string              { return c.RedisURL }
func (c *Config) GetTallyCacheTTL() time.Duration  { return c.TallyCacheTTL }
func (c *Config) GetClientTokenSecret() string     { return c.ClientTokenSecret }
func (c *Config) GetClientTokenTTL() time.Duration { return c.ClientTokenTTL }
func (c *Config) GetAdminKeyHash() string          { return c.AdminKeyHash }
func (c *Config) GetRateLimitPerSecond() float64   { return c.RateLimitPerSecond }
func (c *Config) GetCORSAllowedOrigins() []string  { return c.CORSAllowedOrigins }
func (c *Config) GetLogLevel() string              { return c.LogLevel }

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil && value > 0 {
		return value
	}
	return fallback
}

// Comma separated, blanks dropped.
func getEnvAsList(name string, fallback []string) []string {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
