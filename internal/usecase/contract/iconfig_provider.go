package usecasecontract

import "time"

// IConfigProvider exposes application settings.
type IConfigProvider interface {
	GetPort() string
	GetStorageDriver() string
	GetTallyWriteMode() string
	GetMongoURI() string
	GetMongoDBName() string
	GetDatabaseURL() string
	GetRedisURL() string
	GetTallyCacheTTL() time.Duration
	GetClientTokenSecret() string
	GetClientTokenTTL() time.Duration
	GetAdminKeyHash() string
	GetRateLimitPerSecond() float64
	GetCORSAllowedOrigins() []string
	GetLogLevel() string
}
