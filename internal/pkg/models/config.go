package models

// Config represents application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	NSQ       NSQConfig       `mapstructure:"nsq"`
	SMS       SMSConfig       `mapstructure:"sms"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Match     MatchConfig     `mapstructure:"match"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	APIKey    APIKeyConfig    `mapstructure:"api_key"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"env"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver      string `mapstructure:"driver"`
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	Database    string `mapstructure:"database"`
	SSLMode     string `mapstructure:"ssl_mode"`
	MaxConns    int    `mapstructure:"max_conns"`
	IdleConns   int    `mapstructure:"idle_conns"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	// PhoneIndexTTL is the lifetime of a phone index entry in seconds, 0 keeps it forever
	PhoneIndexTTL int `mapstructure:"phone_index_ttl"`
}

// NSQConfig contains the nsqd address events are published to. Empty disables publishing.
type NSQConfig struct {
	Address string `mapstructure:"address"`
}

// SMSConfig contains the Vonage Messages API credentials
type SMSConfig struct {
	APIKey             string `mapstructure:"api_key"`
	APISecret          string `mapstructure:"api_secret"`
	From               string `mapstructure:"from"`
	BaseURL            string `mapstructure:"base_url"`
	DefaultCountryCode string `mapstructure:"default_country_code"`
	Timeout            int    `mapstructure:"timeout"` // in seconds
}

// Configured reports whether both credentials are present
func (c SMSConfig) Configured() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// WebhookConfig contains the secret used to verify signed provider callbacks
type WebhookConfig struct {
	SignatureSecret string `mapstructure:"signature_secret"`
}

// MatchConfig contains volunteer matching parameters
type MatchConfig struct {
	NearestK      int `mapstructure:"nearest_k"`
	MaxCandidates int `mapstructure:"max_candidates"`
	NotifyLimit   int `mapstructure:"notify_limit"`
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}

// CORSConfig contains allowed origins for browser clients
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// RateLimitConfig bounds requests that trigger SMS sends, per client IP.
// A zero Requests disables the limiter.
type RateLimitConfig struct {
	Requests int `mapstructure:"requests"`
	Period   int `mapstructure:"period"` // in seconds
}

// APIKeyConfig lists the keys accepted on operator endpoints. Empty leaves them open.
type APIKeyConfig struct {
	Keys []string `mapstructure:"keys"`
}
