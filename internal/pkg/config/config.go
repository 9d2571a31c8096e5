package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/reliefhub/internal/pkg/constants"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/spf13/viper"
)

type binding struct {
	key string
	env string
	def interface{}
}

var bindings = []binding{
	{"app.name", "APP_NAME", "reliefhub"},
	{"app.env", "APP_ENV", "local"},
	{"app.debug", "APP_DEBUG", true},
	{"app.version", "APP_VERSION", "development"},

	{"server.host", "SERVER_HOST", ""},
	{"server.port", "SERVER_PORT", 5000},
	{"server.read_timeout", "SERVER_READ_TIMEOUT", 15},
	{"server.write_timeout", "SERVER_WRITE_TIMEOUT", 30},
	{"server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT", 30},

	{"database.driver", "DB_DRIVER", "pgx"},
	{"database.host", "DB_HOST", "localhost"},
	{"database.port", "DB_PORT", 5432},
	{"database.username", "DB_USERNAME", "postgres"},
	{"database.password", "DB_PASSWORD", ""},
	{"database.database", "DB_DATABASE", "reliefhub"},
	{"database.ssl_mode", "DB_SSL_MODE", "disable"},
	{"database.max_conns", "DB_MAX_CONNS", 10},
	{"database.idle_conns", "DB_IDLE_CONNS", 2},
	{"database.auto_migrate", "DB_AUTO_MIGRATE", true},

	{"redis.host", "REDIS_HOST", "localhost"},
	{"redis.port", "REDIS_PORT", 6379},
	{"redis.password", "REDIS_PASSWORD", ""},
	{"redis.db", "REDIS_DB", 0},
	{"redis.pool_size", "REDIS_POOL_SIZE", 10},
	{"redis.phone_index_ttl", "REDIS_PHONE_INDEX_TTL", 0},

	{"nsq.address", "NSQ_ADDRESS", ""},

	{"sms.api_key", "VONAGE_API_KEY", ""},
	{"sms.api_secret", "VONAGE_API_SECRET", ""},
	{"sms.from", "VONAGE_FROM", constants.DefaultSMSFrom},
	{"sms.base_url", "VONAGE_BASE_URL", constants.DefaultSMSBaseURL},
	{"sms.default_country_code", "SMS_DEFAULT_COUNTRY_CODE", constants.DefaultCountryCode},
	{"sms.timeout", "SMS_TIMEOUT", 10},

	{"webhook.signature_secret", "VONAGE_SIGNATURE_SECRET", ""},

	{"match.nearest_k", "MATCH_NEAREST_K", 5},
	{"match.max_candidates", "MATCH_MAX_CANDIDATES", 10},
	{"match.notify_limit", "MATCH_NOTIFY_LIMIT", 5},

	{"logger.level", "LOG_LEVEL", "info"},
	{"logger.file_path", "LOG_FILE_PATH", ""},

	{"cors.allow_origins", "CORS_ALLOW_ORIGINS", "*"},

	{"rate_limit.requests", "RATE_LIMIT_REQUESTS", 20},
	{"rate_limit.period", "RATE_LIMIT_PERIOD", 60},

	{"api_key.keys", "OPERATOR_API_KEYS", ""},
}

// InitConfig loads the dotenv file in local environments, then an optional
// YAML file named by CONFIG_FILE, with environment variables taking precedence.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	v := newViper()
	if file := os.Getenv("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("Warning: failed to read config file %s: %v", file, err)
		}
	}

	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, b := range bindings {
		v.SetDefault(b.key, b.def)
		_ = v.BindEnv(b.key, b.env)
	}
	return v
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("app.name")
	configs.App.Environment = v.GetString("app.env")
	configs.App.Debug = getBool(v, "app.debug")
	configs.App.Version = v.GetString("app.version")

	configs.Server.Host = v.GetString("server.host")
	configs.Server.Port = getInt(v, "server.port")
	configs.Server.ReadTimeout = getInt(v, "server.read_timeout")
	configs.Server.WriteTimeout = getInt(v, "server.write_timeout")
	configs.Server.ShutdownTimeout = getInt(v, "server.shutdown_timeout")

	configs.Database.Driver = v.GetString("database.driver")
	configs.Database.Host = v.GetString("database.host")
	configs.Database.Port = getInt(v, "database.port")
	configs.Database.Username = v.GetString("database.username")
	configs.Database.Password = v.GetString("database.password")
	configs.Database.Database = v.GetString("database.database")
	configs.Database.SSLMode = v.GetString("database.ssl_mode")
	configs.Database.MaxConns = getInt(v, "database.max_conns")
	configs.Database.IdleConns = getInt(v, "database.idle_conns")
	configs.Database.AutoMigrate = getBool(v, "database.auto_migrate")

	configs.Redis.Host = v.GetString("redis.host")
	configs.Redis.Port = getInt(v, "redis.port")
	configs.Redis.Password = v.GetString("redis.password")
	configs.Redis.DB = getInt(v, "redis.db")
	configs.Redis.PoolSize = getInt(v, "redis.pool_size")
	configs.Redis.PhoneIndexTTL = getInt(v, "redis.phone_index_ttl")

	configs.NSQ.Address = v.GetString("nsq.address")

	configs.SMS.APIKey = v.GetString("sms.api_key")
	configs.SMS.APISecret = v.GetString("sms.api_secret")
	configs.SMS.From = v.GetString("sms.from")
	configs.SMS.BaseURL = strings.TrimRight(v.GetString("sms.base_url"), "/")
	configs.SMS.DefaultCountryCode = v.GetString("sms.default_country_code")
	configs.SMS.Timeout = getInt(v, "sms.timeout")

	configs.Webhook.SignatureSecret = v.GetString("webhook.signature_secret")

	configs.Match.NearestK = getPositiveInt(v, "match.nearest_k")
	configs.Match.MaxCandidates = getPositiveInt(v, "match.max_candidates")
	configs.Match.NotifyLimit = getPositiveInt(v, "match.notify_limit")

	configs.Logger.Level = v.GetString("logger.level")
	configs.Logger.FilePath = v.GetString("logger.file_path")

	configs.CORS.AllowOrigins = getStringSlice(v, "cors.allow_origins")

	configs.RateLimit.Requests = getInt(v, "rate_limit.requests")
	configs.RateLimit.Period = getPositiveInt(v, "rate_limit.period")

	configs.APIKey.Keys = getStringSlice(v, "api_key.keys")

	return configs
}

// GetEnv returns the environment variable or defaultValue when unset
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultOf(key string) interface{} {
	for _, b := range bindings {
		if b.key == key {
			return b.def
		}
	}
	return nil
}

func getInt(v *viper.Viper, key string) int {
	defaultValue, _ := defaultOf(key).(int)
	valueStr := strings.TrimSpace(v.GetString(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getPositiveInt(v *viper.Viper, key string) int {
	value := getInt(v, key)
	if value <= 0 {
		defaultValue, _ := defaultOf(key).(int)
		log.Printf("Warning: Non-positive value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getBool(v *viper.Viper, key string) bool {
	defaultValue, _ := defaultOf(key).(bool)
	valueStr := strings.TrimSpace(v.GetString(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

func getStringSlice(v *viper.Viper, key string) []string {
	var parts []string
	switch raw := v.Get(key).(type) {
	case string:
		parts = strings.Split(raw, ",")
	default:
		parts = v.GetStringSlice(key)
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
