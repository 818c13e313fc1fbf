package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Document store. STORE_BACKEND is "firestore" or "mongo".
	StoreBackend            string `mapstructure:"STORE_BACKEND"`
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	DatabaseURL             string `mapstructure:"DATABASE_URL"`
	MongoDatabase           string `mapstructure:"MONGO_DATABASE"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Processed-payout cache. Optional: the store check alone carries idempotency.
	EnableProcessedCache bool          `mapstructure:"ENABLE_PROCESSED_CACHE"`
	ProcessedCacheTTL    time.Duration `mapstructure:"PROCESSED_CACHE_TTL"`

	// Payout ledgering.
	DeveloperAccountID string `mapstructure:"DEVELOPER_ACCOUNT_ID"`
	DefaultCurrency    string `mapstructure:"DEFAULT_CURRENCY"`

	// Trigger delivery.
	TriggerToken            string `mapstructure:"TRIGGER_TOKEN"`
	EnableHTTPTrigger       bool   `mapstructure:"ENABLE_HTTP_TRIGGER"`
	EnableQueueWorker       bool   `mapstructure:"ENABLE_QUEUE_WORKER"`
	EnableFirestoreListener bool   `mapstructure:"ENABLE_FIRESTORE_LISTENER"`
	QueueConcurrency        int    `mapstructure:"QUEUE_CONCURRENCY"`
}

const (
	StoreFirestore = "firestore"
	StoreMongo     = "mongo"

	// DefaultDeveloperAccountID is used when no developer account secret is supplied.
	DefaultDeveloperAccountID = "developer_account"
)

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 600)
	v.SetDefault("STORE_BACKEND", StoreFirestore)
	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "quickfix")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("ENABLE_PROCESSED_CACHE", false)
	v.SetDefault("PROCESSED_CACHE_TTL", 24*time.Hour)
	v.SetDefault("DEVELOPER_ACCOUNT_ID", DefaultDeveloperAccountID)
	v.SetDefault("DEFAULT_CURRENCY", "INR")
	v.SetDefault("TRIGGER_TOKEN", "")
	v.SetDefault("ENABLE_HTTP_TRIGGER", true)
	v.SetDefault("ENABLE_QUEUE_WORKER", false)
	v.SetDefault("ENABLE_FIRESTORE_LISTENER", false)
	v.SetDefault("QUEUE_CONCURRENCY", 10)
}

// Load reads configuration from config.yaml (current or ./config directory)
// and the environment into a Config.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	// An empty secret still falls back to the literal account id.
	if cfg.DeveloperAccountID == "" {
		cfg.DeveloperAccountID = DefaultDeveloperAccountID
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
