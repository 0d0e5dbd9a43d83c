package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	// DefaultAPIToken is only accepted outside production
	DefaultAPIToken = "dev-token"

	GoalStoreMemory   = "memory"
	GoalStorePostgres = "postgres"

	// CoinDesk publishes the rate as a formatted string, e.g. "97,421.3012"
	DefaultPriceURL          = "https://api.coindesk.com/v1/bpi/currentprice.json"
	DefaultPriceJSONPath     = "$.bpi.USD.rate"
	DefaultPriceTimeJSONPath = "$.time.updatedISO"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	GRPCAddr string
	APIToken string
	APIUser  string
	Env      string
	LogLevel string

	// Storage
	GoalStore string
	DBConnStr string
	SeedDemo  bool

	Price PriceConfig
}

// PriceConfig holds the price feed settings
type PriceConfig struct {
	URL             string
	JSONPath        string
	TimeJSONPath    string // optional; the fetch time is used when empty
	RefreshInterval time.Duration
	RateLimit       float64 // requests per second
	Baseline        float64 // 0 means change is measured against the previous sample
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	interval, err := getDuration("PRICE_REFRESH_INTERVAL", 30*time.Second)
	if err != nil {
		return nil, err
	}
	rateLimit, err := getFloat("PRICE_RATE_LIMIT", 1)
	if err != nil {
		return nil, err
	}
	baseline, err := getFloat("PRICE_BASELINE", 0)
	if err != nil {
		return nil, err
	}
	seed, err := getBool("SEED_DEMO", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		GRPCAddr:  getEnv("GRPC_ADDR", ":8080"),
		APIToken:  getEnv("API_TOKEN", DefaultAPIToken),
		APIUser:   getEnv("API_USER", "demo"),
		Env:       getEnv("ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		GoalStore: getEnv("GOAL_STORE", GoalStoreMemory),
		DBConnStr: dbConnStr(),
		SeedDemo:  seed,
		Price: PriceConfig{
			URL:             getEnv("PRICE_URL", DefaultPriceURL),
			JSONPath:        getEnv("PRICE_JSONPATH", DefaultPriceJSONPath),
			TimeJSONPath:    os.Getenv("PRICE_TIME_JSONPATH"),
			RefreshInterval: interval,
			RateLimit:       rateLimit,
			Baseline:        baseline,
		},
	}
	if _, set := os.LookupEnv("PRICE_TIME_JSONPATH"); !set {
		cfg.Price.TimeJSONPath = DefaultPriceTimeJSONPath
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	if c.GRPCAddr == "" {
		return fmt.Errorf("GRPC_ADDR is required")
	}
	if c.APIUser == "" {
		return fmt.Errorf("API_USER is required")
	}
	if c.IsProduction() && c.APIToken == DefaultAPIToken {
		return fmt.Errorf("API_TOKEN must be set in production")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.GoalStore != GoalStoreMemory && c.GoalStore != GoalStorePostgres {
		return fmt.Errorf("GOAL_STORE must be %q or %q, got %q", GoalStoreMemory, GoalStorePostgres, c.GoalStore)
	}
	if c.Price.URL == "" {
		return fmt.Errorf("PRICE_URL is required")
	}
	if c.Price.JSONPath == "" {
		return fmt.Errorf("PRICE_JSONPATH is required")
	}
	if c.Price.RefreshInterval <= 0 {
		return fmt.Errorf("PRICE_REFRESH_INTERVAL must be positive")
	}
	if c.Price.RateLimit <= 0 {
		return fmt.Errorf("PRICE_RATE_LIMIT must be positive")
	}
	if c.Price.Baseline < 0 {
		return fmt.Errorf("PRICE_BASELINE cannot be negative")
	}
	return nil
}

// dbConnStr prefers DB_CONN_STR and otherwise builds the string from the
// individual DB_* variables (Docker friendly)
func dbConnStr() string {
	if s := os.Getenv("DB_CONN_STR"); s != "" {
		return s
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "nestegg"),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
