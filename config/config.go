package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"camerashop-be/internal/database"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Config struct {
	Env            string
	Port           string
	GRPCHealthPort string
	DB             DB
	JWT            JWT
	Shipping       Shipping
	Redis          Redis
	Kafka          Kafka
	LowStock       LowStock
}

type DB struct {
	database.Config
}

type JWT struct {
	Secret   string
	Issuer   string
	Audience string
}

type Shipping struct {
	FlatFee       decimal.Decimal
	FreeThreshold decimal.Decimal
}

type Redis struct {
	Enabled        bool
	Addr           string
	Password       string
	DB             int
	IdempotencyTTL time.Duration
}

type Kafka struct {
	Enabled bool
	Brokers []string
	Topic   string
}

type LowStock struct {
	Threshold int
	Interval  time.Duration
}

func (c *Config) IsDev() bool { return c.Env == "development" }

func Load(log *zap.Logger) *Config {
	cfg := &Config{
		Env:            getEnvDefault("ENV", "production"),
		Port:           getEnvDefault("APP_PORT", ":8080"),
		GRPCHealthPort: os.Getenv("GRPC_HEALTH_PORT"),
		DB: DB{
			Config: database.Config{
				Host:     getEnv("DB_HOST", log),
				Port:     getEnv("DB_PORT", log),
				User:     getEnv("DB_USER", log),
				Password: getEnv("DB_PASSWORD", log),
				Name:     getEnv("DB_NAME", log),
				SSLMode:  getEnvDefault("DB_SSLMODE", "disable"),
			},
		},
		Shipping: Shipping{
			FlatFee:       decimalDefault(os.Getenv("SHIPPING_FLAT_FEE"), 30000),
			FreeThreshold: decimalDefault(os.Getenv("SHIPPING_FREE_THRESHOLD"), 500000),
		},
		Redis: Redis{
			Enabled: boolDefault(os.Getenv("REDIS_ENABLED"), false),
		},
		Kafka: Kafka{
			Enabled: boolDefault(os.Getenv("KAFKA_ENABLED"), false),
		},
		LowStock: LowStock{
			Threshold: atoiDefault(os.Getenv("LOW_STOCK_THRESHOLD"), 10),
			Interval:  durationDefault(os.Getenv("LOW_STOCK_INTERVAL"), time.Hour),
		},
	}

	cfg.JWT = JWT{
		Secret:   getEnv("JWT_ACCESS_SECRET", log),
		Issuer:   os.Getenv("JWT_ISSUER"),
		Audience: os.Getenv("JWT_AUDIENCE"),
	}

	if cfg.Redis.Enabled {
		cfg.Redis.Addr = getEnv("REDIS_ADDR", log)
		cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
		cfg.Redis.DB = atoiDefault(os.Getenv("REDIS_DB"), 0)
		cfg.Redis.IdempotencyTTL = durationDefault(os.Getenv("IDEMPOTENCY_TTL"), 24*time.Hour)
	}

	if cfg.Kafka.Enabled {
		cfg.Kafka.Brokers = splitAndTrim(getEnv("KAFKA_BROKERS", log))
		cfg.Kafka.Topic = getEnvDefault("KAFKA_TOPIC_ORDERS", "orders")
	}

	return cfg
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return def
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func boolDefault(s string, def bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}

// durationDefault accepts Go durations plus a "d" suffix for days, e.g. "7d".
func durationDefault(s string, def time.Duration) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return def
		}
		return time.Duration(days) * 24 * time.Hour
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func decimalDefault(s string, def int64) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.NewFromInt(def)
	}
	return d
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
