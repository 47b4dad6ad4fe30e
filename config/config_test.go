package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDurationDefault(t *testing.T) {
	assert.Equal(t, 7*24*time.Hour, durationDefault("7d", time.Hour))
	assert.Equal(t, 90*time.Second, durationDefault("90s", time.Hour))
	assert.Equal(t, time.Hour, durationDefault("", time.Hour))
	assert.Equal(t, time.Hour, durationDefault("xd", time.Hour))
	assert.Equal(t, time.Hour, durationDefault("soon", time.Hour))
}

func TestScalarDefaults(t *testing.T) {
	assert.Equal(t, 5, atoiDefault("5", 1))
	assert.Equal(t, 1, atoiDefault("five", 1))
	assert.True(t, boolDefault("true", false))
	assert.False(t, boolDefault("maybe", false))
	assert.True(t, decimalDefault("25000.5", 0).Equal(decimal.RequireFromString("25000.5")))
	assert.True(t, decimalDefault("", 30000).Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, []string{"a:9092", "b:9092"}, splitAndTrim(" a:9092, ,b:9092 "))
	assert.Nil(t, splitAndTrim(""))
}

func setRequired(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "shop")
	t.Setenv("DB_PASSWORD", "shop")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
}

func TestLoad(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "development")
	t.Setenv("SHIPPING_FREE_THRESHOLD", "1000000")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("LOW_STOCK_INTERVAL", "30m")
	for _, k := range []string{"APP_PORT", "SHIPPING_FLAT_FEE", "KAFKA_TOPIC_ORDERS", "REDIS_ENABLED", "LOW_STOCK_THRESHOLD"} {
		t.Setenv(k, "")
	}

	cfg := Load(zap.NewNop())
	require.NotNil(t, cfg)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, ":8080", cfg.Port)
	assert.True(t, cfg.Shipping.FlatFee.Equal(decimal.NewFromInt(30000)))
	assert.True(t, cfg.Shipping.FreeThreshold.Equal(decimal.NewFromInt(1000000)))
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "orders", cfg.Kafka.Topic)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10, cfg.LowStock.Threshold)
	assert.Equal(t, 30*time.Minute, cfg.LowStock.Interval)
}

func TestLoad_PanicsWithoutRequired(t *testing.T) {
	if _, ok := os.LookupEnv("REDIS_ADDR"); ok {
		t.Skip("REDIS_ADDR is set in the environment")
	}
	setRequired(t)
	t.Setenv("REDIS_ENABLED", "true")
	assert.Panics(t, func() { Load(zap.NewNop()) })
}
