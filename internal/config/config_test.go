package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "*", cfg.CORSOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("PORT", "9090")
	t.Setenv("APPLE_BUNDLE_ID", "com.lunarcommerce.storefront")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "com.lunarcommerce.storefront", cfg.AppleBundleID)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "lunar",
		DBPassword: "pw",
		DBName:     "lunar_db",
		DBSSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal user=lunar password=pw dbname=lunar_db port=5433 sslmode=require TimeZone=UTC",
		cfg.DSN())
}
