package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"PROCURE_APP_NAME":                os.Getenv("PROCURE_APP_NAME"),
		"PROCURE_APP_ENV":                 os.Getenv("PROCURE_APP_ENV"),
		"PROCURE_APP_PORT":                os.Getenv("PROCURE_APP_PORT"),
		"PROCURE_DATABASE_DRIVER":         os.Getenv("PROCURE_DATABASE_DRIVER"),
		"PROCURE_DATABASE_HOST":           os.Getenv("PROCURE_DATABASE_HOST"),
		"PROCURE_DATABASE_PORT":           os.Getenv("PROCURE_DATABASE_PORT"),
		"PROCURE_DATABASE_USER":           os.Getenv("PROCURE_DATABASE_USER"),
		"PROCURE_DATABASE_PASSWORD":       os.Getenv("PROCURE_DATABASE_PASSWORD"),
		"PROCURE_DATABASE_DBNAME":         os.Getenv("PROCURE_DATABASE_DBNAME"),
		"PROCURE_DATABASE_SSLMODE":        os.Getenv("PROCURE_DATABASE_SSLMODE"),
		"PROCURE_DATABASE_MAX_OPEN_CONNS": os.Getenv("PROCURE_DATABASE_MAX_OPEN_CONNS"),
		"PROCURE_DATABASE_MAX_IDLE_CONNS": os.Getenv("PROCURE_DATABASE_MAX_IDLE_CONNS"),
		"PROCURE_LOCK_MODE":               os.Getenv("PROCURE_LOCK_MODE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "procure-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "procure", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "memory", cfg.Lock.Mode)
	})

	t.Run("loads values from environment variables with PROCURE prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("PROCURE_APP_NAME", "test-app")
		os.Setenv("PROCURE_APP_PORT", "9000")
		os.Setenv("PROCURE_DATABASE_HOST", "testdb.local")
		os.Setenv("PROCURE_DATABASE_PORT", "5433")
		os.Setenv("PROCURE_DATABASE_USER", "testuser")
		os.Setenv("PROCURE_DATABASE_PASSWORD", "testpass")
		os.Setenv("PROCURE_DATABASE_SSLMODE", "require")
		os.Setenv("PROCURE_LOCK_MODE", "redis")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, "redis", cfg.Lock.Mode)
	})

	t.Run("rejects unknown database driver", func(t *testing.T) {
		clearEnv()
		os.Setenv("PROCURE_DATABASE_DRIVER", "oracle")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("rejects unknown lock mode", func(t *testing.T) {
		clearEnv()
		os.Setenv("PROCURE_LOCK_MODE", "zookeeper")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lock.mode")
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("PROCURE_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("PROCURE_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("production requires password, TLS and redis lock", func(t *testing.T) {
		clearEnv()
		os.Setenv("PROCURE_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password")

		os.Setenv("PROCURE_DATABASE_PASSWORD", "secret")
		_, err = Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")

		os.Setenv("PROCURE_DATABASE_SSLMODE", "require")
		_, err = Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lock.mode")

		os.Setenv("PROCURE_LOCK_MODE", "redis")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "svc",
		Password: "p@ss/word",
		DBName:   "procure",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// Special characters must be escaped.
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisConfigAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
