package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DevelopmentDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/portfolio?sslmode=disable")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("STORAGE_DRIVER", "local")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "postgres://u:p@db:5432/portfolio?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, developmentAdminPassword, cfg.AdminPassword)
	assert.Equal(t, int64(16), cfg.MaxUploadSizeMB)
	assert.Equal(t, StorageLocal, cfg.Storage.Driver)
	assert.True(t, cfg.RunMigrations)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, time.Minute, cfg.RateLimitPeriod)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.AllowedOrigins)
}

func TestLoad_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("STORAGE_DRIVER", "local")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("CORS_ALLOWED_ORIGINS", " https://example.com , https://*.vercel.app ,")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com", "https://*.vercel.app"}, cfg.AllowedOrigins)
}

func TestLoad_MinIORequiresCredentials(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("STORAGE_DRIVER", "MinIO")
	t.Setenv("MINIO_ACCESS_KEY_ID", "")
	t.Setenv("MINIO_SECRET_ACCESS_KEY", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("MINIO_ACCESS_KEY_ID", "key")
	t.Setenv("MINIO_SECRET_ACCESS_KEY", "secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageMinIO, cfg.Storage.Driver)
	assert.Equal(t, "portfolio-uploads", cfg.Storage.MinIO.Bucket)
}

func TestGetDatabaseURL_FromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRESQL_HOST", "pg")
	t.Setenv("POSTGRESQL_USER", "portfolio")
	t.Setenv("POSTGRESQL_PASSWORD", "p@ss")
	t.Setenv("POSTGRESQL_DBNAME", "site")

	assert.Equal(t, "postgres://portfolio:p%40ss@pg:5432/site?sslmode=disable", getDatabaseURL())
}
