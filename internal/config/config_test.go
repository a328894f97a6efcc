package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := load(v)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "postgres://postgres:@localhost:5432/senseiiwyze?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, "0 2 * * *", cfg.ReviewSync.CronSchedule)
	assert.Equal(t, 3, cfg.ReviewSync.MaxConcurrentJobs)
	assert.False(t, cfg.ReviewSync.Enabled)
	assert.Empty(t, cfg.Auth.Secret)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.senseiiwyze.com")
	t.Setenv("REVIEW_SYNC_ENABLED", "true")
	t.Setenv("REVIEW_SYNC_CRON", "*/30 * * * *")
	t.Setenv("DATABASE_URL", "db:5432/insights")

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	cfg, err := load(v)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Auth.Secret)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.senseiiwyze.com"}, cfg.Cors.AllowedOrigins)
	assert.True(t, cfg.ReviewSync.Enabled)
	assert.Equal(t, "*/30 * * * *", cfg.ReviewSync.CronSchedule)
	assert.Equal(t, "postgres://postgres:@db:5432/insights", cfg.Database.DSN)
}

func TestLoad_MaxConcurrentJobsFloor(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("REVIEW_SYNC_MAX_CONCURRENT_JOBS", 0)

	cfg, err := load(v)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.ReviewSync.MaxConcurrentJobs)
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{Auth: Auth{Secret: "s3cret"}}).Validate())
}
