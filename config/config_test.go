package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "PAGE_SIZE", "REPORT_DAILY_LIMIT", "GO_ENV", "MONGODB_DB", "CLOUDINARY_CLOUD_NAME"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, 20, cfg.ReportDailyLimit)
	assert.Equal(t, "civicsync", cfg.MongoDB)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.CloudinaryEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PAGE_SIZE", "10")
	t.Setenv("GO_ENV", "production")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	cfg := Load()
	assert.Equal(t, 10, cfg.PageSize)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.CloudinaryEnabled())
}

func TestLoad_InvalidIntegerFallsBack(t *testing.T) {
	t.Setenv("PAGE_SIZE", "many")
	t.Setenv("REPORT_DAILY_LIMIT", "-1")

	cfg := Load()
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, 20, cfg.ReportDailyLimit)
}
