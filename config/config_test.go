package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RECORD_SOURCE", "")
	t.Setenv("SF_API_VERSION", "")
	t.Setenv("RECENT_WINDOW_DAYS", "")

	c := FromEnv()

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, SourceSalesforce, c.RecordSource)
	assert.Equal(t, "v60.0", c.SFAPIVersion)
	assert.Equal(t, 30, c.RecentWindowDays)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RECORD_SOURCE", SourceMariaDB)
	t.Setenv("SF_ACCESS_TOKEN", "tok")
	t.Setenv("RECENT_WINDOW_DAYS", "7")
	t.Setenv("APP_ENV", "development")

	c := FromEnv()

	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, SourceMariaDB, c.RecordSource)
	assert.Equal(t, "tok", c.SFAccessToken)
	assert.Equal(t, 7, c.RecentWindowDays)
	assert.True(t, c.IsDevelopment())
}

func TestFromEnv_IgnoresBadWindow(t *testing.T) {
	t.Setenv("RECENT_WINDOW_DAYS", "-3")
	assert.Equal(t, 30, FromEnv().RecentWindowDays)

	t.Setenv("RECENT_WINDOW_DAYS", "abc")
	assert.Equal(t, 30, FromEnv().RecentWindowDays)
}
