package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("HIREBOARD_API_BASE_URL", "https://api.example.com")
	t.Setenv("HIREBOARD_SESSION_SECRET", "secret")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/", cfg.APIBaseURL)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdle)
	assert.Equal(t, 20, cfg.FeedSize)
}

func TestParseMissingBaseURL(t *testing.T) {
	t.Setenv("HIREBOARD_API_BASE_URL", "")
	t.Setenv("HIREBOARD_SESSION_SECRET", "secret")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HIREBOARD_API_BASE_URL")
}

func TestParseRejectsBadPageSize(t *testing.T) {
	t.Setenv("HIREBOARD_API_BASE_URL", "https://api.example.com/")
	t.Setenv("HIREBOARD_SESSION_SECRET", "secret")
	t.Setenv("HIREBOARD_PAGE_SIZE", "0")

	_, err := Parse()
	assert.Error(t, err)
}
