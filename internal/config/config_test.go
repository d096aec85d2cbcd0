package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, ModeSfeed, cfg.App.FetchMode)
	assert.Equal(t, "sfeed_update", cfg.App.FetchCommand)
	assert.Equal(t, "sfeed_json", cfg.App.ConvertCommand)
	assert.Equal(t, "sfeedrc", cfg.App.SfeedrcPath)
	assert.Equal(t, "feeds", cfg.App.FeedsDir)
	assert.Equal(t, "result.json", cfg.App.ResultPath)
	assert.Equal(t, "public/index.html", cfg.App.OutputPath)
	assert.Equal(t, "96h", cfg.App.RetentionWindow)
	assert.False(t, cfg.App.EscapeHTML)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"logger": {"level": "debug"},
		"app": {
			"fetch_mode": "direct",
			"feeds_dir": "work/feeds",
			"retention_window": "48h",
			"escape_html": true,
			"feed_sources": [{"name": "example", "url": "https://example.com/rss"}],
			"fetch_rps": 0.5
		}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, ModeDirect, cfg.App.FetchMode)
	assert.Equal(t, "work/feeds", cfg.App.FeedsDir)
	assert.Equal(t, "48h", cfg.App.RetentionWindow)
	assert.True(t, cfg.App.EscapeHTML)
	require.Len(t, cfg.App.FeedSources, 1)
	assert.Equal(t, "example", cfg.App.FeedSources[0].Name)
	assert.Equal(t, 0.5, cfg.App.FetchRPS)

	assert.Equal(t, "result.json", cfg.App.ResultPath)
	assert.Equal(t, "public/index.html", cfg.App.OutputPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app": {"feeds_dir": "from-file"}}`), 0o644))

	t.Setenv("NEWSPAGE_FEEDS_DIR", "from-env")
	t.Setenv("NEWSPAGE_OUTPUT_PATH", "out/page.html")
	t.Setenv("NEWSPAGE_RETENTION_WINDOW", "24h")
	t.Setenv("NEWSPAGE_LOG_LEVEL", "warn")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.FeedsDir)
	assert.Equal(t, "out/page.html", cfg.App.OutputPath)
	assert.Equal(t, "24h", cfg.App.RetentionWindow)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app": `), 0o644))

	cfg, err := Load(path)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	cfg := New()

	assert.NoError(t, cfg.Validate())
}

func TestValidate_SfeedModeRequiresCommands(t *testing.T) {
	cfg := New()
	cfg.App.FetchCommand = ""

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.fetch_command is not set")
}

func TestValidate_UnknownFetchMode(t *testing.T) {
	cfg := New()
	cfg.App.FetchMode = "ftp"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown app.fetch_mode")
}

func TestValidate_DirectModeRequiresSources(t *testing.T) {
	cfg := New()
	cfg.App.FetchMode = ModeDirect

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.feed_sources must not be empty")
}

func TestValidate_DirectModeRejectsBadSource(t *testing.T) {
	cfg := New()
	cfg.App.FetchMode = ModeDirect
	cfg.App.FeedSources = []FeedSource{{Name: "bad", URL: "not a url"}}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid url in app.feed_sources")

	cfg.App.FeedSources = []FeedSource{{Name: "", URL: "https://example.com/rss"}}
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feed name cannot be empty")

	cfg.App.FeedSources = []FeedSource{{Name: "a/b", URL: "https://example.com/rss"}}
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not contain path separators")
}

func TestValidate_DirectModeRequiresPositiveRPS(t *testing.T) {
	cfg := New()
	cfg.App.FetchMode = ModeDirect
	cfg.App.FeedSources = []FeedSource{{Name: "example", URL: "https://example.com/rss"}}
	cfg.App.FetchRPS = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.fetch_rps must be a positive number")
}

func TestValidate_RetentionWindow(t *testing.T) {
	cfg := New()
	cfg.App.RetentionWindow = "4 days"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid app.retention_window")

	cfg.App.RetentionWindow = "-96h"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestAppConfig_Window(t *testing.T) {
	cfg := New()

	assert.Equal(t, 96*time.Hour, cfg.App.Window())

	cfg.App.RetentionWindow = "1h30m"
	assert.Equal(t, 90*time.Minute, cfg.App.Window())

	cfg.App.RetentionWindow = "nonsense"
	assert.Equal(t, 4*24*time.Hour, cfg.App.Window())
}
