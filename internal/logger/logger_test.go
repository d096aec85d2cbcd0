package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevelDispatcherHandler_RoutesByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	log := slog.New(NewLevelDispatcherHandler(&out, &errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log.Info("regular message")
	log.Error("failure message")

	assert.Contains(t, out.String(), "regular message")
	assert.NotContains(t, out.String(), "failure message")
	assert.Contains(t, errOut.String(), "failure message")
	assert.NotContains(t, errOut.String(), "regular message")
}

func TestReadableHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewReadableHandler(&buf, nil))

	log.Info("Feeds converted",
		slog.String("component", "converter"),
		slog.String("op", "Convert"),
		slog.Int("files", 3),
	)

	line := buf.String()
	assert.Contains(t, line, "INFO [converter] (Convert)")
	assert.Contains(t, line, "Feeds converted | files=3")
}

func TestReadableHandler_FormatsErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewReadableHandler(&buf, nil))

	log.Warn("could not parse", slog.Any("error", errors.New("boom")))

	assert.Contains(t, buf.String(), `error="boom"`)
}

func TestReadableHandler_RoundsDuration(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewReadableHandler(&buf, nil))

	log.Info("done", slog.Duration("duration", 1500*time.Millisecond+123*time.Microsecond))

	assert.Contains(t, buf.String(), "duration=1.5s")
}

func TestReadableHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewReadableHandler(&buf, nil)).With(
		slog.String("component", "pipeline"),
		slog.String("run_id", "abc123"),
	)

	log.Info("Starting run")

	assert.Contains(t, buf.String(), "[pipeline]")
	assert.Contains(t, buf.String(), "run_id=abc123")
}

func TestReadableHandler_AddSource(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewReadableHandler(&buf, &slog.HandlerOptions{AddSource: true}))

	log.Info("with source")

	assert.Contains(t, buf.String(), "<logger_test.go:")
}

func TestReadableHandler_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewReadableHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	log.Info("quiet")
	log.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestReadableHandler_ShortensLongURL(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewReadableHandler(&buf, nil))

	log.Info("fetching", slog.String("url", "https://news.example.com/feeds/long/path/segments/article-archive.xml"))

	assert.Contains(t, buf.String(), "url=https://news.example.com/...")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("verbose"))
}
