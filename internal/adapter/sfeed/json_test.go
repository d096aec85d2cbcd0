package sfeed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newspage/internal/domain"
)

func TestJSONRunner_Convert_WritesCommandOutput(t *testing.T) {
	dir := t.TempDir()
	feedsDir := filepath.Join(dir, "feeds")
	resultPath := filepath.Join(dir, "result.json")
	require.NoError(t, os.MkdirAll(feedsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(feedsDir, "alpha"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(feedsDir, "beta"), []byte("b"), 0o644))

	r := NewJSONRunner("echo", feedsDir, resultPath, discardLogger())

	err := r.Convert(context.Background())

	require.NoError(t, err)

	data, err := os.ReadFile(resultPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), filepath.Join(feedsDir, "alpha"))
	assert.Contains(t, string(data), filepath.Join(feedsDir, "beta"))
}

func TestJSONRunner_Convert_EmptyFeedsDir(t *testing.T) {
	dir := t.TempDir()
	feedsDir := filepath.Join(dir, "feeds")
	require.NoError(t, os.MkdirAll(feedsDir, 0o755))

	r := NewJSONRunner("echo", feedsDir, filepath.Join(dir, "result.json"), discardLogger())

	err := r.Convert(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoFeedData)
	assert.NoFileExists(t, filepath.Join(dir, "result.json"))
}

func TestJSONRunner_Convert_MissingFeedsDir(t *testing.T) {
	dir := t.TempDir()

	r := NewJSONRunner("echo", filepath.Join(dir, "feeds"), filepath.Join(dir, "result.json"), discardLogger())

	err := r.Convert(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoFeedData)
}

func TestJSONRunner_Convert_CommandFails(t *testing.T) {
	dir := t.TempDir()
	feedsDir := filepath.Join(dir, "feeds")
	resultPath := filepath.Join(dir, "result.json")
	require.NoError(t, os.MkdirAll(feedsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(feedsDir, "alpha"), []byte("a"), 0o644))

	r := NewJSONRunner("false", feedsDir, resultPath, discardLogger())

	err := r.Convert(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run false")
}
