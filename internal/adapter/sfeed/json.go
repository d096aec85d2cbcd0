package sfeed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"newspage/internal/domain"
)

// JSONRunner запускает внешнюю команду конвертации (sfeed_json).
// Команда получает все файлы каталога лент и печатает единый JSON-документ,
// который перенаправляется в промежуточный файл.
type JSONRunner struct {
	command    string
	feedsDir   string
	resultPath string
	log        *slog.Logger
}

// NewJSONRunner создает конвертер на основе внешней команды.
func NewJSONRunner(command, feedsDir, resultPath string, log *slog.Logger) *JSONRunner {
	return &JSONRunner{
		command:    command,
		feedsDir:   feedsDir,
		resultPath: resultPath,
		log:        log.With(slog.String("component", "converter")),
	}
}

// Convert реализует метод интерфейса usecase.FeedConverter.
// Пустой каталог лент фатален: без входных файлов команде нечего
// конвертировать и страница не может быть собрана.
func (r *JSONRunner) Convert(ctx context.Context) error {
	files, err := filepath.Glob(filepath.Join(r.feedsDir, "*"))
	if err != nil {
		return fmt.Errorf("failed to list feed files in %s: %w", r.feedsDir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no files in %s", domain.ErrNoFeedData, r.feedsDir)
	}

	out, err := os.Create(r.resultPath)
	if err != nil {
		return fmt.Errorf("failed to create result file %s: %w", r.resultPath, err)
	}

	cmd := exec.CommandContext(ctx, r.command, files...)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		out.Close()
		return fmt.Errorf("failed to run %s: %w", r.command, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close result file %s: %w", r.resultPath, err)
	}

	r.log.Info(
		"Feeds converted",
		slog.String("command", r.command),
		slog.Int("files", len(files)),
		slog.String("result", r.resultPath),
	)
	return nil
}
