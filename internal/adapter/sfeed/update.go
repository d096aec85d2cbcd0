package sfeed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// UpdateRunner запускает внешнюю команду сбора лент (sfeed_update).
// Команда получает путь к файлу sfeedrc и наполняет каталог лент,
// по одному файлу на источник.
type UpdateRunner struct {
	command     string
	sfeedrcPath string
	log         *slog.Logger
}

// NewUpdateRunner создает сборщик на основе внешней команды.
func NewUpdateRunner(command, sfeedrcPath string, log *slog.Logger) *UpdateRunner {
	return &UpdateRunner{
		command:     command,
		sfeedrcPath: sfeedrcPath,
		log:         log.With(slog.String("component", "fetcher")),
	}
}

// Fetch реализует метод интерфейса usecase.FeedFetcher.
// Вывод команды передается в stdout и stderr процесса, чтобы диагностика
// внешней утилиты оставалась видимой.
func (r *UpdateRunner) Fetch(ctx context.Context) error {
	r.log.Info(
		"Fetching feeds",
		slog.String("command", r.command),
		slog.String("sfeedrc", r.sfeedrcPath),
	)

	cmd := exec.CommandContext(ctx, r.command, r.sfeedrcPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", r.command, err)
	}

	r.log.Info("Feeds fetched", slog.String("command", r.command))
	return nil
}
