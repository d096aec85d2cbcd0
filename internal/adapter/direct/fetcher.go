package direct

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"newspage/internal/config"
)

// Fetcher загружает ленты напрямую по HTTP, без внешних утилит.
// Источники опрашиваются последовательно; частота запросов ограничена,
// чтобы не создавать нагрузку на удаленные хосты. Каждый источник
// сохраняется отдельным файлом в каталоге лент.
type Fetcher struct {
	client   *http.Client
	limiter  *rate.Limiter
	sources  []config.FeedSource
	feedsDir string
	log      *slog.Logger
}

// NewFetcher создает HTTP-сборщик лент с ограничением частоты запросов.
func NewFetcher(sources []config.FeedSource, feedsDir string, rps float64, log *slog.Logger) *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: 20 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
		sources:  sources,
		feedsDir: feedsDir,
		log:      log.With(slog.String("component", "fetcher")),
	}
}

// Fetch реализует метод интерфейса usecase.FeedFetcher.
// Сбой отдельного источника логируется и не прерывает сбор остальных;
// ошибка возвращается только когда не удалось сохранить ни один источник.
func (f *Fetcher) Fetch(ctx context.Context) error {
	start := time.Now()

	if err := os.MkdirAll(f.feedsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create feeds directory %s: %w", f.feedsDir, err)
	}

	f.log.Info("Feed fetch started", slog.Int("feed_count", len(f.sources)))

	successCount := 0
	errorCount := 0
	for _, src := range f.sources {
		if err := f.fetchOne(ctx, src); err != nil {
			errorCount++
			f.log.Error(
				"Failed to fetch feed",
				slog.String("feed", src.Name),
				slog.String("url", src.URL),
				slog.Any("error", err),
			)
			continue
		}
		successCount++
	}

	f.log.Info(
		"Feed fetch completed",
		slog.Int("successful", successCount),
		slog.Int("errors", errorCount),
		slog.Int("total", len(f.sources)),
		slog.Duration("duration", time.Since(start)),
	)

	if successCount == 0 && len(f.sources) > 0 {
		return fmt.Errorf("all %d feed sources failed", len(f.sources))
	}
	return nil
}

func (f *Fetcher) fetchOne(ctx context.Context, src config.FeedSource) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for url %s: %w", src.URL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch url %s: %w", src.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d for url %s", resp.StatusCode, src.URL)
	}

	path := filepath.Join(f.feedsDir, src.Name)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create feed file %s: %w", path, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return fmt.Errorf("failed to write feed file %s: %w", path, err)
	}

	return out.Close()
}
