package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"newspage/internal/config"
	"newspage/internal/domain"
	"newspage/internal/extract"
	"newspage/internal/render"
)

// Pipeline выполняет один проход генерации новостной страницы:
// очистка каталога лент, сбор, конвертация, чтение промежуточного файла,
// фильтрация, сортировка и запись готовой страницы.
//
// Фатальны только сбои, после которых страница не может быть собрана:
// невозможность очистить каталог лент, сбой конвертации, нечитаемый
// промежуточный файл и невозможность записать страницу. Сбои сбора и
// отдельные плохие записи логируются и не прерывают запуск.
type Pipeline struct {
	fetcher   FeedFetcher
	converter FeedConverter
	extractor *extract.Extractor
	renderer  *render.HTMLRenderer
	log       *slog.Logger

	feedsDir   string
	resultPath string
	outputPath string
}

// NewPipeline собирает конвейер из коллабораторов и путей конфигурации.
func NewPipeline(
	fetcher FeedFetcher,
	converter FeedConverter,
	extractor *extract.Extractor,
	renderer *render.HTMLRenderer,
	log *slog.Logger,
	cfg config.AppConfig,
) *Pipeline {
	return &Pipeline{
		fetcher:    fetcher,
		converter:  converter,
		extractor:  extractor,
		renderer:   renderer,
		log:        log,
		feedsDir:   cfg.FeedsDir,
		resultPath: cfg.ResultPath,
		outputPath: cfg.OutputPath,
	}
}

// Run выполняет один полный проход конвейера.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	log := p.log.With(
		slog.String("component", "pipeline"),
		slog.String("op", "Run"),
		slog.String("run_id", uuid.NewString()),
	)

	log.Info("Starting news page generation run")

	// Каталог лент удаляется целиком, чтобы записи исчезнувших из
	// конфигурации источников не попали на страницу.
	if err := os.RemoveAll(p.feedsDir); err != nil {
		log.Error(
			"Failed to remove feeds directory",
			slog.String("dir", p.feedsDir),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %v", domain.ErrFeedsDirCleanup, err)
	}

	if err := p.fetcher.Fetch(ctx); err != nil {
		log.Error("Feed fetch failed", slog.Any("error", err))
	}

	if err := p.converter.Convert(ctx); err != nil {
		log.Error("Feed conversion failed", slog.Any("error", err))
		return fmt.Errorf("failed to convert feeds: %w", err)
	}

	doc, err := p.readDocument()
	if err != nil {
		log.Error(
			"Failed to read intermediate file",
			slog.String("path", p.resultPath),
			slog.Any("error", err),
		)
		return err
	}

	feed := p.extractor.Extract(doc)
	extract.SortNewestFirst(feed)

	if err := p.renderer.WriteFile(p.outputPath, feed); err != nil {
		log.Error("Failed to write news page", slog.Any("error", err))
		return err
	}

	log.Info(
		"News page generation run completed",
		slog.Int("records", len(doc.Items)),
		slog.Int("published", len(feed)),
		slog.Duration("duration", time.Since(start)),
	)

	return nil
}

// readDocument читает и декодирует промежуточный JSON-файл.
// Отсутствие поля items не считается ошибкой: документ без записей
// дает пустую страницу.
func (p *Pipeline) readDocument() (domain.FeedDocument, error) {
	data, err := os.ReadFile(p.resultPath)
	if err != nil {
		return domain.FeedDocument{}, fmt.Errorf("failed to read intermediate file %s: %w", p.resultPath, err)
	}

	var doc domain.FeedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.FeedDocument{}, fmt.Errorf("failed to parse JSON from file %s: %w", p.resultPath, err)
	}

	return doc, nil
}
