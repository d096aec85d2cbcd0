package app

import (
	"context"
	"fmt"
	"log/slog"

	"newspage/internal/adapter/direct"
	"newspage/internal/adapter/sfeed"
	"newspage/internal/config"
	"newspage/internal/extract"
	"newspage/internal/render"
	"newspage/internal/usecase"
)

// App представляет один запуск генератора новостной страницы.
// Собирает коллабораторов выбранного режима сбора, экстрактор и рендерер
// в конвейер и выполняет его единственный проход.
type App struct {
	config   *config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
}

// New создает и инициализирует новый экземпляр приложения.
// По режиму сбора из конфигурации выбирает реализации сборщика и
// конвертера: внешние команды sfeed либо встроенный HTTP-сборщик.
// Возвращает ошибку для неизвестного режима.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	var feedFetcher usecase.FeedFetcher
	var feedConverter usecase.FeedConverter
	switch cfg.App.FetchMode {
	case config.ModeSfeed:
		feedFetcher = sfeed.NewUpdateRunner(cfg.App.FetchCommand, cfg.App.SfeedrcPath, log)
		feedConverter = sfeed.NewJSONRunner(cfg.App.ConvertCommand, cfg.App.FeedsDir, cfg.App.ResultPath, log)
	case config.ModeDirect:
		feedFetcher = direct.NewFetcher(cfg.App.FeedSources, cfg.App.FeedsDir, cfg.App.FetchRPS, log)
		feedConverter = direct.NewConverter(cfg.App.FeedsDir, cfg.App.ResultPath, log)
	default:
		return nil, fmt.Errorf("unknown fetch mode: %s", cfg.App.FetchMode)
	}

	extractor := extract.NewExtractor(log, cfg.App.Window())

	renderer := render.NewHTMLRenderer(log, cfg.App.EscapeHTML)

	pipeline := usecase.NewPipeline(feedFetcher, feedConverter, extractor, renderer, log, cfg.App)

	return &App{
		config:   cfg,
		logger:   log,
		pipeline: pipeline,
	}, nil
}

// Run выполняет один проход генерации и завершается.
// Возвращает ошибку конвейера, если страница не была собрана.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("Starting news page generation",
		slog.String("component", "app"),
		slog.String("fetch_mode", a.config.App.FetchMode),
		slog.String("retention_window", a.config.App.Window().String()),
		slog.String("output", a.config.App.OutputPath),
	)

	if err := a.pipeline.Run(ctx); err != nil {
		return err
	}

	a.logger.Info("News page generation finished", slog.String("component", "app"))
	return nil
}
