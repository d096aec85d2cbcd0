package extract

import (
	"log/slog"
	"sort"
	"time"

	"newspage/internal/datetime"
	"newspage/internal/domain"
)

// Extractor отображает сырые записи промежуточного файла в новости.
// Записи с нечитаемой меткой времени и записи старше окна свежести
// пропускаются; порядок остальных сохраняется.
type Extractor struct {
	log    *slog.Logger
	window time.Duration
	now    func() time.Time
}

// NewExtractor создает экстрактор с заданным окном свежести.
func NewExtractor(log *slog.Logger, window time.Duration) *Extractor {
	return &Extractor{
		log:    log.With(slog.String("component", "extractor")),
		window: window,
		now:    time.Now,
	}
}

// Extract превращает записи промежуточного документа в ленту новостей.
// Граница окна свежести вычисляется один раз на весь вызов, поэтому все
// записи запуска фильтруются относительно одного и того же момента.
func (e *Extractor) Extract(doc domain.FeedDocument) domain.NewsFeed {
	now := e.now()
	feed := make(domain.NewsFeed, 0, len(doc.Items))

	malformedCount := 0
	staleCount := 0
	for _, raw := range doc.Items {
		published, err := datetime.ParsePublished(raw.DatePublished)
		if err != nil {
			malformedCount++
			e.log.Warn(
				"could not parse published date, skipping record",
				slog.String("date_published", raw.DatePublished),
				slog.String("title", raw.Title),
				slog.Any("error", err),
			)
			continue
		}

		if !datetime.IsRecent(published, now, e.window) {
			staleCount++
			e.log.Debug(
				"record is older than retention window, skipping",
				slog.String("title", raw.Title),
				slog.Time("published_at", published),
			)
			continue
		}

		feed = append(feed, domain.NewsItem{
			Title:       raw.Title,
			Link:        raw.URL,
			PublishedAt: published,
		})
	}

	e.log.Info(
		"Extraction completed",
		slog.Int("total", len(doc.Items)),
		slog.Int("published", len(feed)),
		slog.Int("malformed", malformedCount),
		slog.Int("stale", staleCount),
	)

	return feed
}

// SortNewestFirst упорядочивает ленту по убыванию даты публикации.
// Сортировка устойчива: записи с одинаковой датой сохраняют порядок,
// в котором пришли из промежуточного файла.
func SortNewestFirst(feed domain.NewsFeed) {
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].PublishedAt.After(feed[j].PublishedAt)
	})
}
