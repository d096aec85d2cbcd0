package direct

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mmcdole/gofeed"

	"newspage/internal/datetime"
	"newspage/internal/domain"
)

// Converter собирает промежуточный JSON-файл из сырых файлов каталога лент.
// Файлы разбираются как RSS или Atom; метки времени приводятся к строгому
// формату, который ожидает экстрактор.
type Converter struct {
	parser     *gofeed.Parser
	feedsDir   string
	resultPath string
	log        *slog.Logger
}

// NewConverter создает конвертер лент.
func NewConverter(feedsDir, resultPath string, log *slog.Logger) *Converter {
	return &Converter{
		parser:     gofeed.NewParser(),
		feedsDir:   feedsDir,
		resultPath: resultPath,
		log:        log.With(slog.String("component", "converter")),
	}
}

// Convert реализует метод интерфейса usecase.FeedConverter.
// Нечитаемый файл ленты пропускается; ошибка возвращается, когда не
// удалось разобрать ни одного файла и собрать документ не из чего.
func (c *Converter) Convert(ctx context.Context) error {
	entries, err := os.ReadDir(c.feedsDir)
	if err != nil {
		return fmt.Errorf("failed to read feeds directory %s: %w", c.feedsDir, err)
	}

	doc := domain.FeedDocument{Items: []domain.RawFeedItem{}}
	parsedCount := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(c.feedsDir, entry.Name())
		items, err := c.convertFile(path)
		if err != nil {
			c.log.Warn(
				"could not parse feed file, skipping",
				slog.String("file", path),
				slog.Any("error", err),
			)
			continue
		}

		doc.Items = append(doc.Items, items...)
		parsedCount++
	}

	if parsedCount == 0 {
		return fmt.Errorf("%w: no readable feed files in %s", domain.ErrNoFeedData, c.feedsDir)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode intermediate document: %w", err)
	}
	if err := os.WriteFile(c.resultPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result file %s: %w", c.resultPath, err)
	}

	c.log.Info(
		"Feeds converted",
		slog.Int("files", parsedCount),
		slog.Int("items", len(doc.Items)),
		slog.String("result", c.resultPath),
	)
	return nil
}

func (c *Converter) convertFile(path string) ([]domain.RawFeedItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	feed, err := c.parser.Parse(f)
	if err != nil {
		return nil, err
	}

	items := make([]domain.RawFeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		items = append(items, domain.RawFeedItem{
			Title:         item.Title,
			URL:           item.Link,
			DatePublished: publishedString(item),
		})
	}
	return items, nil
}

// publishedString форматирует дату публикации записи в строгом формате.
// Когда даты публикации нет, берется дата обновления; запись вовсе без
// дат получает пустую строку и будет отброшена экстрактором.
func publishedString(item *gofeed.Item) string {
	switch {
	case item.PublishedParsed != nil:
		return item.PublishedParsed.UTC().Format(datetime.PublishedLayout)
	case item.UpdatedParsed != nil:
		return item.UpdatedParsed.UTC().Format(datetime.PublishedLayout)
	default:
		return ""
	}
}
