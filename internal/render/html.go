package render

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"log/slog"
	"os"

	"newspage/internal/domain"
)

// Шаблон страницы фиксированный; стили и favicon лежат рядом с файлом
// и не являются частью генерации.
const (
	htmlHeader = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta http-equiv="X-UA-Compatible" content="ie=edge">
  <title>sfeed</title>
  <link rel="stylesheet" href="./style.css">
  <link rel="icon" href="./favicon.ico" type="image/x-icon">
</head>
<body>
`

	htmlFooter = "\n</body></html>"

	listOpen  = "  <ul>\n"
	listClose = "  </ul>"
)

// displayDateLayout - формат даты, видимый на странице.
const displayDateLayout = "2006-01-02"

// HTMLRenderer сериализует отсортированную ленту в статическую HTML-страницу.
// При выключенном экранировании вывод побайтово совпадает со страницей
// прежнего генератора; экранирование включается конфигурацией для лент,
// которым нельзя доверять.
type HTMLRenderer struct {
	log    *slog.Logger
	escape bool
}

// NewHTMLRenderer создает рендерер страницы.
func NewHTMLRenderer(log *slog.Logger, escape bool) *HTMLRenderer {
	return &HTMLRenderer{
		log:    log.With(slog.String("component", "renderer")),
		escape: escape,
	}
}

// Render записывает полный HTML-документ в w.
// Для пустой ленты записывается валидная страница с пустым списком.
func (r *HTMLRenderer) Render(w io.Writer, feed domain.NewsFeed) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(htmlHeader)
	bw.WriteString(listOpen)
	for _, item := range feed {
		date := item.PublishedAt.Format(displayDateLayout)
		link := item.Link
		title := item.Title
		if r.escape {
			link = html.EscapeString(link)
			title = html.EscapeString(title)
		}
		fmt.Fprintf(bw, "    <li><span> %s</span> <a href=\"%s\">%s</a></li>\n", date, link, title)
	}
	bw.WriteString(listClose)
	bw.WriteString(htmlFooter)

	return bw.Flush()
}

// WriteFile рендерит ленту и перезаписывает файл страницы по указанному пути.
func (r *HTMLRenderer) WriteFile(path string, feed domain.NewsFeed) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}

	if err := r.Render(f, feed); err != nil {
		f.Close()
		return fmt.Errorf("failed to render news page: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", path, err)
	}

	r.log.Info(
		"News page written",
		slog.String("path", path),
		slog.Int("count", len(feed)),
	)

	return nil
}
