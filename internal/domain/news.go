package domain

import "time"

// RawFeedItem представляет одну запись промежуточного JSON-файла.
// Поля заданы контрактом внешнего конвертера; неизвестные поля игнорируются.
type RawFeedItem struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	DatePublished string `json:"date_published"`
}

// FeedDocument представляет промежуточный структурированный файл целиком.
type FeedDocument struct {
	Items []RawFeedItem `json:"items"`
}

// NewsItem представляет новость, прошедшую парсинг и фильтр свежести.
// Неизменяема после создания; живёт только в течение одного запуска.
type NewsItem struct {
	Title       string
	Link        string
	PublishedAt time.Time
}

// NewsFeed - упорядоченная последовательность новостей одного запуска.
type NewsFeed []NewsItem
