package usecase

import "context"

// FeedFetcher определяет интерфейс сборщика лент.
// Реализация наполняет каталог лент, по одному файлу на источник.
// Частичный или полный сбой сбора не считается фатальным для запуска.
type FeedFetcher interface {
	Fetch(ctx context.Context) error
}

// FeedConverter определяет интерфейс конвертера лент.
// Реализация читает файлы каталога лент и записывает единый промежуточный
// JSON-файл с массивом items.
type FeedConverter interface {
	Convert(ctx context.Context) error
}
