package datetime

import (
	"fmt"
	"time"

	"newspage/internal/domain"
)

// PublishedLayout - единственный допустимый формат метки времени публикации.
// Литеральный суффикс Z означает UTC; смещения часовых поясов не поддерживаются.
const PublishedLayout = "2006-01-02T15:04:05Z"

// ParsePublished разбирает метку времени публикации в строгом формате.
// Возвращает момент времени в UTC с точностью до секунды. Для строки,
// не соответствующей формату, возвращается ошибка, оборачивающая
// domain.ErrMalformedTimestamp; вызывающая сторона логирует её и
// пропускает запись, не прерывая запуск.
func ParsePublished(value string) (time.Time, error) {
	// time.Parse принимает дробные секунды, которых нет в шаблоне;
	// проверка длины отсекает их.
	if len(value) != len(PublishedLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrMalformedTimestamp, value)
	}
	t, err := time.Parse(PublishedLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrMalformedTimestamp, value)
	}
	return t, nil
}

// IsRecent сообщает, попадает ли момент публикации в окно свежести.
// Запись отклоняется только если published < now - window; значение
// ровно на границе окна считается свежим.
func IsRecent(published, now time.Time, window time.Duration) bool {
	return !published.Before(now.Add(-window))
}
