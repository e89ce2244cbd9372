package bootstrap

import (
	"sync"
	"time"
)

// Limiter ограничивает количество запросов по ключу (адрес клиента).
type Limiter interface {
	IsLimited(key string) bool
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

// FixedWindowLimiter — фиксированное окно: max запросов за window на ключ.
// Счетчики живут только в памяти процесса и сбрасываются при рестарте.
// Устаревшие ключи не вычищаются — для редкого bootstrap-эндпоинта это
// осознанный компромисс ради O(1) на запрос без фоновой уборки.
type FixedWindowLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	now     func() time.Time
	entries map[string]*windowEntry
}

func NewFixedWindowLimiter(max int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		max:     max,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*windowEntry),
	}
}

func (l *FixedWindowLimiter) IsLimited(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.entries[key]
	if !ok || now.After(entry.resetAt) {
		l.entries[key] = &windowEntry{count: 1, resetAt: now.Add(l.window)}
		return false
	}
	if entry.count >= l.max {
		return true
	}
	entry.count++
	return false
}
