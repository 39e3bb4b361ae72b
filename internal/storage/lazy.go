package storage

import (
	"context"
	"fmt"
	"sync"
)

// Lazy подключение к хранилищу, которое устанавливается при первом обращении
// и переиспользуется всё время жизни процесса. Неудачная попытка не запоминается.
type Lazy[H any] struct {
	mu     sync.Mutex
	dial   func(ctx context.Context) (H, error)
	close  func(ctx context.Context, h H) error
	handle H
	ready  bool
}

func NewLazy[H any](dial func(ctx context.Context) (H, error), close func(ctx context.Context, h H) error) *Lazy[H] {
	return &Lazy[H]{dial: dial, close: close}
}

// Get возвращает готовое подключение, при необходимости устанавливая его.
// Конкурентные первые вызовы подключаются один раз.
func (l *Lazy[H]) Get(ctx context.Context) (H, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ready {
		return l.handle, nil
	}

	h, err := l.dial(ctx)
	if err != nil {
		var zero H
		return zero, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	l.handle = h
	l.ready = true

	return h, nil
}

// Reset закрывает подключение, следующий Get подключится заново
func (l *Lazy[H]) Reset(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.ready {
		return nil
	}

	h := l.handle

	var zero H
	l.handle = zero
	l.ready = false

	if l.close == nil {
		return nil
	}

	return l.close(ctx, h)
}
