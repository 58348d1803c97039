package listview

import (
	"context"
	"sync"
)

// Generation identifies one issued fetch for a view.
type Generation uint64

// Loader guards a view's collection against stale responses: every fetch gets
// a generation, and a completion is applied only if no newer fetch has been
// issued since.
type Loader[T any] struct {
	mu     sync.Mutex
	latest Generation
}

// Begin registers a new fetch and returns its generation.
func (l *Loader[T]) Begin() Generation {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.latest++
	return l.latest
}

// Latest reports whether the given generation is still the most recent fetch.
func (l *Loader[T]) Latest(gen Generation) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return gen == l.latest
}

// Load runs fetch asynchronously and invokes apply with the result only when
// the fetch is still the latest one; stale completions are discarded. The
// returned channel closes once the fetch has completed (applied or not).
func (l *Loader[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error), apply func([]T, error)) <-chan struct{} {
	gen := l.Begin()
	done := make(chan struct{})
	go func() {
		defer close(done)
		records, err := fetch(ctx)
		l.mu.Lock()
		stale := gen != l.latest
		l.mu.Unlock()
		if stale {
			return
		}
		apply(records, err)
	}()
	return done
}
