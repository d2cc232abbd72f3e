package lock

import (
	"context"
	"sync"
)

// KeyedMutex serializes work per order id within a single process.
// Scopes are created on first use and dropped once no caller holds or
// waits on them.
type KeyedMutex struct {
	mu     sync.Mutex
	scopes map[int64]*scope
}

type scope struct {
	ch   chan struct{}
	refs int
}

// NewKeyedMutex creates a new KeyedMutex
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{scopes: make(map[int64]*scope)}
}

// Lock blocks until the scope for orderID is free or ctx is done. The
// returned release function must be called exactly once.
func (m *KeyedMutex) Lock(ctx context.Context, orderID int64) (func(), error) {
	m.mu.Lock()
	sc, ok := m.scopes[orderID]
	if !ok {
		sc = &scope{ch: make(chan struct{}, 1)}
		m.scopes[orderID] = sc
	}
	sc.refs++
	m.mu.Unlock()

	select {
	case sc.ch <- struct{}{}:
		var once sync.Once
		release := func() {
			once.Do(func() {
				<-sc.ch
				m.unref(orderID, sc)
			})
		}
		return release, nil
	case <-ctx.Done():
		m.unref(orderID, sc)
		return nil, ctx.Err()
	}
}

func (m *KeyedMutex) unref(orderID int64, sc *scope) {
	m.mu.Lock()
	sc.refs--
	if sc.refs == 0 {
		delete(m.scopes, orderID)
	}
	m.mu.Unlock()
}
