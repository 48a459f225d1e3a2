// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    DecodeFailEvery: 100, // sample: ~every 100th decode failure
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	layout := acctlayout.Struct("reserve", fields...).WithHooks(hooks)
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/acctlayout"
)

// Hooks forwards events to inner on background workers. Events are dropped
// when the queue is full so codec calls never block.
type Hooks struct {
	inner acctlayout.Hooks
	q     chan func()
	wg    sync.WaitGroup

	mu     sync.RWMutex // guards closed and the close of q
	closed bool
}

var _ acctlayout.Hooks = (*Hooks)(nil)

func New(inner acctlayout.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events reported after
// Close are dropped.
func (h *Hooks) Close() {
	h.mu.Lock()
	if !h.closed {
		h.closed = true
		close(h.q)
	}
	h.mu.Unlock()
	h.wg.Wait()
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) FieldDecodeFailed(layout, field string, offset int, err error) {
	h.try(func() { h.inner.FieldDecodeFailed(layout, field, offset, err) })
}
func (h *Hooks) FieldEncodeFailed(layout, field string, err error) {
	h.try(func() { h.inner.FieldEncodeFailed(layout, field, err) })
}
func (h *Hooks) TrailingBytes(layout string, extra int) {
	h.try(func() { h.inner.TrailingBytes(layout, extra) })
}
func (h *Hooks) PayloadRejected(size, limit int) {
	h.try(func() { h.inner.PayloadRejected(size, limit) })
}
