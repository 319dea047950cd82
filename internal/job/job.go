// Handles cancellation of long-running jobs such as downloads
package job

import (
	"context"
	"sync"
	"sync/atomic"
)

// CancelListener is invoked once when a job gets cancelled
type CancelListener func()

// Context lets a running job observe cancellation requests
type Context interface {
	// reports whether cancellation has been requested
	IsCancelled() bool
	// registers a listener fired once on cancellation, replacing any previous one.
	// nil removes the current listener
	SetCancelListener(listener CancelListener)
}

// Token is a Context that can be cancelled by its owner
type Token struct {
	cancelled atomic.Bool
	done      chan struct{}

	mu       sync.Mutex
	listener CancelListener
}

// New creates a token that is not cancelled
func New() *Token {
	return &Token{
		done: make(chan struct{}),
	}
}

// FromContext creates a token that gets cancelled when ctx is done.
// The returned stop function detaches the token from ctx.
func FromContext(ctx context.Context) (*Token, func()) {
	t := New()
	stop := context.AfterFunc(ctx, t.Cancel)
	return t, func() { stop() }
}

// Cancel requests cancellation. Only the first call has an effect.
func (t *Token) Cancel() {
	t.mu.Lock()
	if t.cancelled.Load() {
		t.mu.Unlock()
		return
	}
	t.cancelled.Store(true)
	close(t.done)
	listener := t.listener
	t.mu.Unlock()

	if listener != nil {
		listener()
	}
}

// IsCancelled reports whether Cancel was called
func (t *Token) IsCancelled() bool {
	return t.cancelled.Load()
}

// Done is closed when the token gets cancelled
func (t *Token) Done() <-chan struct{} {
	return t.done
}

// SetCancelListener registers listener. If the token is already cancelled the
// listener fires right away.
func (t *Token) SetCancelListener(listener CancelListener) {
	t.mu.Lock()
	t.listener = listener
	fire := listener != nil && t.cancelled.Load()
	t.mu.Unlock()

	if fire {
		listener()
	}
}
