package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atomicstack/pkgpick/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrClosed is returned by Next once the handler is stopped and drained.
	ErrClosed = errors.New("event handler closed")
	// ErrSourceTerminated reports a source that returned without being stopped.
	ErrSourceTerminated = errors.New("event source terminated")
)

// Source produces events until ctx is cancelled. Returning before that is
// treated as a failure of the whole handler.
type Source func(ctx context.Context, emit func(Event)) error

// Handler owns an unbounded FIFO of events. Producers never block; the single
// consumer blocks in Next.
type Handler struct {
	mu     sync.Mutex
	queue  []Event
	closed bool
	err    error

	signal chan struct{}
	done   chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHandler starts a handler with a tick source firing every tickRate.
// A non-positive rate disables ticks.
func NewHandler(tickRate time.Duration) *Handler {
	ctx, cancel := context.WithCancel(context.Background())
	h := &Handler{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
	if tickRate > 0 {
		h.AddSource("tick", TickSource(tickRate))
	}
	return h
}

// TickSource emits a tick event every interval.
func TickSource(interval time.Duration) Source {
	return func(ctx context.Context, emit func(Event)) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case now := <-ticker.C:
				emit(TickEvent(now))
			}
		}
	}
}

// AddSource runs src in its own goroutine until the handler stops.
func (h *Handler) AddSource(name string, src Source) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		err := src(h.ctx, func(ev Event) { h.push(ev) })
		if h.ctx.Err() != nil {
			return
		}
		if err == nil {
			err = ErrSourceTerminated
		}
		events.Source.Failed(name, err)
		h.Fail(fmt.Errorf("%s source: %w", name, err))
	}()
}

// Send enqueues an application command.
func (h *Handler) Send(cmd Command) {
	if h.push(AppEvent(cmd)) {
		events.Command.Queue(cmd.String())
	}
}

// Input enqueues a raw key press.
func (h *Handler) Input(key tea.KeyMsg) {
	h.push(InputEvent(key))
}

// Next blocks until an event is available and returns it. Events queued
// before the handler closed are still delivered; after that the close
// reason is returned.
func (h *Handler) Next(ctx context.Context) (Event, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		h.mu.Lock()
		if len(h.queue) > 0 {
			ev := h.queue[0]
			h.queue[0] = Event{}
			h.queue = h.queue[1:]
			h.mu.Unlock()
			return ev, nil
		}
		if h.closed {
			err := h.err
			h.mu.Unlock()
			if err == nil {
				err = ErrClosed
			}
			return Event{}, err
		}
		h.mu.Unlock()

		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case <-h.signal:
		case <-h.done:
		}
	}
}

// Len reports the number of queued events.
func (h *Handler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.queue)
}

// Fail closes the handler with err. The first close reason wins.
func (h *Handler) Fail(err error) {
	if err == nil {
		err = ErrSourceTerminated
	}
	h.close(err)
}

// Stop closes the handler and cancels every source. Use Wait to block until
// the source goroutines have exited.
func (h *Handler) Stop() {
	h.close(nil)
}

// Wait blocks until all source goroutines have exited.
func (h *Handler) Wait() {
	h.wg.Wait()
}

func (h *Handler) close(err error) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.err = err
	h.mu.Unlock()
	h.cancel()
	close(h.done)
}

func (h *Handler) push(ev Event) bool {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false
	}
	h.queue = append(h.queue, ev)
	h.mu.Unlock()
	select {
	case h.signal <- struct{}{}:
	default:
	}
	return true
}
