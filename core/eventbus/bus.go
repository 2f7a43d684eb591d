// Package eventbus provides the synchronous in-process emitter shared by the
// timeline and its charts.
package eventbus

import (
	"errors"
	"fmt"
)

// MaxDepth bounds nested emission. Handlers may emit while being dispatched,
// but a chain deeper than this is treated as a feedback loop.
const MaxDepth = 64

// ErrRecursionLimit is the panic value (wrapped) raised when MaxDepth is exceeded.
var ErrRecursionLimit = errors.New("event recursion limit exceeded")

// Event is delivered to every handler registered for Name.
type Event struct {
	Name    string
	Payload any
}

// Handler receives an emitted event.
type Handler func(Event)

// Bus dispatches events synchronously, in registration order.
//
// Nested emission is depth-first: an Emit called from inside a handler runs to
// completion before the outer dispatch continues. The handler list is
// snapshotted when an emission starts, so handlers registered during dispatch
// only observe later emissions.
//
// A Bus is not safe for concurrent use; every widget instance owns its own.
type Bus struct {
	handlers map[string][]Handler
	depth    int
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// On registers fn for the named event.
func (b *Bus) On(name string, fn Handler) {
	if fn == nil {
		return
	}
	b.handlers[name] = append(b.handlers[name], fn)
}

// Emit invokes every handler for name before returning.
func (b *Bus) Emit(name string, payload any) {
	list := b.handlers[name]
	if len(list) == 0 {
		return
	}

	if b.depth >= MaxDepth {
		panic(fmt.Errorf("%w: %q nested %d deep", ErrRecursionLimit, name, b.depth))
	}

	snapshot := make([]Handler, len(list))
	copy(snapshot, list)

	b.depth++
	defer func() { b.depth-- }()

	ev := Event{Name: name, Payload: payload}
	for _, fn := range snapshot {
		fn(ev)
	}
}

// Relay re-emits every listed event of src on dst under the same name and payload.
func Relay(src, dst *Bus, names ...string) {
	for _, name := range names {
		name := name
		src.On(name, func(ev Event) { dst.Emit(name, ev.Payload) })
	}
}

// Count returns the number of handlers registered for name.
func (b *Bus) Count(name string) int {
	return len(b.handlers[name])
}

// Reset drops all handlers.
func (b *Bus) Reset() {
	b.handlers = make(map[string][]Handler)
}
