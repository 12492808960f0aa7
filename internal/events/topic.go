// Package events provides typed publish/subscribe topics.
// Each topic keeps its own listener list; listeners receive the context value
// they registered with plus the published payload.
package events

// Type names an event kind for logging and metrics.
type Type string

// Handler receives the subscriber's context value and the event payload.
type Handler[P any] func(ctx any, payload P)

type listener[P any] struct {
	ctx any
	fn  Handler[P]
}

// Topic is an append-only listener list for one event kind.
// It is not safe for concurrent use; a topic belongs to a single session loop.
type Topic[P any] struct {
	kind      Type
	listeners []listener[P]
}

// NewTopic creates an empty topic for the given event kind.
func NewTopic[P any](kind Type) *Topic[P] {
	return &Topic[P]{kind: kind}
}

// Kind returns the event kind of the topic.
func (t *Topic[P]) Kind() Type {
	return t.kind
}

// Subscribe appends a listener. The ctx value is handed back on every publish.
func (t *Topic[P]) Subscribe(ctx any, fn Handler[P]) {
	if fn == nil {
		return
	}
	t.listeners = append(t.listeners, listener[P]{ctx: ctx, fn: fn})
}

// Publish calls every listener in subscription order.
func (t *Topic[P]) Publish(payload P) {
	// Listeners added while publishing only see later events
	current := t.listeners
	for _, l := range current {
		l.fn(l.ctx, payload)
	}
}

// Clear removes all listeners.
func (t *Topic[P]) Clear() {
	t.listeners = nil
}

// Len returns the number of registered listeners.
func (t *Topic[P]) Len() int {
	return len(t.listeners)
}

// Signal is a topic for events that carry no payload.
type Signal = Topic[struct{}]

// NewSignal creates an empty payload-less topic.
func NewSignal(kind Type) *Signal {
	return NewTopic[struct{}](kind)
}

// Fire publishes a payload-less event.
func Fire(s *Signal) {
	s.Publish(struct{}{})
}
