package logger

import "sync"

// Subscriber receives the formatted line for every message delivered on EventPort.
//
// A Subscriber is called with the Logger's dispatch lock held, and that lock
// is not re-entrant: calling Log (or any wrapper) on the same Logger from
// inside a Subscriber blocks forever. Hand the line to another goroutine,
// or log through a different Logger, instead.
type Subscriber func(line string)

// SubscriptionID identifies a registered Subscriber. IDs are never reused; zero is invalid.
type SubscriptionID uint64

type subscription struct {
	id SubscriptionID
	fn Subscriber
}

// eventHub is the observer list behind EventPort. It has its own lock so
// subscribers may subscribe or unsubscribe while a dispatch is running.
type eventHub struct {
	mu   sync.RWMutex
	subs []subscription
	last SubscriptionID
}

func (h *eventHub) subscribe(fn Subscriber) SubscriptionID {
	if fn == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last++
	h.subs = append(h.subs, subscription{id: h.last, fn: fn})
	return h.last
}

func (h *eventHub) unsubscribe(id SubscriptionID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, s := range h.subs {
		if s.id == id {
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return true
		}
	}
	return false
}

func (h *eventHub) len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// publish calls every subscriber in registration order. A panicking
// subscriber is passed to onPanic and delivery continues with the next one.
func (h *eventHub) publish(line string, onPanic func(SubscriptionID, any)) {
	h.mu.RLock()
	subs := h.subs
	h.mu.RUnlock()

	for _, s := range subs {
		deliver(s, line, onPanic)
	}
}

func deliver(s subscription, line string, onPanic func(SubscriptionID, any)) {
	defer func() {
		if r := recover(); r != nil {
			onPanic(s.id, r)
		}
	}()
	s.fn(line)
}
