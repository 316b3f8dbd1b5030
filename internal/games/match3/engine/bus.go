package engine

// Listener receives engine events.
type Listener interface {
	HandleEvent(ev Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(ev Event)

// HandleEvent calls f(ev).
func (f ListenerFunc) HandleEvent(ev Event) {
	f(ev)
}

// Subscription identifies a registered listener.
type Subscription uint64

type subscriber struct {
	id Subscription
	l  Listener
}

// Bus dispatches events synchronously to listeners in subscription order.
type Bus struct {
	next Subscription
	subs []subscriber
}

// NewBus creates a bus with no listeners.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers l and returns its subscription.
func (b *Bus) Subscribe(l Listener) Subscription {
	b.next++
	b.subs = append(b.subs, subscriber{id: b.next, l: l})
	return b.next
}

// Unsubscribe removes a listener. It reports whether s was registered.
func (b *Bus) Unsubscribe(s Subscription) bool {
	for i, sub := range b.subs {
		if sub.id == s {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered listeners.
func (b *Bus) Len() int {
	return len(b.subs)
}

// Publish delivers ev to every listener registered when Publish was called.
// Listeners may subscribe or unsubscribe while handling an event; the change
// applies from the next Publish.
func (b *Bus) Publish(ev Event) {
	subs := b.subs
	for _, sub := range subs {
		sub.l.HandleEvent(ev)
	}
}
