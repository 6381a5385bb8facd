package form

// Listener is a change-notification subscriber. It takes no arguments and is
// called synchronously after a successful save.
type Listener func()

// Notifier keeps subscribers in registration order.
type Notifier struct {
	listeners []Listener
}

// Subscribe appends l. Nil listeners are ignored.
func (n *Notifier) Subscribe(l Listener) {
	if l == nil {
		return
	}
	n.listeners = append(n.listeners, l)
}

// Notify calls every subscriber once, in the order they subscribed.
func (n *Notifier) Notify() {
	for _, l := range n.listeners {
		l()
	}
}

// Len returns the number of subscribers.
func (n *Notifier) Len() int {
	return len(n.listeners)
}
