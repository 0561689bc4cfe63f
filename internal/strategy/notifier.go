package strategy

// Notifier dispatches change callbacks synchronously, in subscription order.
// It is not safe for concurrent use.
type Notifier struct {
	nextID    int
	listeners []listener
}

type listener struct {
	id int
	fn func()
}

// OnChange registers fn and returns a function that unregisters it.
func (n *Notifier) OnChange(fn func()) (unsubscribe func()) {
	n.nextID++
	id := n.nextID
	n.listeners = append(n.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// listenerCount returns the number of registered callbacks.
func (n *Notifier) listenerCount() int {
	return len(n.listeners)
}

func (n *Notifier) notify() {
	// Snapshot so callbacks may unsubscribe while being dispatched.
	listeners := append([]listener(nil), n.listeners...)
	for _, l := range listeners {
		l.fn()
	}
}
