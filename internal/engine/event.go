package engine

// ListenerID identifies a subscription so it can be removed later.
type ListenerID int

// Event is a multi-cast event carrying one argument.
type Event[T any] struct {
	nextID    ListenerID
	listeners []listener[T]
}

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// AddListener subscribes fn and returns an id for RemoveListener.
func (e *Event[T]) AddListener(fn func(T)) ListenerID {
	if fn == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: fn})
	return e.nextID
}

func (e *Event[T]) RemoveListener(id ListenerID) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls listeners in subscription order.
func (e *Event[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}
