package viewport

// Events is a synchronous scroll-notification source. It is owned by a single event loop
// and is not safe for concurrent use.
type Events struct {
	next      int
	listeners map[int]func()
	order     []int
}

// Subscribe adds fn and returns its removal function.
func (e *Events) Subscribe(fn func()) func() {
	if e.listeners == nil {
		e.listeners = map[int]func(){}
	}
	id := e.next
	e.next++
	e.listeners[id] = fn
	e.order = append(e.order, id)
	return func() {
		if _, ok := e.listeners[id]; !ok {
			return
		}
		delete(e.listeners, id)
		for i, v := range e.order {
			if v == id {
				e.order = append(e.order[:i], e.order[i+1:]...)
				break
			}
		}
	}
}

// Emit runs every listener in subscription order.
func (e *Events) Emit() {
	for _, id := range append([]int(nil), e.order...) {
		if fn, ok := e.listeners[id]; ok {
			fn()
		}
	}
}

// Len returns the number of live listeners.
func (e *Events) Len() int { return len(e.listeners) }
