package contact

// Signal is a synchronous publish/subscribe stream for one event kind.
// Handlers run in registration order on the goroutine that emits. The zero
// value is ready to use.
type Signal[T any] struct {
	nextID   int
	handlers []signalHandler[T]
}

type signalHandler[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers a handler and returns an id for Unsubscribe.
func (s *Signal[T]) Subscribe(fn func(T)) int {
	s.nextID++
	s.handlers = append(s.handlers, signalHandler[T]{id: s.nextID, fn: fn})
	return s.nextID
}

// Unsubscribe detaches the handler with the given id. Unknown ids are
// ignored.
func (s *Signal[T]) Unsubscribe(id int) {
	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
			return
		}
	}
}

func (s *Signal[T]) emit(v T) {
	for _, h := range s.handlers {
		h.fn(v)
	}
}
