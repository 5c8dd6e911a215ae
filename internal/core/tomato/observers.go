package tomato

type observer[T any] struct {
	id      uint64
	handler T
}

// observers is an ordered subscriber list. It is not synchronized; the
// Timer guards it with its own mutex.
type observers[T any] struct {
	nextID  uint64
	entries []observer[T]
}

func (list *observers[T]) add(handler T) uint64 {
	list.nextID++
	list.entries = append(list.entries, observer[T]{id: list.nextID, handler: handler})
	return list.nextID
}

func (list *observers[T]) remove(id uint64) {
	for i, entry := range list.entries {
		if entry.id == id {
			list.entries = append(list.entries[:i], list.entries[i+1:]...)
			return
		}
	}
}

func (list *observers[T]) snapshot() []T {
	handlers := make([]T, 0, len(list.entries))
	for _, entry := range list.entries {
		handlers = append(handlers, entry.handler)
	}
	return handlers
}
