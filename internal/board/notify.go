package board

import "github.com/mesh-intelligence/quadboard/pkg/types"

// observer is one Subscribe registration.
type observer struct {
	id int
	fn func(types.Change)
}

// Subscribe registers fn to receive every Change emitted after a successful
// mutation. Observers run in registration order after the board's lock is
// released, so they may read the board. The returned cancel func is
// idempotent.
func (b *Board) Subscribe(fn func(types.Change)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextObserver++
	id := b.nextObserver
	b.observers = append(b.observers, observer{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, o := range b.observers {
			if o.id == id {
				b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
				return
			}
		}
	}
}

// notify delivers c to a snapshot of the current observers. Must be called
// without holding b.mu.
func (b *Board) notify(c types.Change) {
	b.mu.Lock()
	observers := append([]observer(nil), b.observers...)
	b.mu.Unlock()

	for _, o := range observers {
		o.fn(c)
	}
}
