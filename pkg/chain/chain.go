package chain

import (
	"time"

	"github.com/google/uuid"
)

// Chain owns a subject value and threads it through a sequence of calls.
type Chain[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	subject   T
}

// Start creates a new chain owning subject
func Start[T any](subject T) Chain[T] {
	return Chain[T]{
		subject:   subject,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Chain calls f with the current subject and threads the subject forward.
// The subject is passed by value, so f cannot mutate it. A nil f is a no-op.
func (c Chain[T]) Chain(f func(T)) Chain[T] {
	if f != nil {
		f(c.subject)
	}
	return c
}

// ChainMut calls f with a pointer to the current subject. Mutations are
// visible to every later step. A nil f is a no-op.
func (c Chain[T]) ChainMut(f func(*T)) Chain[T] {
	if f != nil {
		f(&c.subject)
	}
	return c
}

func (c Chain[T]) Value() T {
	return c.subject
}

func (c Chain[T]) Id() uuid.UUID {
	return c.id
}

func (c Chain[T]) CreatedAt() time.Time {
	return c.createdAt
}
