package capture

import (
	"time"

	"github.com/google/uuid"
)

// Chain owns a subject together with the result of the most recent step.
// The result is overwritten on every step; earlier results are discarded.
type Chain[T, R any] struct {
	id        uuid.UUID
	createdAt time.Time
	subject   T
	result    R
}

// Start calls f with subject and begins a chain capturing f's result.
// The subject is passed by value, so f cannot mutate it.
func Start[T, R any](subject T, f func(T) R) Chain[T, R] {
	return Chain[T, R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		subject:   subject,
		result:    f(subject),
	}
}

// StartMut calls f with a pointer to subject and begins a chain
// capturing f's result. f may mutate the subject in place.
func StartMut[T, R any](subject T, f func(*T) R) Chain[T, R] {
	r := f(&subject)
	return Chain[T, R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		subject:   subject,
		result:    r,
	}
}

// Then calls f with the current subject and replaces the captured
// result with f's result
func Then[T, R, Next any](c Chain[T, R], f func(T) Next) Chain[T, Next] {
	return Chain[T, Next]{
		id:        c.id,
		createdAt: c.createdAt,
		subject:   c.subject,
		result:    f(c.subject),
	}
}

// ThenMut calls f with a pointer to the current subject and replaces
// the captured result with f's result. Mutations are visible to every
// later step.
func ThenMut[T, R, Next any](c Chain[T, R], f func(*T) Next) Chain[T, Next] {
	r := f(&c.subject)
	return Chain[T, Next]{
		id:        c.id,
		createdAt: c.createdAt,
		subject:   c.subject,
		result:    r,
	}
}

// Result returns the most recent step's result
func (c Chain[T, R]) Result() R {
	return c.result
}

// Value returns the current subject
func (c Chain[T, R]) Value() T {
	return c.subject
}

// Unpack returns the current subject and the most recent step's result
func (c Chain[T, R]) Unpack() (T, R) {
	return c.subject, c.result
}

func (c Chain[T, R]) Id() uuid.UUID {
	return c.id
}

func (c Chain[T, R]) CreatedAt() time.Time {
	return c.createdAt
}
