package chain

// Tee calls f with the current subject and discards f's result.
// It is a free function because the result type parameter cannot
// live on a method.
func Tee[T, R any](c Chain[T], f func(T) R) Chain[T] {
	if f == nil {
		return c
	}
	f(c.subject)
	return c
}

// TeeMut calls f with a pointer to the current subject and discards
// f's result. Mutations are visible to every later step.
func TeeMut[T, R any](c Chain[T], f func(*T) R) Chain[T] {
	if f == nil {
		return c
	}
	f(&c.subject)
	return c
}

// Apply runs steps over subject in order and returns the final value.
// Nil steps are skipped.
func Apply[T any](subject T, steps ...func(*T)) T {
	for _, step := range steps {
		if step == nil {
			continue
		}
		step(&subject)
	}
	return subject
}
