// Package chain provides a fluent wrapper for calling a sequence of
// functions on a single value.
//
// A Chain[T] owns its subject and moves it from step to step, so the
// whole sequence runs synchronously on the call stack with no aliasing.
// A panic inside any step unwinds the chain immediately; later steps
// do not run.
//
// Key operations:
// - Start: begin a chain from a value
// - Chain/ChainMut: run a step by value or through a pointer
// - Tee/TeeMut: run a step whose return value is discarded
// - Apply: run mutating steps over a value without the wrapper
//
// The package keeps no representation of a step's return value. To
// pick up the last step's result, see package capture.
package chain
