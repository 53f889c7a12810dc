// Package capture provides the result-capturing variant of package
// chain: every step's return value is retained on the wrapper and
// overwritten by the next step.
//
// Capture requires each step to produce a typed result. Steps that
// return nothing belong in package chain, which keeps no runtime
// representation of a result at all.
//
// Key operations:
// - Start/StartMut: begin a chain with the first step's result
// - Then/ThenMut: run a step and replace the captured result
// - Result: the most recent step's result
// - Value/Unpack: the subject, or subject and result together
//
// The chain identity (Id, CreatedAt) is assigned at Start and survives
// every step, including steps that change the result type.
package capture
