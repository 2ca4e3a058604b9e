// Package chain provides a fluent wrapper around Result[Values]
// for building synchronous chains of callables.
//
// A failed stage short-circuits every later stage; a done context turns the
// chain into a cancelled result before the next stage runs.
//
// Key operations:
// - Start/FromValue: begin a chain from a Values tuple or a single value
// - Then: run a callable over the current values
// - ThenRef: read keys out of the current primary value
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
