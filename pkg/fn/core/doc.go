// Package core carries per-call configuration of the prelude in a
// context.Context: the structured logger, the error classifier and the trace
// switch read by compose.Trace and chain. It defines no combinators itself.
package core
