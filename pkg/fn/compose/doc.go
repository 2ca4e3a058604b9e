// Package compose builds new callables out of existing ones.
//
// The full Values tuple returned by one stage becomes the full argument list
// of the next, so multiple results are threaded without narrowing.
//
// Highlights:
// - RCompose: left-to-right composition
// - Compose: conventional right-to-left composition
// - Pipe/PipeMulti: feed a scalar or a tuple through a chain of stages
// - Trace: identity stage that logs the values flowing through it
package compose
