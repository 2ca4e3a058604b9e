// Package ref implements a generic read accessor over a closed set of
// container kinds.
//
// Container is a sealed union: Seq, Mapping, Bytes, Text, Object and Func.
// Wrap classifies a plain Go value into one of them and Ref dispatches a
// (possibly chained) lookup over the result. Nothing here mutates the
// container it reads from.
package ref
