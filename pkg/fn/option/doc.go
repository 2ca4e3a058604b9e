// Package option provides Option[T], a value that is either present or
// absent. A present false, zero or nil is still present.
//
// Highlights:
// - Present/Absent/FromPair: construct an Option
// - IsPresent/Get/OrElse/MustGet: observe it
// - Map/FlatMap: transform a present value
// - When/IfAll/IfLet2: run code only when every captured value is present
package option
