// Package sketch is the solver core: it owns the parameter, entity and
// constraint tables, the linker that keeps their derivative trees in sync,
// and the Gauss-Newton solver that drives every constraint residual toward
// zero.
package sketch

import "github.com/mvparker810/free-form/slottable"

// ParamHandle, EntityHandle and ConstraintHandle are (index, generation)
// handles into the sketch's three tables. They compare equal by value
// (structural (index, generation) comparison), matching spec §6.
type (
	ParamHandle      = slottable.Handle
	EntityHandle     = slottable.Handle
	ConstraintHandle = slottable.Handle
)

// InvalidHandle is the sentinel handle that never matches any live slot in
// any of the three tables.
var InvalidHandle = slottable.Invalid
