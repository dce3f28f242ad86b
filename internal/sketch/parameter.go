package sketch

// ParamDef is the payload stored in the parameter table: a single scalar
// value, freely mutated by both the caller and the solver.
//
// Fixed supplements spec.md (grounded on the original's per-parameter
// `status`/PARAMMODE_DISABLED field, see SPEC_FULL.md): a fixed parameter
// stays alive and evaluable, but the linker excludes it from the Jacobian
// column set, so the solver never adjusts it. The default, Fixed == false,
// reproduces spec.md's semantics exactly — every live parameter is a
// solver-adjustable column.
type ParamDef struct {
	Value float64
	Fixed bool
}
