package sketch

import "github.com/mvparker810/free-form/expr"

// MaxConstraintRefs is the maximum number of entity or parameter handles a
// single constraint may carry as metadata (spec §3, "up to 16 entity
// handles + 16 parameter handles").
const MaxConstraintRefs = 16

// ConstraintKind tags what equation template a constraint's Equation came
// from. The core never interprets this value — it is metadata for the
// collaborator library that built the equation (spec §1, §3) — but keeping
// it on the def lets a caller recover "what kind of constraint is this"
// after the fact, and lets this module's own tests build scenario
// constraints via the small template registry in constraintkind.go.
type ConstraintKind string

// ConstraintDef is the value a caller passes to Sketch.AddConstraint: the
// root of an owned expression tree (the residual, solved toward zero) plus
// up to MaxConstraintRefs entity/parameter handles that equation was built
// from. The sketch copies this by value into its slot; Equation's
// ownership transfers to the constraint (spec §6).
type ConstraintDef struct {
	Kind     ConstraintKind
	Equation *expr.Node
	Entities []EntityHandle
	Params   []ParamHandle
}

// Validate reports whether def is structurally acceptable: it has an
// equation and does not exceed the reference-count budget. It does not
// check that referenced handles are alive — that is a solve-time caller
// responsibility (spec §3 global invariants), not an add-time one.
func (def ConstraintDef) Validate() bool {
	if def.Equation == nil {
		return false
	}
	if len(def.Entities) > MaxConstraintRefs || len(def.Params) > MaxConstraintRefs {
		return false
	}
	return true
}

// ConstraintState is the payload stored in the constraint table: the
// caller's definition plus solver-owned state (spec §3). Derivs and
// DerivValues are populated and freed exclusively by the linker (link.go),
// never written directly by a caller.
type ConstraintState struct {
	Def ConstraintDef

	Err         float64      // current residual value
	Derivs      []*expr.Node // per-live-parameter derivative trees, linker-owned
	DerivValues []float64    // per-live-parameter evaluated derivatives
}
