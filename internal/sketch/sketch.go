package sketch

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/mvparker810/free-form/expr"
	"github.com/mvparker810/free-form/slottable"
)

// Sketch owns the three generational tables plus the solver's scratch
// buffers, and tracks whether those buffers are stale with respect to the
// current set of live constraints/parameters.
type Sketch struct {
	Params      *slottable.Table[ParamDef]
	Entities    *slottable.Table[EntityDef]
	Constraints *slottable.Table[ConstraintState]

	linkOutdated bool
	names        map[string]ParamHandle // set by AddNamedParam, read by NamedParam

	// scratch, valid only between a link() and the next mutation; see
	// freeToBaseState and link.go.
	normalMatrix         []float64 // R*R, column-major: N[r + c*R]
	intermediateSolution []float64 // R
	cachedParams         []float64 // C; reserved scratch, unused by Solve (see link.go)
	liveConstraints      []*ConstraintState
	liveParams           []*ParamDef
}

// New returns an empty Sketch with the given initial table capacities.
func New(paramCap, entityCap, constraintCap int) *Sketch {
	return &Sketch{
		Params:       slottable.NewTable[ParamDef](paramCap),
		Entities:     slottable.NewTable[EntityDef](entityCap),
		Constraints:  slottable.NewTable[ConstraintState](constraintCap),
		linkOutdated: true,
	}
}

// AddParam creates a new parameter and returns its handle, or InvalidHandle
// if the parameter table is at capacity.
func (sk *Sketch) AddParam(def ParamDef) ParamHandle {
	h := sk.Params.Create(def)
	if h != InvalidHandle {
		sk.linkOutdated = true
	}
	return h
}

// DeleteParam destroys the parameter addressed by h. Returns false if h did
// not match a live parameter.
func (sk *Sketch) DeleteParam(h ParamHandle) bool {
	ok := sk.Params.Destroy(h)
	if ok {
		sk.linkOutdated = true
	}
	return ok
}

// GetParam returns a mutable pointer to the parameter addressed by h, or
// nil if h does not match a live parameter.
func (sk *Sketch) GetParam(h ParamHandle) *ParamDef {
	return sk.Params.Get(h)
}

// AddNamedParam creates a parameter from prm and records its handle under
// prm.N for later lookup via NamedParam, the way msolid's model Init
// functions resolve a fun.Prms list by name instead of by position.
func (sk *Sketch) AddNamedParam(prm *fun.Prm, fixed bool) ParamHandle {
	h := sk.AddParam(ParamDef{Value: prm.V, Fixed: fixed})
	if h != InvalidHandle && prm.N != "" {
		if sk.names == nil {
			sk.names = make(map[string]ParamHandle)
		}
		sk.names[prm.N] = h
	}
	return h
}

// NamedParam resolves a parameter previously registered under name by
// AddNamedParam. ok is false if name was never registered.
func (sk *Sketch) NamedParam(name string) (h ParamHandle, ok bool) {
	h, ok = sk.names[name]
	return h, ok
}

// GetParamConst returns a copy of the parameter addressed by h.
func (sk *Sketch) GetParamConst(h ParamHandle) (ParamDef, bool) {
	return sk.Params.GetConst(h)
}

// resolveKind reports whether h resolves to a live entity of the given kind.
func (sk *Sketch) resolveKind(h EntityHandle, kind EntityKind) bool {
	e := sk.Entities.Get(h)
	return e != nil && e.Kind == kind
}

// AddEntity validates def (kind in range, required handles present, and —
// per spec §3 — Line/Circle/Arc references resolve to live Point entities)
// and, if valid, creates it. Returns InvalidHandle on any validation
// failure.
func (sk *Sketch) AddEntity(def EntityDef) EntityHandle {
	if def.Kind < Point || def.Kind > Arc {
		return InvalidHandle
	}
	if !def.Validate() {
		return InvalidHandle
	}
	switch def.Kind {
	case Line:
		if !sk.resolveKind(def.P1, Point) || !sk.resolveKind(def.P2, Point) {
			return InvalidHandle
		}
	case Circle:
		if !sk.resolveKind(def.Center, Point) {
			return InvalidHandle
		}
	case Arc:
		if !sk.resolveKind(def.Start, Point) || !sk.resolveKind(def.End, Point) || !sk.resolveKind(def.Center, Point) {
			return InvalidHandle
		}
	}
	h := sk.Entities.Create(def)
	if h != InvalidHandle {
		sk.linkOutdated = true
	}
	return h
}

// DeleteEntity destroys the entity addressed by h. Returns false if h did
// not match a live entity.
func (sk *Sketch) DeleteEntity(h EntityHandle) bool {
	ok := sk.Entities.Destroy(h)
	if ok {
		sk.linkOutdated = true
	}
	return ok
}

// GetEntity returns a mutable pointer to the entity addressed by h, or nil.
func (sk *Sketch) GetEntity(h EntityHandle) *EntityDef {
	return sk.Entities.Get(h)
}

// GetEntityConst returns a copy of the entity addressed by h.
func (sk *Sketch) GetEntityConst(h EntityHandle) (EntityDef, bool) {
	return sk.Entities.GetConst(h)
}

// AddConstraint validates def (it must carry an equation, and stay within
// the 16-entity/16-parameter reference budget) and, if valid, creates it.
// Returns InvalidHandle on validation failure.
func (sk *Sketch) AddConstraint(def ConstraintDef) ConstraintHandle {
	if !def.Validate() {
		return InvalidHandle
	}
	h := sk.Constraints.Create(ConstraintState{Def: def})
	if h != InvalidHandle {
		sk.linkOutdated = true
	}
	return h
}

// DeleteConstraint destroys the constraint addressed by h, freeing its
// equation and any derivative trees the linker built for it. Returns false
// if h did not match a live constraint.
func (sk *Sketch) DeleteConstraint(h ConstraintHandle) bool {
	cs := sk.Constraints.Get(h)
	if cs == nil {
		return false
	}
	expr.Free(cs.Def.Equation)
	for _, d := range cs.Derivs {
		expr.Free(d)
	}
	sk.Constraints.Destroy(h)
	sk.linkOutdated = true
	return true
}

// GetConstraint returns a mutable pointer to the constraint state addressed
// by h, or nil.
func (sk *Sketch) GetConstraint(h ConstraintHandle) *ConstraintState {
	return sk.Constraints.Get(h)
}

// GetConstraintConst returns a copy of the constraint state addressed by h.
func (sk *Sketch) GetConstraintConst(h ConstraintHandle) (ConstraintState, bool) {
	return sk.Constraints.GetConst(h)
}

// LinkOutdated reports whether the next Solve call will rebuild derivative
// trees and scratch buffers before iterating (testable property 7).
func (sk *Sketch) LinkOutdated() bool {
	return sk.linkOutdated
}

// freeToBaseState releases every constraint's derivative trees and
// derivative-value array, then releases the normal matrix, intermediate
// solution, cached-parameter buffer and the compact working pointer
// arrays. Grounded on freeform_impl.c's ffSketch_FreeToBaseState.
func (sk *Sketch) freeToBaseState() {
	sk.Constraints.Each(func(h ConstraintHandle, cs *ConstraintState) {
		for _, d := range cs.Derivs {
			expr.Free(d)
		}
		cs.Derivs = nil
		cs.DerivValues = nil
	})
	sk.normalMatrix = nil
	sk.intermediateSolution = nil
	sk.cachedParams = nil
	sk.liveConstraints = nil
	sk.liveParams = nil
}

// mustRange panics with an internal-invariant message if v is outside
// [lo, hi]; used to guard table bounds the caller should never be able to
// violate through the public API (spec §7, "internal invariant violation").
func mustRange(name string, v, lo, hi int) {
	if v < lo || v > hi {
		chk.Panic("sketch: internal invariant violated: %s=%d out of range [%d,%d]", name, v, lo, hi)
	}
}
