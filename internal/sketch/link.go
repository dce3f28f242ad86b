package sketch

import (
	"github.com/cpmech/gosl/utl"

	"github.com/mvparker810/free-form/expr"
)

// link rebuilds the solver's derivative trees and scratch buffers if the
// sketch has been mutated since the last link. It is a no-op otherwise
// (spec §4.4). Grounded on freeform_impl.c's ffSketch_tryRelink.
func (sk *Sketch) link() {
	if !sk.linkOutdated {
		return
	}
	sk.freeToBaseState()

	// Walk the parameter table once, in index order, collecting the
	// handles and pointers of every live, non-fixed parameter. Both the
	// derivative-column order below and the solver's correction step
	// share this exact slice, so "column j" means the same parameter
	// everywhere for the duration of this link (spec §4.4's ordering
	// requirement).
	var paramHandles []ParamHandle
	var liveParams []*ParamDef
	sk.Params.Each(func(h ParamHandle, p *ParamDef) {
		if p.Fixed {
			return
		}
		paramHandles = append(paramHandles, h)
		liveParams = append(liveParams, p)
	})
	C := len(paramHandles)

	R := sk.Constraints.AliveCount()
	liveConstraints := make([]*ConstraintState, 0, R)
	sk.Constraints.Each(func(h ConstraintHandle, cs *ConstraintState) {
		cs.Derivs = make([]*expr.Node, C)
		cs.DerivValues = make([]float64, C)
		for j, ph := range paramHandles {
			cs.Derivs[j] = expr.Derive(cs.Def.Equation, ph, true)
		}
		utl.IntAssert(len(cs.Derivs), C) // every row must carry exactly one column per live parameter
		liveConstraints = append(liveConstraints, cs)
	})
	mustRange("relinked row count", len(liveConstraints), 0, R)
	utl.IntAssert(len(liveParams), C)

	sk.liveConstraints = liveConstraints
	sk.liveParams = liveParams
	sk.normalMatrix = make([]float64, R*R)
	sk.intermediateSolution = make([]float64, R)
	sk.cachedParams = make([]float64, C)

	sk.linkOutdated = false
}
