package sketch

import (
	"github.com/cpmech/gosl/fun"

	"github.com/mvparker810/free-form/expr"
	"github.com/mvparker810/free-form/geom"
)

// The constraint-kind tags a constraint's metadata may carry. These (and
// the Build* template functions below) are NOT part of the solver core —
// spec.md §1 scopes the equation-template library out as an external
// collaborator's responsibility — they exist so this module's own
// scenario tests (S1-S6) and the demonstration in main.go can build
// realistic constraints without a second package. A real collaborator library would register many more of these,
// the way msolid.GetKgc looks up a named calculator.
const (
	KindHorizontal       ConstraintKind = "horizontal"
	KindPointCoincidentX ConstraintKind = "point-coincident-x"
	KindPointCoincidentY ConstraintKind = "point-coincident-y"
	KindDistance         ConstraintKind = "distance"
)

// PointXY returns the x and y parameter handles of a Point entity. ok is
// false if h does not resolve to a live Point.
func (sk *Sketch) PointXY(h EntityHandle) (x, y ParamHandle, ok bool) {
	e := sk.Entities.Get(h)
	if e == nil || e.Kind != Point {
		return InvalidHandle, InvalidHandle, false
	}
	return e.X, e.Y, true
}

// PointPos reads back a Point entity's current position as a geom.Vec2.
func (sk *Sketch) PointPos(h EntityHandle) (geom.Vec2, bool) {
	x, y, ok := sk.PointXY(h)
	if !ok {
		return geom.Vec2{}, false
	}
	px, py := sk.Params.Get(x), sk.Params.Get(y)
	if px == nil || py == nil {
		return geom.Vec2{}, false
	}
	return geom.Vec2{X: px.Value, Y: py.Value}, true
}

// BuildHorizontal returns a ConstraintDef for "q.y - p.y = 0" (p and q lie
// on a horizontal line). ok is false if either handle isn't a live Point.
func BuildHorizontal(sk *Sketch, p, q EntityHandle) (ConstraintDef, bool) {
	_, py, ok1 := sk.PointXY(p)
	_, qy, ok2 := sk.PointXY(q)
	if !ok1 || !ok2 {
		return ConstraintDef{}, false
	}
	return ConstraintDef{
		Kind:     KindHorizontal,
		Equation: expr.Sub(expr.Param(qy), expr.Param(py)),
		Entities: []EntityHandle{p, q},
		Params:   []ParamHandle{py, qy},
	}, true
}

// BuildPointCoincidentX returns a ConstraintDef for "q.x - p.x = 0".
func BuildPointCoincidentX(sk *Sketch, p, q EntityHandle) (ConstraintDef, bool) {
	px, _, ok1 := sk.PointXY(p)
	qx, _, ok2 := sk.PointXY(q)
	if !ok1 || !ok2 {
		return ConstraintDef{}, false
	}
	return ConstraintDef{
		Kind:     KindPointCoincidentX,
		Equation: expr.Sub(expr.Param(qx), expr.Param(px)),
		Entities: []EntityHandle{p, q},
		Params:   []ParamHandle{px, qx},
	}, true
}

// BuildPointCoincidentY returns a ConstraintDef for "q.y - p.y = 0".
func BuildPointCoincidentY(sk *Sketch, p, q EntityHandle) (ConstraintDef, bool) {
	return BuildHorizontal(sk, p, q)
}

// BuildDistance returns a ConstraintDef for
// "(q.x-p.x)^2 + (q.y-p.y)^2 - target.v^2 = 0", the point-to-point distance
// template used by scenario S3. target is itself a parameter handle (often
// created with ParamDef{Fixed: true} when the distance is meant to stay
// constant across the solve) rather than a baked-in literal, matching how
// msolid's calculators take named fun.Prm parameters instead of literals.
func BuildDistance(sk *Sketch, p, q EntityHandle, target ParamHandle) (ConstraintDef, bool) {
	px, py, ok1 := sk.PointXY(p)
	qx, qy, ok2 := sk.PointXY(q)
	if !ok1 || !ok2 {
		return ConstraintDef{}, false
	}
	if sk.Params.Get(target) == nil {
		return ConstraintDef{}, false
	}
	dx := expr.Sub(expr.Param(qx), expr.Param(px))
	dy := expr.Sub(expr.Param(qy), expr.Param(py))
	eq := expr.Sub(
		expr.Add(expr.Sqr(dx), expr.Sqr(dy)),
		expr.Sqr(expr.Param(target)),
	)
	return ConstraintDef{
		Kind:     KindDistance,
		Equation: eq,
		Entities: []EntityHandle{p, q},
		Params:   []ParamHandle{px, py, qx, qy, target},
	}, true
}

// namedTarget is a tiny convenience used by tests to register a fixed
// target-distance parameter under a human-readable name, resolvable
// afterwards via Sketch.NamedParam, the way msolid's model Init functions
// resolve a fun.Prms list by name rather than by position.
func namedTarget(sk *Sketch, name string, value float64) ParamHandle {
	return sk.AddNamedParam(&fun.Prm{N: name, V: value}, true)
}
