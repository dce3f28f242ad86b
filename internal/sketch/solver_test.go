package sketch

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/mvparker810/free-form/expr"
)

// TestVacuousSolve covers testable property 6: a sketch with no constraints,
// or no adjustable parameters, must report convergence immediately without
// touching any parameter value.
func TestVacuousSolve(tst *testing.T) {

	chk.PrintTitle("VacuousSolve")

	// no constraints at all
	sk := New(2, 2, 2)
	sk.AddParam(ParamDef{Value: 7})
	if !sk.Solve(1e-9, 10) {
		tst.Fatal("a sketch with zero constraints must solve vacuously")
	}

	// one constraint, but its only referenced parameter is fixed, so C == 0
	sk2 := New(2, 2, 2)
	p := sk2.AddParam(ParamDef{Value: 3, Fixed: true})
	def := ConstraintDef{Equation: expr.Sub(expr.Param(p), expr.Const(3))}
	sk2.AddConstraint(def)
	if !sk2.Solve(1e-9, 10) {
		tst.Fatal("a sketch with zero adjustable parameters must solve vacuously")
	}
}

// TestSolveIdempotentOnConvergedInput covers testable property 5: calling
// Solve again on an already-converged sketch must not perturb any parameter.
func TestSolveIdempotentOnConvergedInput(tst *testing.T) {

	chk.PrintTitle("SolveIdempotentOnConvergedInput")

	sk := New(4, 4, 4)
	p := newPoint(sk, 0, 0)
	q := newPoint(sk, 3, 4)
	def, ok := BuildPointCoincidentX(sk, p, q)
	if !ok {
		tst.Fatal("expected a buildable constraint")
	}
	sk.AddConstraint(def)

	if !sk.Solve(1e-9, 50) {
		tst.Fatal("expected the first solve to converge")
	}

	px, _, _ := sk.PointXY(p)
	qx, _, _ := sk.PointXY(q)
	before, _ := sk.GetParamConst(px)
	beforeQ, _ := sk.GetParamConst(qx)

	if !sk.Solve(1e-9, 50) {
		tst.Fatal("expected the second solve on converged input to also return true")
	}

	after, _ := sk.GetParamConst(px)
	afterQ, _ := sk.GetParamConst(qx)
	chk.Scalar(tst, "p.x unchanged", 1e-12, after.Value, before.Value)
	chk.Scalar(tst, "q.x unchanged", 1e-12, afterQ.Value, beforeQ.Value)
}

// TestSolveNonConvergence covers scenario S5: an equation with no real root
// (p^2 + 1 = 0) must exhaust maxSteps and return false without the caller
// being left in some undefined state.
func TestSolveNonConvergence(tst *testing.T) {

	chk.PrintTitle("SolveNonConvergence")

	sk := New(2, 2, 2)
	p := sk.AddParam(ParamDef{Value: 0})
	def := ConstraintDef{
		Equation: expr.Add(expr.Sqr(expr.Param(p)), expr.Const(1)),
		Params:   []ParamHandle{p},
	}
	sk.AddConstraint(def)

	if sk.Solve(1e-9, 10) {
		tst.Fatal("p^2+1=0 has no real root, Solve must return false")
	}
}
