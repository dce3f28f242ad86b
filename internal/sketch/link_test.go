package sketch

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/mvparker810/free-form/expr"
)

// TestLinkOutdatedTriggersOnMutation covers testable property 7: adding or
// deleting a constraint between solves must mark the sketch outdated, and a
// Solve call must clear that flag again.
func TestLinkOutdatedTriggersOnMutation(tst *testing.T) {

	chk.PrintTitle("LinkOutdatedTriggersOnMutation")

	sk := New(8, 8, 8)
	if !sk.LinkOutdated() {
		tst.Fatal("a freshly constructed sketch must start outdated")
	}

	p := newPoint(sk, 0, 0)
	q := newPoint(sk, 3, 4)
	def, ok := BuildPointCoincidentX(sk, p, q)
	if !ok {
		tst.Fatal("expected a buildable constraint")
	}
	ch := sk.AddConstraint(def)

	sk.Solve(1e-9, 50)
	if sk.LinkOutdated() {
		tst.Fatal("a successful Solve must clear the outdated flag")
	}

	defY, ok := BuildPointCoincidentY(sk, p, q)
	if !ok {
		tst.Fatal("expected a buildable constraint")
	}
	sk.AddConstraint(defY)
	if !sk.LinkOutdated() {
		tst.Fatal("adding a constraint between solves must force a relink")
	}

	sk.Solve(1e-9, 50)
	if sk.LinkOutdated() {
		tst.Fatal("the second Solve must clear the outdated flag again")
	}

	if !sk.DeleteConstraint(ch) {
		tst.Fatal("expected delete to succeed")
	}
	if !sk.LinkOutdated() {
		tst.Fatal("deleting a constraint between solves must force a relink")
	}
}

// TestLinkColumnOrderingStableAcrossConstraints covers the invariant that
// every live constraint's Derivs slice is indexed by the same parameter
// order (spec §4.4): column j must mean the same parameter for every row.
func TestLinkColumnOrderingStableAcrossConstraints(tst *testing.T) {

	chk.PrintTitle("LinkColumnOrderingStableAcrossConstraints")

	sk := New(8, 8, 8)
	p := newPoint(sk, 0, 0)
	q := newPoint(sk, 3, 4)

	defX, _ := BuildPointCoincidentX(sk, p, q)
	defY, _ := BuildPointCoincidentY(sk, p, q)
	sk.AddConstraint(defX)
	sk.AddConstraint(defY)

	sk.link()

	if len(sk.liveConstraints) != 2 {
		tst.Fatal("expected two live constraints")
	}
	cols := len(sk.liveConstraints[0].Derivs)
	for _, cs := range sk.liveConstraints {
		if len(cs.Derivs) != cols {
			tst.Fatal("every constraint row must carry the same number of derivative columns")
		}
	}

	// row 0 is q.x-p.x, row 1 is q.y-p.y; column j must be the derivative
	// with respect to liveParams[j] in both rows
	px, py, _ := sk.PointXY(p)
	qx, qy, _ := sk.PointXY(q)
	want := map[*ParamDef][2]float64{
		sk.GetParam(px): {-1, 0},
		sk.GetParam(py): {0, -1},
		sk.GetParam(qx): {1, 0},
		sk.GetParam(qy): {0, 1},
	}
	src := sk.paramSource()
	for j, lp := range sk.liveParams {
		for r, cs := range sk.liveConstraints {
			chk.Scalar(tst, "d(row r)/d(column j)", 1e-15, expr.Evaluate(cs.Derivs[j], src), want[lp][r])
		}
	}
}
