package sketch

import (
	"log"
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/mvparker810/free-form/expr"
)

// pivotEpsilon is the hard-coded threshold below which a pivot candidate is
// treated as degenerate (spec §4.5).
const pivotEpsilon = 1e-10

// paramSource returns an expr.ParamSource backed by this sketch's parameter
// table; a dead handle (which should not occur at solve time per spec §3's
// global invariant) evaluates to 0.0.
func (sk *Sketch) paramSource() expr.ParamSource {
	return func(h ParamHandle) (float64, bool) {
		p := sk.Params.Get(h)
		if p == nil {
			return 0, false
		}
		return p.Value, true
	}
}

// Solve relinks if needed, then runs Gauss-Newton steps on the normal
// equations JJᵀ until every residual is within tolerance (returns true) or
// maxSteps is exhausted (returns false). Grounded line-for-line on
// freeform.c's ffSketch_solve; see spec §4.5 and DESIGN.md for the two
// preserved "buggy" behaviors (stale back-substitution entries, permuted
// err fields across a row swap).
func (sk *Sketch) Solve(tolerance float64, maxSteps int) bool {
	sk.link()

	R := len(sk.liveConstraints)
	C := len(sk.liveParams)
	if R == 0 || C == 0 {
		return true
	}

	params := sk.paramSource()
	residual := make([]float64, R)

	for step := 0; step < maxSteps; step++ {

		// (a) residuals
		converged := true
		for i, cs := range sk.liveConstraints {
			cs.Err = expr.Evaluate(cs.Def.Equation, params)
			residual[i] = cs.Err
			if math.Abs(cs.Err) > tolerance {
				converged = false
			}
		}
		if converged {
			return true
		}
		log.Printf("sketch: step %d residual norm = %g", step, la.VecNorm(residual))

		// (b) jacobian
		for _, cs := range sk.liveConstraints {
			for j, d := range cs.Derivs {
				cs.DerivValues[j] = expr.Evaluate(d, params)
			}
		}

		// (c) normal matrix: N[r + c*R] = sum_k J[r][k] * J[c][k], column-major
		for r := 0; r < R; r++ {
			rowR := sk.liveConstraints[r].DerivValues
			for c := 0; c < R; c++ {
				rowC := sk.liveConstraints[c].DerivValues
				var sum float64
				for k := 0; k < C; k++ {
					if rowR[k] == 0 || rowC[k] == 0 {
						continue
					}
					sum += rowR[k] * rowC[k]
				}
				sk.normalMatrix[r+c*R] = sum
			}
		}

		// (d) forward elimination with partial pivoting
		for row := 0; row < R; row++ {
			pivotRow := row
			maxVal := 0.0
			for cand := row; cand < R; cand++ {
				v := math.Abs(sk.normalMatrix[cand+row*R])
				if v > maxVal {
					maxVal = v
					pivotRow = cand
				}
			}
			if maxVal < pivotEpsilon {
				log.Printf("sketch: small pivot element %g at row %d, skipping", maxVal, row)
				continue
			}

			if pivotRow != row {
				for col := 0; col < R; col++ {
					sk.normalMatrix[row+col*R], sk.normalMatrix[pivotRow+col*R] =
						sk.normalMatrix[pivotRow+col*R], sk.normalMatrix[row+col*R]
				}
				sk.liveConstraints[row].Err, sk.liveConstraints[pivotRow].Err =
					sk.liveConstraints[pivotRow].Err, sk.liveConstraints[row].Err
			}

			for t := row + 1; t < R; t++ {
				if math.Abs(sk.normalMatrix[row+row*R]) < pivotEpsilon {
					log.Printf("sketch: division by zero eliminating row %d, skipping", row)
					continue
				}
				coef := sk.normalMatrix[t+row*R] / sk.normalMatrix[row+row*R]
				for col := 0; col < R; col++ {
					sk.normalMatrix[t+col*R] -= sk.normalMatrix[row+col*R] * coef
				}
				sk.liveConstraints[t].Err -= sk.liveConstraints[row].Err * coef
			}
		}

		// (e) back substitution. A near-zero diagonal leaves
		// intermediateSolution[row] at whatever it held from the previous
		// step — intentionally not "fixed", see spec §9 and DESIGN.md.
		for row := R - 1; row >= 0; row-- {
			if math.Abs(sk.normalMatrix[row+row*R]) < pivotEpsilon {
				continue
			}
			sum := sk.liveConstraints[row].Err
			for k := row + 1; k < R; k++ {
				sum -= sk.intermediateSolution[k] * sk.normalMatrix[row+k*R]
			}
			sk.intermediateSolution[row] = sum / sk.normalMatrix[row+row*R]
		}

		// (f) parameter correction
		for c := 0; c < C; c++ {
			var correction float64
			for r := 0; r < R; r++ {
				correction += sk.intermediateSolution[r] * sk.liveConstraints[r].DerivValues[c]
			}
			sk.liveParams[c].Value -= correction
		}
	}

	return false
}
