package expr

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/mvparker810/free-form/slottable"
)

// ParamSource resolves a parameter handle to its current value. It returns
// ok == false for a dead handle; Evaluate never calls this with a handle it
// hasn't been asked to resolve by a PARAM node.
type ParamSource func(h slottable.Handle) (value float64, ok bool)

// Evaluate computes n's value by post-order traversal, resolving PARAM
// leaves through params. A dead parameter handle evaluates to 0.0 — callers
// must not feed expressions referencing dead handles into a solve (spec
// invariant, not enforced here). Division by zero and domain violations
// (e.g. asin outside [-1,1]) propagate as IEEE-754 Inf/NaN, matching the C
// original: no panic, no error return.
func Evaluate(n *Node, params ParamSource) float64 {
	switch n.Kind {
	case CONST:
		return n.Value
	case PARAM:
		v, ok := params(n.Param)
		if !ok {
			return 0.0
		}
		return v
	case EXTR_PARAM:
		return Evaluate(n.Left, params)
	case ADD:
		return Evaluate(n.Left, params) + Evaluate(n.Right, params)
	case SUB:
		return Evaluate(n.Left, params) - Evaluate(n.Right, params)
	case MUL:
		return Evaluate(n.Left, params) * Evaluate(n.Right, params)
	case DIV:
		return Evaluate(n.Left, params) / Evaluate(n.Right, params)
	case SIN:
		return math.Sin(Evaluate(n.Left, params))
	case COS:
		return math.Cos(Evaluate(n.Left, params))
	case ASIN:
		return math.Asin(Evaluate(n.Left, params))
	case ACOS:
		return math.Acos(Evaluate(n.Left, params))
	case SQRT:
		return math.Sqrt(Evaluate(n.Left, params))
	case SQR:
		v := Evaluate(n.Left, params)
		return v * v
	default:
		chk.Panic("expr: undefined operator kind %d", n.Kind)
	}
	return 0.0
}
