package expr

import (
	"github.com/cpmech/gosl/chk"

	"github.com/mvparker810/free-form/slottable"
)

// borrow returns a, or a non-owning EXTR_PARAM wrapper around a when
// protect is set. Every reuse of an original subtree inside a derivative
// tree goes through borrow, so the derivative never ends up owning a node
// that the equation it was built from still owns.
func borrow(a *Node, protect bool) *Node {
	if protect {
		return extrParam(a)
	}
	return a
}

// Derive returns a freshly owned tree representing the symbolic partial
// derivative of n with respect to wrt. When protect is true (the only mode
// the linker uses, spec §4.4), every reference the derivative makes back
// into n's own subtrees is wrapped in a non-owning EXTR_PARAM node, so the
// two trees can coexist and be freed independently (see Free).
func Derive(n *Node, wrt slottable.Handle, protect bool) *Node {
	switch n.Kind {
	case CONST:
		return Const(0.0)

	case PARAM:
		if n.Param == wrt {
			return Const(1.0)
		}
		return Const(0.0)

	case EXTR_PARAM:
		return Derive(n.Left, wrt, protect)

	case ADD:
		return Add(Derive(n.Left, wrt, protect), Derive(n.Right, wrt, protect))

	case SUB:
		return Sub(Derive(n.Left, wrt, protect), Derive(n.Right, wrt, protect))

	case MUL:
		// d(ab) = a'b + ab'
		return Add(
			Mul(Derive(n.Left, wrt, protect), borrow(n.Right, protect)),
			Mul(borrow(n.Left, protect), Derive(n.Right, wrt, protect)),
		)

	case DIV:
		// d(a/b) = (a'b - ab') / b^2
		return Div(
			Sub(
				Mul(Derive(n.Left, wrt, protect), borrow(n.Right, protect)),
				Mul(borrow(n.Left, protect), Derive(n.Right, wrt, protect)),
			),
			Mul(borrow(n.Right, protect), borrow(n.Right, protect)),
		)

	case SIN:
		// d(sin a) = a' cos(a)
		return Mul(Derive(n.Left, wrt, protect), Cos(borrow(n.Left, protect)))

	case COS:
		// d(cos a) = -a' sin(a)
		return Mul(
			Mul(Const(-1.0), Sin(borrow(n.Left, protect))),
			Derive(n.Left, wrt, protect),
		)

	case ASIN:
		// d(asin a) = a' / sqrt(1 - a^2)
		return Div(
			Derive(n.Left, wrt, protect),
			Sqrt(Sub(Const(1.0), Sqr(borrow(n.Left, protect)))),
		)

	case ACOS:
		// d(acos a) = -a' / sqrt(1 - a^2)
		return Div(
			Mul(Const(-1.0), Derive(n.Left, wrt, protect)),
			Sqrt(Sub(Const(1.0), Sqr(borrow(n.Left, protect)))),
		)

	case SQRT:
		// d(sqrt a) = a' / (2 sqrt(a))
		return Div(
			Derive(n.Left, wrt, protect),
			Mul(Const(2.0), Sqrt(borrow(n.Left, protect))),
		)

	case SQR:
		// d(a^2) = 2 a a'
		return Mul(
			Const(2.0),
			Mul(borrow(n.Left, protect), Derive(n.Left, wrt, protect)),
		)

	default:
		chk.Panic("expr: cannot differentiate undefined operator kind %d", n.Kind)
		return nil
	}
}
