// Package expr implements the symbolic expression DAG used by the
// constraint solver: immutable-after-construction nodes supporting
// evaluation against a parameter store and symbolic differentiation.
package expr

import "github.com/mvparker810/free-form/slottable"

// Kind tags the operator a Node represents.
type Kind int

// Node kinds, matching the operator set a constraint equation may use.
const (
	CONST      Kind = iota // literal double, no children
	PARAM                  // parameter lookup, no children
	EXTR_PARAM             // non-owning borrow of a single child (see Derive)
	ADD                    // a + b
	SUB                    // a - b
	MUL                    // a * b
	DIV                    // a / b
	SIN                    // sin(a)
	COS                    // cos(a)
	ASIN                   // asin(a)
	ACOS                   // acos(a)
	SQRT                   // sqrt(a)
	SQR                    // a * a
)

// Node is one element of an expression tree. A Node exclusively owns Left
// and Right, with one exception: when Kind is EXTR_PARAM, Left is a
// borrowed reference into a different tree (typically the equation a
// derivative was built from) and must not be freed or mutated through this
// node — see Free and Derive.
type Node struct {
	Kind  Kind
	Left  *Node
	Right *Node

	Value float64          // literal, only meaningful when Kind == CONST
	Param slottable.Handle // parameter handle, only meaningful when Kind == PARAM
}

// Const returns a freshly owned CONST leaf holding v.
func Const(v float64) *Node {
	return &Node{Kind: CONST, Value: v}
}

// Param returns a freshly owned PARAM leaf referencing h.
func Param(h slottable.Handle) *Node {
	return &Node{Kind: PARAM, Param: h}
}

// binary builds a freshly owned two-child node of the given kind. a and b
// become exclusively owned by the returned node.
func binary(k Kind, a, b *Node) *Node {
	return &Node{Kind: k, Left: a, Right: b}
}

// unary builds a freshly owned one-child node of the given kind. a becomes
// exclusively owned by the returned node.
func unary(k Kind, a *Node) *Node {
	return &Node{Kind: k, Left: a}
}

// Add returns a freshly owned ADD node over a and b.
func Add(a, b *Node) *Node { return binary(ADD, a, b) }

// Sub returns a freshly owned SUB node over a and b.
func Sub(a, b *Node) *Node { return binary(SUB, a, b) }

// Mul returns a freshly owned MUL node over a and b.
func Mul(a, b *Node) *Node { return binary(MUL, a, b) }

// Div returns a freshly owned DIV node over a and b.
func Div(a, b *Node) *Node { return binary(DIV, a, b) }

// Sin returns a freshly owned SIN node over a.
func Sin(a *Node) *Node { return unary(SIN, a) }

// Cos returns a freshly owned COS node over a.
func Cos(a *Node) *Node { return unary(COS, a) }

// Asin returns a freshly owned ASIN node over a.
func Asin(a *Node) *Node { return unary(ASIN, a) }

// Acos returns a freshly owned ACOS node over a.
func Acos(a *Node) *Node { return unary(ACOS, a) }

// Sqrt returns a freshly owned SQRT node over a.
func Sqrt(a *Node) *Node { return unary(SQRT, a) }

// Sqr returns a freshly owned SQR node over a (a squared, not sqrt).
func Sqr(a *Node) *Node { return unary(SQR, a) }

// extrParam wraps a into a non-owning EXTR_PARAM borrow. This is the sole
// constructor for EXTR_PARAM nodes; callers never build one directly — it
// only ever arises from Derive's "protect" rule.
func extrParam(a *Node) *Node {
	return &Node{Kind: EXTR_PARAM, Left: a}
}

// Free releases n and everything it owns, in post-order. On encountering an
// EXTR_PARAM node, Free releases the wrapper but does not recurse into the
// subtree it borrows — that subtree belongs to a different tree (the
// original equation) and must survive. This is the operation that makes
// testable property 3 (differentiation independence) hold: freeing a
// derivative tree built with protect=true never touches nodes owned by the
// equation it was derived from.
func Free(n *Node) {
	if n == nil {
		return
	}
	if n.Kind == EXTR_PARAM {
		n.Left = nil
		return
	}
	Free(n.Left)
	Free(n.Right)
	n.Left = nil
	n.Right = nil
}
