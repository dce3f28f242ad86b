// Package geom holds small 2D vector helpers shared by entity readback and
// tests. Distance/hit-testing against a whole sketch is an external
// collaborator's concern (spec.md §1 Non-goals); this package stops at
// plain vector arithmetic.
package geom

import "math"

// Vec2 is a 2D point or displacement.
type Vec2 struct {
	X, Y float64
}

// Add returns a+b.
func Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a-b.
func Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns v scaled by s.
func Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// DistanceSquared returns |a-b|^2.
func DistanceSquared(a, b Vec2) float64 {
	d := Sub(a, b)
	return d.X*d.X + d.Y*d.Y
}

// Distance returns |a-b|.
func Distance(a, b Vec2) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// LengthSquared returns |v|^2.
func LengthSquared(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns |v|.
func Length(v Vec2) float64 {
	return math.Sqrt(LengthSquared(v))
}
