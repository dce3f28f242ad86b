package sketch

// EntityKind tags which geometric primitive an EntityDef describes.
type EntityKind int

const (
	Point EntityKind = iota
	Line
	Circle
	Arc
)

// EntityDef is a tagged union over {Point, Line, Circle, Arc}. Only the
// fields relevant to Kind are meaningful; DefaultEntityDef pre-fills every
// handle field with InvalidHandle so a half-built def fails Validate
// instead of silently referencing slot zero.
type EntityDef struct {
	Kind EntityKind

	// Point
	X, Y ParamHandle

	// Line
	P1, P2 EntityHandle

	// Circle (Center) and Arc (Start, End, Center); all three Points.
	Center EntityHandle
	Start  EntityHandle
	End    EntityHandle

	// Circle
	Radius ParamHandle
}

// DefaultEntityDef returns a zero-value EntityDef for kind with every
// handle field preset to InvalidHandle, grounded on the original's
// ff_EntityDef_DEFAULT.
func DefaultEntityDef(kind EntityKind) EntityDef {
	return EntityDef{
		Kind:   kind,
		X:      InvalidHandle,
		Y:      InvalidHandle,
		P1:     InvalidHandle,
		P2:     InvalidHandle,
		Center: InvalidHandle,
		Start:  InvalidHandle,
		End:    InvalidHandle,
		Radius: InvalidHandle,
	}
}

// Validate reports whether def's Kind is one of the four known kinds and
// every handle field that kind requires has been filled in (not
// InvalidHandle). It does not resolve references against an entity table —
// that cross-table check (e.g. "a Line's p1 must resolve to a Point") is
// done by Sketch.AddEntity, which has the table to check against.
func (def EntityDef) Validate() bool {
	switch def.Kind {
	case Point:
		return def.X != InvalidHandle && def.Y != InvalidHandle
	case Line:
		return def.P1 != InvalidHandle && def.P2 != InvalidHandle
	case Circle:
		return def.Center != InvalidHandle && def.Radius != InvalidHandle
	case Arc:
		return def.Start != InvalidHandle && def.End != InvalidHandle && def.Center != InvalidHandle
	default:
		return false
	}
}
