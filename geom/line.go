package geom

// Line is a segment between a fixed origin and a fixed end. The two
// may coincide.
type Line struct {
	origin, end Vec2
}

// Lines of unit extent starting at the zero vector.
var (
	LineUp    = Line{origin: Zero, end: UnitY}
	LineDown  = Line{origin: Zero, end: NegUnitY}
	LineLeft  = Line{origin: Zero, end: NegUnitX}
	LineRight = Line{origin: Zero, end: UnitX}
)

// Ln returns the line from origin to end.
func Ln(origin, end Vec2) Line {
	return Line{origin: origin, end: end}
}

// LineFromDirection returns the line that starts at origin and
// extends distance units along direction. A zero direction yields a
// line whose end is origin, whatever the distance.
func LineFromDirection(origin, direction Vec2, distance float32) Line {
	return Line{
		origin: origin,
		end:    origin.Add(direction.NormalizeOrZero().Mul(distance)),
	}
}

func (l Line) Origin() Vec2 { return l.origin }

func (l Line) End() Vec2 { return l.end }

func (l *Line) SetOrigin(origin Vec2) { l.origin = origin }

func (l *Line) SetEnd(end Vec2) { l.end = end }

// Center returns the midpoint of l.
func (l Line) Center() Vec2 {
	return l.origin.Add(l.end).Mul(0.5)
}

// Direction returns the unnormalized vector from l's origin to its
// end.
func (l Line) Direction() Vec2 {
	return l.end.Sub(l.origin)
}

// Length returns the larger signed component of l's direction. It is
// not the Euclidean length; a line from (0, 0) to (3, 4) has a Length
// of 4 and one pointing into the negative quadrant has a negative
// Length. Use EuclideanLength for the distance between the endpoints.
func (l Line) Length() float32 {
	return l.Direction().MaxElement()
}

// EuclideanLength returns the distance between l's endpoints.
func (l Line) EuclideanLength() float32 {
	return l.Direction().Length()
}

func (l Line) String() string {
	return "Line { origin: " + l.origin.String() + ", end: " + l.end.String() + " }"
}
