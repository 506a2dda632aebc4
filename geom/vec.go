package geom

import "math"

// Vec2 is a two dimensional vector. It doubles as a coordinate for
// every other type in the package.
type Vec2 struct {
	X, Y float32
}

// Vec is shorthand for Vec2{X: x, Y: y}.
func Vec(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Commonly used vectors.
var (
	Zero     = Vec2{X: 0, Y: 0}
	One      = Vec2{X: 1, Y: 1}
	NegOne   = Vec2{X: -1, Y: -1}
	UnitX    = Vec2{X: 1, Y: 0}
	UnitY    = Vec2{X: 0, Y: 1}
	NegUnitX = Vec2{X: -1, Y: 0}
	NegUnitY = Vec2{X: 0, Y: -1}
)

// Add returns the vector v+w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the vector v-w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// NormalizeOrZero returns the unit vector pointing the same way as v.
// If v is the zero vector or contains a NaN or an infinity, the zero
// vector is returned instead.
func (v Vec2) NormalizeOrZero() Vec2 {
	x, y := float64(v.X), float64(v.Y)
	l := math.Hypot(x, y)
	if l == 0 || !isFinite(l) {
		return Zero
	}
	return Vec(float32(x/l), float32(y/l))
}

// MaxElement returns the larger of v's two components. The
// comparison is signed.
func (v Vec2) MaxElement() float32 {
	return max(v.X, v.Y)
}

// ApproxEqual reports whether each component of v is within epsilon
// of the corresponding component of w.
func (v Vec2) ApproxEqual(w Vec2, epsilon float32) bool {
	return approxEqual(v.X, w.X, epsilon) && approxEqual(v.Y, w.Y, epsilon)
}

func (v Vec2) String() string {
	return "[" + formatScalar(v.X) + ", " + formatScalar(v.Y) + "]"
}
