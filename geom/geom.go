// Package geom provides elementary 2D geometric primitives: points,
// lines, rays, rectangles, circles and triangles, all built on the
// float32 vector type Vec2.
//
// Every primitive is a plain value. Getters never mutate, and setters
// have pointer receivers. None of the operations fail: inverted
// rectangles, negative radii and zero-length directions are all valid
// values that propagate through the arithmetic unchanged.
package geom

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

func approxEqual[T constraints.Float](a, b, epsilon T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}

func isFinite[T constraints.Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// formatScalar renders v using the shortest representation that
// round-trips a float32.
func formatScalar(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
