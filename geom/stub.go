//lint:file-ignore U1000 placeholder fields are kept for the operations these types will gain.

package geom

// Ellipse is reserved for a future ellipse primitive. It has no
// operations yet.
type Ellipse struct {
	center                   Vec2
	radiusMajor, radiusMinor float32
}

// Polygon is reserved for a future polygon primitive. It has no
// operations yet.
type Polygon struct {
	coordinates []Vec2
}

// Mesh is reserved for a future triangle mesh. It has no operations
// yet.
type Mesh struct {
	coordinates []Vec2
	indices     [][3]int
}
