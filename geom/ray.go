package geom

// Ray is a half-line starting at an origin. Its direction is always
// either a unit vector or exactly zero.
type Ray struct {
	origin, direction Vec2
}

// Rays starting at the zero vector along each axis.
var (
	RayUp    = Ray{origin: Zero, direction: UnitY}
	RayDown  = Ray{origin: Zero, direction: NegUnitY}
	RayLeft  = Ray{origin: Zero, direction: NegUnitX}
	RayRight = Ray{origin: Zero, direction: UnitX}
)

// RayFromOffset returns the ray from origin that passes through
// offset. If the two coincide the ray has a zero direction.
func RayFromOffset(origin, offset Vec2) Ray {
	return Ray{
		origin:    origin,
		direction: offset.Sub(origin).NormalizeOrZero(),
	}
}

// RayFromDirection returns the ray from origin along direction, which
// is normalized first.
func RayFromDirection(origin, direction Vec2) Ray {
	return Ray{
		origin:    origin,
		direction: direction.NormalizeOrZero(),
	}
}

func (r Ray) Origin() Vec2 { return r.origin }

func (r Ray) Direction() Vec2 { return r.direction }

// Offset returns the point one unit along r from its origin. It is
// not necessarily the point last passed to SetOffset.
func (r Ray) Offset() Vec2 {
	return r.direction.Add(r.origin)
}

// SetOrigin moves r's origin without changing its direction.
func (r *Ray) SetOrigin(origin Vec2) { r.origin = origin }

// SetOffset points r at offset as seen from r's current origin, so
// calling it before or after SetOrigin gives different rays.
func (r *Ray) SetOffset(offset Vec2) {
	r.direction = offset.Sub(r.origin).NormalizeOrZero()
}

// SetDirection sets r's direction to the normalized form of
// direction.
func (r *Ray) SetDirection(direction Vec2) {
	r.direction = direction.NormalizeOrZero()
}

func (r Ray) String() string {
	return "Ray { origin: " + r.origin.String() + ", direction: " + r.direction.String() + " }"
}
