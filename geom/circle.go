package geom

// Circle is a center and a radius. The radius is not checked, so a
// negative radius gives a negative diameter.
type Circle struct {
	center Vec2
	radius float32
}

// Circ returns the circle at center with the given radius.
func Circ(center Vec2, radius float32) Circle {
	return Circle{center: center, radius: radius}
}

// CircleFromDiameter returns the circle at center with the given
// diameter.
func CircleFromDiameter(center Vec2, diameter float32) Circle {
	return Circ(center, diameter*0.5)
}

func (c Circle) Center() Vec2 { return c.center }

func (c Circle) Radius() float32 { return c.radius }

func (c Circle) Diameter() float32 { return c.radius * 2 }

func (c *Circle) SetCenter(center Vec2) { c.center = center }

func (c *Circle) SetRadius(radius float32) { c.radius = radius }

func (c *Circle) SetDiameter(diameter float32) { c.radius = diameter * 0.5 }

func (c Circle) String() string {
	return "Circle { center: " + c.center.String() + ", radius: " + formatScalar(c.radius) + " }"
}
