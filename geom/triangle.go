package geom

// Triangle is three coordinates in no particular order. Collinear or
// coincident coordinates are allowed.
type Triangle struct {
	coordinate1, coordinate2, coordinate3 Vec2
}

// Tri returns the triangle with the given coordinates.
func Tri(coordinate1, coordinate2, coordinate3 Vec2) Triangle {
	return Triangle{
		coordinate1: coordinate1,
		coordinate2: coordinate2,
		coordinate3: coordinate3,
	}
}

func (t Triangle) Coordinate1() Vec2 { return t.coordinate1 }
func (t Triangle) Coordinate2() Vec2 { return t.coordinate2 }
func (t Triangle) Coordinate3() Vec2 { return t.coordinate3 }

func (t *Triangle) SetCoordinate1(coordinate Vec2) { t.coordinate1 = coordinate }
func (t *Triangle) SetCoordinate2(coordinate Vec2) { t.coordinate2 = coordinate }
func (t *Triangle) SetCoordinate3(coordinate Vec2) { t.coordinate3 = coordinate }

func (t Triangle) String() string {
	return "Triangle { coordinate1: " + t.coordinate1.String() +
		", coordinate2: " + t.coordinate2.String() +
		", coordinate3: " + t.coordinate3.String() + " }"
}
