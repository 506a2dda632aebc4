package geom

// Point is a single coordinate.
type Point struct {
	coordinate Vec2
}

// Predefined points.
var (
	PointZero   = Point{coordinate: Zero}
	PointOne    = Point{coordinate: One}
	PointNegOne = Point{coordinate: NegOne}
)

// Pt returns the point at coordinate.
func Pt(coordinate Vec2) Point {
	return Point{coordinate: coordinate}
}

func (p Point) Coordinate() Vec2 { return p.coordinate }

func (p *Point) SetCoordinate(coordinate Vec2) { p.coordinate = coordinate }

func (p Point) String() string {
	return "Point { coordinate: " + p.coordinate.String() + " }"
}
