package geom

// Rectangle is an axis-aligned rectangle described by a min and a max
// corner. Nothing forces Min to be below and to the left of Max; an
// inverted rectangle simply has a negative width or height.
//
// Rectangle has two families of setters. SetMinX, SetMaxX, SetMinY,
// SetMaxY, SetMin, SetMax, SetWidth, SetHeight, SetSize and Resize move
// one corner and leave the other alone, changing the rectangle's
// extent. SetX, SetY, SetPosition, MoveTo, SetCenter and Translate move
// both corners together and never change the width or height.
type Rectangle struct {
	min, max Vec2
}

// Rt returns the rectangle with corners (minX, minY) and (maxX, maxY).
func Rt(minX, minY, maxX, maxY float32) Rectangle {
	return RectFromCoordinates(Vec(minX, minY), Vec(maxX, maxY))
}

// RectFromCoordinates returns the rectangle with the given corners.
func RectFromCoordinates(min, max Vec2) Rectangle {
	return Rectangle{min: min, max: max}
}

// RectFromDimensions returns the rectangle whose min corner is min
// and whose max corner lies width and height away from it.
func RectFromDimensions(min Vec2, width, height float32) Rectangle {
	return RectFromCoordinates(min, min.Add(Vec(width, height)))
}

func (r Rectangle) Min() Vec2 { return r.min }

func (r Rectangle) Max() Vec2 { return r.max }

// X is the same as MinX.
func (r Rectangle) X() float32 { return r.min.X }
func (r Rectangle) MinX() float32 { return r.min.X }
func (r Rectangle) MaxX() float32 { return r.max.X }

// Y is the same as MinY.
func (r Rectangle) Y() float32 { return r.min.Y }
func (r Rectangle) MinY() float32 { return r.min.Y }
func (r Rectangle) MaxY() float32 { return r.max.Y }

// Width returns MaxX-MinX, which is negative for a horizontally
// inverted rectangle.
func (r Rectangle) Width() float32 {
	return r.max.X - r.min.X
}

// Height returns MaxY-MinY, which is negative for a vertically
// inverted rectangle.
func (r Rectangle) Height() float32 {
	return r.max.Y - r.min.Y
}

// Size returns r's width and height.
func (r Rectangle) Size() Vec2 {
	return Vec(r.Width(), r.Height())
}

// Position is the same as Min.
func (r Rectangle) Position() Vec2 {
	return r.min
}

func (r Rectangle) Center() Vec2 {
	return r.min.Add(r.max).Mul(0.5)
}

// Canon returns the canonical version of r, where Min is to the lower
// left of Max. The receiver is not modified.
func (r Rectangle) Canon() Rectangle {
	if r.max.X < r.min.X {
		r.min.X, r.max.X = r.max.X, r.min.X
	}
	if r.max.Y < r.min.Y {
		r.min.Y, r.max.Y = r.max.Y, r.min.Y
	}
	return r
}

func (r *Rectangle) SetMin(min Vec2) { r.min = min }

func (r *Rectangle) SetMax(max Vec2) { r.max = max }

func (r *Rectangle) SetMinX(x float32) { r.min.X = x }

func (r *Rectangle) SetMaxX(x float32) { r.max.X = x }

func (r *Rectangle) SetMinY(y float32) { r.min.Y = y }

func (r *Rectangle) SetMaxY(y float32) { r.max.Y = y }

// SetWidth moves the max corner horizontally so that r is width wide.
func (r *Rectangle) SetWidth(width float32) {
	r.max.X = r.min.X + width
}

// SetHeight moves the max corner vertically so that r is height tall.
func (r *Rectangle) SetHeight(height float32) {
	r.max.Y = r.min.Y + height
}

// SetSize moves the max corner so that r has the given size.
func (r *Rectangle) SetSize(size Vec2) {
	r.SetWidth(size.X)
	r.SetHeight(size.Y)
}

// Resize is the same as SetSize but returns the result instead of
// modifying r.
func (r Rectangle) Resize(size Vec2) Rectangle {
	r.SetSize(size)
	return r
}

// SetX moves r horizontally so that its min corner sits at x.
func (r *Rectangle) SetX(x float32) {
	r.max.X += x - r.min.X
	r.min.X = x
}

// SetY moves r vertically so that its min corner sits at y.
func (r *Rectangle) SetY(y float32) {
	r.max.Y += y - r.min.Y
	r.min.Y = y
}

// SetPosition moves r so that its min corner sits at position.
func (r *Rectangle) SetPosition(position Vec2) {
	r.SetX(position.X)
	r.SetY(position.Y)
}

// MoveTo is the same as SetPosition but returns the result instead of
// modifying r.
func (r Rectangle) MoveTo(position Vec2) Rectangle {
	r.SetPosition(position)
	return r
}

// SetCenter moves r so that it is centered on center.
func (r *Rectangle) SetCenter(center Vec2) {
	r.SetPosition(center.Sub(r.Size().Mul(0.5)))
}

// Translate moves r by delta.
func (r *Rectangle) Translate(delta Vec2) {
	r.min = r.min.Add(delta)
	r.max = r.max.Add(delta)
}

func (r Rectangle) String() string {
	return "Rectangle { MinX: " + formatScalar(r.min.X) +
		", MinY: " + formatScalar(r.min.Y) +
		", MaxX: " + formatScalar(r.max.X) +
		", MaxY: " + formatScalar(r.max.Y) + " }"
}
