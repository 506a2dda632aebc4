package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally.
func hsplit(r Rectangle, w float32) (left, right Rectangle) {
	left = r
	left.SetWidth(w)

	right = r
	right.SetX(r.X() + w)
	right.SetWidth(r.Width() - w)
	return left, right
}

func hsplitHalf(r Rectangle) (left, right Rectangle) {
	return hsplit(r, r.Width()/2)
}

// vsplit splits a rectangle into two rectangles arranged vertically.
func vsplit(r Rectangle, h float32) (top, bottom Rectangle) {
	top = r
	top.SetHeight(h)

	bottom = r
	bottom.SetY(r.Y() + h)
	bottom.SetHeight(r.Height() - h)
	return top, bottom
}

func vsplitHalf(r Rectangle) (top, bottom Rectangle) {
	return vsplit(r, r.Height()/2)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards. In other
// words,
//
//	tiles := make([]geom.Rectangle, 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown(tiles []Rectangle, r Rectangle) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown(numtiles int, r Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		if numtiles <= 0 {
			return
		}

		if numtiles == 1 {
			yield(r)
			return
		}

		split, next := hsplitHalf, vsplitHalf
		rem := r
		for range numtiles - 1 {
			var c Rectangle
			c, rem = split(rem)
			if !yield(c) {
				return
			}
			split, next = next, split
		}

		yield(rem)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split in the remaining space.
func TileTwoThirdsSidebar(tiles []Rectangle, r Rectangle) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar(numtiles int, r Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		if numtiles <= 0 {
			return
		}

		if numtiles == 1 {
			yield(r)
			return
		}

		first, rem := hsplit(r, 2*r.Width()/3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r. In other words,
//
//	tiles := make([]geom.Rectangle, 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically(tiles []Rectangle, r Rectangle) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically(numtiles int, r Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		if numtiles <= 0 {
			return
		}

		shift := Vec(0, r.Height()/float32(numtiles))
		c, _ := vsplit(r, shift.Y)
		for range numtiles {
			if !yield(c) {
				return
			}
			c.Translate(shift)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]geom.Rectangle, 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally(tiles []Rectangle, r Rectangle) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except
// that it yields the tiles from an iterator.
func TiledEvenHorizontally(numtiles int, r Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		if numtiles <= 0 {
			return
		}

		shift := Vec(r.Width()/float32(numtiles), 0)
		c, _ := hsplit(r, shift.X)
		for range numtiles {
			if !yield(c) {
				return
			}
			c.Translate(shift)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows(tiles []Rectangle, r Rectangle, cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows(numtiles int, r Rectangle, cols int) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		if numtiles <= 0 || cols <= 0 {
			return
		}

		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted downwards by its height
// repeatedly, thus producing an infinite vertical stack of rectangles
// below the first.
func VerticalStack(first Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		shift := Vec(0, first.Canon().Height())
		for {
			if !yield(first) {
				return
			}
			first.Translate(shift)
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
func ArrangeVerticalStack(rects []Rectangle) {
	if len(rects) <= 1 {
		return
	}

	prev := rects[0].Canon()
	for _, rect := range rects {
		if rect.Width() > prev.Width() {
			prev.SetWidth(rect.Width())
		}
	}
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		rects[i] = Rt(
			prev.MinX(),
			prev.MaxY(),
			prev.MaxX(),
			prev.MaxY()+rects[i].Height(),
		)
		prev = rects[i]
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. EdgeTop refers to the
// min Y edge and EdgeBottom to the max Y edge.
func Align(outer, inner Rectangle, edges Edges) Rectangle {
	inner.SetCenter(outer.Center())
	switch {
	case edges&EdgeTop != 0:
		inner.SetY(outer.MinY())
		if edges&EdgeBottom != 0 {
			inner.SetMaxY(outer.MaxY())
		}
	case edges&EdgeBottom != 0:
		inner.SetY(outer.MaxY() - inner.Height())
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.SetX(outer.MinX())
		if edges&EdgeRight != 0 {
			inner.SetMaxX(outer.MaxX())
		}
	case edges&EdgeRight != 0:
		inner.SetX(outer.MaxX() - inner.Width())
	}

	return inner
}

func insertTilesFromSeq(tiles []Rectangle, s iter.Seq[Rectangle]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
