package geom_test

import (
	"slices"
	"testing"

	"deedles.dev/shapes2d/geom"
	"github.com/stretchr/testify/require"
)

func TestTileRightThenDown(t *testing.T) {
	tiles := make([]geom.Rectangle, 4)
	geom.TileRightThenDown(tiles, geom.Rt(0, 0, 8, 8))
	require.Equal(t, []geom.Rectangle{
		geom.Rt(0, 0, 4, 8),
		geom.Rt(4, 0, 8, 4),
		geom.Rt(4, 4, 6, 8),
		geom.Rt(6, 4, 8, 8),
	}, tiles)

	one := slices.Collect(geom.TiledRightThenDown(1, geom.Rt(0, 0, 8, 8)))
	require.Equal(t, []geom.Rectangle{geom.Rt(0, 0, 8, 8)}, one)
}

func TestTileTwoThirdsSidebar(t *testing.T) {
	tiles := make([]geom.Rectangle, 3)
	geom.TileTwoThirdsSidebar(tiles, geom.Rt(0, 0, 6, 4))
	require.Equal(t, []geom.Rectangle{
		geom.Rt(0, 0, 4, 4),
		geom.Rt(4, 0, 6, 2),
		geom.Rt(4, 2, 6, 4),
	}, tiles)
}

func TestTileEven(t *testing.T) {
	tiles := make([]geom.Rectangle, 3)
	geom.TileEvenHorizontally(tiles, geom.Rt(0, 0, 3, 1))
	require.Equal(t, []geom.Rectangle{
		geom.Rt(0, 0, 1, 1),
		geom.Rt(1, 0, 2, 1),
		geom.Rt(2, 0, 3, 1),
	}, tiles)

	tiles = make([]geom.Rectangle, 4)
	geom.TileEvenVertically(tiles, geom.Rt(0, 0, 2, 8))
	require.Equal(t, []geom.Rectangle{
		geom.Rt(0, 0, 2, 2),
		geom.Rt(0, 2, 2, 4),
		geom.Rt(0, 4, 2, 6),
		geom.Rt(0, 6, 2, 8),
	}, tiles)

	require.Empty(t, slices.Collect(geom.TiledEvenVertically(0, geom.Rt(0, 0, 2, 8))))
}

func TestTileRows(t *testing.T) {
	tiles := make([]geom.Rectangle, 5)
	geom.TileRows(tiles, geom.Rt(0, 0, 4, 6), 2)
	require.Equal(t, []geom.Rectangle{
		geom.Rt(0, 0, 2, 2),
		geom.Rt(2, 0, 4, 2),
		geom.Rt(0, 2, 2, 4),
		geom.Rt(2, 2, 4, 4),
		geom.Rt(0, 4, 4, 6),
	}, tiles)
}

func TestVerticalStack(t *testing.T) {
	var stack []geom.Rectangle
	for r := range geom.VerticalStack(geom.Rt(0, 0, 2, 1)) {
		if len(stack) == 3 {
			break
		}
		stack = append(stack, r)
	}
	require.Equal(t, []geom.Rectangle{
		geom.Rt(0, 0, 2, 1),
		geom.Rt(0, 1, 2, 2),
		geom.Rt(0, 2, 2, 3),
	}, stack)
}

func TestArrangeVerticalStack(t *testing.T) {
	rects := []geom.Rectangle{
		geom.Rt(0, 0, 2, 1),
		geom.Rt(5, 5, 9, 7),
		geom.Rt(0, 0, 1, 3),
	}
	geom.ArrangeVerticalStack(rects)
	require.Equal(t, []geom.Rectangle{
		geom.Rt(0, 0, 4, 1),
		geom.Rt(0, 1, 4, 3),
		geom.Rt(0, 3, 4, 6),
	}, rects)
}

func TestAlign(t *testing.T) {
	outer, inner := geom.Rt(0, 0, 10, 10), geom.Rt(0, 0, 2, 2)

	tests := []struct {
		name  string
		edges geom.Edges
		out   geom.Rectangle
	}{
		{"None", geom.EdgeNone, geom.Rt(4, 4, 6, 6)},
		{"TopLeft", geom.EdgeTop | geom.EdgeLeft, geom.Rt(0, 0, 2, 2)},
		{"BottomRight", geom.EdgeBottom | geom.EdgeRight, geom.Rt(8, 8, 10, 10)},
		{"TopBottom", geom.EdgeTop | geom.EdgeBottom, geom.Rt(4, 0, 6, 10)},
		{"LeftRight", geom.EdgeLeft | geom.EdgeRight, geom.Rt(0, 4, 10, 6)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.out, geom.Align(outer, inner, test.edges))
		})
	}
}
