package gridmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/gridgraph"
	"github.com/bonnetn/pathfinder/gridmap"
)

// wallGrid returns a 10×10 grid with a vertical wall at x=5, y in [0,8).
func wallGrid() *gridgraph.Grid[bool] {
	g := gridgraph.New(core.Rect(0, 0, 10, 10), false)
	for y := 0; y < 8; y++ {
		g.Set(core.Pt(5, y), true)
	}
	return g
}

func TestNewGridMap_NilGrid(t *testing.T) {
	_, err := gridmap.NewGridMap(nil)
	assert.ErrorIs(t, err, gridmap.ErrNilGrid)

	_, err = gridmap.NewCircleMap(nil, nil)
	assert.ErrorIs(t, err, gridmap.ErrNilGrid)
}

func TestGridMap_Obstacle(t *testing.T) {
	m, err := gridmap.NewGridMap(wallGrid())
	require.NoError(t, err)

	assert.Equal(t, core.Rect(0, 0, 10, 10), m.Bounds())
	assert.True(t, m.Obstacle(core.Pt(5, 3)))
	assert.False(t, m.Obstacle(core.Pt(5, 9)))
	assert.False(t, m.Obstacle(core.Pt(0, 0)))

	// Anything outside the map is blocked.
	for _, p := range []core.Point{{X: -1, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 10}} {
		assert.True(t, m.Obstacle(p), "point %s", p)
	}
}

func TestGridMap_CopiesInput(t *testing.T) {
	g := wallGrid()
	m, err := gridmap.NewGridMap(g)
	require.NoError(t, err)

	g.Set(core.Pt(0, 0), true)
	assert.False(t, m.Obstacle(core.Pt(0, 0)))
}

func TestGridMap_LineOfSight(t *testing.T) {
	m, err := gridmap.NewGridMap(wallGrid())
	require.NoError(t, err)

	assert.False(t, m.LineOfSight(core.Pt(0, 0), core.Pt(9, 0)), "through the wall")
	assert.True(t, m.LineOfSight(core.Pt(0, 9), core.Pt(9, 9)), "below the wall")
	assert.True(t, m.LineOfSight(core.Pt(0, 0), core.Pt(4, 7)), "left of the wall")
	assert.False(t, m.LineOfSight(core.Pt(5, 0), core.Pt(5, 0)), "blocked endpoint")
	assert.False(t, m.LineOfSight(core.Pt(0, 0), core.Pt(12, 0)), "leaves the map")
}

func TestCircleMap_LineOfSight(t *testing.T) {
	grid := gridgraph.New(core.Rect(0, 0, 20, 20), false)
	circles := []gridmap.Circle{
		{Center: core.Pt(5, 5), Radius: 2},
		{Center: core.Pt(15, 0), Radius: 2},
		{Center: core.Pt(15, 15), Radius: 10},
	}
	m, err := gridmap.NewCircleMap(grid, circles)
	require.NoError(t, err)

	cases := []struct {
		name     string
		from, to core.Point
		want     bool
	}{
		{"crosses a circle", core.Pt(0, 5), core.Pt(10, 5), false},
		{"misses every circle", core.Pt(0, 0), core.Pt(10, 0), true},
		{"tangent at endpoint", core.Pt(10, 2), core.Pt(15, 2), true},
		{"tangent mid-segment", core.Pt(10, 2), core.Pt(19, 2), false},
		{"inside a circle", core.Pt(14, 15), core.Pt(16, 15), true},
		{"degenerate segment", core.Pt(5, 5), core.Pt(5, 5), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.LineOfSight(tc.from, tc.to))
			assert.Equal(t, tc.want, m.LineOfSight(tc.to, tc.from), "reversed")
		})
	}
}

func TestCircleMap_LineOfSightIgnoresGrid(t *testing.T) {
	m, err := gridmap.NewCircleMap(wallGrid(), nil)
	require.NoError(t, err)

	assert.True(t, m.Obstacle(core.Pt(5, 0)))
	assert.True(t, m.LineOfSight(core.Pt(0, 0), core.Pt(9, 0)))
}

func TestCircleMap_Circles(t *testing.T) {
	circles := []gridmap.Circle{{Center: core.Pt(1, 1), Radius: 1}, {Center: core.Pt(2, 2), Radius: 0}}
	m, err := gridmap.NewCircleMap(gridgraph.New(core.Rect(0, 0, 3, 3), false), circles)
	require.NoError(t, err)

	got := m.Circles()
	assert.Equal(t, circles, got)
	got[0].Radius = 9
	assert.Equal(t, 1, m.Circles()[0].Radius)
}
