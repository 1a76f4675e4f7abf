package escape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonnetn/pathfinder/builder"
	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/escape"
	"github.com/bonnetn/pathfinder/gridmap"
)

// stubMap is blocked everywhere except, optionally, one exit cell.
type stubMap struct {
	exit *core.Point
}

func (m stubMap) Bounds() core.Bounds { return core.Rect(-20, -20, 20, 20) }

func (m stubMap) Obstacle(p core.Point) bool { return m.exit == nil || *m.exit != p }

func (m stubMap) LineOfSight(core.Point, core.Point) bool { return false }

func exitAt(x, y int) stubMap {
	p := core.Pt(x, y)
	return stubMap{exit: &p}
}

func TestExitRedZone_SingleExit(t *testing.T) {
	got, err := escape.ExitRedZone(exitAt(4, 2), core.Pt(-10, -10))
	require.NoError(t, err)
	assert.Equal(t, core.Pt(4, 2), got)
}

func TestExitRedZone_NoExit(t *testing.T) {
	visited := 0
	_, err := escape.ExitRedZone(stubMap{}, core.Pt(-10, -10),
		escape.WithOnVisit(func(core.Point, float64) { visited++ }))
	assert.ErrorIs(t, err, core.ErrNoPathFound)
	assert.Equal(t, 40*40, visited, "every cell popped exactly once")
}

func TestExitRedZone_FreeStart(t *testing.T) {
	visited := 0
	got, err := escape.ExitRedZone(exitAt(3, 3), core.Pt(3, 3),
		escape.WithOnVisit(func(core.Point, float64) { visited++ }))
	require.NoError(t, err)
	assert.Equal(t, core.Pt(3, 3), got)
	assert.Zero(t, visited)
}

func TestExitRedZone_MaxDistance(t *testing.T) {
	m := exitAt(4, 2)
	start := core.Pt(-10, -10) // √340 ≈ 18.44 from the exit

	_, err := escape.ExitRedZone(m, start, escape.WithMaxDistance(18))
	assert.ErrorIs(t, err, core.ErrNoPathFound)

	got, err := escape.ExitRedZone(m, start, escape.WithMaxDistance(19))
	require.NoError(t, err)
	assert.Equal(t, core.Pt(4, 2), got)

	assert.Panics(t, func() { _, _ = escape.ExitRedZone(m, start, escape.WithMaxDistance(-1)) })
	assert.Panics(t, func() { _, _ = escape.ExitRedZone(m, start, escape.WithMaxDistance(math.NaN())) })
}

func TestExitRedZone_InvalidInput(t *testing.T) {
	_, err := escape.ExitRedZone(nil, core.Pt(0, 0))
	assert.ErrorIs(t, err, escape.ErrNilMap)

	_, err = escape.ExitRedZone(exitAt(0, 0), core.Pt(50, 0))
	assert.ErrorIs(t, err, core.ErrNoPathFound)
}

func TestExitRedZone_GridMap(t *testing.T) {
	g, err := builder.BuildGrid(core.Rect(0, 0, 11, 11), nil, builder.Block(core.Rect(3, 3, 8, 9)))
	require.NoError(t, err)
	m, err := gridmap.NewGridMap(g)
	require.NoError(t, err)

	// Left edge of the block is two cells away; every other side is farther.
	got, err := escape.ExitRedZone(m, core.Pt(4, 5))
	require.NoError(t, err)
	assert.Equal(t, core.Pt(2, 5), got)
}

// The result is always free and no free cell is strictly nearer.
func TestExitRedZone_Nearest(t *testing.T) {
	b := core.Rect(-15, -10, 15, 10)
	g, err := builder.BuildGrid(b, []builder.BuilderOption{builder.WithSeed(3)}, builder.Noise(0.85))
	require.NoError(t, err)
	m, err := gridmap.NewGridMap(g)
	require.NoError(t, err)

	nearest := func(start core.Point) float64 {
		best := math.Inf(1)
		for x := b.Min.X; x < b.Max.X; x++ {
			for y := b.Min.Y; y < b.Max.Y; y++ {
				if p := core.Pt(x, y); !m.Obstacle(p) {
					best = math.Min(best, core.EuclideanDistance(start, p))
				}
			}
		}
		return best
	}

	for x := b.Min.X; x < b.Max.X; x += 3 {
		for y := b.Min.Y; y < b.Max.Y; y += 3 {
			start := core.Pt(x, y)
			got, err := escape.ExitRedZone(m, start)
			require.NoError(t, err, "start %s", start)
			require.False(t, m.Obstacle(got), "start %s", start)
			require.Equal(t, nearest(start), core.EuclideanDistance(start, got), "start %s", start)
		}
	}
}
