package gridgraph_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/gridgraph"
)

func line(a, b core.Point) []core.Point {
	var out []core.Point
	for p := range gridgraph.Line(a, b) {
		out = append(out, p)
	}
	return out
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Point
		want []core.Point
	}{
		{"same point", core.Pt(3, 3), core.Pt(3, 3), nil},
		{"horizontal", core.Pt(0, 0), core.Pt(3, 0),
			[]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}},
		{"shallow", core.Pt(0, 0), core.Pt(3, 1),
			[]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}},
		{"shallow reversed", core.Pt(3, 1), core.Pt(0, 0),
			[]core.Point{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}}},
		{"steep, negative x", core.Pt(0, 0), core.Pt(-2, 5),
			[]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: -1, Y: 3}, {X: -1, Y: 4}}},
		{"down-left", core.Pt(2, 2), core.Pt(-2, -1),
			[]core.Point{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 1}, {X: -1, Y: 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, line(tc.a, tc.b))
		})
	}
}

func TestLine_SteepMinorStepComesLast(t *testing.T) {
	got := line(core.Pt(29, 19), core.Pt(28, 0))
	require.Len(t, got, 19)
	for i, p := range got {
		assert.Equal(t, core.Pt(29, 19-i), p)
	}
}

func TestLine_AdjacentSteps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		a := core.Pt(rng.Intn(41)-20, rng.Intn(41)-20)
		b := core.Pt(rng.Intn(41)-20, rng.Intn(41)-20)
		cells := append(line(a, b), b)
		require.Equal(t, a, cells[0])
		require.Len(t, cells, core.ChebyshevDistance(a, b)+1, "%s→%s", a, b)
		for j := 1; j < len(cells); j++ {
			require.Equal(t, 1, core.ChebyshevDistance(cells[j-1], cells[j]), "%s→%s", a, b)
		}
	}
}

func TestLineOfSight(t *testing.T) {
	g := gridgraph.New(core.Rect(0, 0, 6, 6), false)
	g.Set(core.Pt(1, 0), true)

	assert.True(t, gridgraph.LineOfSight(core.Pt(0, 1), core.Pt(5, 1), g))
	assert.False(t, gridgraph.LineOfSight(core.Pt(0, 0), core.Pt(5, 0), g))
	assert.False(t, gridgraph.LineOfSight(core.Pt(1, 0), core.Pt(1, 0), g), "blocked endpoint")
	assert.False(t, gridgraph.LineOfSight(core.Pt(0, 5), core.Pt(1, 0), g), "blocked end")

	// The two directions rasterize different cells.
	assert.False(t, gridgraph.LineOfSight(core.Pt(0, 0), core.Pt(3, 1), g))
	assert.True(t, gridgraph.LineOfSight(core.Pt(3, 1), core.Pt(0, 0), g))
}

// Direction does not matter when both directions cross the same cells.
func TestLineOfSight_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	b := core.Rect(-5, -5, 15, 10)
	free := gridgraph.New(b, false)
	full := gridgraph.New(b, true)
	mixed := gridgraph.New(b, false)
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			mixed.Set(core.Pt(x, y), rng.Float64() < 0.2)
		}
	}

	point := func() core.Point {
		return core.Pt(b.Min.X+rng.Intn(b.Width()), b.Min.Y+rng.Intn(b.Height()))
	}
	for i := 0; i < 1000; i++ {
		a, z := point(), point()
		assert.True(t, gridgraph.LineOfSight(a, z, free))
		assert.True(t, gridgraph.LineOfSight(z, a, free))
		assert.False(t, gridgraph.LineOfSight(a, z, full))
		assert.False(t, gridgraph.LineOfSight(z, a, full))

		forward := append(line(a, z), z)
		backward := append(line(z, a), a)
		slices.SortFunc(forward, cmpPoint)
		slices.SortFunc(backward, cmpPoint)
		if slices.Equal(forward, backward) {
			assert.Equal(t, gridgraph.LineOfSight(a, z, mixed), gridgraph.LineOfSight(z, a, mixed), "%s↔%s", a, z)
		}
	}
}

func cmpPoint(p, q core.Point) int {
	if p.X != q.X {
		return p.X - q.X
	}
	return p.Y - q.Y
}

func TestVisible_OutsideCellsAreWhateverThePredicateSays(t *testing.T) {
	outside := func(p core.Point) bool { return p.X < 0 }
	assert.True(t, gridgraph.Visible(core.Pt(0, 0), core.Pt(7, 3), outside))
	assert.False(t, gridgraph.Visible(core.Pt(3, 0), core.Pt(-1, 0), outside))
}

func TestTrace(t *testing.T) {
	assert.Nil(t, gridgraph.Trace(nil))
	assert.Equal(t, []core.Point{{X: 2, Y: 2}}, gridgraph.Trace([]core.Point{{X: 2, Y: 2}}))

	got := gridgraph.Trace([]core.Point{{X: 0, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 3}})
	want := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}}
	assert.Equal(t, want, got)
}
