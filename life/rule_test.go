package life

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, rows [][]uint8) *Grid {
	t.Helper()
	g, err := FromRows(rows)
	require.NoError(t, err)
	return g
}

func full(rows, cols int) *Grid {
	g := NewGrid(rows, cols)
	for i := range g.cells {
		g.cells[i] = 1
	}
	return g
}

func TestNeighborsClampedAtEdges(t *testing.T) {
	g := full(4, 5)
	assert.Equal(t, 3, Neighbors(g, 0, 0))
	assert.Equal(t, 3, Neighbors(g, 0, 4))
	assert.Equal(t, 3, Neighbors(g, 3, 0))
	assert.Equal(t, 3, Neighbors(g, 3, 4))
	assert.Equal(t, 5, Neighbors(g, 0, 2))
	assert.Equal(t, 5, Neighbors(g, 2, 0))
	assert.Equal(t, 8, Neighbors(g, 1, 1))
}

func TestNeighborsExcludesSelf(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	assert.Equal(t, 0, Neighbors(g, 1, 1))
	assert.Equal(t, 1, Neighbors(g, 0, 0))
}

func TestNeighborsSingleCell(t *testing.T) {
	g := mustGrid(t, [][]uint8{{1}})
	assert.Equal(t, 0, Neighbors(g, 0, 0))
}

// centre places n live neighbours around (1,1) of a 3x3 grid.
func centre(alive uint8, n int) *Grid {
	g := NewGrid(3, 3)
	g.set(1, 1, alive)
	placed := 0
	for i := 0; i < 9 && placed < n; i++ {
		if i == 4 {
			continue
		}
		g.cells[i] = 1
		placed++
	}
	return g
}

func TestStepSurvival(t *testing.T) {
	for n := 0; n <= 8; n++ {
		next := Step(centre(1, n))
		want := uint8(0)
		if n == 2 || n == 3 {
			want = 1
		}
		assert.Equal(t, want, next.At(1, 1), "live cell with %d neighbours", n)
	}
}

func TestStepBirth(t *testing.T) {
	for n := 0; n <= 8; n++ {
		next := Step(centre(0, n))
		want := uint8(0)
		if n == 3 {
			want = 1
		}
		assert.Equal(t, want, next.At(1, 1), "dead cell with %d neighbours", n)
	}
}

func TestStepBlinker(t *testing.T) {
	vertical := mustGrid(t, [][]uint8{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	})
	horizontal := mustGrid(t, [][]uint8{
		{0, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	})
	first := Step(vertical)
	assert.True(t, first.Equal(horizontal), "got %v", first.Matrix())
	assert.True(t, Step(first).Equal(vertical))
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := RandomGrid(20, 30, 0.4, rand.New(rand.NewSource(7)))
	orig := g.Clone()

	a := Step(g)
	b := Step(g)

	assert.True(t, g.Equal(orig))
	assert.True(t, a.Equal(b))
	assert.NotSame(t, g, a)
	assert.Equal(t, g.Rows(), a.Rows())
	assert.Equal(t, g.Cols(), a.Cols())
}

func TestStepFullGridCornersOnlySurvive(t *testing.T) {
	next := Step(full(4, 4))
	assert.Equal(t, [][]uint8{
		{1, 0, 0, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 0, 0, 1},
	}, next.Matrix())
}

func TestStepAllDead(t *testing.T) {
	g := NewGrid(4, 4)
	next := Step(g)
	assert.Equal(t, 0, next.Alive())
	assert.Equal(t, 0.0, next.Population())
}
