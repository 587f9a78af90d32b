package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bearmaps/gridgraph"
)

// diamond links its nine cells only through diagonal steps.
var diamond = [][]int{
	{1, 0, 0, 0, 1},
	{0, 1, 0, 1, 0},
	{0, 0, 1, 0, 0},
	{0, 1, 0, 1, 0},
	{1, 0, 0, 0, 1},
}

func TestConnectedComponents_Connectivity(t *testing.T) {
	assert.Len(t, mustGrid(t, diamond, gridgraph.Conn4).ConnectedComponents(), 9)

	comps := mustGrid(t, diamond, gridgraph.Conn8).ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)
}

func TestConnectedComponents_Edges(t *testing.T) {
	assert.Empty(t, mustGrid(t, [][]int{{0, 0}, {0, 0}}, gridgraph.Conn4).ConnectedComponents())

	comps := mustGrid(t, [][]int{{0, 1}}, gridgraph.Conn4).ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Equal(t, []gridgraph.Cell{{X: 1, Y: 0}}, comps[0])
}

func TestConnectedComponents_Threshold(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.PassableThreshold = 5
	gg, err := gridgraph.NewGridGraph([][]int{
		{5, 4, 6},
		{7, 1, 9},
	}, opts)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.Equal(t, []gridgraph.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}}, comps[0])
	assert.Equal(t, []gridgraph.Cell{{X: 2, Y: 0}, {X: 2, Y: 1}}, comps[1])
}

func TestReachable(t *testing.T) {
	gg := mustGrid(t, diamond, gridgraph.Conn4)
	corner, center := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 2}
	wall := gridgraph.Cell{X: 1, Y: 0}

	ok, err := gg.Reachable(corner, center)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = gg.Reachable(corner, corner)
	require.NoError(t, err)
	assert.True(t, ok)

	// From a wall, any passable neighbor's region is reachable.
	ok, err = gg.Reachable(wall, gridgraph.Cell{X: 1, Y: 1})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = gg.Reachable(corner, wall)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = mustGrid(t, diamond, gridgraph.Conn8).Reachable(corner, gridgraph.Cell{X: 4, Y: 4})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = gg.Reachable(corner, gridgraph.Cell{X: 5, Y: 0})
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}
