package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bearmaps/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"))

	require.NoError(s.g.AddVertex("A"))
	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"))
	require.Equal(1, s.g.VertexCount())

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
	require.False(s.g.HasVertex(""))
}

func (s *GraphSuite) TestAddEdgeValidation() {
	require := require.New(s.T())

	_, err := s.g.AddEdge("", "B", 1)
	require.ErrorIs(err, core.ErrEmptyVertexID)

	_, err = s.g.AddEdge("A", "B", -1)
	require.ErrorIs(err, core.ErrNegativeWeight)

	_, err = s.g.AddEdge("A", "A", 1)
	require.ErrorIs(err, core.ErrLoopNotAllowed)

	_, err = s.g.AddEdge("A", "B", 1)
	require.NoError(err)
	_, err = s.g.AddEdge("A", "B", 2)
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed)
}

func (s *GraphSuite) TestUndirectedMirror() {
	require := require.New(s.T())
	_, err := s.g.AddEdge("A", "B", 3)
	require.NoError(err)

	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"))
	require.Equal(1, s.g.EdgeCount())

	ids, err := s.g.NeighborIDs("B")
	require.NoError(err)
	require.Equal([]string{"A"}, ids)
}

func (s *GraphSuite) TestDirectedOutgoingOnly() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "A", 1)

	out, err := g.Neighbors("A")
	require.NoError(err)
	require.Len(out, 1)
	require.Equal("B", out[0].To)

	out, err = g.Neighbors("B")
	require.NoError(err)
	require.Empty(out)

	_, err = g.Neighbors("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestMultiEdgesAndLoops() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(err)
	_, err = g.AddEdge("A", "B", 4)
	require.NoError(err)
	_, err = g.AddEdge("A", "A", 0)
	require.NoError(err)

	out, err := g.Neighbors("A")
	require.NoError(err)
	require.Len(out, 3)
	// insertion order by Edge.ID
	require.Equal([]string{"e1", "e2", "e3"}, []string{out[0].ID, out[1].ID, out[2].ID})
}

func (s *GraphSuite) TestVerticesSorted() {
	require := require.New(s.T())
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(s.g.AddVertex(id))
	}
	require.Equal([]string{"a", "b", "c"}, s.g.Vertices())
}

func (s *GraphSuite) TestConcurrentReads() {
	for i := 0; i < 50; i++ {
		_, _ = s.g.AddEdge("hub", string(rune('a'+i%26))+string(rune('a'+i/26)), float64(i))
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.g.Neighbors("hub")
			s.NoError(err)
			s.Len(out, 50)
		}()
	}
	wg.Wait()
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
