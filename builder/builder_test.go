package builder_test

import (
	"testing"

	"github.com/katalvlaran/pairpath/adjacency"
	"github.com/katalvlaran/pairpath/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var undirected = []adjacency.Option{adjacency.WithDirected(false)}

func TestBuild_Counts(t *testing.T) {
	cases := []struct {
		name     string
		cons     builder.Constructor
		vertices int
		edges    int
	}{
		{"cycle", builder.Cycle(6), 6, 6},
		{"path", builder.Path(5), 5, 4},
		{"star", builder.Star(7), 7, 6},
		{"complete", builder.Complete(5), 5, 10},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"sparse-full", builder.RandomSparse(6, 1), 6, 15},
		{"sparse-empty", builder.RandomSparse(6, 0), 6, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := builder.Build(undirected, nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, l.VertexCount())
			assert.Equal(t, tc.edges, l.EdgeCount())
		})
	}
}

func TestBuild_DirectedCompleteAndGrid(t *testing.T) {
	directed := []adjacency.Option{adjacency.WithDirected(true)}

	l, err := builder.Build(directed, nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 12, l.EdgeCount())

	l, err = builder.Build(directed, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 8, l.EdgeCount())
	assert.True(t, l.HasEdge(1, 0))
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.Build(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, nil, builder.RandomSparse(3, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Build(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuild_SeedDeterminism(t *testing.T) {
	opts := []builder.Option{builder.WithSeed(9), builder.WithUniformWeight(1, 50)}
	a, err := builder.Build(undirected, opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	opts = []builder.Option{builder.WithSeed(9), builder.WithUniformWeight(1, 50)}
	b, err := builder.Build(undirected, opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)

	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for u := range a.Vertices() {
		for v, w := range a.Neighbors(u) {
			wb, err := b.Weight(u, v)
			require.NoError(t, err)
			assert.Equal(t, w, wb)
		}
	}
}

func TestWeightFns(t *testing.T) {
	l, err := builder.Build(undirected, []builder.Option{builder.WithConstantWeight(7)}, builder.Path(3))
	require.NoError(t, err)
	w, err := l.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), w)

	fn := builder.UniformWeightFn(3, 3)
	assert.Equal(t, int64(3), fn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
