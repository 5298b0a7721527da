package engine

import (
	"iter"
	"slices"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathAdjacency returns an undirected path 0—1—…—(n-1) with unit weights.
func pathAdjacency(n int) (iter.Seq[int], Adjacency[int]) {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = i
	}
	adj := AdjacencyFunc[int](func(v int) iter.Seq2[int, int64] {
		return func(yield func(int, int64) bool) {
			if v > 0 && !yield(v-1, 1) {
				return
			}
			if v < n-1 {
				yield(v+1, 1)
			}
		}
	})

	return slices.Values(vs), adj
}

func TestMetrics_CacheHitsAndMisses(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	vs, adj := pathAdjacency(4)
	e := New(vs, adj, WithMetrics(m))

	_, err := e.ShortestPathLen(0, 3)
	require.NoError(t, err)
	_, err = e.ShortestPathLen(0, 2)
	require.NoError(t, err)
	e.SpanningTree()
	e.SpanningTree()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(algoDijkstra, resultMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(algoDijkstra, resultHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(algoPrim, resultMiss)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(algoPrim, resultHit)))

	// Every vertex settles once per run; a path of 4 needs 3 relaxations.
	assert.Equal(t, 4.0, testutil.ToFloat64(m.settled.WithLabelValues(algoDijkstra)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.relaxations.WithLabelValues(algoDijkstra)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.settled.WithLabelValues(algoPrim)))

	n, err := testutil.GatherAndCount(reg, "pairpath_engine_queries_total")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.query(algoDijkstra, resultHit)
		m.settle(algoPrim)
		m.relax(algoPrim)
	})

	unregistered := NewMetrics(nil)
	unregistered.query(algoPrim, resultMiss)
	assert.Equal(t, 1.0, testutil.ToFloat64(unregistered.queries.WithLabelValues(algoPrim, resultMiss)))
}

func TestCache_BoundedSizeEvicts(t *testing.T) {
	m := NewMetrics(nil)
	vs, adj := pathAdjacency(3)
	e := New(vs, adj, WithCacheSize(1), WithMetrics(m))

	for _, src := range []int{0, 1, 0} {
		_, err := e.ShortestPathLen(src, 2)
		require.NoError(t, err)
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(m.queries.WithLabelValues(algoDijkstra, resultMiss)))
	assert.Equal(t, 1, e.paths.Len())
}

func TestCache_DefaultHoldsEverySource(t *testing.T) {
	vs, adj := pathAdjacency(5)
	e := New(vs, adj)
	for src := 0; src < 5; src++ {
		_, err := e.ShortestPathLen(src, 0)
		require.NoError(t, err)
	}
	assert.Equal(t, 5, e.paths.Len())
}

func TestAddSat(t *testing.T) {
	assert.Equal(t, int64(7), addSat(3, 4))
	assert.Equal(t, Infinity, addSat(Infinity, 0))
	assert.Equal(t, Infinity, addSat(Infinity, 9))
	assert.Equal(t, Infinity, addSat(Infinity-2, 5))
}
