package datastructure_test

import (
	"testing"

	"lintang/wayfinder/pkg/datastructure"

	"github.com/stretchr/testify/assert"
)

func TestGraphMultiEdge(t *testing.T) {
	t.Run("parallel edges get distinct keys", func(t *testing.T) {
		g := datastructure.NewGraph()
		g.AddNode(datastructure.Node{ID: 1, Lat: -7.56, Lon: 110.81})
		g.AddNode(datastructure.Node{ID: 2, Lat: -7.57, Lon: 110.82})

		first := g.AddEdge(datastructure.Edge{From: 1, To: 2, Distance: 100, TravelTime: 10})
		second := g.AddEdge(datastructure.Edge{From: 1, To: 2, Distance: 120, TravelTime: 12})

		assert.Equal(t, int32(0), first.Key)
		assert.Equal(t, int32(1), second.Key)
		assert.Equal(t, 2, len(g.EdgesBetween(1, 2)))
		assert.Equal(t, 2, g.NumEdges())

		edge, ok := g.EdgeByID(second)
		assert.True(t, ok)
		assert.Equal(t, 120.0, edge.Distance)
	})

	t.Run("traffic weight score floored at 1", func(t *testing.T) {
		g := datastructure.NewGraph()
		g.AddNode(datastructure.Node{ID: 1, Lat: 0, Lon: 0})
		g.AddNode(datastructure.Node{ID: 2, Lat: 0, Lon: 0.01})

		id := g.AddEdge(datastructure.Edge{From: 1, To: 2, Distance: 100, TravelTime: 10, TrafficWeightScore: 0})

		edge, _ := g.EdgeByID(id)
		assert.Equal(t, 1.0, edge.TrafficWeightScore)
	})

	t.Run("has path follows edge direction", func(t *testing.T) {
		g := datastructure.NewGraph()
		g.AddNode(datastructure.Node{ID: 1, Lat: 0, Lon: 0})
		g.AddNode(datastructure.Node{ID: 2, Lat: 0, Lon: 0.01})
		g.AddNode(datastructure.Node{ID: 3, Lat: 0, Lon: 0.02})
		g.AddEdge(datastructure.Edge{From: 1, To: 2, Distance: 100, TravelTime: 10})
		g.AddEdge(datastructure.Edge{From: 2, To: 3, Distance: 100, TravelTime: 10})

		assert.True(t, g.HasPath(1, 3))
		assert.False(t, g.HasPath(3, 1))
		assert.True(t, g.HasPath(2, 2))
		assert.False(t, g.HasPath(1, 99))
	})
}

func TestRouteAggregates(t *testing.T) {
	t.Run("aggregates recomputed from edge set", func(t *testing.T) {
		g := datastructure.NewGraph()
		g.AddNode(datastructure.Node{ID: 1, Lat: 0, Lon: 0})
		g.AddNode(datastructure.Node{ID: 2, Lat: 0, Lon: 0.01})
		g.AddNode(datastructure.Node{ID: 3, Lat: 0, Lon: 0.02})
		e1 := g.AddEdge(datastructure.Edge{From: 1, To: 2, Distance: 100, TravelTime: 10, TrafficWeightScore: 2})
		e2 := g.AddEdge(datastructure.Edge{From: 2, To: 3, Distance: 150, TravelTime: 20, TrafficWeightScore: 3})

		edges := datastructure.NewEdgeSet()
		edges.Add(e1)
		edges.Add(e2)
		route := datastructure.NewRoute(g, []int64{1, 2, 3}, edges)

		assert.Equal(t, 250.0, route.TotalDistance)
		assert.Equal(t, 30.0, route.TotalTime)
		assert.Equal(t, 5.0, route.TotalTrafficScore)
	})

	t.Run("empty route sentinel", func(t *testing.T) {
		route := datastructure.EmptyRoute()
		assert.True(t, route.Empty())
		assert.Equal(t, 0.0, route.TotalDistance)
	})
}
