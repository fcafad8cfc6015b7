package routingalgorithm_test

import (
	"testing"

	"lintang/wayfinder/pkg/datastructure"
	"lintang/wayfinder/pkg/engine/routingalgorithm"

	"github.com/stretchr/testify/assert"
)

func TestShortestByMetric(t *testing.T) {
	t.Run("success shortest by distance is globally optimal", func(t *testing.T) {
		// 1 -> 2 -> 4 total 700m tapi lambat, 1 -> 3 -> 4 total 1000m tapi cepat
		g := datastructure.NewGraph()
		g.AddNode(datastructure.Node{ID: 1, Lat: -7.5600, Lon: 110.8100})
		g.AddNode(datastructure.Node{ID: 2, Lat: -7.5595, Lon: 110.8110})
		g.AddNode(datastructure.Node{ID: 3, Lat: -7.5605, Lon: 110.8110})
		g.AddNode(datastructure.Node{ID: 4, Lat: -7.5600, Lon: 110.8120})
		g.AddEdge(datastructure.Edge{From: 1, To: 2, Distance: 350, TravelTime: 300, TrafficWeightScore: 1})
		g.AddEdge(datastructure.Edge{From: 2, To: 4, Distance: 350, TravelTime: 300, TrafficWeightScore: 1})
		g.AddEdge(datastructure.Edge{From: 1, To: 3, Distance: 500, TravelTime: 30, TrafficWeightScore: 1})
		g.AddEdge(datastructure.Edge{From: 3, To: 4, Distance: 500, TravelTime: 30, TrafficWeightScore: 1})

		rt := routingalgorithm.NewRouteAlgorithm(g)

		byDistance := rt.ShortestByMetric(1, 4, routingalgorithm.MetricDistance)
		assert.Equal(t, []int64{1, 2, 4}, byDistance.Path)
		assert.Equal(t, 700.0, byDistance.TotalDistance)

		byTime := rt.ShortestByMetric(1, 4, routingalgorithm.MetricTravelTime)
		assert.Equal(t, []int64{1, 3, 4}, byTime.Path)
		assert.Equal(t, 60.0, byTime.TotalTime)
	})

	t.Run("parallel edge identity reconstructed by minimum metric", func(t *testing.T) {
		g := datastructure.NewGraph()
		g.AddNode(datastructure.Node{ID: 1, Lat: -7.5600, Lon: 110.8100})
		g.AddNode(datastructure.Node{ID: 2, Lat: -7.5610, Lon: 110.8110})
		long := g.AddEdge(datastructure.Edge{From: 1, To: 2, Distance: 700, TravelTime: 50, TrafficWeightScore: 1})
		short := g.AddEdge(datastructure.Edge{From: 1, To: 2, Distance: 500, TravelTime: 80, TrafficWeightScore: 3})

		rt := routingalgorithm.NewRouteAlgorithm(g)
		route := rt.ShortestByMetric(1, 2, routingalgorithm.MetricDistance)

		assert.Equal(t, []int64{1, 2}, route.Path)
		assert.True(t, route.Edges.Contains(short))
		assert.False(t, route.Edges.Contains(long))
		assert.Equal(t, 500.0, route.TotalDistance)
		assert.Equal(t, 80.0, route.TotalTime)
		assert.Equal(t, 3.0, route.TotalTrafficScore)
	})

	t.Run("missing endpoint returns empty route", func(t *testing.T) {
		g := buildChainGraph()
		rt := routingalgorithm.NewRouteAlgorithm(g)

		assert.True(t, rt.ShortestByMetric(99, 4, routingalgorithm.MetricDistance).Empty())
		assert.True(t, rt.ShortestByMetric(1, 99, routingalgorithm.MetricDistance).Empty())
	})

	t.Run("unreachable destination returns empty route", func(t *testing.T) {
		g := buildChainGraph()
		g.AddNode(datastructure.Node{ID: 10, Lat: -7.5700, Lon: 110.8200})
		rt := routingalgorithm.NewRouteAlgorithm(g)

		assert.True(t, rt.ShortestByMetric(1, 10, routingalgorithm.MetricDistance).Empty())
	})
}
