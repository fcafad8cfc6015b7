package traffic_test

import (
	"testing"
	"time"

	"lintang/wayfinder/pkg/datastructure"
	"lintang/wayfinder/pkg/traffic"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func buildHighwayGraph() *datastructure.Graph {
	g := datastructure.NewGraph()
	g.AddNode(datastructure.Node{ID: 1, Lat: -7.5600, Lon: 110.8100})
	g.AddNode(datastructure.Node{ID: 2, Lat: -7.5610, Lon: 110.8110})
	g.AddNode(datastructure.Node{ID: 3, Lat: -7.5620, Lon: 110.8120})
	g.AddEdge(datastructure.Edge{From: 1, To: 2, Distance: 500, TravelTime: 30, TrafficWeightScore: 1, RoadClass: "motorway"})
	g.AddEdge(datastructure.Edge{From: 2, To: 3, Distance: 500, TravelTime: 60, TrafficWeightScore: 1, RoadClass: "residential"})
	return g
}

func rushHourClock() time.Time {
	return time.Date(2024, 8, 12, 8, 0, 0, 0, time.UTC)
}

func TestInitializeConditions(t *testing.T) {
	t.Run("simulated traffic sets valid scores and levels", func(t *testing.T) {
		g := buildHighwayGraph()
		svc := traffic.NewServiceWithSource(traffic.NewTomTomClient(""), rand.NewSource(42), rushHourClock)

		svc.InitializeConditions(g, -7.5600, 110.8100, -7.5620, 110.8120)

		for _, edge := range g.Edges() {
			assert.Contains(t, []float64{1, 2, 3}, edge.TrafficWeightScore)
			assert.Contains(t, []string{"light", "medium", "heavy"}, edge.TrafficLevel)
			assert.GreaterOrEqual(t, edge.TrafficWeightScore, 1.0)
		}
	})

	t.Run("simulation deterministic with same seed", func(t *testing.T) {
		gOne := buildHighwayGraph()
		gTwo := buildHighwayGraph()

		svcOne := traffic.NewServiceWithSource(traffic.NewTomTomClient(""), rand.NewSource(7), rushHourClock)
		svcTwo := traffic.NewServiceWithSource(traffic.NewTomTomClient(""), rand.NewSource(7), rushHourClock)

		svcOne.InitializeConditions(gOne, -7.5600, 110.8100, -7.5620, 110.8120)
		svcTwo.InitializeConditions(gTwo, -7.5600, 110.8100, -7.5620, 110.8120)

		edgesOne := gOne.Edges()
		edgesTwo := gTwo.Edges()
		assert.Equal(t, len(edgesOne), len(edgesTwo))
		for i := range edgesOne {
			assert.Equal(t, edgesOne[i].TrafficWeightScore, edgesTwo[i].TrafficWeightScore)
			assert.Equal(t, edgesOne[i].TravelTime, edgesTwo[i].TravelTime)
		}
	})

	t.Run("repeated initialization does not compound multiplier", func(t *testing.T) {
		g := datastructure.NewGraph()
		g.AddNode(datastructure.Node{ID: 1, Lat: -7.5600, Lon: 110.8100})
		g.AddNode(datastructure.Node{ID: 2, Lat: -7.5610, Lon: 110.8110})
		g.AddEdge(datastructure.Edge{From: 1, To: 2, Distance: 500, TravelTime: 30,
			TrafficWeightScore: 1, BaseSpeed: 60, RoadClass: "motorway"})

		svc := traffic.NewServiceWithSource(traffic.NewTomTomClient(""), rand.NewSource(42), rushHourClock)

		for i := 0; i < 5; i++ {
			svc.InitializeConditions(g, -7.5600, 110.8100, -7.5610, 110.8110)
		}

		heavyMultiplier := traffic.Levels[traffic.LevelHeavy].Multiplier
		for _, edge := range g.Edges() {
			assert.LessOrEqual(t, edge.TravelTime, 30*heavyMultiplier)
		}
	})

	t.Run("congestion slows down travel time", func(t *testing.T) {
		g := buildHighwayGraph()
		svc := traffic.NewServiceWithSource(traffic.NewTomTomClient(""), rand.NewSource(42), rushHourClock)

		baseTimes := map[datastructure.EdgeID]float64{}
		for _, edge := range g.Edges() {
			baseTimes[edge.ID()] = edge.TravelTime
		}

		svc.InitializeConditions(g, -7.5600, 110.8100, -7.5620, 110.8120)

		for _, edge := range g.Edges() {
			assert.GreaterOrEqual(t, edge.TravelTime, baseTimes[edge.ID()])
		}
	})
}
