package service_test

import (
	"context"
	"testing"

	"lintang/wayfinder/domain"
	"lintang/wayfinder/pkg/datastructure"
	"lintang/wayfinder/pkg/server/rest/service"

	"github.com/stretchr/testify/assert"
)

type fakeGeocoder struct {
	coords map[string][2]float64
}

func (f *fakeGeocoder) Geocode(address, place string) (float64, float64, error) {
	c, ok := f.coords[address]
	if !ok {
		return 0, 0, domain.WrapErrorf(nil, domain.ErrNotFound, "no geocoding result for %s", address)
	}
	return c[0], c[1], nil
}

type fakeCache struct{}

func (f *fakeCache) GetRegionGraph(place string) (*datastructure.Graph, error) {
	return nil, domain.WrapErrorf(nil, domain.ErrNotFound, "region %s not cached", place)
}

func (f *fakeCache) SaveRegionGraph(place string, g *datastructure.Graph) error {
	return nil
}

type fakeLoader struct {
	g *datastructure.Graph
}

func (f *fakeLoader) LoadGraph(mapFile string) (*datastructure.Graph, error) {
	return f.g, nil
}

type noopTraffic struct{}

func (n *noopTraffic) InitializeConditions(g *datastructure.Graph, depLat, depLon, destLat, destLon float64) {
}

func buildServiceGraph() *datastructure.Graph {
	g := datastructure.NewGraph()
	g.AddNode(datastructure.Node{ID: 1, Lat: -7.5600, Lon: 110.8100})
	g.AddNode(datastructure.Node{ID: 2, Lat: -7.5610, Lon: 110.8110})
	g.AddNode(datastructure.Node{ID: 3, Lat: -7.5620, Lon: 110.8120})
	g.AddEdge(datastructure.Edge{From: 1, To: 2, Distance: 400, TravelTime: 36, TrafficWeightScore: 1})
	g.AddEdge(datastructure.Edge{From: 2, To: 3, Distance: 400, TravelTime: 36, TrafficWeightScore: 1})
	return g
}

func newTestService(g *datastructure.Graph) *service.NavigationService {
	geocoder := &fakeGeocoder{coords: map[string][2]float64{
		"Stasiun Balapan": {-7.5600, 110.8100},
		"Pasar Gede":      {-7.5620, 110.8120},
	}}
	svc := service.NewNavigationService(geocoder, &fakeCache{}, &fakeLoader{g: g}, &noopTraffic{}, "test.osm.pbf", "test-region")
	svc.PreloadGraph(g)
	return svc
}

func TestRouteOptionsService(t *testing.T) {
	t.Run("success route options between coordinates", func(t *testing.T) {
		svc := newTestService(buildServiceGraph())

		results, err := svc.RouteOptions(context.Background(), -7.5601, 110.8101, -7.5619, 110.8119)

		assert.NoError(t, err)
		assert.Equal(t, 4, len(results))
		for _, res := range results {
			assert.NotEmpty(t, res.Polyline)
			assert.Equal(t, []int64{1, 2, 3}, res.Path)
			assert.Equal(t, 1.2, res.TimeMinutes)
			assert.Equal(t, 0.8, res.DistanceKm)
		}
	})

	t.Run("success route options by address", func(t *testing.T) {
		svc := newTestService(buildServiceGraph())

		results, err := svc.RouteOptionsByAddress(context.Background(), "Stasiun Balapan", "Pasar Gede", "Surakarta, Indonesia")

		assert.NoError(t, err)
		assert.Equal(t, 4, len(results))
	})

	t.Run("unknown address returns not found", func(t *testing.T) {
		svc := newTestService(buildServiceGraph())

		_, err := svc.RouteOptionsByAddress(context.Background(), "unknown", "Pasar Gede", "Surakarta, Indonesia")

		assert.Error(t, err)
	})

	t.Run("disconnected endpoints return empty option list", func(t *testing.T) {
		g := buildServiceGraph()
		g.AddNode(datastructure.Node{ID: 10, Lat: -7.9000, Lon: 111.0000})
		svc := newTestService(g)

		results, err := svc.RouteOptions(context.Background(), -7.5601, 110.8101, -7.9001, 111.0001)

		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("loads graph from loader when not preloaded", func(t *testing.T) {
		g := buildServiceGraph()
		geocoder := &fakeGeocoder{}
		svc := service.NewNavigationService(geocoder, &fakeCache{}, &fakeLoader{g: g}, &noopTraffic{}, "test.osm.pbf", "test-region")

		results, err := svc.RouteOptions(context.Background(), -7.5601, 110.8101, -7.5619, 110.8119)

		assert.NoError(t, err)
		assert.Equal(t, 4, len(results))
	})
}
