package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"lintang/wayfinder/domain"
	"lintang/wayfinder/pkg/datastructure"
	"lintang/wayfinder/pkg/engine/routingalgorithm"
	"lintang/wayfinder/pkg/snap"
	"lintang/wayfinder/pkg/util"

	"github.com/twpayne/go-polyline"
)

type Geocoder interface {
	Geocode(address, place string) (float64, float64, error)
}

type GraphCache interface {
	GetRegionGraph(place string) (*datastructure.Graph, error)
	SaveRegionGraph(place string, g *datastructure.Graph) error
}

type GraphLoader interface {
	LoadGraph(mapFile string) (*datastructure.Graph, error)
}

type TrafficService interface {
	InitializeConditions(g *datastructure.Graph, depLat, depLon, destLat, destLon float64)
}

type NavigationService struct {
	geocoder Geocoder
	cache    GraphCache
	loader   GraphLoader
	traffic  TrafficService
	mapFile  string
	region   string

	// graph cuma boleh dimutasi traffic layer, dan gak boleh barengan sama
	// routing query yang lagi jalan
	mu    sync.Mutex
	graph *datastructure.Graph
	index *snap.NodeIndex
	rt    *routingalgorithm.RouteAlgorithm
}

func NewNavigationService(geocoder Geocoder, cache GraphCache, loader GraphLoader,
	traffic TrafficService, mapFile, region string) *NavigationService {
	return &NavigationService{
		geocoder: geocoder,
		cache:    cache,
		loader:   loader,
		traffic:  traffic,
		mapFile:  mapFile,
		region:   region,
	}
}

// PreloadGraph pasang road network graph yang sudah jadi (dipakai di test
// dan warm-up startup).
func (uc *NavigationService) PreloadGraph(g *datastructure.Graph) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.setGraph(g)
}

// WarmUp load road network di awal biar query pertama gak nunggu parsing.
func (uc *NavigationService) WarmUp() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.ensureGraph()
}

func (uc *NavigationService) setGraph(g *datastructure.Graph) {
	uc.graph = g
	uc.index = snap.NewNodeIndex(g)
	uc.rt = routingalgorithm.NewRouteAlgorithm(g)
}

// ensureGraph load graph dari cache, fallback build dari osm file terus
// simpan ke cache. Harus dipanggil sambil pegang uc.mu.
func (uc *NavigationService) ensureGraph() error {
	if uc.graph != nil {
		return nil
	}

	g, err := uc.cache.GetRegionGraph(uc.region)
	if err == nil {
		log.Printf("loaded cached road network for %s: %d nodes %d edges", uc.region, g.NumNodes(), g.NumEdges())
		uc.setGraph(g)
		return nil
	}
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) || domainErr.Code() != domain.ErrNotFound {
		return err
	}

	g, err = uc.loader.LoadGraph(uc.mapFile)
	if err != nil {
		return domain.WrapErrorf(err, domain.ErrInternalServerError, "error loading road network from %s", uc.mapFile)
	}
	log.Printf("built road network for %s: %d nodes %d edges", uc.region, g.NumNodes(), g.NumEdges())

	if err := uc.cache.SaveRegionGraph(uc.region, g); err != nil {
		// cache failure gak fatal, graphnya tetap bisa dipakai
		log.Printf("error caching road network for %s: %v", uc.region, err)
	}
	uc.setGraph(g)
	return nil
}

// RouteOptionResult 1 route option siap di-render presentation layer.
type RouteOptionResult struct {
	Label             string
	Path              []int64
	Polyline          string
	Route             []datastructure.Coordinate
	Edges             []datastructure.EdgeID
	TotalTime         float64 // detik
	TotalDistance     float64 // meter
	TotalTrafficScore float64
	TimeMinutes       float64
	DistanceKm        float64
	AvgTraffic        float64
}

// RouteOptions cari route options antara 2 koordinat: snap ke node graph
// terdekat, apply kondisi traffic, terus jalanin diversification
// orchestrator. List kosong artinya gak ada route (bukan error).
func (uc *NavigationService) RouteOptions(ctx context.Context, srcLat, srcLon,
	dstLat, dstLon float64) ([]RouteOptionResult, error) {

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.ensureGraph(); err != nil {
		return nil, err
	}

	origin, err := uc.index.SnapToNearestNode(util.TruncateFloat64(srcLat, 6), util.TruncateFloat64(srcLon, 6))
	if err != nil {
		return nil, err
	}
	destination, err := uc.index.SnapToNearestNode(util.TruncateFloat64(dstLat, 6), util.TruncateFloat64(dstLon, 6))
	if err != nil {
		return nil, err
	}

	uc.traffic.InitializeConditions(uc.graph, srcLat, srcLon, dstLat, dstLon)

	routeSet := uc.rt.FindAllRouteOptions(origin.ID, destination.ID)

	results := make([]RouteOptionResult, 0, len(routeSet.Options))
	for _, opt := range routeSet.Options {
		results = append(results, uc.buildResult(opt))
	}
	return results, nil
}

// RouteOptionsByAddress resolve 2 alamat via geocoder dulu, terus
// RouteOptions biasa.
func (uc *NavigationService) RouteOptionsByAddress(ctx context.Context,
	departureAddress, destinationAddress, place string) ([]RouteOptionResult, error) {

	depLat, depLon, err := uc.geocoder.Geocode(departureAddress, place)
	if err != nil {
		return nil, err
	}
	destLat, destLon, err := uc.geocoder.Geocode(destinationAddress, place)
	if err != nil {
		return nil, err
	}

	return uc.RouteOptions(ctx, depLat, depLon, destLat, destLon)
}

func (uc *NavigationService) buildResult(opt datastructure.RouteOption) RouteOptionResult {
	coords := make([][]float64, 0, len(opt.Path))
	route := make([]datastructure.Coordinate, 0, len(opt.Path))
	for _, nodeID := range opt.Path {
		node, ok := uc.graph.NodeByID(nodeID)
		if !ok {
			continue
		}
		coords = append(coords, []float64{node.Lat, node.Lon})
		route = append(route, datastructure.NewCoordinate(node.Lat, node.Lon))
	}

	edges := make([]datastructure.EdgeID, 0, len(opt.Edges))
	for id := range opt.Edges {
		edges = append(edges, id)
	}

	avgTraffic := 0.0
	if len(opt.Path) > 1 {
		avgTraffic = opt.TotalTrafficScore / float64(len(opt.Path)-1)
	}

	return RouteOptionResult{
		Label:             opt.Label,
		Path:              opt.Path,
		Polyline:          string(polyline.EncodeCoords(coords)),
		Route:             route,
		Edges:             edges,
		TotalTime:         opt.TotalTime,
		TotalDistance:     opt.TotalDistance,
		TotalTrafficScore: opt.TotalTrafficScore,
		TimeMinutes:       util.RoundFloat(opt.TotalTime/60, 1),
		DistanceKm:        util.RoundFloat(opt.TotalDistance/1000, 1),
		AvgTraffic:        util.RoundFloat(avgTraffic, 1),
	}
}
