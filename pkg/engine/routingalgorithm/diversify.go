package routingalgorithm

import (
	"lintang/wayfinder/pkg/datastructure"
)

const (
	LabelBalanced          = "Balanced"
	LabelTimeOptimized     = "Time-Optimized"
	LabelTrafficAvoiding   = "Traffic-Avoiding"
	LabelDistanceOptimized = "Distance-Optimized"
)

// routeProfile fixed weight profile untuk 1 weighted search. Weights sengaja
// gak dinormalisasi (gak harus sum ke 1), dipertahankan literal.
type routeProfile struct {
	label     string
	wTime     float64
	wTraffic  float64
	wDistance float64
}

var weightedProfiles = []routeProfile{
	{label: LabelBalanced, wTime: 0.5, wTraffic: 0.3, wDistance: 0.2},
	{label: LabelTimeOptimized, wTime: 0.8, wTraffic: 0.1, wDistance: 0.1},
	{label: LabelTrafficAvoiding, wTime: 0.2, wTraffic: 0.7, wDistance: 0.1},
}

// FindAllRouteOptions jalanin 4 search profile berurutan dan kumpulin route
// yang berhasil, urutannya fixed (gak di-sort ulang by quality):
//
//  1. Balanced (0.5/0.3/0.2)
//  2. Time-Optimized (0.8/0.1/0.1), edges dari (1) dipenalti
//  3. Traffic-Avoiding (0.2/0.7/0.1), edges dari (1)+(2) dipenalti
//  4. Distance-Optimized: exact Dijkstra by raw distance, tanpa penalty
//
// used-edges accumulator cuma nambah (monotonic) antara 3 weighted search;
// search yang gagal di-skip diam-diam, jadi hasilnya 0 sampai 4 route.
func (rt *RouteAlgorithm) FindAllRouteOptions(origin, destination int64) datastructure.RouteSet {
	result := datastructure.RouteSet{
		Options:   make([]datastructure.RouteOption, 0, 4),
		UsedEdges: datastructure.NewEdgeSet(),
	}

	if !rt.g.HasPath(origin, destination) {
		return result
	}

	for _, profile := range weightedProfiles {
		route := rt.SearchWeighted(origin, destination,
			profile.wTime, profile.wTraffic, profile.wDistance, result.UsedEdges)
		if route.Empty() {
			continue
		}
		result.Options = append(result.Options, datastructure.RouteOption{
			Label: profile.label,
			Route: route,
		})
		result.UsedEdges.Union(route.Edges)
	}

	distanceOpt := rt.ShortestByMetric(origin, destination, MetricDistance)
	if !distanceOpt.Empty() {
		result.Options = append(result.Options, datastructure.RouteOption{
			Label: LabelDistanceOptimized,
			Route: distanceOpt,
		})
	}

	return result
}
