package routingalgorithm

import (
	"container/heap"
	"log"
	"math"

	"lintang/wayfinder/pkg/datastructure"
	"lintang/wayfinder/pkg/util"
)

type Metric string

const (
	MetricDistance   Metric = "distance"
	MetricTravelTime Metric = "travel_time"
)

func metricValue(e *datastructure.Edge, metric Metric) float64 {
	switch metric {
	case MetricTravelTime:
		return e.TravelTime
	default:
		return e.Distance
	}
}

// ShortestByMetric plain Dijkstra di 1 raw metric (distance atau travel
// time), tanpa diversification penalty dan tanpa blended cost. Hasilnya
// provably optimal untuk metric itu, beda sama SearchWeighted yang gak punya
// global guarantee begitu penalty aktif.
//
// Dijkstranya cuma ngasih node sequence, jadi identitas edge per hop
// direkonstruksi belakangan: dari semua parallel edge antara tiap pasangan
// node berturutan, pilih yang nilai metric-nya minimum. Itu approximation
// kalau ada beberapa parallel edge sama pendek tapi beda secondary
// attribute.
func (rt *RouteAlgorithm) ShortestByMetric(origin, destination int64, metric Metric) (route datastructure.Route) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("dijkstra %s %d -> %d recovered: %v", metric, origin, destination, r)
			route = datastructure.EmptyRoute()
		}
	}()

	if !rt.g.HasNode(origin) || !rt.g.HasNode(destination) {
		return datastructure.EmptyRoute()
	}

	dist := map[int64]float64{origin: 0}
	prev := make(map[int64]int64)
	visited := make(map[int64]struct{})

	pq := &priorityQueue[int64]{}
	heap.Init(pq)
	heap.Push(pq, &priorityQueueNode[int64]{rank: 0, item: origin})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*priorityQueueNode[int64]).item
		if current == destination {
			break
		}
		if _, ok := visited[current]; ok {
			continue
		}
		visited[current] = struct{}{}

		for _, edge := range rt.g.OutEdges(current) {
			alt := dist[current] + metricValue(edge, metric)
			if old, ok := dist[edge.To]; !ok || alt < old {
				dist[edge.To] = alt
				prev[edge.To] = current
				heap.Push(pq, &priorityQueueNode[int64]{rank: alt, item: edge.To})
			}
		}
	}

	if _, ok := dist[destination]; !ok {
		return datastructure.EmptyRoute()
	}

	path := make([]int64, 0)
	current := destination
	for current != origin {
		p, ok := prev[current]
		if !ok {
			return datastructure.EmptyRoute()
		}
		path = append(path, current)
		current = p
	}
	path = append(path, origin)
	util.ReverseG(path)

	// rekonstruksi edge identity per hop: minimum metric dari parallel edges
	pathEdges := datastructure.NewEdgeSet()
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		minWeight := math.Inf(1)
		var best *datastructure.Edge
		for _, e := range rt.g.EdgesBetween(u, v) {
			if metricValue(e, metric) < minWeight {
				minWeight = metricValue(e, metric)
				best = e
			}
		}
		if best == nil {
			return datastructure.EmptyRoute()
		}
		pathEdges.Add(best.ID())
	}

	return datastructure.NewRoute(rt.g, path, pathEdges)
}
