package routingalgorithm

import (
	"container/heap"
	"log"

	"lintang/wayfinder/pkg/datastructure"
	"lintang/wayfinder/pkg/geo"
	"lintang/wayfinder/pkg/util"
)

const (
	// globalMaxSpeedKmh upper bound kecepatan di seluruh road network, dipakai
	// heuristic buat lower bound travel time (biar admissible).
	globalMaxSpeedKmh = 120.0

	// minTrafficScore lower bound traffic_weight_score (1 = free flow).
	minTrafficScore = 1.0

	// usedEdgePenalty diversification penalty. Jauh lebih besar dari cost edge
	// normal, jadi edge yang sudah dipakai route sebelumnya praktis dihindari.
	usedEdgePenalty = 1000000.0
)

type RouteAlgorithm struct {
	g *datastructure.Graph
}

func NewRouteAlgorithm(g *datastructure.Graph) *RouteAlgorithm {
	return &RouteAlgorithm{g: g}
}

func (rt *RouteAlgorithm) Graph() *datastructure.Graph {
	return rt.g
}

type cameFromPair struct {
	node int64
	key  int32
}

// estimate admissible lower bound sisa weighted cost dari node ke
// destination. Tiga lower bound dari great-circle distance: minimum travel
// time (distance / max speed), minimum distance cost, minimum traffic cost
// (traffic score dibatasi bawah 1). Estimate gak pernah melebihi cost
// sebenarnya di path manapun.
func (rt *RouteAlgorithm) estimate(node, destination datastructure.Node,
	wTime, wTraffic, wDistance float64) float64 {

	nodeLoc := geo.NewLocation(node.Lat, node.Lon)
	destLoc := geo.NewLocation(destination.Lat, destination.Lon)
	distM := geo.HaversineDistance(nodeLoc, destLoc)

	minTime := distM / (globalMaxSpeedKmh / 3.6)
	minDistanceCost := distM / 1000
	minTrafficCost := distM / 1000 * minTrafficScore

	return wTime*minTime + wDistance*minDistanceCost + wTraffic*minTrafficCost
}

// SearchWeighted best-first search yang minimize linear combination dari
// travel time, traffic exposure, sama distance:
//
//	cost = wTime*travelTime + wTraffic*(score*dist/1000) + wDistance*(dist/1000)
//
// plus usedEdgePenalty kalau edge-nya ada di used (edges yang sudah dipakai
// route sebelumnya). Tiap parallel edge antara pasangan node yang sama
// di-relax terpisah; kalau parallel edge yang suboptimal ke-relax duluan dan
// nodenya sudah closed, edge minimum gak ke-pilih. Itu approximation yang
// disengaja, bukan bug.
//
// Gagal (origin/destination gak ada di graph, frontier habis, predecessor
// chain putus, atau internal fault) selalu return empty route, gak pernah
// panic keluar.
func (rt *RouteAlgorithm) SearchWeighted(origin, destination int64,
	wTime, wTraffic, wDistance float64, used datastructure.EdgeSet) (route datastructure.Route) {

	defer func() {
		if r := recover(); r != nil {
			log.Printf("weighted search %d -> %d recovered: %v", origin, destination, r)
			route = datastructure.EmptyRoute()
		}
	}()

	if used == nil {
		used = datastructure.NewEdgeSet()
	}

	if !rt.g.HasNode(origin) || !rt.g.HasNode(destination) {
		return datastructure.EmptyRoute()
	}
	destNode, _ := rt.g.NodeByID(destination)

	h := func(id int64) float64 {
		n, _ := rt.g.NodeByID(id)
		return rt.estimate(n, destNode, wTime, wTraffic, wDistance)
	}

	gCost := make(map[int64]float64)
	gCost[origin] = 0.0
	cameFrom := make(map[int64]cameFromPair)
	visited := make(map[int64]struct{})

	openSet := &priorityQueue[int64]{}
	heap.Init(openSet)
	heap.Push(openSet, &priorityQueueNode[int64]{rank: h(origin), item: origin})

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*priorityQueueNode[int64]).item

		if current == destination {
			break
		}
		if _, ok := visited[current]; ok {
			continue
		}
		visited[current] = struct{}{}

		for _, edge := range rt.g.OutEdges(current) {
			penalty := 0.0
			if used.Contains(edge.ID()) {
				penalty = usedEdgePenalty
			}

			trafficCost := edge.TrafficWeightScore * edge.Distance / 1000
			distanceCost := edge.Distance / 1000

			combinedCost := wTime*edge.TravelTime +
				wTraffic*trafficCost +
				wDistance*distanceCost +
				penalty

			tentativeGCost := gCost[current] + combinedCost

			if old, ok := gCost[edge.To]; !ok || tentativeGCost < old {
				cameFrom[edge.To] = cameFromPair{node: current, key: edge.Key}
				gCost[edge.To] = tentativeGCost
				heap.Push(openSet, &priorityQueueNode[int64]{
					rank: tentativeGCost + h(edge.To),
					item: edge.To,
				})
			}
		}
	}

	path := make([]int64, 0)
	pathEdges := datastructure.NewEdgeSet()
	current := destination
	for current != origin {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, current)
		pathEdges.Add(datastructure.EdgeID{From: prev.node, To: current, Key: prev.key})
		current = prev.node
	}
	if current == origin {
		path = append(path, origin)
	}
	util.ReverseG(path)

	if len(path) == 0 || path[0] != origin {
		return datastructure.EmptyRoute()
	}

	return datastructure.NewRoute(rt.g, path, pathEdges)
}
