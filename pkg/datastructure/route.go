package datastructure

// Route hasil 1 pathfinding query. Aggregate metrics selalu dihitung ulang
// dari edge set (bukan dari node sequence, karena parallel edges bikin node
// sequence ambigu).
type Route struct {
	Path              []int64
	Edges             EdgeSet
	TotalTime         float64 // detik
	TotalDistance     float64 // meter
	TotalTrafficScore float64
}

func EmptyRoute() Route {
	return Route{Path: []int64{}, Edges: NewEdgeSet()}
}

func (r Route) Empty() bool {
	return len(r.Path) == 0
}

// NewRoute bikin Route dari node sequence + edge set, aggregate di-sum dari
// attribute edge yang beneran dilewati.
func NewRoute(g *Graph, path []int64, edges EdgeSet) Route {
	route := Route{
		Path:  path,
		Edges: edges,
	}
	for id := range edges {
		edge, ok := g.EdgeByID(id)
		if !ok {
			continue
		}
		route.TotalTime += edge.TravelTime
		route.TotalDistance += edge.Distance
		route.TotalTrafficScore += edge.TrafficWeightScore
	}
	return route
}

type RouteOption struct {
	Label string
	Route
}

// RouteSet output 1 invocation dari diversification orchestrator. UsedEdges
// union dari edges yang dipakai 3 weighted search (buat diversification
// penalty search berikutnya).
type RouteSet struct {
	Options   []RouteOption
	UsedEdges EdgeSet
}
