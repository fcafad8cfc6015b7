package datastructure

import (
	"math"
	"sort"
)

type Node struct {
	ID  int64
	Lat float64
	Lon float64
}

// EdgeID identitas 1 edge di multigraph. Key membedakan parallel edges
// antara pasangan node yang sama (misal jalan dengan 2 jalur terpisah).
type EdgeID struct {
	From int64
	To   int64
	Key  int32
}

type Edge struct {
	From               int64
	To                 int64
	Key                int32
	Distance           float64 // meter
	TravelTime         float64 // detik, math.Inf(1) kalau edge tidak bisa dilewati
	TrafficWeightScore float64 // minimum 1 (free flow)
	BaseSpeed          float64 // km/h
	RoadClass          string
	TrafficLevel       string
}

func (e *Edge) ID() EdgeID {
	return EdgeID{From: e.From, To: e.To, Key: e.Key}
}

type EdgeSet map[EdgeID]struct{}

func NewEdgeSet() EdgeSet {
	return make(EdgeSet)
}

func (s EdgeSet) Add(id EdgeID) {
	s[id] = struct{}{}
}

func (s EdgeSet) Contains(id EdgeID) bool {
	_, ok := s[id]
	return ok
}

func (s EdgeSet) Union(other EdgeSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

func (s EdgeSet) Intersection(other EdgeSet) int {
	count := 0
	for id := range other {
		if s.Contains(id) {
			count++
		}
	}
	return count
}

// Graph directed multigraph dari road network. Routing engine cuma baca
// graphnya, yang mutate edge attribute cuma traffic layer sebelum query.
type Graph struct {
	nodes     map[int64]Node
	outEdges  map[int64][]*Edge
	edgeCount int
}

func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[int64]Node),
		outEdges: make(map[int64][]*Edge),
	}
}

func (g *Graph) AddNode(n Node) {
	g.nodes[n.ID] = n
}

// AddEdge insert directed edge baru. Key di-assign otomatis: jumlah edge
// paralel yang sudah ada antara (from, to).
func (g *Graph) AddEdge(e Edge) EdgeID {
	key := int32(0)
	for _, out := range g.outEdges[e.From] {
		if out.To == e.To {
			key++
		}
	}
	e.Key = key
	if e.TrafficWeightScore < 1 {
		e.TrafficWeightScore = 1
	}
	edge := e
	g.outEdges[e.From] = append(g.outEdges[e.From], &edge)
	g.edgeCount++
	return edge.ID()
}

func (g *Graph) HasNode(id int64) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) NodeByID(id int64) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) OutEdges(id int64) []*Edge {
	return g.outEdges[id]
}

func (g *Graph) EdgesBetween(u, v int64) []*Edge {
	var edges []*Edge
	for _, e := range g.outEdges[u] {
		if e.To == v {
			edges = append(edges, e)
		}
	}
	return edges
}

func (g *Graph) EdgeByID(id EdgeID) (*Edge, bool) {
	for _, e := range g.outEdges[id.From] {
		if e.To == id.To && e.Key == id.Key {
			return e, true
		}
	}
	return nil, false
}

// Nodes urut by ID biar deterministic.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}

// Edges urut by source node ID (terus by adjacency order) biar deterministic.
func (g *Graph) Edges() []*Edge {
	froms := make([]int64, 0, len(g.outEdges))
	for from := range g.outEdges {
		froms = append(froms, from)
	}
	sort.Slice(froms, func(i, j int) bool { return froms[i] < froms[j] })

	edges := make([]*Edge, 0, g.edgeCount)
	for _, from := range froms {
		edges = append(edges, g.outEdges[from]...)
	}
	return edges
}

func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

func (g *Graph) NumEdges() int {
	return g.edgeCount
}

// HasPath BFS reachability check, dipakai orchestrator buat early exit
// sebelum jalanin 4 profile search.
func (g *Graph) HasPath(origin, destination int64) bool {
	if !g.HasNode(origin) || !g.HasNode(destination) {
		return false
	}
	if origin == destination {
		return true
	}
	visited := map[int64]struct{}{origin: {}}
	queue := []int64{origin}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, e := range g.outEdges[current] {
			if e.To == destination {
				return true
			}
			if _, ok := visited[e.To]; ok {
				continue
			}
			visited[e.To] = struct{}{}
			queue = append(queue, e.To)
		}
	}
	return false
}

func RoadTypeBaseSpeed(roadType string) float64 {
	switch roadType {
	case "motorway":
		return 120
	case "trunk":
		return 90
	case "primary":
		return 80
	case "secondary":
		return 60
	case "tertiary":
		return 50
	case "residential":
		return 40
	case "service":
		return 30
	case "unclassified":
		return 40
	case "living_street":
		return 20
	default:
		return 40
	}
}

// TravelTimeFromSpeed base travel time (detik) dari distance (meter) dan
// speed (km/h).
func TravelTimeFromSpeed(distanceM, speedKmh float64) float64 {
	if speedKmh <= 0 {
		return math.Inf(1)
	}
	return distanceM / (speedKmh / 3.6)
}
