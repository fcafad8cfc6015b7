package snap

import (
	"lintang/wayfinder/domain"
	"lintang/wayfinder/pkg/datastructure"

	"github.com/dhconnelly/rtreego"
	"github.com/golang/geo/s2"
)

var tol = 0.0001

type nodeRect struct {
	location rtreego.Point
	node     datastructure.Node
}

func (n *nodeRect) Bounds() rtreego.Rect {
	// bounds dari node = rectangle kecil di sekitar koordinatnya
	return n.location.ToRect(tol)
}

// NodeIndex rtree dari semua node road network, buat snap koordinat
// arbitrary (hasil geocoding) ke node graph terdekat.
type NodeIndex struct {
	tree *rtreego.Rtree
	size int
}

func NewNodeIndex(g *datastructure.Graph) *NodeIndex {
	tree := rtreego.NewTree(2, 25, 50)
	size := 0
	for _, node := range g.Nodes() {
		tree.Insert(&nodeRect{
			location: rtreego.Point{node.Lat, node.Lon},
			node:     node,
		})
		size++
	}
	return &NodeIndex{tree: tree, size: size}
}

// SnapToNearestNode cari node graph paling dekat dengan (lat, lon).
// Kandidat diambil dari rtree, terus di-refine pakai s2 angle distance.
func (idx *NodeIndex) SnapToNearestNode(lat, lon float64) (datastructure.Node, error) {
	if idx.size == 0 {
		return datastructure.Node{}, domain.WrapErrorf(nil, domain.ErrNotFound, "road network graph is empty")
	}

	candidates := idx.tree.NearestNeighbors(7, rtreego.Point{lat, lon})

	queryLatLng := s2.LatLngFromDegrees(lat, lon)
	best := datastructure.Node{}
	bestAngle := -1.0
	for _, spatial := range candidates {
		if spatial == nil {
			continue
		}
		candidate := spatial.(*nodeRect).node
		angle := queryLatLng.Distance(s2.LatLngFromDegrees(candidate.Lat, candidate.Lon)).Radians()
		if bestAngle < 0 || angle < bestAngle {
			bestAngle = angle
			best = candidate
		}
	}
	if bestAngle < 0 {
		return datastructure.Node{}, domain.WrapErrorf(nil, domain.ErrNotFound, "no road network node near %f,%f", lat, lon)
	}
	return best, nil
}
