package osmparser

import (
	"context"
	"os"
	"strconv"
	"strings"

	"lintang/wayfinder/pkg/datastructure"
	"lintang/wayfinder/pkg/geo"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"
)

var ValidRoadType = map[string]bool{
	"motorway":       true,
	"trunk":          true,
	"primary":        true,
	"secondary":      true,
	"tertiary":       true,
	"unclassified":   true,
	"residential":    true,
	"motorway_link":  true,
	"trunk_link":     true,
	"primary_link":   true,
	"secondary_link": true,
	"tertiary_link":  true,
	"living_street":  true,
	"service":        true,
}

type OSMParser struct {
}

func NewOSMParser() *OSMParser {
	return &OSMParser{}
}

// LoadGraph baca openstreetmap pbf file dan bikin directed multigraph road
// network. Two-way road menghasilkan edge di 2 arah; divided carriageway
// yang di-tag sebagai way terpisah antara node pair yang sama menghasilkan
// parallel edges dengan key beda.
func (p *OSMParser) LoadGraph(mapFile string) (*datastructure.Graph, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, 3)
	defer scanner.Close()

	nodeMap := make(map[osm.NodeID]*osm.Node)
	ways := []*osm.Way{}

	for scanner.Scan() {
		o := scanner.Object()
		switch obj := o.(type) {
		case *osm.Node:
			nodeMap[obj.ID] = obj
		case *osm.Way:
			if ValidRoadType[obj.Tags.Find("highway")] {
				ways = append(ways, obj)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions(len(ways),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][2/3][reset] Membuat road network graph dari osm way..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	g := datastructure.NewGraph()
	for _, way := range ways {
		p.addWay(g, way, nodeMap)
		bar.Add(1)
	}

	return g, nil
}

func (p *OSMParser) addWay(g *datastructure.Graph, way *osm.Way, nodeMap map[osm.NodeID]*osm.Node) {
	roadClass := way.Tags.Find("highway")
	baseSpeed := wayBaseSpeed(way, roadClass)
	oneWay := way.Tags.Find("oneway") == "yes" || roadClass == "motorway" ||
		roadClass == "motorway_link"

	for i := 0; i < len(way.Nodes)-1; i++ {
		fromOSM, okFrom := nodeMap[way.Nodes[i].ID]
		toOSM, okTo := nodeMap[way.Nodes[i+1].ID]
		if !okFrom || !okTo {
			continue
		}

		from := datastructure.Node{ID: int64(fromOSM.ID), Lat: fromOSM.Lat, Lon: fromOSM.Lon}
		to := datastructure.Node{ID: int64(toOSM.ID), Lat: toOSM.Lat, Lon: toOSM.Lon}
		if !g.HasNode(from.ID) {
			g.AddNode(from)
		}
		if !g.HasNode(to.ID) {
			g.AddNode(to)
		}

		distance := geo.HaversineDistance(
			geo.NewLocation(from.Lat, from.Lon),
			geo.NewLocation(to.Lat, to.Lon),
		)
		travelTime := datastructure.TravelTimeFromSpeed(distance, baseSpeed)

		g.AddEdge(datastructure.Edge{
			From:               from.ID,
			To:                 to.ID,
			Distance:           distance,
			TravelTime:         travelTime,
			TrafficWeightScore: 1,
			BaseSpeed:          baseSpeed,
			RoadClass:          roadClass,
		})
		if !oneWay {
			g.AddEdge(datastructure.Edge{
				From:               to.ID,
				To:                 from.ID,
				Distance:           distance,
				TravelTime:         travelTime,
				TrafficWeightScore: 1,
				BaseSpeed:          baseSpeed,
				RoadClass:          roadClass,
			})
		}
	}
}

// wayBaseSpeed max allowed speed (km/h) untuk 1 way: pakai maxspeed tag
// kalau ada (termasuk konversi mph), fallback ke default per road class.
func wayBaseSpeed(way *osm.Way, roadClass string) float64 {
	maxSpeed := way.Tags.Find("maxspeed")
	if maxSpeed != "" {
		ms := strings.ToLower(maxSpeed)
		if strings.Contains(ms, "mph") {
			ms = strings.TrimSpace(strings.ReplaceAll(ms, "mph", ""))
			if speed, err := strconv.ParseFloat(ms, 64); err == nil {
				return speed * 1.60934
			}
		} else if speed, err := strconv.ParseFloat(ms, 64); err == nil {
			return speed
		}
	}
	return datastructure.RoadTypeBaseSpeed(roadClass)
}
