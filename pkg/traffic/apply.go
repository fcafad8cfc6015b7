package traffic

import (
	"lintang/wayfinder/pkg/concurrent"
	"lintang/wayfinder/pkg/datastructure"

	"github.com/uber/h3-go/v4"
)

const h3IndexResolution = 9

// buildEdgeCellIndex index semua edge ke h3 cell (res 9) pakai midpoint
// edge, biar flow segment tomtom bisa dipetakan ke edge di sekitarnya.
func buildEdgeCellIndex(g *datastructure.Graph) map[string][]datastructure.EdgeID {
	edges := g.Edges()
	workers := concurrent.NewWorkerPool[concurrent.EdgeCellJobItem, concurrent.EdgeCellResult](4, len(edges))

	for _, edge := range edges {
		from, okFrom := g.NodeByID(edge.From)
		to, okTo := g.NodeByID(edge.To)
		if !okFrom || !okTo {
			continue
		}
		workers.AddJob(concurrent.EdgeCellJobItem{
			EdgeID: edge.ID(),
			Lat:    (from.Lat + to.Lat) / 2,
			Lon:    (from.Lon + to.Lon) / 2,
		})
	}
	workers.Close()

	workers.Start(func(job concurrent.EdgeCellJobItem) concurrent.EdgeCellResult {
		latLon := h3.NewLatLng(job.Lat, job.Lon)
		cell := h3.LatLngToCell(latLon, h3IndexResolution)
		return concurrent.EdgeCellResult{EdgeID: job.EdgeID, Cell: cell.String()}
	})
	workers.Wait()

	index := make(map[string][]datastructure.EdgeID)
	for res := range workers.CollectResults() {
		index[res.Cell] = append(index[res.Cell], res.EdgeID)
	}
	return index
}

// applyFlowSegments overlay data real-time tomtom ke edges. Edge yang
// h3 cell-nya sama dengan ujung flow segment dapet level & score dari speed
// ratio segment, travel time dihitung ulang dari current speed.
func (s *Service) applyFlowSegments(g *datastructure.Graph, segments []FlowSegment) {
	index := buildEdgeCellIndex(g)

	for _, segment := range segments {
		if segment.FreeFlowSpeed <= 0 || len(segment.Coordinates.Coordinate) < 2 {
			continue
		}

		ratio := segment.CurrentSpeed / segment.FreeFlowSpeed
		level := levelFromSpeedRatio(ratio)
		cfg := Levels[level]

		start := segment.Coordinates.Coordinate[0]
		end := segment.Coordinates.Coordinate[len(segment.Coordinates.Coordinate)-1]

		for _, coord := range []FlowCoordinate{start, end} {
			cell := h3.LatLngToCell(h3.NewLatLng(coord.Latitude, coord.Longitude), h3IndexResolution)
			for _, edgeID := range index[cell.String()] {
				edge, ok := g.EdgeByID(edgeID)
				if !ok {
					continue
				}
				edge.TrafficLevel = string(level)
				edge.TrafficWeightScore = cfg.Score
				if segment.CurrentSpeed > 0 {
					edge.TravelTime = datastructure.TravelTimeFromSpeed(edge.Distance, segment.CurrentSpeed)
				}
			}
		}
	}
}
