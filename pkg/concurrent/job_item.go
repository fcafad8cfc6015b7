package concurrent

import "lintang/wayfinder/pkg/datastructure"

// EdgeCellJobItem 1 edge yang mau di-index ke h3 cell (pakai midpoint-nya).
type EdgeCellJobItem struct {
	EdgeID datastructure.EdgeID
	Lat    float64
	Lon    float64
}

// EdgeCellResult hasil indexing: edge -> h3 cell string.
type EdgeCellResult struct {
	EdgeID datastructure.EdgeID
	Cell   string
}

type JobI interface {
	EdgeCellJobItem
}

type Job[T JobI] struct {
	ID      int
	JobItem T
}

type JobFunc[T JobI, G any] func(job T) G
