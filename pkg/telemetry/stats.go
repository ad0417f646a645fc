// Package telemetry computes aggregate flock measures per frame window and
// writes them out as CSV for offline analysis.
package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

// WindowStats holds aggregated flock statistics sampled at the end of a
// frame window.
type WindowStats struct {
	Frame      uint64 `csv:"frame"`
	Population int    `csv:"population"`

	// Polarization is the magnitude of the mean unit-velocity vector:
	// 1.0 means the whole flock moves in lockstep, 0 means headings
	// cancel out entirely.
	Polarization float64 `csv:"polarization"`

	MeanSpeed     float64 `csv:"mean_speed"`
	MeanNeighbors float64 `csv:"mean_neighbors"`

	// Nearest-neighbor distance distribution, the standard flock
	// compactness measure.
	NNDistMean float64 `csv:"nn_dist_mean"`
	NNDistP10  float64 `csv:"nn_dist_p10"`
	NNDistP50  float64 `csv:"nn_dist_p50"`
	NNDistP90  float64 `csv:"nn_dist_p90"`
}

// Collect samples the given frame snapshot. The exhaustive pair scan is
// O(n²) but runs once per window, not per frame.
func Collect(frame uint64, boids []flock.Boid, viewRadius float64) WindowStats {
	s := WindowStats{Frame: frame, Population: len(boids)}
	if len(boids) == 0 {
		return s
	}

	var headingSum geometry.Vector2D
	speeds := make([]float64, len(boids))
	for i, b := range boids {
		headingSum = headingSum.Add(b.Vel.Normalize())
		speeds[i] = b.Vel.Len()
	}
	s.Polarization = headingSum.Mul(1 / float64(len(boids))).Len()
	s.MeanSpeed = stat.Mean(speeds, nil)

	if len(boids) < 2 {
		return s
	}

	radiusSq := viewRadius * viewRadius
	nnDists := make([]float64, len(boids))
	totalNeighbors := 0
	for i := range boids {
		minSq := math.MaxFloat64
		for j := range boids {
			if i == j {
				continue
			}
			dSq := boids[i].Pos.DistanceSquaredTo(boids[j].Pos)
			if dSq < radiusSq {
				totalNeighbors++
			}
			if dSq < minSq {
				minSq = dSq
			}
		}
		nnDists[i] = math.Sqrt(minSq)
	}
	s.MeanNeighbors = float64(totalNeighbors) / float64(len(boids))

	sort.Float64s(nnDists)
	s.NNDistMean = stat.Mean(nnDists, nil)
	s.NNDistP10 = stat.Quantile(0.10, stat.Empirical, nnDists, nil)
	s.NNDistP50 = stat.Quantile(0.50, stat.Empirical, nnDists, nil)
	s.NNDistP90 = stat.Quantile(0.90, stat.Empirical, nnDists, nil)
	return s
}

// Log emits the window through the structured logger.
func (s WindowStats) Log(l *slog.Logger) {
	l.Info("telemetry window",
		slog.Uint64("frame", s.Frame),
		slog.Int("population", s.Population),
		slog.Float64("polarization", s.Polarization),
		slog.Float64("mean_speed", s.MeanSpeed),
		slog.Float64("mean_neighbors", s.MeanNeighbors),
		slog.Float64("nn_dist_p50", s.NNDistP50),
	)
}
