package flock

import "math"

type gridKey struct {
	x, y int
}

// spatialGrid is a uniform spatial hash over boid indices. With the cell
// size at least the view radius, every neighbor of a boid lives in the
// 3x3 block of cells around it, turning the O(n²) exhaustive scan into a
// near-O(n) pass for large flocks. It is a behavior-preserving
// optimization: tests assert it returns exactly the exhaustive set.
type spatialGrid struct {
	cells    map[gridKey][]int
	cellSize float64
}

func newSpatialGrid() *spatialGrid {
	return &spatialGrid{cells: make(map[gridKey][]int)}
}

// rebuild reindexes the snapshot. Cell slices are reset to length 0 but
// keep their capacity, so steady-state rebuilds allocate almost nothing.
func (g *spatialGrid) rebuild(boids []Boid, viewRadius float64) {
	// Clamp to a minimum of 10 to avoid degenerate tiny cells.
	g.cellSize = math.Max(viewRadius, 10.0)

	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	for i := range boids {
		key := g.keyFor(boids[i].Pos.X, boids[i].Pos.Y)
		g.cells[key] = append(g.cells[key], i)
	}
}

func (g *spatialGrid) keyFor(x, y float64) gridKey {
	return gridKey{
		x: int(math.Floor(x / g.cellSize)),
		y: int(math.Floor(y / g.cellSize)),
	}
}

// neighborsInto appends to out every other boid index whose squared
// distance to boids[self] is strictly below radiusSq, scanning only the
// 3x3 cell block around the subject. out is reused across calls to avoid
// per-boid allocations.
func (g *spatialGrid) neighborsInto(out []int, boids []Boid, self int, radiusSq float64) []int {
	me := boids[self].Pos
	center := g.keyFor(me.X, me.Y)

	for cx := center.x - 1; cx <= center.x+1; cx++ {
		for cy := center.y - 1; cy <= center.y+1; cy++ {
			for _, j := range g.cells[gridKey{x: cx, y: cy}] {
				if j == self {
					continue
				}
				if me.DistanceSquaredTo(boids[j].Pos) < radiusSq {
					out = append(out, j)
				}
			}
		}
	}
	return out
}

// neighborsExhaustiveInto is the O(n) reference neighbor finder the grid
// is validated against.
func neighborsExhaustiveInto(out []int, boids []Boid, self int, radiusSq float64) []int {
	me := boids[self].Pos
	for j := range boids {
		if j == self {
			continue
		}
		if me.DistanceSquaredTo(boids[j].Pos) < radiusSq {
			out = append(out, j)
		}
	}
	return out
}
