package flock

import (
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

const (
	// gridThreshold is the population above which the spatial hash beats
	// the exhaustive neighbor scan.
	gridThreshold = 64
	// parallelThreshold is the population above which the read phase is
	// worth fanning out; below it goroutine overhead dominates.
	parallelThreshold = 256
)

// World owns the authoritative boid state and drives one update per boid
// per frame. The contract is a frame-consistent read: every boid's
// steering decision for frame t is computed entirely from frame t−1
// state. That is achieved by double-buffering — all new positions and
// velocities are written into a second buffer which is swapped in only
// after every boid has been processed. Because of that, the read phase is
// embarrassingly parallel across boids; the swap is the barrier.
//
// The World is not safe for concurrent use by multiple callers; the
// enclosing frame loop calls Step, then reads Boids, then repeats.
type World struct {
	cfg  Config
	rng  *rand.Rand
	grid *spatialGrid

	boids []Boid // frame t−1, authoritative
	next  []Boid // frame t under construction

	// jitters is pre-sampled sequentially each frame so the compute phase
	// is a pure function of the snapshot. Sampling inside the workers
	// would make results depend on scheduling order.
	jitters []geometry.Vector2D

	scratch [][]int // per-worker neighbor index buffers

	frame uint64
}

// NewWorld creates a fixed population with randomized positions and
// randomized unit headings scaled to max speed. Identical configs (same
// seed included) produce identical runs.
func NewWorld(cfg *Config) *World {
	w := &World{
		cfg:     *cfg,
		rng:     rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
		grid:    newSpatialGrid(),
		boids:   make([]Boid, cfg.NumBoids),
		next:    make([]Boid, cfg.NumBoids),
		jitters: make([]geometry.Vector2D, cfg.NumBoids),
	}

	numWorkers := runtime.GOMAXPROCS(0)
	w.scratch = make([][]int, numWorkers)
	for i := range w.scratch {
		w.scratch[i] = make([]int, 0, 64)
	}

	bd := boundsFor(&w.cfg)
	for i := range w.boids {
		heading := w.rng.Float64() * 360
		vel := geometry.FromHeadingDegrees(heading).Mul(w.cfg.MaxSpeed)
		w.boids[i] = Boid{
			Index: i,
			Pos: geometry.Vector2D{
				X: w.rng.Float64() * bd.maxX,
				Y: w.rng.Float64() * bd.maxY,
			},
			Vel:     vel,
			PrevVel: vel,
		}
	}
	return w
}

// Boids returns the committed state of the last completed frame. The
// slice is a read-only view valid until the next Step call.
func (w *World) Boids() []Boid {
	return w.boids
}

// Frame returns the number of completed simulation steps.
func (w *World) Frame() uint64 {
	return w.frame
}

// Config returns a copy of the current configuration.
func (w *World) Config() Config {
	return w.cfg
}

// Tuning carries the parameters that may change between frames, e.g. from
// UI sliders. World dimensions, population and seed are fixed for a run.
type Tuning struct {
	ViewRadius       float64
	MaxSpeed         float64
	AlignWeight      float64
	CohesionWeight   float64
	SeparationWeight float64
	SmoothingAlpha   float64
	JitterBound      float64
}

// Tune applies updated rule parameters. It takes effect at the next Step;
// a frame in progress is never torn because Step works from a snapshot of
// the parameters.
func (w *World) Tune(t Tuning) {
	w.cfg.ViewRadius = t.ViewRadius
	w.cfg.MaxSpeed = t.MaxSpeed
	w.cfg.AlignWeight = t.AlignWeight
	w.cfg.CohesionWeight = t.CohesionWeight
	w.cfg.SeparationWeight = t.SeparationWeight
	w.cfg.SmoothingAlpha = t.SmoothingAlpha
	w.cfg.JitterBound = t.JitterBound
}

// Step advances the simulation by one frame: neighbor discovery, the
// three steering rules, combination and smoothing, boundary reflection,
// and the position/velocity commit for every boid.
func (w *World) Step() {
	p := params{
		viewRadiusSq:     w.cfg.ViewRadius * w.cfg.ViewRadius,
		maxSpeed:         w.cfg.MaxSpeed,
		alignWeight:      w.cfg.AlignWeight,
		cohesionWeight:   w.cfg.CohesionWeight,
		separationWeight: w.cfg.SeparationWeight,
		smoothingAlpha:   w.cfg.SmoothingAlpha,
		jitterBound:      w.cfg.JitterBound,
	}
	bd := boundsFor(&w.cfg)
	n := len(w.boids)

	useGrid := n >= gridThreshold
	if useGrid {
		w.grid.rebuild(w.boids, w.cfg.ViewRadius)
	}

	for i := range w.jitters {
		w.jitters[i] = geometry.Vector2D{
			X: (w.rng.Float64()*2 - 1) * p.jitterBound,
			Y: (w.rng.Float64()*2 - 1) * p.jitterBound,
		}
	}

	if w.cfg.Parallel && n >= parallelThreshold {
		w.computeParallel(n, p, bd, useGrid)
	} else {
		w.computeChunk(0, n, 0, p, bd, useGrid)
	}

	// Commit: from here on readers observe frame t.
	w.boids, w.next = w.next, w.boids
	w.frame++
}

// computeParallel fans the read phase out over worker chunks. Each worker
// writes only its own range of next and reads only the immutable frame
// t−1 snapshot, so no synchronization beyond the final Wait is needed.
func (w *World) computeParallel(n int, p params, bd bounds, useGrid bool) {
	numWorkers := len(w.scratch)
	chunkSize := (n + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		start := worker * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end, worker int) {
			defer wg.Done()
			w.computeChunk(start, end, worker, p, bd, useGrid)
		}(start, end, worker)
	}
	wg.Wait()
}

// computeChunk processes boids [i0, i1) into the next buffer.
func (w *World) computeChunk(i0, i1, worker int, p params, bd bounds, useGrid bool) {
	buf := w.scratch[worker]
	for i := i0; i < i1; i++ {
		buf = buf[:0]
		if useGrid {
			buf = w.grid.neighborsInto(buf, w.boids, i, p.viewRadiusSq)
		} else {
			buf = neighborsExhaustiveInto(buf, w.boids, i, p.viewRadiusSq)
		}

		vel := steer(w.boids, i, buf, w.jitters[i], p)
		vel = bd.reflect(w.boids[i].Pos, vel)

		w.next[i] = Boid{
			Index:   i,
			Pos:     bd.clamp(w.boids[i].Pos.Add(vel)),
			Vel:     vel,
			PrevVel: w.boids[i].Vel,
		}
	}
	w.scratch[worker] = buf
}
