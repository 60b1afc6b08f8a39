package model

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/agelife/rules"
)

// ErrAgingFailed is returned when the background aging pass did not produce a grid
var ErrAgingFailed = errors.New("aging pass failed")

// agingResult is the one-shot handoff from the aging goroutine to the merge
type agingResult struct {
	cells map[Coord]uint8
	err   error
}

// Stepper computes successive generations with a fixed number of workers
type Stepper struct {
	workers int
	ageFn   func(uint8) (uint8, bool)
}

// NewStepper returns a Stepper; workers <= 0 uses one worker per CPU
func NewStepper(workers int) *Stepper {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Stepper{workers: workers, ageFn: rules.Age}
}

// Workers returns the partition count used by both passes
func (s *Stepper) Workers() int {
	return s.workers
}

// NextGeneration calculates the next generation of g
func (g *Grid) NextGeneration(s *Stepper) (*Grid, error) {
	return s.Step(g)
}

/*
Step builds the next generation from g.

Aging runs in its own goroutine while the caller counts the neighbors of fresh
cells; both passes read the same snapshot and g is never written. The caller
then blocks once on the aging result and applies the birth/survival rule on
top of it.
*/
func (s *Stepper) Step(g *Grid) (*Grid, error) {
	snapshot := g.Cells()

	aged := make(chan agingResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				aged <- agingResult{err: errors.Wrapf(ErrAgingFailed, "[Step] panic: %v", r)}
			}
		}()
		cells, err := s.age(snapshot)
		aged <- agingResult{cells: cells, err: err}
	}()

	counts, err := s.countNeighbors(snapshot)

	res := <-aged
	if res.err != nil {
		return nil, res.err
	}
	if err != nil {
		return nil, err
	}

	next := res.cells
	for pos, n := range counts {
		prev, present := g.cells[pos]
		if rules.Decide(n, prev, present) {
			next[pos] = rules.FreshAge
		}
	}
	return &Grid{cells: next}, nil
}

// partitions splits n items into at most s.workers contiguous ranges
func (s *Stepper) partitions(n int) [][2]int {
	if n == 0 {
		return nil
	}
	var (
		numWorkers = min(s.workers, n)
		perWorker  = (n + numWorkers - 1) / numWorkers // Ceiling division
		ranges     = make([][2]int, 0, numWorkers)
	)
	for i := 0; i < numWorkers; i++ {
		start := i * perWorker
		if start >= n {
			break
		}
		ranges = append(ranges, [2]int{start, min(start+perWorker, n)})
	}
	return ranges
}

// age increments every counter and drops cells that reached the maximum age
func (s *Stepper) age(snapshot []Cell) (map[Coord]uint8, error) {
	var (
		eg     errgroup.Group
		ranges = s.partitions(len(snapshot))
		parts  = make([]map[Coord]uint8, len(ranges))
	)
	for i, r := range ranges {
		i, r := i, r
		eg.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = errors.Wrapf(ErrAgingFailed, "[age] partition %d panic: %v", i, rec)
				}
			}()
			local := make(map[Coord]uint8, r[1]-r[0])
			for _, c := range snapshot[r[0]:r[1]] {
				if age, ok := s.ageFn(c.Age); ok {
					local[c.Pos] = age
				}
			}
			parts[i] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[age] parallel aging failed")
	}

	out := make(map[Coord]uint8, len(snapshot))
	for _, part := range parts {
		for pos, age := range part {
			out[pos] = age
		}
	}
	return out, nil
}

// countNeighbors counts, for every cell adjacent to a fresh cell, how many fresh
// cells touch it, keeping only the counts that can lead to a birth or survival
func (s *Stepper) countNeighbors(snapshot []Cell) (map[Coord]int, error) {
	fresh := make([]Coord, 0, len(snapshot))
	for _, c := range snapshot {
		if c.Age == rules.FreshAge {
			fresh = append(fresh, c.Pos)
		}
	}

	var (
		eg     errgroup.Group
		ranges = s.partitions(len(fresh))
		parts  = make([]map[Coord]int, len(ranges))
	)
	for i, r := range ranges {
		i, r := i, r
		eg.Go(func() error {
			local := make(map[Coord]int, (r[1]-r[0])*len(neighborOffsets))
			for _, pos := range fresh[r[0]:r[1]] {
				for _, n := range pos.Neighbors() {
					local[n]++
				}
			}
			parts[i] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[countNeighbors] parallel count failed")
	}

	counts := mergeCounts(parts)
	for pos, n := range counts {
		if !rules.CanInfluence(n) {
			delete(counts, pos)
		}
	}
	return counts, nil
}

// mergeCounts sums partial counts; the result does not depend on how the input was partitioned
func mergeCounts(parts []map[Coord]int) map[Coord]int {
	if len(parts) == 0 {
		return map[Coord]int{}
	}
	out := parts[0]
	for _, part := range parts[1:] {
		for pos, n := range part {
			out[pos] += n
		}
	}
	return out
}
