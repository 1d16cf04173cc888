// Package tsp — exact search by permutation enumeration.
//
// TSPExact fixes the start vertex at position 0 and enumerates the (n-1)!
// orders of the remaining vertices with swap-recurse-swap-back:
//
//	permute(pos):
//	  pos == n → price the closed cycle, keep it if strictly cheaper
//	  else for v in pos..n-1: swap(pos, v); permute(pos+1); swap(pos, v)
//
// Two variants, same answer:
//   - Unpruned: every permutation reaches a leaf; leaves whose cycle uses a
//     missing edge are rejected there.
//   - Pruned:   before swapping v into pos, the branch is skipped when the
//     edge path[pos-1]→path[v] is missing or path[v] already sits in an
//     earlier slot. The closing edge is checked at the leaf.
//
// Both variants visit the surviving leaves in the same order, so ties resolve
// to the same first-found tour.
//
// State lives in one exactSearch value per call (the accumulator): best cost,
// best path and a found flag. There is no "infinite" sentinel; found==false
// after the search means StatusNoSolution.
//
// Complexity: O(n!) time in the worst case, O(n) space. Bound n with
// Options.MaxExactVertices; cancel with Options.Ctx.
package tsp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hamcycle/matrix"
)

// exactSearch is the accumulator shared by one recursive search.
type exactSearch struct {
	g     *matrix.Dense
	n     int
	prune bool
	ctx   context.Context

	path []int // current permutation, path[0] fixed

	found    bool
	bestCost int
	bestPath []int

	leaves int // complete permutations priced
	nodes  int // search nodes entered, drives cancellation polling
	err    error
}

// TSPExact returns the minimum-cost Hamiltonian cycle of g that starts at
// opts.StartVertex.
//
// Result:
//   - StatusSolved: Tour holds n vertices (closing edge implicit), Cost the
//     closed-cycle weight, Explored the number of priced leaves.
//   - StatusNoSolution: no Hamiltonian cycle exists; Tour is nil.
//
// Errors: ErrNilGraph, ErrTooSmall, ErrStartOutOfRange, ErrInvalidOptions,
// ErrTooLarge (n > opts.MaxExactVertices > 0), or opts.Ctx.Err().
func TSPExact(g *matrix.Dense, opts Options) (TSResult, error) {
	n, err := validateGraph(g)
	if err != nil {
		return TSResult{}, err
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}
	if opts.MaxExactVertices < 0 {
		return TSResult{}, fmt.Errorf("tsp: MaxExactVertices=%d: %w", opts.MaxExactVertices, ErrInvalidOptions)
	}
	if opts.MaxExactVertices > 0 && n > opts.MaxExactVertices {
		return TSResult{}, fmt.Errorf("tsp: n=%d > max=%d: %w", n, opts.MaxExactVertices, ErrTooLarge)
	}

	s := &exactSearch{
		g:     g,
		n:     n,
		prune: opts.Pruning,
		ctx:   opts.Ctx,
		path:  initialPath(n, opts.StartVertex),
	}
	s.permute(1)
	if s.err != nil {
		return TSResult{}, s.err
	}

	if !s.found {
		return TSResult{Status: StatusNoSolution, Explored: s.leaves}, nil
	}

	return TSResult{
		Status:   StatusSolved,
		Tour:     s.bestPath,
		Cost:     s.bestCost,
		Explored: s.leaves,
	}, nil
}

// initialPath returns [start, then every other vertex ascending].
func initialPath(n, start int) []int {
	path := make([]int, 0, n)
	path = append(path, start)
	for v := 0; v < n; v++ {
		if v != start {
			path = append(path, v)
		}
	}

	return path
}

// permute fills positions pos..n-1 of s.path.
func (s *exactSearch) permute(pos int) {
	if s.err != nil {
		return
	}
	s.nodes++
	if s.ctx != nil && s.nodes%cancelCheckInterval == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			return
		}
	}

	if pos == s.n {
		s.leaves++
		s.offer()
		return
	}

	var v int
	for v = pos; v < s.n; v++ {
		if s.prune && !s.canPlace(pos, s.path[v]) {
			continue
		}
		s.path[pos], s.path[v] = s.path[v], s.path[pos]
		s.permute(pos + 1)
		s.path[pos], s.path[v] = s.path[v], s.path[pos]
	}
}

// canPlace reports whether cand may occupy pos: an edge from the vertex at
// pos-1 must exist and cand must not already sit in path[0:pos].
func (s *exactSearch) canPlace(pos, cand int) bool {
	if !s.g.HasEdge(s.path[pos-1], cand) {
		return false
	}
	for i := 0; i < pos; i++ {
		if s.path[i] == cand {
			return false
		}
	}

	return true
}

// offer prices the complete permutation and keeps it when strictly cheaper.
func (s *exactSearch) offer() {
	var (
		cost int
		u, v int
		i    int
	)
	for i = 0; i < s.n; i++ {
		u = s.path[i]
		v = s.path[(i+1)%s.n]
		if !s.g.HasEdge(u, v) {
			return // some cycle edge is missing
		}
		cost += s.g.Weight(u, v)
	}

	if !s.found || cost < s.bestCost {
		s.found = true
		s.bestCost = cost
		s.bestPath = CopyTour(s.path)
	}
}
