package tsp

import (
	"fmt"

	"github.com/katalvlaran/hamcycle/matrix"
)

// Double returns the multigraph obtained from a spanning-tree matrix by
// mirroring every non-zero entry: for each tree[i][j] != 0 the result holds
// the same weight at both [i][j] and [j][i]. Every vertex of a tree then has
// even degree (twice its tree degree), which makes the result Eulerian.
//
// Pure, O(n²). A nil tree yields ErrNilGraph; a non-tree input is mirrored
// unchanged.
func Double(tree *matrix.Dense) (*matrix.Dense, error) {
	if tree == nil {
		return nil, ErrNilGraph
	}
	b, err := matrix.FromDense(tree)
	if err != nil {
		return nil, fmt.Errorf("tsp: double: %w", err)
	}

	n := tree.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if w := tree.Weight(i, j); w != 0 {
				if err = b.Set(j, i, w); err != nil {
					return nil, fmt.Errorf("tsp: double (%d,%d): %w", j, i, err)
				}
			}
		}
	}

	return b.Build(), nil
}
