// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_euclidean.go - metric instances from planar points.
//
// Contract:
//   - Euclidean: len(points) ≥ 1; weight(i,j) = max(1, ⌈|p_i − p_j|⌉).
//   - RandomMetric: n ≥ 1 points drawn uniformly from [0, grid)², then
//     Euclidean. Deterministic for a fixed seed.
//
// Both results satisfy the triangle inequality (see doc.go).
//
// Complexity: O(n²).

package builder

import (
	"math"

	"github.com/katalvlaran/hamcycle/matrix"
)

const (
	methodEuclidean    = "Euclidean"
	methodRandomMetric = "RandomMetric"
	minMetricNodes     = 1
)

// Point is a planar coordinate.
type Point struct {
	X, Y float64
}

// Euclidean returns the rounded-up distance matrix of points.
func Euclidean(points []Point) (*matrix.Dense, error) {
	n := len(points)
	if n < minMetricNodes {
		return nil, builderErrorf(methodEuclidean, ErrTooFewVertices, "n=%d < min=%d", n, minMetricNodes)
	}

	b, err := matrix.NewBuilder(n)
	if err != nil {
		return nil, builderErrorf(methodEuclidean, err, "n=%d", n)
	}
	var i, j, w int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = int(math.Ceil(math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y)))
			if w < 1 {
				w = 1
			}
			if err = b.SetSymmetric(i, j, w); err != nil {
				return nil, builderErrorf(methodEuclidean, err, "set(%d,%d)", i, j)
			}
		}
	}

	return b.Build(), nil
}

// RandomPoints draws n points uniformly from the configured grid.
func RandomPoints(n int, opts ...Option) []Point {
	cfg := newConfig(opts)
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{
			X: float64(cfg.rng.Intn(cfg.grid)),
			Y: float64(cfg.rng.Intn(cfg.grid)),
		}
	}

	return pts
}

// RandomMetric returns Euclidean(RandomPoints(n, opts...)).
func RandomMetric(n int, opts ...Option) (*matrix.Dense, error) {
	if n < minMetricNodes {
		return nil, builderErrorf(methodRandomMetric, ErrTooFewVertices, "n=%d < min=%d", n, minMetricNodes)
	}

	return Euclidean(RandomPoints(n, opts...))
}
