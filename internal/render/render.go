// Package render draws a tour as a closed polygon over the graph's vertices.
//
// Vertices sit on the unit circle in index order. Tour legs that follow an
// existing edge are drawn solid; legs across a missing edge are dashed. The
// output format follows the file extension (png, svg, pdf, eps, jpg, tif).
package render

import (
	"image/color"
	"math"
	"strconv"

	"github.com/katalvlaran/hamcycle/matrix"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Size is the side of the square canvas.
var Size = 6 * vg.Inch

var (
	edgeColor    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	missingColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Layout returns the unit-circle position of each of n vertices.
func Layout(n int) plotter.XYs {
	pts := make(plotter.XYs, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i].X = math.Cos(a)
		pts[i].Y = math.Sin(a)
	}

	return pts
}

// Tour renders tour over g into path. A tour that does not end at its start
// is closed before drawing.
func Tour(g *matrix.Dense, tour []int, title, path string) error {
	if g == nil {
		return matrix.ErrNilMatrix
	}
	n := g.Size()
	if len(tour) < 2 {
		return errors.Errorf("render: tour of %d vertices", len(tour))
	}
	for _, v := range tour {
		if v < 0 || v >= n {
			return errors.Wrapf(matrix.ErrOutOfRange, "render: vertex %d", v)
		}
	}
	if tour[0] != tour[len(tour)-1] {
		tour = append(append([]int(nil), tour...), tour[0])
	}

	pts := Layout(n)
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	var u, v int
	for i := 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		leg, err := plotter.NewLine(plotter.XYs{pts[u], pts[v]})
		if err != nil {
			return errors.Wrap(err, "render: leg")
		}
		leg.LineStyle.Width = vg.Points(1.5)
		leg.LineStyle.Color = edgeColor
		if !g.HasEdge(u, v) {
			leg.LineStyle.Color = missingColor
			leg.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		}
		p.Add(leg)
	}

	dots, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "render: vertices")
	}
	dots.GlyphStyle.Radius = vg.Points(3)
	p.Add(dots)

	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: names})
	if err != nil {
		return errors.Wrap(err, "render: labels")
	}
	p.Add(labels)

	// Leave room for labels at the rim.
	p.X.Min, p.X.Max = -1.2, 1.2
	p.Y.Min, p.Y.Max = -1.2, 1.2

	if err = p.Save(Size, Size, path); err != nil {
		return errors.Wrapf(err, "render: save %s", path)
	}

	return nil
}
