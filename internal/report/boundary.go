package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"perceptron/internal/data"
)

// PlotBoundaryPNG scatters a two feature dataset by label and draws the
// line w1*x1 + w2*x2 - b = 0, where b is the bias weight.
func PlotBoundaryPNG(path string, ds data.Dataset, weights []float64) error {
	if ds.Features() != 2 || len(weights) != 3 {
		return fmt.Errorf("decision boundary needs 2 features, got %d and %d weights", ds.Features(), len(weights))
	}
	if ds.Len() == 0 {
		return fmt.Errorf("empty dataset")
	}

	var pos, neg plotter.XYs
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for i, x := range ds.X {
		pt := plotter.XY{X: x[0], Y: x[1]}
		if ds.Y[i] == 1 {
			pos = append(pos, pt)
		} else {
			neg = append(neg, pt)
		}
		xmin, xmax = math.Min(xmin, x[0]), math.Max(xmax, x[0])
		ymin, ymax = math.Min(ymin, x[1]), math.Max(ymax, x[1])
	}
	padX := math.Max(0.1*(xmax-xmin), 0.25)
	padY := math.Max(0.1*(ymax-ymin), 0.25)
	xmin, xmax, ymin, ymax = xmin-padX, xmax+padX, ymin-padY, ymax+padY

	p := plot.New()
	p.Title.Text = "Decision boundary"
	p.X.Label.Text = ds.Names[0]
	p.Y.Label.Text = ds.Names[1]

	var series []interface{}
	if len(neg) > 0 {
		series = append(series, "label 0", neg)
	}
	if len(pos) > 0 {
		series = append(series, "label 1", pos)
	}
	if err := plotutil.AddScatters(p, series...); err != nil {
		return err
	}

	if line := boundary(weights, xmin, xmax, ymin, ymax); line != nil {
		l, err := plotter.NewLine(line)
		if err != nil {
			return err
		}
		l.Color = plotutil.Color(2)
		p.Add(l)
		p.Legend.Add("boundary", l)
	}
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// boundary returns two points of the separating line, nil if the weights do not define one.
func boundary(w []float64, xmin, xmax, ymin, ymax float64) plotter.XYs {
	w1, w2, b := w[0], w[1], w[2]
	switch {
	case w2 != 0:
		at := func(x float64) float64 { return (b - w1*x) / w2 }
		return plotter.XYs{{X: xmin, Y: at(xmin)}, {X: xmax, Y: at(xmax)}}
	case w1 != 0:
		x := b / w1
		return plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}}
	default:
		return nil
	}
}
