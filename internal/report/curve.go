package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/multierr"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"perceptron/internal/models"
)

// WriteCurveCSV writes one row per epoch: loss, misclassified count and the weights after the update.
func WriteCurveCSV(path string, hist []models.EpochStat) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	w := csv.NewWriter(f)
	header := []string{"epoch", "loss", "misclassified"}
	if len(hist) > 0 {
		n := len(hist[0].Weights)
		for i := 0; i < n-1; i++ {
			header = append(header, fmt.Sprintf("w%d", i+1))
		}
		header = append(header, "bias")
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range hist {
		rec := []string{strconv.Itoa(s.Epoch), fmt.Sprintf("%.6f", s.Loss), strconv.Itoa(s.Misclassified)}
		for _, v := range s.Weights {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// PlotCurvePNG draws misclassified samples and |loss| per epoch.
func PlotCurvePNG(path string, hist []models.EpochStat) error {
	if len(hist) == 0 {
		return fmt.Errorf("no epochs to plot")
	}
	p := plot.New()
	p.Title.Text = "Training curve"
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = "Samples"
	p.Y.Min = 0

	mis := make(plotter.XYs, len(hist))
	loss := make(plotter.XYs, len(hist))
	for i, s := range hist {
		mis[i].X, mis[i].Y = float64(s.Epoch), float64(s.Misclassified)
		loss[i].X, loss[i].Y = float64(s.Epoch), math.Abs(s.Loss)
	}
	if err := plotutil.AddLinePoints(p, "Misclassified", mis, "|Loss|", loss); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
