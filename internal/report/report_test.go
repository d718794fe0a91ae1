package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"perceptron/internal/data"
	"perceptron/internal/models"
)

func trained(t *testing.T) (*models.Perceptron, data.Dataset) {
	ds, err := data.Gate("or")
	require.NoError(t, err)
	p := models.NewPerceptron(2, 0.1, 10, models.WithSeed(4), models.WithLogger(zap.NewNop()))
	require.NoError(t, p.Fit(ds.X, ds.Y))
	return p, ds
}

func TestWriteCurveCSV(t *testing.T) {
	p, _ := trained(t)
	path := filepath.Join(t.TempDir(), "out", "curve.csv")
	require.NoError(t, WriteCurveCSV(path, p.History()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 11)
	assert.Equal(t, []string{"epoch", "loss", "misclassified", "w1", "w2", "bias"}, rows[0])
	assert.Equal(t, "10", rows[10][0])
	assert.Equal(t, "0", rows[10][2])
}

func TestPlotCurvePNG(t *testing.T) {
	p, _ := trained(t)
	path := filepath.Join(t.TempDir(), "curve.png")
	require.NoError(t, PlotCurvePNG(path, p.History()))
	assert.FileExists(t, path)

	assert.Error(t, PlotCurvePNG(path, nil))
}

func TestPlotBoundaryPNG(t *testing.T) {
	p, ds := trained(t)
	path := filepath.Join(t.TempDir(), "img", "boundary.png")
	require.NoError(t, PlotBoundaryPNG(path, ds, p.Weights()))
	assert.FileExists(t, path)

	assert.Error(t, PlotBoundaryPNG(path, ds, []float64{1, 2}))
}

func TestBoundary(t *testing.T) {
	// x1 + x2 - 1 = 0
	line := boundary([]float64{1, 1, 1}, 0, 2, -5, 5)
	require.Len(t, line, 2)
	assert.InDelta(t, 1.0, line[0].Y, 1e-12)
	assert.InDelta(t, -1.0, line[1].Y, 1e-12)

	// vertical: 2*x1 - 1 = 0
	line = boundary([]float64{2, 0, 1}, 0, 2, -5, 5)
	assert.Equal(t, 0.5, line[0].X)
	assert.Equal(t, 0.5, line[1].X)

	assert.Nil(t, boundary([]float64{0, 0, 1}, 0, 1, 0, 1))
}
