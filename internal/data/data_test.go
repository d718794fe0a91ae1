package data

import (
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate(t *testing.T) {
	ds, err := Gate("AND")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 1}, ds.Y)
	assert.Equal(t, 2, ds.Features())
	assert.Equal(t, 4, ds.Len())

	ds.Y[0] = 1
	again, err := Gate("and")
	require.NoError(t, err)
	assert.Equal(t, 0, again.Y[0])

	_, err = Gate("xor")
	assert.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "sep.csv")
	ds, err := GenerateSeparable(200, 3, 42, path)
	require.NoError(t, err)
	assert.Equal(t, 200, ds.Len())
	assert.Equal(t, []string{"x1", "x2", "x3"}, ds.Names)

	got, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, ds, got)
}

func TestGenerateSeparableDeterministic(t *testing.T) {
	a, err := GenerateSeparable(50, 2, 7, "")
	require.NoError(t, err)
	b, err := GenerateSeparable(50, 2, 7, "")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = GenerateSeparable(0, 2, 7, "")
	assert.Error(t, err)
}

func TestHyperplaneLeavesRoomOutsideMargin(t *testing.T) {
	for seed := uint64(0); seed < 5000; seed++ {
		w, bias := hyperplane(rand.New(rand.NewPCG(seed, seed+1)), 1)
		require.Len(t, w, 1)
		assert.Greater(t, math.Abs(w[0]), margin, "seed %d", seed)
		assert.GreaterOrEqual(t, bias, -0.25)
		assert.Less(t, bias, 0.25)
	}
}

func TestGenerateSeparableSingleFeature(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		ds, err := GenerateSeparable(20, 1, seed, "")
		require.NoError(t, err)
		assert.Equal(t, 20, ds.Len())
		assert.Equal(t, 1, ds.Features())
	}
}

func TestLoadCSVErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	_, err := LoadCSV(write("empty.csv", "x1,x2,label\n"))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = LoadCSV(write("nolabel.csv", "x1,x2,y\n0,1,1\n"))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = LoadCSV(write("badlabel.csv", "x1,x2,label\n0,1,2\n"))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = LoadCSV(write("badfloat.csv", "x1,x2,label\n0,abc,1\n"))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = LoadCSV(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	ds, err := LoadCSV(write("ok.csv", "x1, x2, label\n0, 1, 1\n1.5, -2, 0\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {1.5, -2}}, ds.X)
	assert.Equal(t, []int{1, 0}, ds.Y)
}

func TestStratifiedSplit(t *testing.T) {
	ds, err := GenerateSeparable(500, 2, 3, "")
	require.NoError(t, err)
	pos, neg := ds.Counts()

	train, test := StratifiedSplit(ds, 0.2, 9)
	assert.Equal(t, ds.Len(), train.Len()+test.Len())
	trPos, trNeg := train.Counts()
	assert.Equal(t, int(0.8*float64(pos)), trPos)
	assert.Equal(t, int(0.8*float64(neg)), trNeg)
	assert.Equal(t, ds.Names, test.Names)

	train, test = StratifiedSplit(ds, 0, 9)
	assert.Equal(t, ds, train)
	assert.Equal(t, ds, test)
}
