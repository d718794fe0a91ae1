package data

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

var gates = map[string][]int{
	"and":  {0, 0, 0, 1},
	"or":   {0, 1, 1, 1},
	"nand": {1, 1, 1, 0},
	"nor":  {1, 0, 0, 0},
}

// Gate returns the truth table of a two input logic gate: and, or, nand or nor.
func Gate(name string) (Dataset, error) {
	y, ok := gates[strings.ToLower(name)]
	if !ok {
		return Dataset{}, fmt.Errorf("unknown gate %q", name)
	}
	return Dataset{
		Names: []string{"x1", "x2"},
		X:     [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		Y:     append([]int{}, y...),
	}, nil
}

const margin = 0.05

// hyperplane draws normal weights and a bias in [-0.25, 0.25). Weights with
// sum|w| <= margin are redrawn since the whole box could then sit inside the
// rejected band.
func hyperplane(rng *rand.Rand, features int) ([]float64, float64) {
	w := make([]float64, features)
	for {
		var l1 float64
		for i := range w {
			w[i] = rng.NormFloat64()
			l1 += math.Abs(w[i])
		}
		if l1 > margin {
			break
		}
	}
	return w, rng.Float64()*0.5 - 0.25
}

// GenerateSeparable draws n points uniformly from [-1,1]^features and labels
// them with a random hyperplane, dropping points closer than margin to it.
// When outPath is set the dataset is also written as CSV.
func GenerateSeparable(n, features int, seed uint64, outPath string) (Dataset, error) {
	if n <= 0 || features <= 0 {
		return Dataset{}, fmt.Errorf("n and features must be > 0 (got %d, %d)", n, features)
	}
	rng := rand.New(rand.NewPCG(seed, seed+1))
	w, bias := hyperplane(rng, features)

	ds := Dataset{
		Names: make([]string, features),
		X:     make([][]float64, 0, n),
		Y:     make([]int, 0, n),
	}
	for j := range ds.Names {
		ds.Names[j] = fmt.Sprintf("x%d", j+1)
	}
	for len(ds.X) < n {
		x := make([]float64, features)
		s := -bias
		for j := range x {
			x[j] = rng.Float64()*2 - 1
			s += w[j] * x[j]
		}
		if s > -margin && s < margin {
			continue
		}
		label := 0
		if s > 0 {
			label = 1
		}
		ds.X = append(ds.X, x)
		ds.Y = append(ds.Y, label)
	}

	if outPath != "" {
		if err := WriteCSV(outPath, ds); err != nil {
			return Dataset{}, err
		}
	}
	return ds, nil
}
