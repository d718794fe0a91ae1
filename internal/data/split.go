package data

import "math/rand/v2"

// StratifiedSplit shuffles ds and holds out testFrac of each class.
// A testFrac outside (0,1) returns ds as both train and test.
func StratifiedSplit(ds Dataset, testFrac float64, seed uint64) (train, test Dataset) {
	if testFrac <= 0 || testFrac >= 1 {
		return ds, ds
	}
	rng := rand.New(rand.NewPCG(seed, seed+1))

	var posIdx, negIdx []int
	for i, l := range ds.Y {
		if l == 1 {
			posIdx = append(posIdx, i)
		} else {
			negIdx = append(negIdx, i)
		}
	}
	var trainIdx, testIdx []int
	for _, idx := range [][]int{posIdx, negIdx} {
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		nTrain := int((1 - testFrac) * float64(len(idx)))
		trainIdx = append(trainIdx, idx[:nTrain]...)
		testIdx = append(testIdx, idx[nTrain:]...)
	}
	rng.Shuffle(len(trainIdx), func(i, j int) { trainIdx[i], trainIdx[j] = trainIdx[j], trainIdx[i] })
	rng.Shuffle(len(testIdx), func(i, j int) { testIdx[i], testIdx[j] = testIdx[j], testIdx[i] })
	return subset(ds, trainIdx), subset(ds, testIdx)
}

func subset(ds Dataset, idx []int) Dataset {
	out := Dataset{Names: ds.Names, X: make([][]float64, len(idx)), Y: make([]int, len(idx))}
	for i, j := range idx {
		out.X[i] = ds.X[j]
		out.Y[i] = ds.Y[j]
	}
	return out
}
