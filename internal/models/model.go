package models

// Model is a binary classifier over dense float features with labels in {0,1}.
type Model interface {
	Fit(X [][]float64, y []int) error
	Predict(X [][]float64) ([]int, error)
	Name() string
}
