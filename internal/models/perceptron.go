package models

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"perceptron/internal/features"
	"perceptron/pkg/utils"
)

const (
	// DefaultFeatures is used when a non-positive feature count is requested.
	DefaultFeatures = 2
	initScale       = 1e-4
)

// EpochStat is the state of the model after one weight update.
type EpochStat struct {
	Epoch         int
	Loss          float64
	Misclassified int
	Weights       []float64
}

// Perceptron is a single layer linear classifier with a step activation.
// The last weight is the bias, paired with a constant -1 input.
type Perceptron struct {
	Eta    float64
	Epochs int

	features int
	weights  *mat.VecDense

	// state of the last Fit call
	x       [][]float64
	y       []int
	errs    *mat.VecDense
	history []EpochStat

	seed   uint64
	logger *zap.Logger
}

var _ Model = (*Perceptron)(nil)

type Option func(*Perceptron)

func WithSeed(seed uint64) Option {
	return func(p *Perceptron) { p.seed = seed }
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Perceptron) { p.logger = l }
}

// NewPerceptron builds a model for the given feature count with small random
// weights drawn from a standard normal. epochs > 0 marks a model meant for training.
func NewPerceptron(nFeatures int, eta float64, epochs int, opts ...Option) *Perceptron {
	if nFeatures <= 0 {
		nFeatures = DefaultFeatures
	}
	p := &Perceptron{
		Eta:      eta,
		Epochs:   epochs,
		features: nFeatures,
		seed:     uint64(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = utils.Logger()
	}

	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(p.seed, p.seed^0x9e3779b97f4a7c15)}
	w := make([]float64, nFeatures+1)
	for i := range w {
		w[i] = norm.Rand() * initScale
	}
	p.weights = mat.NewVecDense(len(w), w)

	if p.Epochs > 0 {
		p.logger.Info("initial weights before training", zap.Float64s("weights", w))
	}
	return p
}

func (p *Perceptron) Name() string { return "Perceptron" }

func (p *Perceptron) Features() int { return p.features }

// Weights returns a copy of the weight vector, bias last.
func (p *Perceptron) Weights() []float64 {
	return vecCopy(p.weights)
}

// History returns the per-epoch stats of the last Fit.
func (p *Perceptron) History() []EpochStat {
	out := make([]EpochStat, len(p.history))
	copy(out, p.history)
	return out
}

// TrainingSet returns the X and y passed to the last Fit.
func (p *Perceptron) TrainingSet() ([][]float64, []int) {
	return p.x, p.y
}

// Forward computes the raw scores inputs·weights. inputs must already carry the bias column.
func Forward(inputs mat.Matrix, weights mat.Vector) (*mat.VecDense, error) {
	r, c := inputs.Dims()
	if c != weights.Len() {
		return nil, fmt.Errorf("%w: input width %d, weights %d", ErrShapeMismatch, c, weights.Len())
	}
	z := mat.NewVecDense(r, nil)
	z.MulVec(inputs, weights)
	return z, nil
}

// Step is the activation: 1 for z > 0, otherwise 0.
func Step(z float64) int {
	if z > 0 {
		return 1
	}
	return 0
}

// Activate applies Step element-wise.
func Activate(z mat.Vector) []int {
	out := make([]int, z.Len())
	for i := range out {
		out[i] = Step(z.AtVec(i))
	}
	return out
}

// Fit runs exactly Epochs full-batch perceptron updates:
// w <- w + eta * Xᵀ(y - ŷ). There is no early stop. A non-positive
// Epochs runs no update and leaves the model untrained.
func (p *Perceptron) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return ErrEmptyDataset
	}
	if len(X) != len(y) {
		return fmt.Errorf("%w: %d rows, %d labels", ErrShapeMismatch, len(X), len(y))
	}
	target := make([]float64, len(y))
	for i, l := range y {
		if l != 0 && l != 1 {
			return fmt.Errorf("%w: row %d has label %d", ErrInvalidLabel, i, l)
		}
		target[i] = float64(l)
	}
	xb, err := p.augment(X)
	if err != nil {
		return err
	}
	yv := mat.NewVecDense(len(target), target)

	epochs := max(p.Epochs, 0)
	p.x = X
	p.y = y
	p.errs = nil
	p.history = make([]EpochStat, 0, epochs)
	if ce := p.logger.Check(zapcore.DebugLevel, "X with bias"); ce != nil {
		ce.Write(zap.String("x", fmt.Sprintf("%v", mat.Formatted(xb, mat.Squeeze()))))
	}

	errs := mat.NewVecDense(len(y), nil)
	update := mat.NewVecDense(p.weights.Len(), nil)
	for epoch := 0; epoch < epochs; epoch++ {
		z, err := Forward(xb, p.weights)
		if err != nil {
			return err
		}
		yHat := Activate(z)
		for i := range yHat {
			errs.SetVec(i, yv.AtVec(i)-float64(yHat[i]))
		}
		update.MulVec(xb.T(), errs)
		p.weights.AddScaledVec(p.weights, p.Eta, update)

		stat := EpochStat{
			Epoch:         epoch + 1,
			Loss:          mat.Sum(errs),
			Misclassified: misclassified(errs),
			Weights:       vecCopy(p.weights),
		}
		p.history = append(p.history, stat)
		if ce := p.logger.Check(zapcore.DebugLevel, "epoch"); ce != nil {
			ce.Write(
				zap.String("epoch", fmt.Sprintf("%d/%d", stat.Epoch, epochs)),
				zap.Ints("predicted", yHat),
				zap.Float64s("error", vecCopy(errs)),
				zap.Float64s("weights", stat.Weights),
			)
		}
	}
	if epochs > 0 {
		p.errs = errs
	}
	return nil
}

// Predict classifies each row of X with the current weights.
func (p *Perceptron) Predict(X [][]float64) ([]int, error) {
	xb, err := p.augment(X)
	if err != nil {
		return nil, err
	}
	z, err := Forward(xb, p.weights)
	if err != nil {
		return nil, err
	}
	return Activate(z), nil
}

// TotalLoss is the sum of the error vector left by the last epoch of Fit.
// Positive and negative errors cancel out. It returns ErrNotTrained until
// a Fit has run at least one epoch.
func (p *Perceptron) TotalLoss() (float64, error) {
	if p.errs == nil {
		return 0, ErrNotTrained
	}
	return mat.Sum(p.errs), nil
}

func (p *Perceptron) augment(X [][]float64) (*mat.Dense, error) {
	if len(X) == 0 {
		return nil, ErrEmptyDataset
	}
	xb, err := features.WithBias(X, p.features)
	if errors.Is(err, features.ErrWidth) {
		return nil, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	return xb, err
}

func misclassified(errs *mat.VecDense) int {
	n := 0
	for i := 0; i < errs.Len(); i++ {
		if errs.AtVec(i) != 0 {
			n++
		}
	}
	return n
}

func vecCopy(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
