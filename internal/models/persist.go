package models

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"perceptron/internal/codec"
	"perceptron/pkg/utils"
)

// DefaultModelDir is where Save writes when no directory is given.
const DefaultModelDir = "model"

// ModelPath creates modelDir if needed and returns modelDir/filename.
func ModelPath(modelDir, filename string) (string, error) {
	if modelDir == "" {
		modelDir = DefaultModelDir
	}
	if err := os.MkdirAll(modelDir, 0o755); err != nil {
		return "", fmt.Errorf("create model dir %s: %w", modelDir, err)
	}
	return filepath.Join(modelDir, filename), nil
}

// Save writes the model to modelDir/filename (modelDir defaults to "model").
// The encoding follows the file extension, see codec.ForPath. The record is
// written to a temporary file in the same directory and renamed over the
// target, so a failed Save leaves any previous model in place.
func (p *Perceptron) Save(filename, modelDir string) (path string, err error) {
	path, err = ModelPath(modelDir, filename)
	if err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create model file: %w", err)
	}

	c := codec.ForPath(path)
	if err = multierr.Combine(c.Encode(tmp, p.record()), tmp.Chmod(0o644), tmp.Close()); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("encode %s model %s: %w", c.Name(), path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("rename model file: %w", err)
	}
	p.logger.Info("model saved", zap.String("path", path), zap.String("codec", c.Name()))
	return path, nil
}

// Load restores a model written by Save.
func Load(path string, opts ...Option) (*Perceptron, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer f.Close()

	c := codec.ForPath(path)
	rec, err := c.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s model %s: %w", c.Name(), path, err)
	}
	p := &Perceptron{
		Eta:      rec.Eta,
		Epochs:   rec.Epochs,
		features: rec.Features,
		weights:  mat.NewVecDense(len(rec.Weights), rec.Weights),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = utils.Logger()
	}
	return p, nil
}

func (p *Perceptron) record() *codec.Record {
	return &codec.Record{
		Version:  codec.Version,
		Features: p.features,
		Eta:      p.Eta,
		Epochs:   max(p.Epochs, 0),
		Weights:  p.Weights(),
	}
}
