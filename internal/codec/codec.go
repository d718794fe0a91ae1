// Package codec serializes trained perceptron state as an explicit,
// versioned record. Three encodings are supported and picked by file
// extension: a compact protobuf-wire binary (default), gob and JSON.
package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Version is the record layout written by every codec.
const Version = 1

var (
	ErrUnsupportedVersion = errors.New("codec: unsupported record version")
	ErrCorrupt            = errors.New("codec: corrupt record")
)

// Record is the persisted form of a model.
type Record struct {
	Version  uint32    `json:"version"`
	Features int       `json:"features"`
	Eta      float64   `json:"eta"`
	Epochs   int       `json:"epochs"`
	Weights  []float64 `json:"weights"`
}

// Validate checks the record can be turned back into a model.
func (r *Record) Validate() error {
	if r.Version != Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Version)
	}
	if r.Features <= 0 {
		return fmt.Errorf("%w: features = %d", ErrCorrupt, r.Features)
	}
	if r.Epochs < 0 {
		return fmt.Errorf("%w: epochs = %d", ErrCorrupt, r.Epochs)
	}
	if len(r.Weights) != r.Features+1 {
		return fmt.Errorf("%w: %d weights for %d features", ErrCorrupt, len(r.Weights), r.Features)
	}
	return nil
}

type Codec interface {
	Encode(w io.Writer, r *Record) error
	Decode(r io.Reader) (*Record, error)
	Name() string
}

// ForPath returns the codec matching the extension of path.
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gob":
		return Gob{}
	case ".json":
		return JSON{}
	default:
		return Binary{}
	}
}
