package codec

import (
	"encoding/gob"
	"fmt"
	"io"
)

type Gob struct{}

func (Gob) Name() string { return "gob" }

func (Gob) Encode(w io.Writer, r *Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return gob.NewEncoder(w).Encode(r)
}

func (Gob) Decode(rd io.Reader) (*Record, error) {
	var r Record
	if err := gob.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}
