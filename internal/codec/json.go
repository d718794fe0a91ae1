package codec

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Encode(w io.Writer, r *Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (JSON) Decode(rd io.Reader) (*Record, error) {
	var r Record
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}
