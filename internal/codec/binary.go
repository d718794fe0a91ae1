package codec

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

var magic = []byte("PCPT")

const (
	fieldVersion  protowire.Number = 1
	fieldFeatures protowire.Number = 2
	fieldEta      protowire.Number = 3
	fieldEpochs   protowire.Number = 4
	fieldWeights  protowire.Number = 5
)

// Binary writes the magic "PCPT" followed by protobuf wire fields.
// Weights are a packed repeated fixed64 so floats round-trip bit for bit.
type Binary struct{}

func (Binary) Name() string { return "binary" }

func (Binary) Encode(w io.Writer, r *Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	b := append([]byte{}, magic...)
	b = protowire.AppendTag(b, fieldVersion, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Version))
	b = protowire.AppendTag(b, fieldFeatures, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Features))
	b = protowire.AppendTag(b, fieldEta, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, math.Float64bits(r.Eta))
	b = protowire.AppendTag(b, fieldEpochs, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Epochs))

	packed := make([]byte, 0, 8*len(r.Weights))
	for _, v := range r.Weights {
		packed = protowire.AppendFixed64(packed, math.Float64bits(v))
	}
	b = protowire.AppendTag(b, fieldWeights, protowire.BytesType)
	b = protowire.AppendBytes(b, packed)

	_, err := w.Write(b)
	return err
}

func (Binary) Decode(rd io.Reader) (*Record, error) {
	b, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(b, magic) {
		return nil, fmt.Errorf("%w: missing magic", ErrCorrupt)
	}
	b = b[len(magic):]

	r := &Record{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == fieldVersion && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: version: %v", ErrCorrupt, protowire.ParseError(n))
			}
			r.Version = uint32(v)
			b = b[n:]
		case num == fieldFeatures && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: features: %v", ErrCorrupt, protowire.ParseError(n))
			}
			r.Features = int(v)
			b = b[n:]
		case num == fieldEta && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: eta: %v", ErrCorrupt, protowire.ParseError(n))
			}
			r.Eta = math.Float64frombits(v)
			b = b[n:]
		case num == fieldEpochs && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: epochs: %v", ErrCorrupt, protowire.ParseError(n))
			}
			r.Epochs = int(v)
			b = b[n:]
		case num == fieldWeights && typ == protowire.BytesType:
			packed, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: weights: %v", ErrCorrupt, protowire.ParseError(n))
			}
			if len(packed)%8 != 0 {
				return nil, fmt.Errorf("%w: weights length %d", ErrCorrupt, len(packed))
			}
			r.Weights = make([]float64, 0, len(packed)/8)
			for len(packed) > 0 {
				v, m := protowire.ConsumeFixed64(packed)
				r.Weights = append(r.Weights, math.Float64frombits(v))
				packed = packed[m:]
			}
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("%w: field %d: %v", ErrCorrupt, num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
