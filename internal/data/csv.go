package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// LoadCSV reads a dataset whose header lists the feature names followed by "label".
func LoadCSV(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return Dataset{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) < 2 {
		return Dataset{}, fmt.Errorf("%w: %s has no rows", ErrFormat, path)
	}
	header := rows[0]
	if len(header) < 2 || !strings.EqualFold(header[len(header)-1], LabelColumn) {
		return Dataset{}, fmt.Errorf("%w: last column of %s must be %q", ErrFormat, path, LabelColumn)
	}

	nf := len(header) - 1
	ds := Dataset{
		Names: append([]string{}, header[:nf]...),
		X:     make([][]float64, 0, len(rows)-1),
		Y:     make([]int, 0, len(rows)-1),
	}
	for i, row := range rows[1:] {
		line := i + 2
		v := make([]float64, nf)
		for j := 0; j < nf; j++ {
			v[j], err = strconv.ParseFloat(row[j], 64)
			if err != nil {
				return Dataset{}, fmt.Errorf("%w: line %d, %s: %v", ErrFormat, line, header[j], err)
			}
		}
		label, err := strconv.Atoi(row[nf])
		if err != nil || (label != 0 && label != 1) {
			return Dataset{}, fmt.Errorf("%w: line %d, label %q must be 0 or 1", ErrFormat, line, row[nf])
		}
		ds.X = append(ds.X, v)
		ds.Y = append(ds.Y, label)
	}
	return ds, nil
}

// WriteCSV writes ds in the format LoadCSV reads, creating parent dirs.
func WriteCSV(path string, ds Dataset) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	w := csv.NewWriter(f)
	header := append(append([]string{}, ds.Names...), LabelColumn)
	if err := w.Write(header); err != nil {
		return err
	}
	for i, row := range ds.X {
		rec := make([]string, 0, len(row)+1)
		for _, v := range row {
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		rec = append(rec, strconv.Itoa(ds.Y[i]))
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
