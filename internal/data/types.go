package data

import "errors"

// LabelColumn is the header of the last CSV column.
const LabelColumn = "label"

var ErrFormat = errors.New("data: bad dataset format")

// Dataset is a labelled design matrix: one row of X per label in Y.
type Dataset struct {
	Names []string
	X     [][]float64
	Y     []int
}

func (d Dataset) Len() int { return len(d.X) }

// Features is the row width, taken from the header.
func (d Dataset) Features() int { return len(d.Names) }

// Counts returns the number of positive and negative labels.
func (d Dataset) Counts() (pos, neg int) {
	for _, l := range d.Y {
		if l == 1 {
			pos++
		} else {
			neg++
		}
	}
	return
}
