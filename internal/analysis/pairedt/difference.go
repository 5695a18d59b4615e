package pairedt

import (
	"gopaired/domain/core"
	"gopaired/domain/ttest"
)

// PairedValues extracts both columns row by row. The first row where either
// value is missing or non-numeric fails with a core.DataTypeError.
func PairedValues(rows []ttest.Record, pair ttest.ColumnPair) (x, y []float64, err error) {
	x = make([]float64, len(rows))
	y = make([]float64, len(rows))
	for i, row := range rows {
		a, ok := AsNumber(row[pair.First])
		if !ok {
			return nil, nil, core.NewDataTypeError(i, pair.First, row[pair.First])
		}
		b, ok := AsNumber(row[pair.Second])
		if !ok {
			return nil, nil, core.NewDataTypeError(i, pair.Second, row[pair.Second])
		}
		x[i], y[i] = a, b
	}
	return x, y, nil
}

// Subtract returns x[i] - y[i]; both slices must have the same length
func Subtract(x, y []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] - y[i]
	}
	return out
}

// Differences computes record[i][First] - record[i][Second] for every record
func Differences(rows []ttest.Record, pair ttest.ColumnPair) ([]float64, error) {
	x, y, err := PairedValues(rows, pair)
	if err != nil {
		return nil, err
	}
	return Subtract(x, y), nil
}
