package pairedt

import (
	"math"
	"sort"

	"gopaired/domain/core"
	"gopaired/domain/ttest"
)

// AsNumber returns v as float64 when it is a finite Go number
func AsNumber(v interface{}) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// columnOrder returns the header order, or the sorted keys of the first
// record when the set was built without headers.
func columnOrder(set ttest.RecordSet) []string {
	if len(set.Columns) > 0 {
		return set.Columns
	}
	keys := make([]string, 0, len(set.Rows[0]))
	for k := range set.Rows[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SelectColumns returns the first two columns whose value in the first record
// is numeric, in column order.
func SelectColumns(set ttest.RecordSet) (ttest.ColumnPair, error) {
	if set.IsEmpty() {
		return ttest.ColumnPair{}, core.NewValidationError("dataset is empty")
	}

	first := set.Rows[0]
	numeric := make([]string, 0, 2)
	for _, col := range columnOrder(set) {
		if _, ok := AsNumber(first[col]); ok {
			numeric = append(numeric, col)
			if len(numeric) == 2 {
				return ttest.ColumnPair{First: numeric[0], Second: numeric[1]}, nil
			}
		}
	}
	return ttest.ColumnPair{}, core.NewValidationError("dataset must have at least two numerical columns")
}

// ResolveColumns validates an explicit column choice against the first record,
// or falls back to SelectColumns when none was made.
func ResolveColumns(set ttest.RecordSet, requested ttest.ColumnPair) (ttest.ColumnPair, error) {
	if requested.IsZero() {
		return SelectColumns(set)
	}
	if set.IsEmpty() {
		return ttest.ColumnPair{}, core.NewValidationError("dataset is empty")
	}

	first := set.Rows[0]
	for _, col := range []string{requested.First, requested.Second} {
		v, exists := first[col]
		if !exists {
			return ttest.ColumnPair{}, core.NewValidationError("column \"" + col + "\" does not exist in the dataset")
		}
		if _, ok := AsNumber(v); !ok {
			return ttest.ColumnPair{}, core.NewValidationError("column \"" + col + "\" is not numerical")
		}
	}
	return requested, nil
}
