package app

import (
	"strconv"
	"strings"

	"gopaired/domain/ttest"
	"gopaired/internal/errors"
)

// Form field names shared by the HTTP API and the UI
const (
	FieldFile           = "file"
	FieldIndependentVar = "iv"
	FieldDependentVar   = "dv"
	FieldAlpha          = "alpha"
	FieldColumn1        = "col1"
	FieldColumn2        = "col2"
)

// OptionsFromForm reads analysis options from form values. Blank fields are
// left for the service defaults.
func OptionsFromForm(get func(key string) string) (ttest.Options, error) {
	opts := ttest.Options{
		IndependentVar: strings.TrimSpace(get(FieldIndependentVar)),
		DependentVar:   strings.TrimSpace(get(FieldDependentVar)),
		Columns: ttest.ColumnPair{
			First:  strings.TrimSpace(get(FieldColumn1)),
			Second: strings.TrimSpace(get(FieldColumn2)),
		},
	}

	if raw := strings.TrimSpace(get(FieldAlpha)); raw != "" {
		alpha, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return ttest.Options{}, errors.InvalidInput("alpha must be a number such as 0.05")
		}
		if err := CheckAlpha(alpha); err != nil {
			return ttest.Options{}, err
		}
		opts.Alpha = alpha
	}
	return opts, nil
}

// CheckAlpha rejects an explicitly supplied significance level outside (0,1).
// Leaving alpha out is how a caller asks for the default.
func CheckAlpha(alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return errors.InvalidInput("alpha must be between 0 and 1")
	}
	return nil
}
