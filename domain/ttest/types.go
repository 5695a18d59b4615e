package ttest

import (
	"time"

	"gopaired/domain/core"
)

// ============================================================================
// INPUT
// ============================================================================

// Record is one row of the uploaded table: column name -> scalar cell value.
// Numeric cells are float64 (or any other Go number kind when built in code),
// text cells are strings and blank cells are nil.
type Record map[string]interface{}

// RecordSet is the materialized table handed to the pipeline. Columns keeps
// the header order, which is the order column selection walks.
type RecordSet struct {
	Columns []string `json:"columns"`
	Rows    []Record `json:"rows"`
}

// Len returns the number of records
func (rs RecordSet) Len() int {
	return len(rs.Rows)
}

// IsEmpty reports whether there are no records
func (rs RecordSet) IsEmpty() bool {
	return len(rs.Rows) == 0
}

// ColumnPair names the two paired conditions. The difference series is
// First - Second.
type ColumnPair struct {
	First  string `json:"col1"`
	Second string `json:"col2"`
}

// IsZero reports whether no columns were chosen
func (p ColumnPair) IsZero() bool {
	return p.First == "" && p.Second == ""
}

// ============================================================================
// OPTIONS
// ============================================================================

const (
	DefaultAlpha          = 0.05
	DefaultIndependentVar = "Independent Variable"
	DefaultDependentVar   = "Dependent Variable"
)

// Options configures one analysis run.
type Options struct {
	Alpha          float64    `json:"alpha"`
	IndependentVar string     `json:"independent_variable"`
	DependentVar   string     `json:"dependent_variable"`
	Columns        ColumnPair `json:"columns"` // zero value: first two numeric columns
}

// DefaultOptions returns the options used when the caller supplies nothing
func DefaultOptions() Options {
	return Options{
		Alpha:          DefaultAlpha,
		IndependentVar: DefaultIndependentVar,
		DependentVar:   DefaultDependentVar,
	}
}

// WithDefaults fills blank display names and a zero alpha.
func (o Options) WithDefaults() Options {
	if o.Alpha == 0 {
		o.Alpha = DefaultAlpha
	}
	if o.IndependentVar == "" {
		o.IndependentVar = DefaultIndependentVar
	}
	if o.DependentVar == "" {
		o.DependentVar = DefaultDependentVar
	}
	return o
}

// Validate checks the options that are not data dependent
func (o Options) Validate() error {
	if !(o.Alpha > 0 && o.Alpha < 1) {
		return core.NewValidationError("significance level alpha must be between 0 and 1")
	}
	if (o.Columns.First == "") != (o.Columns.Second == "") {
		return core.NewValidationError("both columns must be named when choosing columns explicitly")
	}
	if !o.Columns.IsZero() && o.Columns.First == o.Columns.Second {
		return core.NewValidationError("the two paired columns must be different")
	}
	return nil
}

// ============================================================================
// RESULTS
// ============================================================================

// Dispersion is the output of the standard deviation step.
type Dispersion struct {
	Mean     float64 `json:"mean"`       // mean the deviations were taken from
	SumSqDev float64 `json:"sum_sq_dev"` // sum of squared deviations
	Variance float64 `json:"variance"`   // SumSqDev / (n-1)
	StdDev   float64 `json:"std_dev"`
}

// ConditionSummary describes one raw (non-differenced) column.
type ConditionSummary struct {
	Column string  `json:"column"`
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Decision is the verdict on the null hypothesis
type Decision string

const (
	DecisionReject       Decision = "reject"
	DecisionFailToReject Decision = "fail to reject"
)

// AnalysisResult bundles every scalar the pipeline computes. It is built once
// and never mutated; identical input and alpha give an identical value.
type AnalysisResult struct {
	Columns             ColumnPair `json:"columns"`
	ColumnsAutoSelected bool       `json:"columns_auto_selected"` // false: named by the caller
	IndependentVar      string     `json:"independent_variable"`
	DependentVar        string     `json:"dependent_variable"`
	Alpha               float64    `json:"alpha"`

	Differences []float64 `json:"differences"`
	N           int       `json:"n"`

	Mean     float64 `json:"mean"`
	SumSqDev float64 `json:"sum_sq_dev"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`

	DF            int     `json:"df"`
	StandardError float64 `json:"standard_error"`
	TValue        float64 `json:"t_value"`
	CriticalT     float64 `json:"critical_t"`
	PValue        float64 `json:"p_value"`  // two-tailed
	CILower       float64 `json:"ci_lower"` // (1-alpha) interval of the mean difference
	CIUpper       float64 `json:"ci_upper"`
	IsSignificant bool    `json:"is_significant"`

	EffectSize float64             `json:"effect_size"` // Cohen's d, condition 1 SD
	Conditions [2]ConditionSummary `json:"conditions"`
}

// Decision returns the verdict implied by IsSignificant
func (r AnalysisResult) Decision() Decision {
	if r.IsSignificant {
		return DecisionReject
	}
	return DecisionFailToReject
}

// ComparisonSymbol mirrors IsSignificant for display of |t| against the
// critical value.
func (r AnalysisResult) ComparisonSymbol() string {
	if r.IsSignificant {
		return ">"
	}
	return "≤"
}

// ============================================================================
// REPORT
// ============================================================================

// StepKey names a walkthrough step independent of its title text
type StepKey string

const (
	StepHypotheses    StepKey = "hypotheses"
	StepColumns       StepKey = "columns"
	StepDifferences   StepKey = "differences"
	StepMean          StepKey = "mean"
	StepStdDev        StepKey = "std_dev"
	StepDF            StepKey = "degrees_of_freedom"
	StepStandardError StepKey = "standard_error"
	StepTValue        StepKey = "t_value"
	StepCriticalValue StepKey = "critical_value"
	StepEffectSize    StepKey = "effect_size"
)

// StepOrder is the fixed order of the ten walkthrough steps
var StepOrder = []StepKey{
	StepHypotheses,
	StepColumns,
	StepDifferences,
	StepMean,
	StepStdDev,
	StepDF,
	StepStandardError,
	StepTValue,
	StepCriticalValue,
	StepEffectSize,
}

const (
	// MaxPreviewRows caps every preview table and value list
	MaxPreviewRows = 5
	// TruncationMarker follows a preview that was cut short
	TruncationMarker = "…and so on"
)

// Table is a small preview table attached to a step.
type Table struct {
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	Truncated bool       `json:"truncated"`
	TotalRows int        `json:"total_rows"`
}

// Step is one narrated stage of the walkthrough.
type Step struct {
	Number      int      `json:"number"`
	Key         StepKey  `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Formulas    []string `json:"formulas,omitempty"`
	Table       *Table   `json:"table,omitempty"`
}

// Hypotheses is the null/alternative pair shown in the first step
type Hypotheses struct {
	Null        string `json:"null"`
	Alternative string `json:"alternative"`
}

// AnalysisReport is the structured hand-off to any presentation layer.
type AnalysisReport struct {
	ID          core.ReportID    `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	DatasetHash core.DatasetHash `json:"dataset_hash,omitempty"` // set when built from a file
	Hypotheses  Hypotheses       `json:"hypotheses"`
	Steps       []Step           `json:"steps"`
	APA         string           `json:"apa"`
	Result      AnalysisResult   `json:"result"`
}

// Step returns the step with the given key
func (r *AnalysisReport) Step(key StepKey) (Step, bool) {
	for _, s := range r.Steps {
		if s.Key == key {
			return s, true
		}
	}
	return Step{}, false
}
