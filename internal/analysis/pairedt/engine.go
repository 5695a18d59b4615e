// Package pairedt computes a paired-samples t-test from two columns of a record
// set. Everything here is a pure function of its inputs; narration lives in
// internal/narrative.
package pairedt

import (
	"gopaired/domain/ttest"
	"gopaired/ports"
)

// Engine runs the compute pipeline against a t distribution collaborator
type Engine struct {
	dist ports.TDistributionPort
}

// NewEngine creates a new paired t-test engine
func NewEngine(dist ports.TDistributionPort) *Engine {
	return &Engine{dist: dist}
}

// Analyze runs column selection, differencing, descriptive and inferential
// statistics and the effect size, in that order. The first failure aborts the
// run; there is no partial result.
func (e *Engine) Analyze(set ttest.RecordSet, opts ttest.Options) (ttest.AnalysisResult, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return ttest.AnalysisResult{}, err
	}

	pair, err := ResolveColumns(set, opts.Columns)
	if err != nil {
		return ttest.AnalysisResult{}, err
	}

	x, y, err := PairedValues(set.Rows, pair)
	if err != nil {
		return ttest.AnalysisResult{}, err
	}
	diffs := Subtract(x, y)
	n := len(diffs)

	mean, err := Mean(diffs)
	if err != nil {
		return ttest.AnalysisResult{}, err
	}
	disp, err := StandardDeviationAround(diffs, mean)
	if err != nil {
		return ttest.AnalysisResult{}, err
	}

	df := DegreesOfFreedom(n)
	se, err := StandardError(disp.StdDev, n)
	if err != nil {
		return ttest.AnalysisResult{}, err
	}
	t, err := TValue(mean, se)
	if err != nil {
		return ttest.AnalysisResult{}, err
	}
	crit, err := CriticalT(e.dist, opts.Alpha, df)
	if err != nil {
		return ttest.AnalysisResult{}, err
	}
	p, err := TwoTailedPValue(e.dist, t, df)
	if err != nil {
		return ttest.AnalysisResult{}, err
	}
	lower, upper := ConfidenceInterval(mean, crit, se)

	d, err := CohensD(x, y)
	if err != nil {
		return ttest.AnalysisResult{}, err
	}

	first, err := SummarizeCondition(pair.First, x)
	if err != nil {
		return ttest.AnalysisResult{}, err
	}
	second, err := SummarizeCondition(pair.Second, y)
	if err != nil {
		return ttest.AnalysisResult{}, err
	}

	return ttest.AnalysisResult{
		Columns:             pair,
		ColumnsAutoSelected: opts.Columns.IsZero(),
		IndependentVar:      opts.IndependentVar,
		DependentVar:        opts.DependentVar,
		Alpha:               opts.Alpha,
		Differences:         diffs,
		N:                   n,
		Mean:                mean,
		SumSqDev:            disp.SumSqDev,
		Variance:            disp.Variance,
		StdDev:              disp.StdDev,
		DF:                  df,
		StandardError:       se,
		TValue:              t,
		CriticalT:           crit,
		PValue:              p,
		CILower:             lower,
		CIUpper:             upper,
		IsSignificant:       IsSignificant(t, crit),
		EffectSize:          d,
		Conditions:          [2]ttest.ConditionSummary{first, second},
	}, nil
}
