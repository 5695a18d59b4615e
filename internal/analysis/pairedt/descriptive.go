package pairedt

import (
	"math"

	"gopaired/domain/core"
	"gopaired/domain/ttest"

	"github.com/montanaflynn/stats"
)

// Mean computes the arithmetic mean
func Mean(series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, core.ErrEmptyInput
	}
	sum := 0.0
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series)), nil
}

// StandardDeviation computes the sample dispersion around the series mean
func StandardDeviation(series []float64) (ttest.Dispersion, error) {
	if len(series) < 2 {
		return ttest.Dispersion{}, core.NewInsufficientSampleError(len(series))
	}
	mean, err := Mean(series)
	if err != nil {
		return ttest.Dispersion{}, err
	}
	return StandardDeviationAround(series, mean)
}

// StandardDeviationAround computes the sample dispersion around a supplied
// mean, dividing by n-1.
func StandardDeviationAround(series []float64, mean float64) (ttest.Dispersion, error) {
	n := len(series)
	if n < 2 {
		return ttest.Dispersion{}, core.NewInsufficientSampleError(n)
	}

	sumSq := 0.0
	for _, v := range series {
		d := v - mean
		sumSq += d * d
	}
	variance := sumSq / float64(n-1)

	return ttest.Dispersion{
		Mean:     mean,
		SumSqDev: sumSq,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, nil
}

// SummarizeCondition describes one raw column for the data overview
func SummarizeCondition(column string, values []float64) (ttest.ConditionSummary, error) {
	if len(values) < 2 {
		return ttest.ConditionSummary{}, core.NewInsufficientSampleError(len(values))
	}
	data := stats.Float64Data(values)

	mean, err := stats.Mean(data)
	if err != nil {
		return ttest.ConditionSummary{}, err
	}
	sd, err := stats.StandardDeviationSample(data)
	if err != nil {
		return ttest.ConditionSummary{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return ttest.ConditionSummary{}, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return ttest.ConditionSummary{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return ttest.ConditionSummary{}, err
	}

	return ttest.ConditionSummary{
		Column: column,
		N:      len(values),
		Mean:   mean,
		StdDev: sd,
		Median: median,
		Min:    min,
		Max:    max,
	}, nil
}
