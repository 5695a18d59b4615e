package pairedt

import (
	"math"
	"testing"

	"gopaired/domain/core"
	"gopaired/domain/ttest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	series := [][]float64{
		{1},
		{2, 3, 2, 1, 4},
		{-1.5, 2.25, 0.125, 1e6},
		{0.1, 0.2, 0.3},
	}
	for _, s := range series {
		got, err := Mean(s)
		require.NoError(t, err)

		sum := 0.0
		for _, v := range s {
			sum += v
		}
		assert.InDelta(t, sum/float64(len(s)), got, 1e-9)
	}

	_, err := Mean(nil)
	assert.ErrorIs(t, err, core.ErrEmptyInput)
}

func TestStandardDeviation(t *testing.T) {
	series := [][]float64{
		{2, 3, 2, 1, 4},
		{1, 1},
		{-3, 8, 0.5, 12, 7, 7},
	}
	for _, s := range series {
		d, err := StandardDeviation(s)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, d.Variance, 0.0)
		assert.InDelta(t, math.Sqrt(d.Variance), d.StdDev, 1e-12)
		assert.InDelta(t, d.SumSqDev/float64(len(s)-1), d.Variance, 1e-12)
	}

	_, err := StandardDeviation([]float64{4})
	assert.ErrorIs(t, err, core.ErrInsufficientSample)
	_, err = StandardDeviation(nil)
	assert.ErrorIs(t, err, core.ErrInsufficientSample)
}

func TestStandardDeviationAround_SuppliedMean(t *testing.T) {
	d, err := StandardDeviationAround([]float64{1, 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.Mean)
	assert.InDelta(t, 10.0, d.SumSqDev, 1e-12)
	assert.InDelta(t, 10.0, d.Variance, 1e-12)
}

func TestDegreesOfFreedom(t *testing.T) {
	for n := 1; n < 50; n++ {
		assert.Equal(t, n-1, DegreesOfFreedom(n))
	}
}

func TestCriticalT_RejectsLowDF(t *testing.T) {
	dist := &fakeDist{quantile: 1}
	_, err := CriticalT(dist, 0.05, 0)
	assert.ErrorIs(t, err, core.ErrInvalidDegreesOfFreedom)
	assert.Zero(t, dist.calls)
}

func TestTValue_ZeroStandardError(t *testing.T) {
	_, err := TValue(0, 0)
	assert.ErrorIs(t, err, core.ErrZeroVariance)
	_, err = TValue(1, 0)
	assert.ErrorIs(t, err, core.ErrZeroVariance)
}

func TestStandardError(t *testing.T) {
	se, err := StandardError(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, se)

	_, err = StandardError(2, 0)
	assert.ErrorIs(t, err, core.ErrEmptyInput)
}

func TestCohensD_UsesFirstConditionSD(t *testing.T) {
	x := []float64{10, 12, 9, 11, 13}
	y := []float64{8, 9, 7, 10, 9}

	d, err := CohensD(x, y)
	require.NoError(t, err)

	// pooled SD would give a different value; the first condition's SD is intended
	assert.InDelta(t, 2.4/math.Sqrt(2.5), d, 1e-12)

	reversed, err := CohensD(y, x)
	require.NoError(t, err)
	assert.NotEqual(t, -d, reversed)
}

func TestEffectMagnitude(t *testing.T) {
	assert.Equal(t, "negligible", EffectMagnitude(0.1))
	assert.Equal(t, "small", EffectMagnitude(-0.3))
	assert.Equal(t, "medium", EffectMagnitude(0.5))
	assert.Equal(t, "large", EffectMagnitude(-1.52))
}

func TestSelectColumns(t *testing.T) {
	set := ttest.RecordSet{
		Columns: []string{"name", "pre", "group", "post", "extra"},
		Rows:    []ttest.Record{{"name": "a", "pre": 1, "group": "g", "post": 2.5, "extra": 3}},
	}
	pair, err := SelectColumns(set)
	require.NoError(t, err)
	assert.Equal(t, ttest.ColumnPair{First: "pre", Second: "post"}, pair)
}

func TestSelectColumns_WithoutHeaderOrder(t *testing.T) {
	set := ttest.RecordSet{Rows: []ttest.Record{{"b": 1.0, "a": 2.0, "c": "x"}}}
	pair, err := SelectColumns(set)
	require.NoError(t, err)
	assert.Equal(t, ttest.ColumnPair{First: "a", Second: "b"}, pair)
}

func TestSelectColumns_NonFiniteIsNotNumeric(t *testing.T) {
	set := ttest.RecordSet{
		Columns: []string{"a", "b"},
		Rows:    []ttest.Record{{"a": math.NaN(), "b": 1.0}},
	}
	_, err := SelectColumns(set)
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestAsNumber(t *testing.T) {
	for _, v := range []interface{}{1, int8(1), int64(1), uint(1), uint32(1), float32(1), 1.0} {
		f, ok := AsNumber(v)
		assert.True(t, ok, "%T", v)
		assert.Equal(t, 1.0, f)
	}
	for _, v := range []interface{}{nil, "1", true, math.Inf(1)} {
		_, ok := AsNumber(v)
		assert.False(t, ok, "%T", v)
	}
}

func TestDifferences(t *testing.T) {
	got, err := Differences(scenarioA().Rows, ttest.ColumnPair{First: "X", Second: "Y"})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 2, 1, 4}, got)
}

func TestSummarizeCondition(t *testing.T) {
	s, err := SummarizeCondition("X", []float64{10, 12, 9, 11, 13})
	require.NoError(t, err)
	assert.Equal(t, 5, s.N)
	assert.InDelta(t, 11.0, s.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(2.5), s.StdDev, 1e-9)
	assert.Equal(t, 9.0, s.Min)
	assert.Equal(t, 13.0, s.Max)

	_, err = SummarizeCondition("X", []float64{1})
	assert.ErrorIs(t, err, core.ErrInsufficientSample)
}
