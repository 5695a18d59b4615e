package distribution

import (
	"fmt"
	"math"

	"gopaired/domain/core"
	"gopaired/ports"

	"gonum.org/v1/gonum/stat/distuv"
)

// StudentT provides Student's t quantiles and CDF backed by gonum
type StudentT struct{}

var _ ports.TDistributionPort = (*StudentT)(nil)

// NewStudentT creates a new Student t distribution adapter
func NewStudentT() *StudentT {
	return &StudentT{}
}

// InverseStudentT computes the quantile of a standard Student t distribution
func (st *StudentT) InverseStudentT(p float64, df int) (float64, error) {
	if df < 1 {
		return 0, core.NewInvalidDegreesOfFreedomError(df)
	}
	if !(p > 0 && p < 1) {
		return 0, fmt.Errorf("cumulative probability must be in (0, 1), got %v", p)
	}

	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}.Quantile(p)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, fmt.Errorf("student t quantile is not finite for p=%v, df=%d", p, df)
	}
	return t, nil
}

// StudentTCDF computes P(T <= t) for a standard Student t distribution
func (st *StudentT) StudentTCDF(t float64, df int) (float64, error) {
	if df < 1 {
		return 0, core.NewInvalidDegreesOfFreedomError(df)
	}
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}.CDF(t), nil
}
