package ports

// TDistributionPort is the Student t distribution collaborator.
type TDistributionPort interface {
	// InverseStudentT returns t such that P(T <= t) = p for df degrees of
	// freedom. Requires 0 < p < 1 and df >= 1.
	InverseStudentT(p float64, df int) (float64, error)

	// StudentTCDF returns P(T <= t) for df degrees of freedom
	StudentTCDF(t float64, df int) (float64, error)
}
