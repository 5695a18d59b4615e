package narrative

import (
	"fmt"

	"gopaired/domain/ttest"
)

// APA writes the one-sentence-per-clause APA style summary of a result.
func APA(r ttest.AnalysisResult) string {
	difference := "no significant"
	significance := "not statistically significant"
	comparison := ">"
	if r.IsSignificant {
		difference = "a significant"
		significance = "statistically significant"
		comparison = "<"
	}

	return fmt.Sprintf(
		"A paired-samples t-test was conducted to evaluate if there was %s difference in %s between the %s and %s conditions. "+
			"The results indicated that the mean difference was %s, t(%d) = %s, p %s %s. "+
			"The effect size, as measured by Cohen's d, was %s.",
		difference, r.DependentVar, r.Columns.First, r.Columns.Second,
		significance, r.DF, f2(r.TValue), comparison, apaNumber(r.Alpha),
		f2(r.EffectSize),
	)
}
