// Package narrative turns a computed paired t-test into the ten-step
// walkthrough and the APA write-up. It does no arithmetic beyond formatting.
package narrative

import (
	"fmt"
	"strings"

	"gopaired/domain/core"
	"gopaired/domain/ttest"
	"gopaired/internal/analysis/pairedt"
	"gopaired/ports"
)

// Narrator builds AnalysisReports. The chooser only affects hypothesis wording.
type Narrator struct {
	choose ports.Chooser
}

// NewNarrator creates a narrator; a nil chooser picks templates at random
func NewNarrator(choose ports.Chooser) *Narrator {
	if choose == nil {
		choose = RandomChooser(0)
	}
	return &Narrator{choose: choose}
}

// Hypotheses picks one null and one alternative phrasing
func (n *Narrator) Hypotheses(r ttest.AnalysisResult) ttest.Hypotheses {
	return ttest.Hypotheses{
		Null:        fill(pick(n.choose, nullTemplates), r),
		Alternative: fill(pick(n.choose, alternativeTemplates), r),
	}
}

// Narrate builds the report for result r computed from set. ID and
// GeneratedAt are left for the caller to stamp. A set that r was not computed
// from is rejected.
func (n *Narrator) Narrate(set ttest.RecordSet, r ttest.AnalysisResult) (ttest.AnalysisReport, error) {
	x, y, err := rawColumns(set, r)
	if err != nil {
		return ttest.AnalysisReport{}, err
	}
	hyp := n.Hypotheses(r)

	steps := []ttest.Step{
		hypothesesStep(hyp),
		columnsStep(r, x, y),
		differencesStep(r, x, y),
		meanStep(r),
		stdDevStep(r),
		dfStep(r),
		standardErrorStep(r),
		tValueStep(r),
		criticalValueStep(r),
		effectSizeStep(r),
	}
	for i := range steps {
		steps[i].Number = i + 1
		steps[i].Key = ttest.StepOrder[i]
		steps[i].Title = fmt.Sprintf("Step %d: %s", i+1, steps[i].Title)
	}

	return ttest.AnalysisReport{
		Hypotheses: hyp,
		Steps:      steps,
		APA:        APA(r),
		Result:     r,
	}, nil
}

// rawColumns re-reads the preview rows of both conditions
func rawColumns(set ttest.RecordSet, r ttest.AnalysisResult) (x, y []float64, err error) {
	if set.Len() != r.N || len(r.Differences) != r.N {
		return nil, nil, core.NewValidationError(fmt.Sprintf(
			"result covers %d pairs but the record set has %d rows", r.N, set.Len()))
	}
	limit, _ := previewLen(set.Len())
	return pairedt.PairedValues(set.Rows[:limit], r.Columns)
}

func hypothesesStep(h ttest.Hypotheses) ttest.Step {
	return ttest.Step{
		Title:       "State the hypotheses",
		Description: "Null hypothesis (H0): " + h.Null + "\nAlternative hypothesis (H1): " + h.Alternative,
		Formulas: []string{
			"H0: μd = 0",
			"H1: μd ≠ 0",
		},
	}
}

func columnsStep(r ttest.AnalysisResult, x, y []float64) ttest.Step {
	table := &ttest.Table{
		Headers:   []string{r.Columns.First, r.Columns.Second},
		TotalRows: r.N,
		Truncated: r.N > ttest.MaxPreviewRows,
	}
	for i := range x {
		table.Rows = append(table.Rows, []string{raw(x[i]), raw(y[i])})
	}

	formulas := make([]string, 0, len(r.Conditions))
	for _, c := range r.Conditions {
		formulas = append(formulas, fmt.Sprintf("%s: n = %d, mean = %s, SD = %s, median = %s, range = %s to %s",
			c.Column, c.N, f2(c.Mean), f2(c.StdDev), f2(c.Median), f2(c.Min), f2(c.Max)))
	}

	source := "The chosen columns"
	if r.ColumnsAutoSelected {
		source = "The first two numerical columns"
	}
	return ttest.Step{
		Title: "Select the paired columns",
		Description: fmt.Sprintf("%s, %s and %s, are the two conditions of %s. %s is measured in each, for %s.",
			source, r.Columns.First, r.Columns.Second, r.IndependentVar, r.DependentVar, plural(r.N, "pair", "pairs")),
		Formulas: formulas,
		Table:    table,
	}
}

func differencesStep(r ttest.AnalysisResult, x, y []float64) ttest.Step {
	table := &ttest.Table{
		Headers:   []string{"#", r.Columns.First, r.Columns.Second, "Difference"},
		TotalRows: r.N,
		Truncated: r.N > ttest.MaxPreviewRows,
	}
	for i := range x {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i + 1), raw(x[i]), raw(y[i]), f2(r.Differences[i]),
		})
	}

	return ttest.Step{
		Title:       "Calculate the differences",
		Description: fmt.Sprintf("Subtract %s from %s for every pair.", r.Columns.Second, r.Columns.First),
		Formulas: []string{
			fmt.Sprintf("d = %s − %s", r.Columns.First, r.Columns.Second),
			"d = " + joinPreview(mapValues(r.Differences, f2), ", "),
		},
		Table: table,
	}
}

func meanStep(r ttest.AnalysisResult) ttest.Step {
	sum := r.Mean * float64(r.N)
	return ttest.Step{
		Title:       "Calculate the mean difference",
		Description: fmt.Sprintf("Add the differences and divide by the number of pairs. The mean difference between %s and %s is %s.", r.Columns.First, r.Columns.Second, f2(r.Mean)),
		Formulas: []string{
			"Σd = " + joinPreview(mapValues(r.Differences, f2), " + ") + " = " + f2(sum),
			fmt.Sprintf("mean(d) = Σd / n = %s / %d = %s", f2(sum), r.N, f2(r.Mean)),
		},
	}
}

func stdDevStep(r ttest.AnalysisResult) ttest.Step {
	limit, truncated := previewLen(r.N)
	table := &ttest.Table{
		Headers:   []string{"Difference", "Deviation", "Squared deviation"},
		TotalRows: r.N,
		Truncated: truncated,
	}
	terms := make([]string, 0, r.N)
	for i, d := range r.Differences {
		dev := d - r.Mean
		terms = append(terms, fmt.Sprintf("(%s − %s)²", f2(d), f2(r.Mean)))
		if i < limit {
			table.Rows = append(table.Rows, []string{f2(d), f2(dev), f2(dev * dev)})
		}
	}

	return ttest.Step{
		Title:       "Calculate the standard deviation of the differences",
		Description: "Square each difference's distance from the mean, add them up, divide by n − 1 and take the square root.",
		Formulas: []string{
			"Σ(d − mean)² = " + joinPreview(terms, " + ") + " = " + f2(r.SumSqDev),
			fmt.Sprintf("s² = %s / (%d − 1) = %s", f2(r.SumSqDev), r.N, f2(r.Variance)),
			fmt.Sprintf("s = √%s = %s", f2(r.Variance), f2(r.StdDev)),
		},
		Table: table,
	}
}

func dfStep(r ttest.AnalysisResult) ttest.Step {
	return ttest.Step{
		Title:       "Determine the degrees of freedom",
		Description: "A paired test has one fewer degree of freedom than it has pairs.",
		Formulas:    []string{fmt.Sprintf("df = n − 1 = %d − 1 = %d", r.N, r.DF)},
	}
}

func standardErrorStep(r ttest.AnalysisResult) ttest.Step {
	return ttest.Step{
		Title:       "Calculate the standard error",
		Description: "The standard error is how much the mean difference would vary from sample to sample.",
		Formulas:    []string{fmt.Sprintf("SE = s / √n = %s / √%d = %s", f2(r.StdDev), r.N, f2(r.StandardError))},
	}
}

func tValueStep(r ttest.AnalysisResult) ttest.Step {
	return ttest.Step{
		Title:       "Calculate the t-statistic",
		Description: "The t-statistic counts how many standard errors the mean difference lies from zero.",
		Formulas:    []string{fmt.Sprintf("t = mean(d) / SE = %s / %s = %s", f2(r.Mean), f2(r.StandardError), f2(r.TValue))},
	}
}

func criticalValueStep(r ttest.AnalysisResult) ttest.Step {
	var b strings.Builder
	fmt.Fprintf(&b, "At α = %s (two-tailed) with %d degrees of freedom the critical value is %s. ",
		apaNumber(r.Alpha), r.DF, f2(r.CriticalT))
	fmt.Fprintf(&b, "Because |t| = %s %s %s, we %s the null hypothesis.",
		f2(abs(r.TValue)), r.ComparisonSymbol(), f2(r.CriticalT), r.Decision())

	return ttest.Step{
		Title:       "Compare with the critical value",
		Description: b.String(),
		Formulas: []string{
			fmt.Sprintf("t_crit = t(1 − α/2, df) = t(%s, %d) = %s", raw(roundTo(1-r.Alpha/2, 6)), r.DF, f2(r.CriticalT)),
			fmt.Sprintf("|t| = %s %s %s → %s H0", f2(abs(r.TValue)), r.ComparisonSymbol(), f2(r.CriticalT), r.Decision()),
			fmt.Sprintf("p %s (two-tailed)", pValue(r.PValue)),
			fmt.Sprintf("%s CI of the mean difference = [%s, %s]", percent(1-r.Alpha), f2(r.CILower), f2(r.CIUpper)),
		},
	}
}

func effectSizeStep(r ttest.AnalysisResult) ttest.Step {
	c1, c2 := r.Conditions[0], r.Conditions[1]
	return ttest.Step{
		Title: "Calculate the effect size",
		Description: fmt.Sprintf("Cohen's d standardizes the difference of the condition means by the standard deviation of %s. A d of %s is a %s effect.",
			c1.Column, f2(r.EffectSize), pairedt.EffectMagnitude(r.EffectSize)),
		Formulas: []string{
			fmt.Sprintf("d = (mean(%s) − mean(%s)) / s(%s) = (%s − %s) / %s = %s",
				c1.Column, c2.Column, c1.Column, f2(c1.Mean), f2(c2.Mean), f2(c1.StdDev), f2(r.EffectSize)),
		},
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
