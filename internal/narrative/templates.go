package narrative

import (
	"strings"

	"gopaired/domain/ttest"
)

// Placeholders: {iv} {dv} {col1} {col2}
var nullTemplates = []string{
	"There is no significant difference in {dv} between the {col1} and {col2} conditions.",
	"The mean difference in {dv} between {col1} and {col2} is equal to zero.",
	"{iv} has no effect on {dv}; any difference between {col1} and {col2} is due to chance.",
}

var alternativeTemplates = []string{
	"There is a significant difference in {dv} between the {col1} and {col2} conditions.",
	"The mean difference in {dv} between {col1} and {col2} is not equal to zero.",
	"{iv} has an effect on {dv}; the difference between {col1} and {col2} is not due to chance.",
}

func fill(template string, r ttest.AnalysisResult) string {
	return strings.NewReplacer(
		"{iv}", r.IndependentVar,
		"{dv}", r.DependentVar,
		"{col1}", r.Columns.First,
		"{col2}", r.Columns.Second,
	).Replace(template)
}
