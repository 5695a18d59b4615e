package render

import (
	"encoding/json"
	"strings"
	"testing"

	"gopaired/adapters/stats/distribution"
	"gopaired/domain/ttest"
	"gopaired/internal/analysis/pairedt"
	"gopaired/internal/narrative"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() ttest.AnalysisReport {
	return ttest.AnalysisReport{
		ID:         "report-1",
		Hypotheses: ttest.Hypotheses{Null: "no difference", Alternative: "a difference"},
		Steps: []ttest.Step{
			{
				Number:      1,
				Key:         ttest.StepHypotheses,
				Title:       "Step 1: State the hypotheses",
				Description: "Null hypothesis (H0): no difference\nAlternative hypothesis (H1): a difference",
				Formulas:    []string{"H0: μd = 0"},
			},
			{
				Number:      3,
				Key:         ttest.StepDifferences,
				Title:       "Step 3: Calculate the differences",
				Description: "Subtract.",
				Table: &ttest.Table{
					Headers:   []string{"#", "a|b", "Difference"},
					Rows:      [][]string{{"1", "2", "3.00"}},
					Truncated: true,
					TotalRows: 9,
				},
			},
		},
		APA: "A paired-samples t-test was conducted.",
		Result: ttest.AnalysisResult{
			Columns:        ttest.ColumnPair{First: "a|b", Second: "<script>x</script>"},
			IndependentVar: "Condition",
			DependentVar:   "Score",
			N:              9,
			TValue:         4.7,
		},
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleReport())

	assert.True(t, strings.HasPrefix(md, "# Paired-samples t-test walkthrough\n"))
	assert.Contains(t, md, "## Step 1: State the hypotheses\n")
	assert.Contains(t, md, "Null hypothesis (H0): no difference\n\nAlternative hypothesis (H1): a difference\n")
	assert.Contains(t, md, "- `H0: μd = 0`\n")
	assert.Contains(t, md, "| \\# | a\\|b | Difference |\n| --- | --- | --- |\n| 1 | 2 | 3.00 |\n")
	assert.Contains(t, md, "| "+ttest.TruncationMarker+" |  |  |\n")
	assert.Contains(t, md, "_Showing 1 of 9 rows._")
	assert.True(t, strings.HasSuffix(md, "> A paired-samples t-test was conducted.\n"))
}

func TestHTML_RendersTablesAndDropsRawHTML(t *testing.T) {
	out := string(HTML(sampleReport()))

	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<blockquote>")
	assert.Contains(t, out, "<code>H0: μd = 0</code>")
	assert.NotContains(t, out, "<script>")
}

func TestJSON(t *testing.T) {
	data, err := JSON(sampleReport())
	require.NoError(t, err)

	var decoded ttest.AnalysisReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "report-1", decoded.ID.String())
	assert.Equal(t, 9, decoded.Result.N)
	assert.Len(t, decoded.Steps, 2)
	assert.Contains(t, string(data), `"t_value": 4.7`)
}

func TestHTML_NamesCannotInjectLinks(t *testing.T) {
	first := "[click](javascript:alert(1))"
	set := ttest.RecordSet{
		Columns: []string{first, "Y"},
		Rows: []ttest.Record{
			{first: 10.0, "Y": 8.0},
			{first: 12.0, "Y": 9.0},
			{first: 9.0, "Y": 7.0},
			{first: 11.0, "Y": 10.0},
		},
	}
	r, err := pairedt.NewEngine(distribution.NewStudentT()).Analyze(set, ttest.Options{
		IndependentVar: "![img](javascript:alert(3))",
		DependentVar:   "[x](javascript:alert(2)) **bold** _em_",
	})
	require.NoError(t, err)
	report, err := narrative.NewNarrator(narrative.FixedChooser(0)).Narrate(set, r)
	require.NoError(t, err)

	out := string(HTML(report))
	assert.NotContains(t, out, "javascript:alert(1)\"")
	assert.NotContains(t, out, `href="javascript:`)
	assert.NotContains(t, out, "<a ")
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "<strong>bold</strong>")
	assert.NotContains(t, out, "<em>em</em>")
	assert.Contains(t, out, "[click](javascript:alert(1))", "names are shown as plain text")

	md := Markdown(report)
	assert.Contains(t, md, `\[click\](javascript:alert(1))`)
	assert.Contains(t, md, `\*\*bold\*\* \_em\_`)
}

func TestHTML_UnsafeLinkSchemesAreNotLinked(t *testing.T) {
	report := sampleReport()
	report.Steps[0].Description = "see <javascript:alert(4)>"

	out := string(HTML(report))
	assert.NotContains(t, out, `href="javascript:`)
}
