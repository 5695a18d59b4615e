// Package render formats an AnalysisReport for people: Markdown for the
// terminal, HTML for the browser and JSON for programs.
package render

import (
	"fmt"
	"strings"

	"gopaired/domain/ttest"
)

// textEscaper neutralizes the Markdown syntax that could turn column or
// display names into links, images, emphasis or headings.
var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"*", `\*`,
	"_", `\_`,
	"#", `\#`,
	"!", `\!`,
)

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

// text escapes s for use as inline Markdown text
func text(s string) string {
	return textEscaper.Replace(s)
}

// Markdown renders the whole walkthrough
func Markdown(report ttest.AnalysisReport) string {
	var b strings.Builder

	b.WriteString("# Paired-samples t-test walkthrough\n\n")
	fmt.Fprintf(&b, "Comparing **%s** and **%s** (%s) on %s, n = %d.\n\n",
		text(report.Result.Columns.First), text(report.Result.Columns.Second),
		text(report.Result.IndependentVar), text(report.Result.DependentVar), report.Result.N)

	for _, step := range report.Steps {
		writeStep(&b, step)
	}

	b.WriteString("## APA write-up\n\n")
	b.WriteString("> " + text(report.APA) + "\n")
	return b.String()
}

func writeStep(b *strings.Builder, step ttest.Step) {
	fmt.Fprintf(b, "## %s\n\n", text(step.Title))
	for _, line := range strings.Split(step.Description, "\n") {
		b.WriteString(text(line) + "\n\n")
	}
	for _, f := range step.Formulas {
		fmt.Fprintf(b, "- `%s`\n", strings.ReplaceAll(f, "`", "'"))
	}
	if len(step.Formulas) > 0 {
		b.WriteString("\n")
	}
	if step.Table != nil {
		writeTable(b, step.Table)
	}
}

func writeTable(b *strings.Builder, t *ttest.Table) {
	if len(t.Headers) == 0 {
		return
	}
	row := func(cells []string) {
		escaped := make([]string, len(t.Headers))
		for i := range escaped {
			if i < len(cells) {
				escaped[i] = cellEscaper.Replace(text(cells[i]))
			}
		}
		b.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
	}

	row(t.Headers)
	b.WriteString("|" + strings.Repeat(" --- |", len(t.Headers)) + "\n")
	for _, cells := range t.Rows {
		row(cells)
	}
	if t.Truncated {
		row([]string{ttest.TruncationMarker})
	}
	b.WriteString("\n")
	if t.Truncated {
		fmt.Fprintf(b, "_Showing %d of %d rows._\n\n", len(t.Rows), t.TotalRows)
	}
}
