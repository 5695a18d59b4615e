package render

import (
	"gopaired/domain/ttest"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// HTML renders the walkthrough as an HTML fragment. Names are escaped as
// Markdown text, raw HTML is dropped and links are limited to safe schemes,
// so the output can be embedded in a page as is.
func HTML(report ttest.AnalysisReport) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.SkipHTML | html.Safelink,
	})
	return markdown.ToHTML([]byte(Markdown(report)), p, renderer)
}
