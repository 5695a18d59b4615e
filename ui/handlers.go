package ui

import (
	"html/template"
	"io"
	"net/http"

	"gopaired/app"
	"gopaired/domain/ttest"
	"gopaired/internal/errors"
	"gopaired/internal/render"

	"github.com/gin-gonic/gin"
)

// pageData feeds both the upload form and the result page
type pageData struct {
	Title    string
	Defaults ttest.Options
	Form     map[string]string
	Error    string
	Report   *ttest.AnalysisReport
	Body     template.HTML
}

func (s *Server) newPage() pageData {
	return pageData{
		Title:    "Paired-samples t-test",
		Defaults: ttest.DefaultOptions(),
		Form:     map[string]string{},
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderTemplate(c, http.StatusOK, "index.html", s.newPage())
}

func (s *Server) handleAnalyze(c *gin.Context) {
	if s.config.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.config.MaxUploadBytes)
	}

	report, err := s.analyze(c)
	page := s.newPage()
	for _, field := range []string{app.FieldIndependentVar, app.FieldDependentVar, app.FieldAlpha, app.FieldColumn1, app.FieldColumn2} {
		page.Form[field] = c.PostForm(field)
	}
	if err != nil {
		page.Error = errors.PublicMessage(err)
		s.logger.Info("[UI] Analysis rejected: %v", err)
		s.renderTemplate(c, errors.HTTPStatus(err), "index.html", page)
		return
	}

	page.Title = report.Result.DependentVar + ": " + report.Result.Columns.First + " vs " + report.Result.Columns.Second
	page.Report = report
	// render.HTML escapes names, drops raw HTML and unsafe links
	page.Body = template.HTML(render.HTML(*report))
	s.renderTemplate(c, http.StatusOK, "report.html", page)
}

func (s *Server) analyze(c *gin.Context) (*ttest.AnalysisReport, error) {
	header, err := c.FormFile(app.FieldFile)
	if err != nil {
		return nil, errors.InvalidInput("choose a CSV or Excel file to analyze")
	}
	file, err := header.Open()
	if err != nil {
		return nil, errors.InvalidInput("could not read the uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.InvalidInput("could not read the uploaded file")
	}

	opts, err := app.OptionsFromForm(c.PostForm)
	if err != nil {
		return nil, err
	}
	return s.service.AnalyzeFile(c.Request.Context(), app.AnalysisRequest{
		Filename: header.Filename,
		Data:     data,
		Options:  opts,
	})
}
