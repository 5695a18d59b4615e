package ui

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"percent": func(alpha float64) float64 { return alpha * 100 },
	}
}

// renderTemplate executes a template with the given data
func (s *Server) renderTemplate(c *gin.Context, status int, name string, data interface{}) {
	// Render to a buffer first so a template error never leaves a half page
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("[UI] Template error for %s: %v", name, err)
		c.String(http.StatusInternalServerError, "template rendering failed")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		s.logger.Warn("[UI] Error writing template response: %v", err)
	}
}
