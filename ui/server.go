package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"gopaired/app"
	"gopaired/internal"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html static/css/*.css
var embeddedFiles embed.FS

// Config holds UI settings
type Config struct {
	GinMode        string
	MaxUploadBytes int64
}

// Server represents the web UI for the paired t-test walkthrough
type Server struct {
	router    *gin.Engine
	service   *app.AnalysisService
	templates *template.Template
	config    Config
	logger    *internal.Logger
}

// NewServer creates a new web server instance
func NewServer(service *app.AnalysisService, config Config, logger *internal.Logger) (*Server, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}

	s := &Server{
		router:  gin.New(),
		service: service,
		config:  config,
		logger:  logger,
	}

	templates, err := template.New("").Funcs(templateFuncs()).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.templates = templates
	logger.Debug("[UI] Loaded templates: %s", templates.DefinedTemplates())

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	if s.logger.GetLevel() >= internal.LogLevelInfo {
		s.router.Use(gin.Logger())
	}
	if s.config.MaxUploadBytes > 0 {
		s.router.MaxMultipartMemory = s.config.MaxUploadBytes
	}

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		s.logger.Warn("[UI] Static assets unavailable: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/analyze", s.handleAnalyze)
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Handler exposes the router for http.Server and tests
func (s *Server) Handler() http.Handler {
	return s.router
}
