package api

import (
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/render"

	"gopaired/app"
	"gopaired/domain/ttest"
	"gopaired/internal"
	"gopaired/internal/errors"
)

// Handler serves the paired t-test endpoints
type Handler struct {
	service *app.AnalysisService
	config  Config
	logger  *internal.Logger
}

// recordsRequest is the JSON alternative to a file upload
type recordsRequest struct {
	Columns []string       `json:"columns"`
	Rows    []ttest.Record `json:"rows"`
	Options optionsRequest `json:"options"`
}

// optionsRequest tells an omitted alpha apart from an explicit zero
type optionsRequest struct {
	Alpha          *float64         `json:"alpha"`
	IndependentVar string           `json:"independent_variable"`
	DependentVar   string           `json:"dependent_variable"`
	Columns        ttest.ColumnPair `json:"columns"`
}

func (o optionsRequest) toOptions() (ttest.Options, error) {
	opts := ttest.Options{
		IndependentVar: o.IndependentVar,
		DependentVar:   o.DependentVar,
		Columns:        o.Columns,
	}
	if o.Alpha != nil {
		if err := app.CheckAlpha(*o.Alpha); err != nil {
			return ttest.Options{}, err
		}
		opts.Alpha = *o.Alpha
	}
	return opts, nil
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// handleTTest accepts either a multipart upload or a JSON record set
func (h *Handler) handleTTest(w http.ResponseWriter, r *http.Request) {
	if h.config.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.config.MaxUploadBytes)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	var (
		report *ttest.AnalysisReport
		err    error
	)
	switch mediaType {
	case "application/json":
		report, err = h.analyzeJSON(r)
	case "multipart/form-data":
		report, err = h.analyzeUpload(r)
	default:
		err = errors.InvalidInput("send a multipart/form-data upload or an application/json record set")
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	render.JSON(w, r, report)
}

func (h *Handler) analyzeUpload(r *http.Request) (*ttest.AnalysisReport, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, errors.InvalidInput("could not read the upload: " + err.Error())
	}
	file, header, err := r.FormFile(app.FieldFile)
	if err != nil {
		return nil, errors.InvalidInput("no file uploaded in field \"" + app.FieldFile + "\"")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.InvalidInput("could not read the uploaded file")
	}
	opts, err := app.OptionsFromForm(r.FormValue)
	if err != nil {
		return nil, err
	}

	h.logger.Debug("[API] Upload %q (%d bytes)", header.Filename, len(data))
	return h.service.AnalyzeFile(r.Context(), app.AnalysisRequest{
		Filename: header.Filename,
		Data:     data,
		Options:  opts,
	})
}

func (h *Handler) analyzeJSON(r *http.Request) (*ttest.AnalysisReport, error) {
	var req recordsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		return nil, errors.InvalidInput("invalid JSON body: " + err.Error())
	}
	opts, err := req.Options.toOptions()
	if err != nil {
		return nil, err
	}
	set := ttest.RecordSet{Columns: req.Columns, Rows: req.Rows}
	return h.service.AnalyzeRecords(r.Context(), set, opts)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("[API] Request failed: %v", err)
	}
	render.Status(r, status)
	render.JSON(w, r, errorResponse{
		Error: errors.PublicMessage(err),
		Code:  errors.GetCode(err),
	})
}
