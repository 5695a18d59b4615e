package app

import (
	"context"
	"time"

	"gopaired/domain/core"
	"gopaired/domain/ttest"
	"gopaired/internal"
	"gopaired/internal/analysis/pairedt"
	"gopaired/internal/narrative"
	"gopaired/ports"
)

// AnalysisRequest is one uploaded file plus the caller's options
type AnalysisRequest struct {
	Filename string
	Data     []byte
	Options  ttest.Options
}

// AnalysisService wires loading, computing and narrating into one call.
// It holds no per-request state and is safe for concurrent use.
type AnalysisService struct {
	loader   ports.RecordLoaderPort
	engine   *pairedt.Engine
	narrator *narrative.Narrator
	defaults ttest.Options
	logger   *internal.Logger
	now      func() time.Time
}

// NewAnalysisService creates the service. defaults fill any option a request
// leaves blank.
func NewAnalysisService(
	loader ports.RecordLoaderPort,
	dist ports.TDistributionPort,
	choose ports.Chooser,
	defaults ttest.Options,
	logger *internal.Logger,
) *AnalysisService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AnalysisService{
		loader:   loader,
		engine:   pairedt.NewEngine(dist),
		narrator: narrative.NewNarrator(choose),
		defaults: defaults.WithDefaults(),
		logger:   logger,
		now:      time.Now,
	}
}

// mergeOptions overlays the request's options on the service defaults
func (s *AnalysisService) mergeOptions(opts ttest.Options) ttest.Options {
	merged := s.defaults
	if opts.Alpha != 0 {
		merged.Alpha = opts.Alpha
	}
	if opts.IndependentVar != "" {
		merged.IndependentVar = opts.IndependentVar
	}
	if opts.DependentVar != "" {
		merged.DependentVar = opts.DependentVar
	}
	merged.Columns = opts.Columns
	return merged
}

// AnalyzeFile parses the upload and runs the walkthrough on it. Loader errors
// are returned unmodified.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, req AnalysisRequest) (*ttest.AnalysisReport, error) {
	s.logger.Info("[AnalysisService] Loading %q (%d bytes)", req.Filename, len(req.Data))

	set, err := s.loader.Load(ctx, req.Filename, req.Data)
	if err != nil {
		s.logger.Error("[AnalysisService] Failed to load %q: %v", req.Filename, err)
		return nil, err
	}
	s.logger.Info("[AnalysisService] Loaded %d rows, %d columns", set.Len(), len(set.Columns))

	report, err := s.AnalyzeRecords(ctx, set, req.Options)
	if err != nil {
		return nil, err
	}
	report.DatasetHash = core.NewDatasetHash(req.Data)
	return report, nil
}

// AnalyzeRecords runs the walkthrough on an already materialized record set
func (s *AnalysisService) AnalyzeRecords(ctx context.Context, set ttest.RecordSet, opts ttest.Options) (*ttest.AnalysisReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = s.mergeOptions(opts)

	result, err := s.engine.Analyze(set, opts)
	if err != nil {
		s.logger.Error("[AnalysisService] Analysis failed: %v", err)
		return nil, err
	}
	s.logger.Info("[AnalysisService] Paired columns %s and %s, n=%d", result.Columns.First, result.Columns.Second, result.N)
	s.logger.Debug("[AnalysisService] mean=%.4f sd=%.4f se=%.4f t=%.4f df=%d crit=%.4f p=%.4f d=%.4f",
		result.Mean, result.StdDev, result.StandardError, result.TValue, result.DF, result.CriticalT, result.PValue, result.EffectSize)
	s.logger.Info("[AnalysisService] Decision at alpha=%.3f: %s the null hypothesis", result.Alpha, result.Decision())

	report, err := s.narrator.Narrate(set, result)
	if err != nil {
		s.logger.Error("[AnalysisService] Narration failed: %v", err)
		return nil, err
	}
	report.ID = core.NewReportID()
	report.GeneratedAt = s.now().UTC()
	return &report, nil
}
