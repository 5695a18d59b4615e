package app

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"gopaired/adapters/excel"
	"gopaired/adapters/stats/distribution"
	"gopaired/domain/core"
	"gopaired/domain/ttest"
	"gopaired/internal"
	"gopaired/internal/narrative"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const scenarioCSV = "X,Y\n10,8\n12,9\n9,7\n11,10\n13,9\n"

// MockLoader lets tests control what the loading collaborator returns
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context, filename string, data []byte) (ttest.RecordSet, error) {
	args := m.Called(ctx, filename, data)
	return args.Get(0).(ttest.RecordSet), args.Error(1)
}

func newService(t *testing.T, logs *bytes.Buffer) *AnalysisService {
	t.Helper()
	logger := internal.NewLoggerTo(logs, internal.LogLevelDebug)
	svc := NewAnalysisService(
		excel.NewLoader(excel.DefaultLoaderConfig(), logger),
		distribution.NewStudentT(),
		narrative.FixedChooser(0),
		ttest.Options{DependentVar: "Score"},
		logger,
	)
	svc.now = func() time.Time { return time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestAnalyzeFile_ScenarioA(t *testing.T) {
	var logs bytes.Buffer
	svc := newService(t, &logs)

	report, err := svc.AnalyzeFile(context.Background(), AnalysisRequest{
		Filename: "scores.csv",
		Data:     []byte(scenarioCSV),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID.String())
	assert.Equal(t, core.NewDatasetHash([]byte(scenarioCSV)), report.DatasetHash)
	assert.Equal(t, time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC), report.GeneratedAt)
	assert.Len(t, report.Steps, 10)
	assert.Equal(t, "Score", report.Result.DependentVar)
	assert.Equal(t, ttest.DefaultIndependentVar, report.Result.IndependentVar)
	assert.Contains(t, report.APA, "t(4) = 4.71, p < .05.")
	assert.InDelta(t, 2.4, report.Result.Mean, 1e-9)

	assert.Contains(t, logs.String(), "[INFO] [AnalysisService] Paired columns X and Y, n=5")
	assert.Contains(t, logs.String(), "reject the null hypothesis")
}

func TestAnalyzeFile_RequestOptionsOverrideDefaults(t *testing.T) {
	var logs bytes.Buffer
	svc := newService(t, &logs)

	report, err := svc.AnalyzeFile(context.Background(), AnalysisRequest{
		Filename: "scores.csv",
		Data:     []byte(scenarioCSV),
		Options:  ttest.Options{Alpha: 0.001, DependentVar: "Words recalled", Columns: ttest.ColumnPair{First: "Y", Second: "X"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.001, report.Result.Alpha)
	assert.Equal(t, "Words recalled", report.Result.DependentVar)
	assert.Equal(t, ttest.ColumnPair{First: "Y", Second: "X"}, report.Result.Columns)
	assert.False(t, report.Result.IsSignificant, "|t| = 4.71 is below the .001 critical value of 8.61")
	assert.Contains(t, report.APA, "p > .001.")
}

func TestAnalyzeFile_ParseErrorPropagatesUnmodified(t *testing.T) {
	parseErr := core.NewParseError("csv", errors.New("bare quote"))
	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "x.csv", []byte("whatever")).Return(ttest.RecordSet{}, parseErr)

	var logs bytes.Buffer
	svc := NewAnalysisService(loader, distribution.NewStudentT(), narrative.FixedChooser(0), ttest.Options{}, internal.NewLoggerTo(&logs, internal.LogLevelInfo))

	_, err := svc.AnalyzeFile(context.Background(), AnalysisRequest{Filename: "x.csv", Data: []byte("whatever")})
	assert.Same(t, parseErr, err)
	assert.Contains(t, logs.String(), "[ERROR]")
	loader.AssertExpectations(t)
}

func TestAnalyzeRecords_Errors(t *testing.T) {
	var logs bytes.Buffer
	svc := newService(t, &logs)

	_, err := svc.AnalyzeRecords(context.Background(), ttest.RecordSet{
		Columns: []string{"only"},
		Rows:    []ttest.Record{{"only": 1.0}, {"only": 2.0}},
	}, ttest.Options{})
	assert.ErrorIs(t, err, core.ErrValidation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.AnalyzeRecords(ctx, ttest.RecordSet{}, ttest.Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeRecords_NumericBundleIsStable(t *testing.T) {
	var logs bytes.Buffer
	logger := internal.NewLoggerTo(&logs, internal.LogLevelError)
	svc := NewAnalysisService(excel.NewLoader(excel.DefaultLoaderConfig(), logger), distribution.NewStudentT(), nil, ttest.Options{}, logger)

	set := ttest.RecordSet{
		Columns: []string{"X", "Y"},
		Rows: []ttest.Record{
			{"X": 10.0, "Y": 8.0}, {"X": 12.0, "Y": 9.0}, {"X": 9.0, "Y": 7.0}, {"X": 11.0, "Y": 10.0}, {"X": 13.0, "Y": 9.0},
		},
	}

	first, err := svc.AnalyzeRecords(context.Background(), set, ttest.Options{})
	require.NoError(t, err)
	second, err := svc.AnalyzeRecords(context.Background(), set, ttest.Options{})
	require.NoError(t, err)

	assert.Equal(t, first.Result, second.Result)
	assert.NotEqual(t, first.ID, second.ID)
}
