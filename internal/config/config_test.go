package config

import (
	"testing"

	"gopaired/domain/ttest"
	"gopaired/internal"
	"gopaired/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"TTEST_ALPHA", "TTEST_SEED", "TTEST_IV_NAME", "TTEST_DV_NAME",
		"MAX_UPLOAD_MB", "MAX_ROWS", "LOG_LEVEL", "API_PORT", "UI_PORT", "GIN_MODE", "EXCEL_SHEET",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ttest.DefaultAlpha, cfg.Analysis.Alpha)
	assert.Equal(t, ttest.DefaultIndependentVar, cfg.Analysis.IndependentVar)
	assert.Equal(t, ttest.DefaultDependentVar, cfg.Analysis.DependentVar)
	assert.Zero(t, cfg.Analysis.Seed)
	assert.Equal(t, "8080", cfg.Server.APIPort)
	assert.Equal(t, "8081", cfg.Server.UIPort)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxBytes())
	assert.Equal(t, internal.LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, ttest.DefaultOptions(), cfg.Analysis.Options())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TTEST_ALPHA", "0.01")
	t.Setenv("TTEST_SEED", "42")
	t.Setenv("TTEST_DV_NAME", "Reaction time")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("EXCEL_SHEET", "Scores")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.01, cfg.Analysis.Alpha)
	assert.Equal(t, int64(42), cfg.Analysis.Seed)
	assert.Equal(t, "Reaction time", cfg.Analysis.DependentVar)
	assert.Equal(t, internal.LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, "Scores", cfg.Upload.Sheet)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"TTEST_ALPHA":   "1.5",
		"MAX_UPLOAD_MB": "0",
		"LOG_LEVEL":     "LOUD",
		"TTEST_SEED":    "abc",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
