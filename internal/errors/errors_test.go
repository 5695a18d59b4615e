package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"gopaired/domain/core"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		code   string
		status int
	}{
		{core.NewParseError("csv", stderrors.New("bad quote")), CodeParseError, http.StatusBadRequest},
		{core.NewValidationError("dataset is empty"), CodeValidationError, http.StatusUnprocessableEntity},
		{core.NewDataTypeError(1, "X", "a"), CodeDataTypeError, http.StatusUnprocessableEntity},
		{core.ErrEmptyInput, CodeEmptyInput, http.StatusUnprocessableEntity},
		{core.NewInsufficientSampleError(1), CodeInsufficientSample, http.StatusUnprocessableEntity},
		{fmt.Errorf("step: %w", core.NewZeroVarianceError("x")), CodeZeroVariance, http.StatusUnprocessableEntity},
		{core.NewInvalidDegreesOfFreedomError(0), CodeInvalidDegreesOfFreedom, http.StatusUnprocessableEntity},
		{InvalidInput("alpha is not a number"), CodeInvalidInput, http.StatusBadRequest},
		{stderrors.New("disk on fire"), CodeInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, Classify(tt.err).Code)
			assert.Equal(t, tt.code, GetCode(tt.err))
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}

	assert.Nil(t, Classify(nil))
}

func TestPublicMessage(t *testing.T) {
	err := core.NewValidationError("dataset must have at least two numerical columns")
	assert.Equal(t, err.Error(), PublicMessage(err))

	assert.Equal(t, "the analysis failed unexpectedly", PublicMessage(stderrors.New("secret path /etc")))
}

func TestWrap_KeepsCodeAndCause(t *testing.T) {
	base := ConfigInvalid("PORT is not a number")
	err := Wrap(base, "failed to load configuration")

	assert.Equal(t, CodeConfigInvalid, GetCode(err))
	assert.True(t, stderrors.Is(err, base))
	assert.Equal(t, "failed to load configuration: PORT is not a number", err.Error())
	assert.Nil(t, Wrap(nil, "x"))
	assert.Nil(t, Wrapf(nil, "x %d", 1))
}
