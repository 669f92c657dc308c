package output

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIErrorMessageOnly(t *testing.T) {
	err := &CLIError{Message: "something broke"}
	assert.Equal(t, "something broke", err.Error())
	assert.NoError(t, err.Unwrap())
}

func TestCLIErrorWithCause(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &CLIError{Message: "az account list failed", Cause: cause}
	assert.Equal(t, "az account list failed: exit status 1", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrapErrorWithFix(t *testing.T) {
	cause := errors.New("yaml: line 3")
	err := WrapErrorWithFix(cause, "invalid configuration", "Check rgsweep.yaml")

	assert.Equal(t, "invalid configuration", err.Message)
	assert.Equal(t, "Check rgsweep.yaml", err.Fix)
	assert.ErrorIs(t, err, cause)
}

func TestNoColorRespectsEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, NoColor())
}
