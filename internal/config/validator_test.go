package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "exclude": {"type": "array", "items": {"type": "string", "minLength": 1}},
    "workers": {"type": "integer", "minimum": 1},
    "quiet": {"type": "boolean"},
    "dry_run": {"type": "boolean"}
  }
}`

func withSchema(t *testing.T) {
	t.Helper()
	prev := GetSchema()
	SetSchema([]byte(testSchema))
	t.Cleanup(func() { SetSchema(prev) })
}

func TestValidateYAMLAccepts(t *testing.T) {
	withSchema(t)

	result, err := ValidateYAML([]byte("workers: 5\nexclude:\n  - rg-prod\n"))
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateYAMLRejectsUnknownKey(t *testing.T) {
	withSchema(t)

	result, err := ValidateYAML([]byte("worker_count: 5\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Describe())
}

func TestValidateYAMLRejectsBadType(t *testing.T) {
	withSchema(t)

	result, err := ValidateYAML([]byte("workers: many\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestParseFailsOnSchemaViolation(t *testing.T) {
	withSchema(t)

	_, err := Parse([]byte("workers: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestValidateYAMLWithoutSchemaErrors(t *testing.T) {
	prev := GetSchema()
	SetSchema(nil)
	t.Cleanup(func() { SetSchema(prev) })

	_, err := ValidateYAML([]byte("workers: 5\n"))
	assert.Error(t, err)
}
