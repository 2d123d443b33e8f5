package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["name", "count"],
	"properties": {
		"name": {"type": "string"},
		"count": {"type": "integer"}
	}
}`

func TestValidateJSONString_ValidDocument(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "go", "count": 3}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "go"}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "go", "count": "three"}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, "count", validationErr.Errors[0].Field)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(testSchema, `{not json}`)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError type")
}

func TestValidateJSONString_MalformedSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": [}`, `{}`)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError type")
}

func TestValidationError_MessageFormat(t *testing.T) {
	err := ValidateJSONString(testSchema, `{}`)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "1.")
}
