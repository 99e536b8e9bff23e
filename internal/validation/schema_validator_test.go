package validation

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

const listSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"id": {"type": "integer"},
			"name": {"type": "string"}
		},
		"required": ["id", "name"]
	}
}`

func testSchemas() fstest.MapFS {
	return fstest.MapFS{
		"person.schema.json": {Data: []byte(personSchema)},
		"list.schema.json":   {Data: []byte(listSchema)},
		"broken.schema.json": {Data: []byte(`{"type": `)},
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator(testSchemas())
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "John", "age": "thirty"}`, errorMsg: "/age"},
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := filepath.Join(tmpDir, "data.json")
			require.NoError(t, os.WriteFile(dataPath, []byte(tt.data), 0644))

			err := v.ValidateFile(dataPath, "person.schema.json")
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator(testSchemas())

	tests := []struct {
		name      string
		data      string
		wantError bool
	}{
		{name: "valid array", data: `[{"id": 1, "name": "Item1"}, {"id": 2, "name": "Item2"}]`},
		{name: "empty array", data: `[]`},
		{name: "invalid item in array", data: `[{"id": 1, "name": "Item1"}, {"id": "two", "name": "Item2"}]`, wantError: true},
		{name: "missing required field", data: `[{"id": 1}]`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "list.schema.json")
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchemaValidator_ReportsLocation(t *testing.T) {
	v := NewSchemaValidator(testSchemas())

	err := v.ValidateBytes([]byte(`[{"id": 1, "name": "a"}, {"id": "x", "name": "b"}]`), "list.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgValidationFailed)
	assert.Contains(t, err.Error(), "/1/id")
}

func TestSchemaValidator_SchemaErrors(t *testing.T) {
	v := NewSchemaValidator(testSchemas())

	err := v.ValidateBytes([]byte(`{}`), "missing.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")

	err = v.ValidateBytes([]byte(`{}`), "broken.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema JSON")
}

func TestSchemaValidator_MissingDataFile(t *testing.T) {
	v := NewSchemaValidator(testSchemas())

	err := v.ValidateFile(filepath.Join(t.TempDir(), "nope.json"), "person.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator(testSchemas()).(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{"name": "a"}`), "person.schema.json"))
	require.NoError(t, v.ValidateBytes([]byte(`{"name": "b"}`), "person.schema.json"))
	assert.Len(t, v.schemas, 1)
}
