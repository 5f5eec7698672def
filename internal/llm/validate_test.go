package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pupilSchema = &Schema{
	Name: "validate-pupil",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ad":    map[string]any{"type": "string"},
			"sinif": map[string]any{"type": "integer", "minimum": 1},
			"seviye": map[string]any{
				"type": "string",
				"enum": []any{"kolay", "orta", "zor"},
			},
			"puanlar": map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
		},
		"required": []any{"ad", "sinif"},
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"all fields", `{"ad":"Ayşe","sinif":3,"seviye":"orta","puanlar":[90,85]}`, true},
		{"required only", `{"ad":"Mert","sinif":2}`, true},
		{"missing required", `{"ad":"Deniz"}`, false},
		{"wrong type", `{"ad":"Elif","sinif":"üç"}`, false},
		{"below minimum", `{"ad":"Elif","sinif":0}`, false},
		{"unknown enum", `{"ad":"Can","sinif":4,"seviye":"çok zor"}`, false},
		{"wrong item type", `{"ad":"Can","sinif":4,"puanlar":["yüz"]}`, false},
		{"malformed", `{ad: Can}`, false},
		{"empty", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(pupilSchema, json.RawMessage(tt.raw))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var invalid *ErrInvalidResponse
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.raw, string(invalid.Content))
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`not even json`)))
}

func TestCompileSchema_CachedByName(t *testing.T) {
	first, err := compileSchema(pupilSchema)
	require.NoError(t, err)
	second, err := compileSchema(&Schema{Name: pupilSchema.Name})
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestValidateResponse_BrokenSchema(t *testing.T) {
	broken := &Schema{Name: "validate-broken", Definition: map[string]any{"$ref": "#/$defs/missing"}}
	err := validateResponse(broken, json.RawMessage(`{}`))
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}
