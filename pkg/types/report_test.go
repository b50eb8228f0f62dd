package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

// reportSchema pins the JSON wire format of validation results.
const reportSchema = `{
	"type": "object",
	"required": ["valid", "messages"],
	"additionalProperties": false,
	"properties": {
		"valid": {"type": "boolean"},
		"messages": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["type", "id", "message", "details"],
				"additionalProperties": false,
				"properties": {
					"type": {"enum": ["warning", "error", "fatal"]},
					"id": {"type": "integer", "minimum": 1000, "maximum": 9999},
					"message": {"type": "string"},
					"details": {"type": "string"}
				}
			}
		}
	}
}`

func sampleResult() *ValidationResult {
	return &ValidationResult{
		Valid: false,
		Messages: []ValidationReport{
			{Type: SevError, ID: 3006, Message: "Invalid pixelWidth. pixelWidth cannot be 0.", Details: "pixelWidth is 0, but textures must have width."},
			{Type: SevWarning, ID: 7125, Message: "Missing KTXwriter metadata.", Details: "KTXwriter metadata is missing."},
		},
	}
}

func TestSeverity_String(t *testing.T) {
	require.Equal(t, "warning", SevWarning.String())
	require.Equal(t, "error", SevError.String())
	require.Equal(t, "fatal", SevFatal.String())
}

func TestSeverity_JSONRoundTrip(t *testing.T) {
	for _, sev := range []Severity{SevWarning, SevError, SevFatal} {
		data, err := json.Marshal(sev)
		require.NoError(t, err)

		var back Severity
		require.NoError(t, json.Unmarshal(data, &back))
		require.Equal(t, sev, back)
	}

	var s Severity
	require.Error(t, json.Unmarshal([]byte(`"critical"`), &s))
}

func TestFormatText(t *testing.T) {
	out := sampleResult().FormatText()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "error-3006: Invalid pixelWidth. pixelWidth cannot be 0.", lines[0])
	require.Equal(t, "    pixelWidth is 0, but textures must have width.", lines[1])
	require.Equal(t, "warning-7125: Missing KTXwriter metadata.", lines[2])
}

func TestFormatText_Empty(t *testing.T) {
	r := &ValidationResult{Valid: true}
	require.Equal(t, "", r.FormatText())
}

func TestFormatJSON_MatchesSchema(t *testing.T) {
	for _, result := range []*ValidationResult{sampleResult(), {Valid: true}} {
		out, err := result.FormatJSON()
		require.NoError(t, err)

		verdict, err := gojsonschema.Validate(
			gojsonschema.NewStringLoader(reportSchema),
			gojsonschema.NewStringLoader(out),
		)
		require.NoError(t, err)
		require.True(t, verdict.Valid(), "schema violations: %v", verdict.Errors())
	}
}

func TestFormatJSON_EmptyMessages(t *testing.T) {
	r := &ValidationResult{Valid: true}
	out, err := r.FormatJSON()
	require.NoError(t, err)
	require.Contains(t, out, `"messages": []`)
	require.NotContains(t, out, "null")
}

func TestFormatJSONMini(t *testing.T) {
	out, err := sampleResult().FormatJSONMini()
	require.NoError(t, err)

	// Minified: no insignificant whitespace outside of string values.
	require.NotContains(t, out, "\n")
	require.NotContains(t, out, `": `)
	require.True(t, strings.HasPrefix(out, `{"valid":false,"messages":[`))

	var back ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	require.Equal(t, *sampleResult(), back)
}

func TestValidationResult_Add(t *testing.T) {
	var r ValidationResult
	r.Add(ValidationReport{Type: SevError, ID: 3006})
	r.Add(ValidationReport{Type: SevWarning, ID: 7125})
	require.Len(t, r.Messages, 2)
	require.Equal(t, uint16(3006), r.Messages[0].ID)
}
