package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildTableJSONSchema returns the JSON-Schema (draft 2020-12 subset) for the
// canonical table serialized as an ordered list of per-row mappings. It is the
// boundary contract for persistence and any other consumer of saved rows.
func BuildTableJSONSchema() map[string]any {
	row := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"test":            map[string]any{"type": "string", "minLength": 1},
			"value":           map[string]any{"type": "number"},
			"units":           map[string]any{"type": "string"},
			"reference_range": map[string]any{"type": "string", "minLength": 1},
			"status": map[string]any{
				"type": "string",
				"enum": []string{string(StatusNormal), string(StatusLow), string(StatusHigh)},
			},
			"source": map[string]any{"type": "string"},
		},
		"required": []string{"test", "value", "units", "reference_range", "status"},
	}
	return map[string]any{
		"type":  "array",
		"items": row,
	}
}

// MarshalTable serializes canonical rows and validates them against the table
// schema before handing the bytes to a store or exporter.
func MarshalTable(rows []TestResult) ([]byte, error) {
	if rows == nil {
		rows = []TestResult{}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal table: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildTableJSONSchema(), b); err != nil {
		return nil, err
	}
	return b, nil
}

// UnmarshalTable is the inverse of MarshalTable.
func UnmarshalTable(data []byte) ([]TestResult, error) {
	if err := ValidateJSONAgainstSchema(BuildTableJSONSchema(), data); err != nil {
		return nil, err
	}
	var rows []TestResult
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal table: %w", err)
	}
	return rows, nil
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
