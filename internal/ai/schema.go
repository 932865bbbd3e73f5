package ai

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildDocumentJSONSchema returns a JSON-Schema (draft 2020-12 subset) as
// a generic map. We pass this to the model as an output constraint and
// also use it locally to validate what comes back.
func BuildDocumentJSONSchema() map[string]any {
	party := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":       map[string]any{"type": "string"},
			"address":    map[string]any{"type": "string"},
			"vat_number": map[string]any{"type": "string"},
			"email":      map[string]any{"type": "string"},
		},
	}

	props := map[string]any{
		"document_type":   map[string]any{"type": "string", "enum": []string{"invoice", "bank_statement", "unknown"}},
		"invoice_number":  map[string]any{"type": "string"},
		"date":            map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"amount_incl_vat": decimalProp(),
		"amount_excl_vat": decimalProp(),
		"vat_amount":      decimalProp(),
		"vat_rate":        map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
		"invoice_type":    map[string]any{"type": "string", "enum": []string{"income", "expense"}},
		"seller":          party,
		"buyer":           party,
		"line_items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"description": map[string]any{"type": "string", "minLength": 1},
					"quantity":    map[string]any{"type": "number"},
					"unit_price":  decimalProp(),
					"vat_rate":    map[string]any{"type": "number"},
				},
				"required": []string{"description"},
			},
		},
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"document_type"},
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,2})?$`,
	}
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
