package reportclient

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const uploadSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["success"],
  "properties": {
    "success": {"type": "boolean"},
    "report": {"type": "string"},
    "session_id": {"type": ["string", "null"]},
    "error": {"type": "string"}
  },
  "if": {"properties": {"success": {"const": true}}},
  "then": {"required": ["report"]}
}`

const documentSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["success"],
  "properties": {
    "success": {"type": "boolean"},
    "pdf_path": {"type": "string", "minLength": 1},
    "error": {"type": "string"}
  },
  "if": {"properties": {"success": {"const": true}}},
  "then": {"required": ["pdf_path"]}
}`

var (
	uploadSchema   = mustCompileSchema(uploadSchemaJSON, "upload_response.schema.json")
	documentSchema = mustCompileSchema(documentSchemaJSON, "generate_pdf_response.schema.json")
)

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var schemaDoc any
	if err := json.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// decodeValidated checks body against schema before decoding it into out.
func decodeValidated(schema *jsonschema.Schema, body []byte, out any) error {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("validate response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
