package report

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/riskcheck/internal/catalog"
	"github.com/abhisek/riskcheck/internal/scoring"
)

// AnswerFile is the JSON document accepted by the non-interactive
// score command: an optional organization name plus the full mapping of
// question IDs to risk values.
type AnswerFile struct {
	Org     string          `json:"org,omitempty"`
	Answers scoring.Answers `json:"answers"`
}

// answersSchemaDef builds the JSON-schema definition for AnswerFile
// from the question catalog, so the schema always matches the seeded
// question set: every question ID required, values 0..2, nothing else
// allowed.
func answersSchemaDef() map[string]any {
	props := map[string]any{}
	var required []any
	for _, q := range catalog.Questions() {
		props[q.ID] = map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": catalog.MaxRisk,
		}
		required = append(required, q.ID)
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"org": map[string]any{"type": "string"},
			"answers": map[string]any{
				"type":                 "object",
				"properties":           props,
				"required":             required,
				"additionalProperties": false,
			},
		},
		"required":             []any{"answers"},
		"additionalProperties": false,
	}
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// answersSchema compiles the AnswerFile schema once and caches it.
func answersSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		defBytes, err := json.Marshal(answersSchemaDef())
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		const schemaURL = "schema://answers.json"
		if err := compiler.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// ParseAnswerFile validates raw JSON against the answers schema and
// decodes it. Schema violations come back as a single wrapped error so
// the caller can print them verbatim.
func ParseAnswerFile(raw []byte) (*AnswerFile, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := answersSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("answers file rejected: %w", err)
	}

	var af AnswerFile
	if err := json.Unmarshal(raw, &af); err != nil {
		return nil, fmt.Errorf("decode answers file: %w", err)
	}
	return &af, nil
}
