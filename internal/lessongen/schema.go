package lessongen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/kidlingo/internal/llm"
)

// Schema is a named JSON schema checked against repaired model output.
type Schema struct {
	Name       string
	Definition map[string]any
}

// AnalysisSchema defines the topic plan returned by the analysis phase.
var AnalysisSchema = &Schema{
	Name: "lesson-analysis",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lessonTitle":       map[string]any{"type": "string", "minLength": 1},
			"lessonDescription": map[string]any{"type": "string"},
			"languageLevel":     map[string]any{"type": "string"},
			"topics": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"topic":     map[string]any{"type": "string", "minLength": 1},
						"topicName": map[string]any{"type": "string"},
						"keyWords": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"cardPlan": map[string]any{
							"type": "object",
							"additionalProperties": map[string]any{
								"type":    "integer",
								"minimum": 0,
							},
						},
					},
					"required": []any{"topic", "cardPlan"},
				},
			},
		},
		"required": []any{"lessonTitle", "topics"},
	},
}

// CardsSchema defines a per-topic card batch. Card elements are checked
// one by one during ingestion, so only the envelope is enforced here.
var CardsSchema = &Schema{
	Name: "topic-cards",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{"type": "array"},
		},
		"required": []any{"cards"},
	},
}

// LessonSchema defines the single-request lesson document. Required keys
// are checked separately so the error can name them.
var LessonSchema = &Schema{
	Name: "single-stage-lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"lessonTitle":       map[string]any{"type": "string"},
			"lessonDescription": map[string]any{"type": "string"},
			"languageLevel":     map[string]any{"type": "string"},
			"cards":             map[string]any{"type": "array"},
			"sections": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"cards": map[string]any{"type": "array"},
					},
				},
			},
			"topics": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"topic": map[string]any{"type": "string"},
						"cards": map[string]any{"type": "array"},
					},
				},
			},
		},
	},
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateDocument checks a decoded JSON value against schema. Failures
// are reported as *llm.ErrInvalidResponse carrying the document text.
func validateDocument(schema *Schema, doc any, text string) error {
	compiled, err := compiledSchema(schema)
	if err != nil {
		return &llm.ErrInvalidResponse{
			Content: text,
			Err:     fmt.Errorf("compile schema %q: %w", schema.Name, err),
		}
	}
	if err := compiled.Validate(doc); err != nil {
		return &llm.ErrInvalidResponse{
			Content: text,
			Err:     fmt.Errorf("schema %q validation failed: %w", schema.Name, err),
		}
	}
	return nil
}

func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants plain decoded JSON values, not Go literals.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
