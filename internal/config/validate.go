package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

var (
	configSchemaLoader gojsonschema.JSONLoader
	configSchemaOnce   sync.Once
)

// configSchema describes the accepted shape of .rejx.yaml. Unknown keys
// are rejected so a typo like `ingore:` fails loudly instead of being
// silently dropped.
func configSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"ignore": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"include_hidden": map[string]any{"type": "boolean"},
			"strict":         map[string]any{"type": "boolean"},
			"log": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"path":    map[string]any{"type": "string"},
					"verbose": map[string]any{"type": "boolean"},
				},
			},
		},
	}
}

type schemaValidationError struct {
	issues []string
}

func (e schemaValidationError) Error() string {
	if len(e.issues) == 0 {
		return "config failed schema validation"
	}
	return strings.Join(e.issues, "; ")
}

// validateDocument checks the decoded YAML document against configSchema.
func validateDocument(doc any) error {
	configSchemaOnce.Do(func() {
		configSchemaLoader = gojsonschema.NewGoLoader(configSchema())
	})

	result, err := gojsonschema.Validate(configSchemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return schemaValidationError{issues: issues}
}
