package notebook

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// nbformatSchema is a minimal slice of the nbformat-4 schema: enough to
// reject files that are not notebooks or whose cells cannot be executed,
// without chasing the full upstream definition.
const nbformatSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["nbformat", "cells"],
	"properties": {
		"nbformat": {"type": "integer", "minimum": 4},
		"nbformat_minor": {"type": "integer", "minimum": 0},
		"cells": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["cell_type", "source"],
				"properties": {
					"cell_type": {"enum": ["code", "markdown", "raw"]},
					"source": {
						"oneOf": [
							{"type": "string"},
							{"type": "array", "items": {"type": "string"}}
						]
					}
				}
			}
		}
	}
}`

// ValidationError wraps a schema validation failure with a cleaner message.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("notebook: not a valid notebook: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(nbformatSchema))
	if err != nil {
		panic(fmt.Sprintf("notebook: parse embedded schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("nbformat.schema.json", doc); err != nil {
		panic(fmt.Sprintf("notebook: add embedded schema: %v", err))
	}
	sch, err := c.Compile("nbformat.schema.json")
	if err != nil {
		panic(fmt.Sprintf("notebook: compile embedded schema: %v", err))
	}
	return sch
}

// validate checks raw notebook JSON against the embedded schema.
func validate(data []byte) error {
	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(string(data)))
	if err != nil {
		return fmt.Errorf("notebook: invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(inst); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
