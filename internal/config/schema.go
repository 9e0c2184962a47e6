package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("overworld.schema.json", schemaJSON)
	})
	return schema, schemaErr
}

// ValidateDocument checks a raw YAML document against the config schema.
func ValidateDocument(data []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("config: compile schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: yaml: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	// The validator expects encoding/json shapes.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: convert to json: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return fmt.Errorf("config: convert to json: %w", err)
	}

	if err := s.Validate(value); err != nil {
		return fmt.Errorf("config: schema: %w", err)
	}
	return nil
}
