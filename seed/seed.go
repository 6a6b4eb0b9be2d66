// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/starvote/models"
)

var (
	//go:embed candidates.yaml
	defaultSeed []byte

	//go:embed seed.schema.json
	schemaJSON string

	schema = jsonschema.MustCompileString("seed.schema.json", schemaJSON)
)

var ErrDuplicateID = errors.New("duplicate candidate id")

type file struct {
	Candidates []models.Candidate `yaml:"candidates"`
}

// Default returns the built-in candidate list
func Default() []models.Candidate {
	cs, err := Parse(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("embedded seed is invalid: %v", err))
	}
	return cs
}

// Load reads a seed file from disk. An empty path yields the built-in list.
func Load(path string) ([]models.Candidate, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	cs, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cs, nil
}

// Parse decodes and validates a YAML seed document.
// Candidates come back in document order, which is the display order.
func Parse(raw []byte) ([]models.Candidate, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	seen := make(map[int]bool, len(f.Candidates))
	for _, c := range f.Candidates {
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, c.ID)
		}
		seen[c.ID] = true
	}
	return f.Candidates, nil
}

// validate checks the document against the embedded JSON schema.
// The YAML tree is round-tripped through JSON so the validator sees
// plain JSON values.
func validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode seed: %w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("seed is not JSON-compatible: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("seed is not JSON-compatible: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}
	return nil
}
