// Copyright DarkStarStrix, 2026. All rights reserved.

package harvest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/DarkStarStrix/LLM-Research-Repo/pkg/types"
)

// WritePaperMetadata writes a Paper record to a YAML file.
func WritePaperMetadata(paper *types.Paper, path string) error {
	data, err := yaml.Marshal(paper)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadPaperMetadata reads a Paper record from a YAML file.
func ReadPaperMetadata(path string) (*types.Paper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var paper types.Paper
	if err := yaml.Unmarshal(data, &paper); err != nil {
		return nil, fmt.Errorf("parsing metadata %s: %w", path, err)
	}
	return &paper, nil
}
