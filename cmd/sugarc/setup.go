package main

import (
	"fmt"
	"path/filepath"

	"sugarc/internal/imports"
	"sugarc/internal/optable"
)

// loadSetup builds the operator table and import registry for the given
// input path, merging in the nearest sugar.toml found above it, if any.
func loadSetup(inputPath string) (*optable.Table, *imports.Registry, error) {
	table := optable.Default()
	registry := imports.DefaultRegistry()

	startDir := filepath.Dir(inputPath)
	manifest, found, err := optable.FindManifest(startDir)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return table, registry, nil
	}

	cfg, err := optable.LoadConfig(manifest)
	if err != nil {
		return nil, nil, fmt.Errorf("load manifest: %w", err)
	}
	table.Apply(cfg)
	registry.Apply(cfg)
	return table, registry, nil
}
