package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/qwickapps/tsfix/internal/domain"
)

const fileName = ".tsfix.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .tsfix.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .tsfix.yaml from projectPath. A missing file is not an
// error: the built-in defaults apply.
func (l *YAMLLoader) Load(projectPath string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate the raw input before merging so typos surface with the
	// user's own values, not the merged result.
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return merge(domain.DefaultConfig(), cfg), nil
}

// merge overlays explicit values on top of the defaults. Explicit
// (non-empty) values always win; lists replace, they do not append.
func merge(base, override domain.Config) domain.Config {
	result := base

	if override.SourceRoot != "" {
		result.SourceRoot = override.SourceRoot
	}
	if len(override.Include) > 0 {
		result.Include = override.Include
	}
	if len(override.Exclude) > 0 {
		result.Exclude = override.Exclude
	}
	if len(override.Rules) > 0 {
		result.Rules = override.Rules
	}
	if len(override.Experimental) > 0 {
		result.Experimental = override.Experimental
	}
	if len(override.Lint.Command) > 0 {
		result.Lint.Command = override.Lint.Command
	}
	if override.Lint.Dir != "" {
		result.Lint.Dir = override.Lint.Dir
	}

	return result
}
