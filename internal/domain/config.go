package domain

import (
	"fmt"
	"strings"
)

// Config holds project-level configuration loaded from .tsfix.yaml.
type Config struct {
	// SourceRoot is the subdirectory all include globs are rooted under.
	SourceRoot string `yaml:"source_root" json:"source_root,omitempty"`

	// Include globs select candidate files relative to SourceRoot.
	Include []string `yaml:"include" json:"include,omitempty"`

	// Exclude lists path substrings; a candidate containing any of them
	// is never read or written.
	Exclude []string `yaml:"exclude" json:"exclude,omitempty"`

	// Rules names the enabled rules; empty means every stable rule.
	Rules []string `yaml:"rules" json:"rules,omitempty"`

	// Experimental opts into rules that are disabled by default.
	Experimental []string `yaml:"experimental" json:"experimental,omitempty"`

	Lint LintConfig `yaml:"lint" json:"lint,omitempty"`
}

// LintConfig describes how to invoke the external lint command for the
// message-driven fix path.
type LintConfig struct {
	// Command is the argv of the lint invocation.
	Command []string `yaml:"command" json:"command,omitempty"`

	// Dir is the working directory for the command; empty means the
	// project path the run was started with.
	Dir string `yaml:"dir" json:"dir,omitempty"`
}

// DefaultConfig returns the built-in configuration: production source
// under src/, test and story files excluded.
func DefaultConfig() Config {
	return Config{
		SourceRoot: "src",
		Include: []string{
			"components/**/*.tsx",
			"components/**/*.ts",
			"contexts/**/*.tsx",
			"hooks/**/*.ts",
			"schemas/**/*.ts",
			"config/**/*.ts",
		},
		Exclude: []string{".test.", ".stories.", "__tests__"},
		Lint: LintConfig{
			Command: []string{"npm", "run", "lint"},
		},
	}
}

// Validate checks the config for values that must abort the run before
// any file is touched.
func (c Config) Validate() error {
	if strings.HasPrefix(c.SourceRoot, "/") {
		return fmt.Errorf("source_root must be relative (got %q)", c.SourceRoot)
	}

	for _, p := range c.Include {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("empty include pattern")
		}
	}

	for _, name := range c.Rules {
		if _, ok := RuleByName(name); !ok {
			return fmt.Errorf("unknown rule %q in rules (valid: %s)", name, ruleNames())
		}
	}
	for _, name := range c.Experimental {
		r, ok := RuleByName(name)
		if !ok {
			return fmt.Errorf("unknown rule %q in experimental (valid: %s)", name, ruleNames())
		}
		if !r.Experimental {
			return fmt.Errorf("rule %q is stable and needs no experimental opt-in", name)
		}
	}

	return nil
}

func ruleNames() string {
	var names []string
	for _, r := range Builtins() {
		names = append(names, r.Name())
	}
	return strings.Join(names, ", ")
}
