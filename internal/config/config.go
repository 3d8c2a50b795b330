// Package config loads the tool configuration naming the external
// solver binaries and their invocation details.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration with "5m"-style YAML parsing.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// ASPSolver configures the ASP solver invocation. The game encoding is
// passed as a file argument; problem facts go to stdin.
type ASPSolver struct {
	Bin      string   `yaml:"bin"`
	Args     []string `yaml:"args"`
	Encoding string   `yaml:"encoding"` // path to the ASP game encoding
}

// Planner configures the PDDL planner invocation. The fixed domain
// definition and the generated problem file are appended as arguments.
type Planner struct {
	Bin    string   `yaml:"bin"`
	Args   []string `yaml:"args"`
	Domain string   `yaml:"domain"` // path to the PDDL domain file
}

// Ricli configures the domain-dependent solver, which reads the
// compact board format on stdin.
type Ricli struct {
	Bin  string   `yaml:"bin"`
	Args []string `yaml:"args"`
}

// Config is the full tool configuration.
type Config struct {
	Timeout Duration  `yaml:"timeout"`
	ASP     ASPSolver `yaml:"asp"`
	Planner Planner   `yaml:"planner"`
	Ricli   Ricli     `yaml:"ricli"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Timeout: Duration(5 * time.Minute),
		ASP:     ASPSolver{Bin: "clingo"},
		Planner: Planner{Bin: "fast-downward", Domain: "domain.pddl"},
		Ricli:   Ricli{Bin: "ricli", Args: []string{"-p", "-v"}},
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("parse %s: timeout must be positive", path)
	}
	return cfg, nil
}
