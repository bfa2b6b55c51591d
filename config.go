package gqlcore

import (
	"gopkg.in/yaml.v2"

	"github.com/graphql-core/gqlcore/pkg/astparser"
)

// EngineConfiguration is the subset of operational knobs an operator might
// want to tune from a config file rather than a call site: the parser's
// recursion guard today, with room for additional depth/complexity limits
// as they're added. Mirrors graphql-go-tools' plan.Configuration shape: a flat
// struct of engine-wide limits, loaded once at startup.
type EngineConfiguration struct {
	MaxSelectionDepth int `yaml:"max_selection_depth"`
}

// ParserOptions converts the loaded configuration into astparser.Options.
func (c EngineConfiguration) ParserOptions() astparser.Options {
	return astparser.Options{MaxSelectionDepth: c.MaxSelectionDepth}
}

// LoadEngineConfiguration parses a YAML document into an EngineConfiguration.
func LoadEngineConfiguration(raw []byte) (EngineConfiguration, error) {
	var cfg EngineConfiguration
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return EngineConfiguration{}, err
	}
	return cfg, nil
}
