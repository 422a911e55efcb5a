// Package config is the driver's ambient configuration: package-level
// switches in the teacher's style, plus YAML loaders for the CLI's
// config file and basis-extension file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// IsTestMode mirrors the teacher's package-level mode switch. Nothing
// in this module reads or sets it; driver output does not depend on it.
var IsTestMode = false

// Config is the on-disk shape of a vaelcheck run: which fixture to
// check, whether to force color, and an optional extra overload table
// to merge into the standard basis.
type Config struct {
	Fixture        string `yaml:"fixture"`
	Color          *bool  `yaml:"color"`
	BasisExtension string `yaml:"basis_extension"`
}

// OverloadExtension is one additional overloaded-operator entry a
// basis-extension file can contribute: a name, a shape ("unary" or
// "binary"), and a candidate primitive-type-name list tried in order.
type OverloadExtension struct {
	Name       string   `yaml:"name"`
	Shape      string   `yaml:"shape"`
	Candidates []string `yaml:"candidates"`
	Result     string   `yaml:"result"` // empty means "same as the operand"
}

// BasisExtension is the top-level shape of a basis-extension file.
type BasisExtension struct {
	Overloads []OverloadExtension `yaml:"overloads"`
}

// Load reads and parses a Config from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadBasisExtension reads and parses a BasisExtension from path.
func LoadBasisExtension(path string) (*BasisExtension, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ext BasisExtension
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return nil, err
	}
	return &ext, nil
}
