// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/walteh/cssvar/pkg/rules"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🎛️ Defaults that apply when no config file is present. The mapping table
// and target list are process-wide constants in that case.
const (
	DefaultBackupSuffix = ".bak"
	DefaultLockFileName = ".cssvar.lock"
)

// DefaultTargets is the built-in stylesheet list, relative to the base dir.
func DefaultTargets() []string {
	return []string{
		filepath.Join("src", "App.css"),
		filepath.Join("src", "index.css"),
	}
}

// 📚 Config represents the complete configuration
type Config struct {
	BaseDir        string       `json:"base_dir,omitempty" yaml:"base_dir,omitempty" hcl:"base_dir,optional"`                         // Directory target paths are resolved against
	Targets        []string     `json:"targets,omitempty" yaml:"targets,omitempty" hcl:"targets,optional"`                            // Stylesheet paths or doublestar patterns
	BackupSuffix   string       `json:"backup_suffix,omitempty" yaml:"backup_suffix,omitempty" hcl:"backup_suffix,optional"`          // Suffix appended to backup file names
	NoDefaultRules bool         `json:"no_default_rules,omitempty" yaml:"no_default_rules,omitempty" hcl:"no_default_rules,optional"` // Skip the built-in mapping table
	Async          bool         `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`                                  // Run operations asynchronously
	Rules          []rules.Rule `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`                                      // Extra rules, applied after the built-in table
}

// 🏭 Default returns the built-in configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🎯 LoadOrDefault loads path if it exists, falling back to the built-in
// defaults when the file is absent
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using built-in defaults")
		return Default(), nil
	}
	return Load(ctx, path)
}

func (cfg *Config) setDefaults() {
	if cfg.BaseDir == "" {
		cfg.BaseDir = "."
	}
	if cfg.BackupSuffix == "" {
		cfg.BackupSuffix = DefaultBackupSuffix
	}
	if len(cfg.Targets) == 0 {
		cfg.Targets = DefaultTargets()
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	cfg.setDefaults()
	cfg.BaseDir = filepath.Clean(cfg.BaseDir)

	for i, r := range cfg.Rules {
		if err := r.Validate(); err != nil {
			return errors.Errorf("rule %d: %w", i, err)
		}
	}

	if cfg.NoDefaultRules && len(cfg.Rules) == 0 {
		return errors.Errorf("no_default_rules is set but no rules are defined")
	}

	return nil
}

// 📋 EffectiveRules returns the ordered mapping table for this run: the
// built-in table (unless disabled) followed by any configured rules.
func (cfg *Config) EffectiveRules() []rules.Rule {
	var table []rules.Rule
	if !cfg.NoDefaultRules {
		table = rules.DefaultTable()
	}
	return append(table, cfg.Rules...)
}

// 🎯 ResolveTargets expands the target list against the base directory.
// Absolute targets bypass the base directory. Literal paths are kept as-is
// (missing files are reported by the driver, not here); patterns are
// expanded with doublestar.
func (cfg *Config) ResolveTargets(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var targets []string
	for _, t := range cfg.Targets {
		full := t
		if !filepath.IsAbs(t) {
			full = filepath.Join(cfg.BaseDir, t)
		}
		if !strings.ContainsAny(t, "*?[{") {
			targets = append(targets, full)
			continue
		}

		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, errors.Errorf("expanding target pattern %s: %w", t, err)
		}
		logger.Debug().Str("pattern", t).Int("matches", len(matches)).Msg("expanded target pattern")
		targets = append(targets, matches...)
	}
	return targets, nil
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
