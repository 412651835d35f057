package selfkind

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Config controls which methods and files the checker looks at.
type Config struct {
	// Pinned lists exported mutator names that intentionally return the base
	// type. Embedders are not required to shadow them.
	Pinned []string `json:"pinned,omitempty" yaml:"pinned,omitempty" hcl:"pinned,optional"`

	// Include restricts checking to source files matching any of these
	// doublestar globs. Empty means all files.
	Include []string `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`

	// Exclude removes matching source files after Include is applied.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
}

// DefaultConfig checks every file and pins nothing.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads a config file from fs. The format follows the extension:
// .yaml/.yml is parsed as YAML, anything else as HCL.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, errors.Errorf("parsing YAML config: %w", err)
		}
	} else {
		parser := hclparse.NewParser()
		hclFile, diags := parser.ParseHCL(data, path)
		if diags.HasErrors() {
			return nil, errors.Errorf("parsing HCL config: %s", diags.Error())
		}
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &cfg); diags.HasErrors() {
			return nil, errors.Errorf("decoding HCL config: %s", diags.Error())
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for _, pattern := range append(append([]string{}, c.Include...), c.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid glob pattern %q", pattern)
		}
	}
	return nil
}

// IsPinned reports whether method is exempt from the shadowing requirement.
func (c *Config) IsPinned(method string) bool {
	for _, name := range c.Pinned {
		if name == method {
			return true
		}
	}
	return false
}

// MatchesFile reports whether path is in scope. Patterns were validated at
// load time.
func (c *Config) MatchesFile(path string) bool {
	slashed := filepath.ToSlash(path)

	if len(c.Include) > 0 {
		included := false
		for _, pattern := range c.Include {
			if doublestar.MatchUnvalidated(pattern, slashed) {
				included = true
				break
			}
		}
		if !included {
			return false
		}
	}

	for _, pattern := range c.Exclude {
		if doublestar.MatchUnvalidated(pattern, slashed) {
			return false
		}
	}
	return true
}
