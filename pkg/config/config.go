// Package config loads cyjs settings from TOML files.
//
// A configuration file sets the attribute-key mapping used by the CLI and
// rendering defaults:
//
//	[attrs]
//	source = "from"
//	target = "to"
//	name   = "label"
//
//	[render]
//	detailed = true
//
// Files ending in .yaml or .yml are read as YAML with the same layout.
// Omitted keys keep their defaults. Command-line flags override file values.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/cyjs/pkg/cyjs"
	"github.com/matzehuels/cyjs/pkg/errors"
)

// Config is the decoded configuration file.
type Config struct {
	Attrs  Attrs  `toml:"attrs" yaml:"attrs"`
	Render Render `toml:"render" yaml:"render"`
}

// Attrs mirrors [cyjs.AttrKeys]. Empty fields mean "use the default".
type Attrs struct {
	Source string `toml:"source" yaml:"source"`
	Target string `toml:"target" yaml:"target"`
	Name   string `toml:"name" yaml:"name"`
	ID     string `toml:"id" yaml:"id"`
}

// Render holds rendering defaults for the render command.
type Render struct {
	Detailed bool   `toml:"detailed" yaml:"detailed"`
	Format   string `toml:"format" yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Render: Render{Format: "svg"}}
}

// Load reads and validates the configuration file at path, choosing the
// syntax from the extension. Unknown keys are rejected so that typos do not
// silently fall back to defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	}
	return Parse(data)
}

// Parse decodes and validates TOML configuration data.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfiguration, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseYAML decodes and validates YAML configuration data.
func ParseYAML(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every non-empty field name and the render format.
func (c Config) Validate() error {
	for role, name := range map[string]string{
		"source": c.Attrs.Source,
		"target": c.Attrs.Target,
		"name":   c.Attrs.Name,
		"id":     c.Attrs.ID,
	} {
		if name == "" {
			continue
		}
		if err := errors.ValidateFieldName(name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "attrs.%s", role)
		}
	}
	if c.Render.Format != "" {
		if err := errors.ValidateFormat(c.Render.Format, Formats...); err != nil {
			return err
		}
	}
	return nil
}

// Formats lists the output formats accepted by the render command.
var Formats = []string{"dot", "svg"}

// AttrKeys converts the [attrs] table into a converter mapping.
func (c Config) AttrKeys() cyjs.AttrKeys {
	return cyjs.AttrKeys{
		Source: c.Attrs.Source,
		Target: c.Attrs.Target,
		Name:   c.Attrs.Name,
		ID:     c.Attrs.ID,
	}
}
