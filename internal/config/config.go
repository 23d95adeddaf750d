// Package config loads mdlive settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files whose extension is neither
// TOML nor YAML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Config holds user settings. Zero values are replaced by defaults on load.
type Config struct {
	// RenderWidth is used for thematic breaks until the terminal reports
	// its size.
	RenderWidth int `toml:"render_width" yaml:"render_width"`

	// Bullet marks unordered list items.
	Bullet string `toml:"bullet" yaml:"bullet"`

	// LogFile receives the debug log. Empty disables logging.
	LogFile string `toml:"log_file" yaml:"log_file"`

	StatusLine bool `toml:"status_line" yaml:"status_line"`

	// Keys overrides key bindings, by action name.
	Keys map[string][]string `toml:"keys" yaml:"keys"`
}

func Default() Config {
	return Config{
		RenderWidth: 80,
		Bullet:      "\uf444",
		StatusLine:  true,
	}
}

// ParseError reports a malformed config file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the config at path over the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := Parse(path, data, &cfg); err != nil {
		return Default(), err
	}
	cfg.normalize()
	return cfg, nil
}

// Parse decodes data into cfg, choosing the format from the extension of
// path.
func Parse(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			pe := &ParseError{Path: path, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				pe.Line, pe.Column = derr.Position()
			}
			return pe
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return nil
}

func (c *Config) normalize() {
	def := Default()
	if c.RenderWidth <= 0 {
		c.RenderWidth = def.RenderWidth
	}
	if c.Bullet == "" {
		c.Bullet = def.Bullet
	}
}
