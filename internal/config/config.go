// Package config loads vinculum.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"vinculum/internal/numeral"
)

// FileName is the configuration file looked up from the working directory.
const FileName = "vinculum.toml"

// Config is the effective configuration of one CLI run.
type Config struct {
	Codec  CodecConfig  `toml:"codec"`
	Output OutputConfig `toml:"output"`
	Batch  BatchConfig  `toml:"batch"`

	// Path is the file the settings came from, empty for defaults.
	Path string `toml:"-"`
}

type CodecConfig struct {
	Zero string `toml:"zero"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type BatchConfig struct {
	Jobs int `toml:"jobs"`
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		Codec:  CodecConfig{Zero: numeral.ZeroReject.String()},
		Output: OutputConfig{Format: "pretty", Color: "auto"},
	}
}

// ZeroPolicy parses the configured zero policy.
func (c Config) ZeroPolicy() (numeral.ZeroPolicy, error) {
	p, err := numeral.ParseZeroPolicy(c.Codec.Zero)
	if err != nil && c.Path != "" {
		return p, fmt.Errorf("%s: [codec].zero: %w", c.Path, err)
	}
	return p, err
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads explicit when set; otherwise it searches from startDir and
// falls back to Default.
func Resolve(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) validate() error {
	if _, err := c.ZeroPolicy(); err != nil {
		return err
	}
	switch strings.ToLower(c.Output.Color) {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("%s: [output].color must be auto|on|off, got %q", c.Path, c.Output.Color)
	}
	if strings.TrimSpace(c.Output.Format) == "" {
		return fmt.Errorf("%s: [output].format must not be empty", c.Path)
	}
	if c.Batch.Jobs < 0 {
		return fmt.Errorf("%s: [batch].jobs must be >= 0, got %d", c.Path, c.Batch.Jobs)
	}
	return nil
}
