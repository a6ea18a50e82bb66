package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourgeo/pointset"
	"github.com/katalvlaran/tourgeo/tsp"
)

// ErrBadConfig is returned for unusable configuration values.
var ErrBadConfig = errors.New("invalid config")

// Config is the driver configuration, loadable from YAML.
//
//	start: seeded      # first | fixed | seeded
//	start_key: 3       # used with start: fixed
//	seed: 42           # used with start: seeded
//	timeout: 2s
//	exact: false
//	format: yaml       # text | yaml
//	verbose: true
type Config struct {
	Start    string        `yaml:"start"`
	StartKey int           `yaml:"start_key"`
	Seed     int64         `yaml:"seed"`
	Timeout  time.Duration `yaml:"timeout"`
	Exact    bool          `yaml:"exact"`
	Format   string        `yaml:"format"`
	Verbose  bool          `yaml:"verbose"`
}

// DefaultConfig mirrors tsp.DefaultOptions with text output.
func DefaultConfig() Config {
	return Config{
		Start:  "first",
		Format: "text",
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields and ranges.
func (c Config) Validate() error {
	switch c.Start {
	case "first", "fixed", "seeded":
	default:
		return fmt.Errorf("%w: start %q", ErrBadConfig, c.Start)
	}
	switch c.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("%w: format %q", ErrBadConfig, c.Format)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %v", ErrBadConfig, c.Timeout)
	}
	return nil
}

// options converts the config to solver options.
func (c Config) options() (tsp.Options, error) {
	var o tsp.Options
	switch c.Start {
	case "first":
		o = tsp.DefaultOptions()
	case "fixed":
		o = tsp.FixedStart(pointset.Key(c.StartKey))
	case "seeded":
		o = tsp.SeededStart(c.Seed)
	default:
		return tsp.Options{}, fmt.Errorf("%w: start %q", ErrBadConfig, c.Start)
	}
	o.TimeLimit = c.Timeout
	return o, nil
}

// override copies the field behind flag name from src.
func (c *Config) override(name string, src Config) {
	switch name {
	case "start":
		c.Start = src.Start
	case "start-key":
		c.StartKey = src.StartKey
	case "seed":
		c.Seed = src.Seed
	case "timeout":
		c.Timeout = src.Timeout
	case "exact":
		c.Exact = src.Exact
	case "format":
		c.Format = src.Format
	case "v":
		c.Verbose = src.Verbose
	}
}
