/*
File    : vivjson/config/config.go

Package config holds the per-run options spec 6.4 documents. A Config is
immutable once a run starts; Load reads one from a YAML file (the
teacher's go.mod already required gopkg.in/yaml.v3 but nothing used it —
this is that dependency's home in this rewrite).
*/
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config collects every option spec 6.4 names.
type Config struct {
	// EnableStderr additionally writes error messages to a host-provided
	// error sink on failure.
	EnableStderr bool `yaml:"enableStderr"`
	// EnableTagDetail switches the error prefix from "[Viv]" to
	// "[Viv:<Stage>]".
	EnableTagDetail bool `yaml:"enableTagDetail"`
	// EnableOnlyJson restricts parsing to strict JSON-only mode.
	EnableOnlyJson bool `yaml:"enableOnlyJson"`
	// Infinity, if non-empty, is the identifier that script-mode source
	// uses for +/-infinity (JSON-only mode does not read it). Output always
	// spells it "Infinity"/"-Infinity". Empty means the parser never
	// produces infinity; arithmetic results are not checked for it.
	Infinity string `yaml:"infinity"`
	// NaN, if non-empty, is the identifier that script-mode source uses for
	// NaN. Empty means the parser never produces NaN; arithmetic results
	// are not checked for it.
	NaN string `yaml:"nan"`
	// MaxArraySize bounds any operation that grows an Array, Block, or
	// split String.
	MaxArraySize int `yaml:"maxArraySize"`
	// MaxDepth bounds evaluator recursion.
	MaxDepth int `yaml:"maxDepth"`
	// MaxLoopTimes bounds iterations of any single loop.
	MaxLoopTimes int `yaml:"maxLoopTimes"`
}

// Default returns the configuration spec 6.4's defaults describe.
func Default() *Config {
	return &Config{
		MaxArraySize: 1000,
		MaxDepth:     200,
		MaxLoopTimes: 1000,
	}
}

// Load reads a YAML configuration file at path, starting from Default()
// and overwriting only the fields the file sets.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// AllowsInfinity reports whether +/-infinity values are permitted.
func (c *Config) AllowsInfinity() bool {
	return c != nil && c.Infinity != ""
}

// AllowsNaN reports whether NaN values are permitted.
func (c *Config) AllowsNaN() bool {
	return c != nil && c.NaN != ""
}

// Clone returns a shallow copy, used so host-supplied option overrides
// never mutate a shared default.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
