// Package config loads the apsp command-line settings from a TOML file.
//
// Every key is optional; missing keys keep the value from Default. Unknown
// keys are rejected so that a typo does not silently fall back to a default.
//
// Example file:
//
//	alphabet    = "ACGT"
//	min_length  = 1
//	min_overlap = 20
//	circular    = true
//	format      = "text"
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/apsp/assembly"
	"github.com/katalvlaran/apsp/reads"
)

// Output formats understood by the overlap command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrUnknownKey indicates a key the Config struct does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid indicates a value outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds the settings shared by all subcommands.
type Config struct {
	// Alphabet lists accepted read symbols in traversal order.
	Alphabet string `toml:"alphabet"`

	// MinLength rejects shorter reads at load time.
	MinLength int `toml:"min_length"`

	// MinOverlap is the smallest overlap kept as a graph edge.
	MinOverlap int `toml:"min_overlap"`

	// Circular selects circular genome assembly.
	Circular bool `toml:"circular"`

	// Format is the overlap output format: "text" or "json".
	Format string `toml:"format"`

	// EdgeTableSize overrides the suffix-tree edge table size; 0 sizes it from the input.
	EdgeTableSize int `toml:"edge_table_size"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Alphabet:   reads.DefaultAlphabet,
		MinLength:  reads.DefaultMinLength,
		MinOverlap: assembly.DefaultMinOverlap,
		Circular:   assembly.DefaultCircular,
		Format:     FormatText,
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return finish(cfg, md)
}

// Decode reads TOML from r over the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges. Alphabet content is checked by reads.New.
func (c Config) Validate() error {
	switch {
	case c.Alphabet == "":
		return fmt.Errorf("%w: alphabet is empty", ErrInvalid)
	case c.MinLength < 1:
		return fmt.Errorf("%w: min_length %d < 1", ErrInvalid, c.MinLength)
	case c.MinOverlap < 1:
		return fmt.Errorf("%w: min_overlap %d < 1", ErrInvalid, c.MinOverlap)
	case c.Format != FormatText && c.Format != FormatJSON:
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	case c.EdgeTableSize < 0:
		return fmt.Errorf("%w: edge_table_size %d < 0", ErrInvalid, c.EdgeTableSize)
	}

	return nil
}
