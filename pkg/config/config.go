// Package config loads engine configuration from an optional TOML file, falling back to safe
// in-memory defaults when the file is absent; a malformed file is an error. Configuration is read once at
// startup and never mutates evaluation weights at runtime (spec §1 non-goal).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultHashMB is the transposition table size used when a config file does not specify one.
const DefaultHashMB = 64

// DefaultTimeLimit is the per-move wall-clock search budget used absent a config override.
const DefaultTimeLimit = 5 * time.Second

// Config holds the engine's startup knobs: search resource limits and the opening book
// location. None of these fields tune evaluation weights, which remain fixed at compile time.
type Config struct {
	// HashMB is the transposition table size in megabytes. Zero disables the TT.
	HashMB uint
	// TimeLimit is the per-move search budget stored in the configuration file. The engine
	// does not read it: PredictMove always searches with its own fixed 5-second budget.
	TimeLimit time.Duration
	// Noise is evaluation randomness in millipawns, zero for deterministic play.
	Noise uint
	// BookPath is an optional path to an opening book file of one line per row, each a
	// space-separated sequence of long-algebraic moves. Empty disables the book.
	BookPath string
}

// Default returns the configuration used when no file is loaded.
func Default() Config {
	return Config{
		HashMB:    DefaultHashMB,
		TimeLimit: DefaultTimeLimit,
		Noise:     0,
		BookPath:  "",
	}
}

// file is the on-disk TOML representation, kept distinct from Config so the file format can
// evolve (field renames, new sections) without changing the in-memory type callers use.
type file struct {
	Search searchSection `toml:"search"`
	Book   bookSection   `toml:"book"`
}

type searchSection struct {
	HashMB         uint `toml:"hash_mb"`
	TimeLimitMS    uint `toml:"time_limit_ms"`
	NoiseMillipawn uint `toml:"noise_millipawn"`
}

type bookSection struct {
	Path string `toml:"path"`
}

func toFile(c Config) file {
	return file{
		Search: searchSection{
			HashMB:         c.HashMB,
			TimeLimitMS:    uint(c.TimeLimit.Milliseconds()),
			NoiseMillipawn: c.Noise,
		},
		Book: bookSection{Path: c.BookPath},
	}
}

func fromFile(f file, base Config) Config {
	c := base
	if f.Search.HashMB > 0 {
		c.HashMB = f.Search.HashMB
	}
	if f.Search.TimeLimitMS > 0 {
		c.TimeLimit = time.Duration(f.Search.TimeLimitMS) * time.Millisecond
	}
	c.Noise = f.Search.NoiseMillipawn
	c.BookPath = f.Book.Path
	return c
}

// Load reads path as a TOML configuration file and overlays it onto Default(). A missing file
// is not an error: Load returns the defaults. A malformed file is reported to the caller so a
// typo in a hand-edited config is not silently swallowed, unlike a missing file.
func Load(path string) (Config, error) {
	def := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return def, nil
	}

	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Config{}, fmt.Errorf("config: parse %v: %w", path, err)
	}
	return fromFile(f, def), nil
}

// Save writes c to path in TOML format, creating or truncating the file.
func Save(c Config, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %v: %w", path, err)
	}
	defer out.Close()

	if err := toml.NewEncoder(out).Encode(toFile(c)); err != nil {
		return fmt.Errorf("config: encode %v: %w", path, err)
	}
	return nil
}
