package compiler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// VMConfig holds the optional driver-level tuning knobs read from a
// minijavac.toml placed in the directory of the object file being run (in
// full mode, the source file's directory). Every field has a zero
// value that means "use the built-in default", so a missing config file
// is equivalent to an empty one.
type VMConfig struct {
	StackLimit  int  `toml:"stack_limit"`
	MemoryLimit int  `toml:"memory_limit"`
	Trace       bool `toml:"trace"`
}

// LoadVMConfig looks for minijavac.toml in dir. A missing file is not an
// error: it yields the zero-value VMConfig. A malformed file is.
func LoadVMConfig(dir string) (VMConfig, error) {
	path := filepath.Join(dir, "minijavac.toml")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return VMConfig{}, nil
	}
	if err != nil {
		return VMConfig{}, fmt.Errorf("read config %q: %w", path, err)
	}
	var cfg VMConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return VMConfig{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
