package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/vimreg/internal/register"
)

// ErrInvalidValue is returned when a setting holds an unsupported value.
var ErrInvalidValue = errors.New("invalid config value")

// Clipboard integration modes, mirroring Vim's 'clipboard' option.
const (
	// ClipboardNone keeps the unnamed register local.
	ClipboardNone = "none"

	// ClipboardUnnamed aliases the unnamed register to * (primary
	// selection).
	ClipboardUnnamed = "unnamed"

	// ClipboardUnnamedPlus aliases the unnamed register to + (system
	// clipboard).
	ClipboardUnnamedPlus = "unnamedplus"
)

// Config is the root of the settings file.
type Config struct {
	// Clipboard selects which register unnamed operations default to.
	Clipboard string `toml:"clipboard"`

	Persist   PersistConfig   `toml:"persist"`
	Scripting ScriptingConfig `toml:"scripting"`
}

// PersistConfig controls register persistence across sessions.
type PersistConfig struct {
	// Enabled turns on saving and loading of registers.
	Enabled bool `toml:"enabled"`

	// Path overrides the default register file location.
	Path string `toml:"path"`
}

// ScriptingConfig controls the Lua scripting hook.
type ScriptingConfig struct {
	// Enabled turns on the embedded Lua runtime.
	Enabled bool `toml:"enabled"`

	// InitFile is a Lua script run at startup, if set.
	InitFile string `toml:"init_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Clipboard: ClipboardNone,
		Persist:   PersistConfig{Enabled: true},
		Scripting: ScriptingConfig{Enabled: true},
	}
}

// Load reads the settings file at path. A missing file returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every setting holds a supported value.
func (c Config) Validate() error {
	switch c.Clipboard {
	case "", ClipboardNone, ClipboardUnnamed, ClipboardUnnamedPlus:
	default:
		return fmt.Errorf("%w: clipboard = %q", ErrInvalidValue, c.Clipboard)
	}
	return nil
}

// DefaultRegister maps the clipboard setting to the register unnamed
// operations resolve to.
func (c Config) DefaultRegister() rune {
	switch c.Clipboard {
	case ClipboardUnnamed:
		return register.ClipboardPrimary
	case ClipboardUnnamedPlus:
		return register.ClipboardPlus
	default:
		return register.Unnamed
	}
}

// Apply wires the settings into a register store.
func (c Config) Apply(store *register.Store) error {
	return store.SetDefaultRegister(c.DefaultRegister())
}

// DefaultPath returns the default location of the settings file:
// ~/.config/vimreg/config.toml on Unix-like systems.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "vimreg", "config.toml"), nil
}
