package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the default settings shared by the asm, link and rom CLIs.
type Config struct {
	// Assemble settings
	Assemble struct {
		OutputExt string `toml:"output_ext"` // extension for assembled artifacts
		Dump      bool   `toml:"dump"`       // default to -d/--dump
	} `toml:"assemble"`

	// Link settings
	Link struct {
		ImageExt    string `toml:"image_ext"`    // extension for a linked image
		LibraryName string `toml:"library_name"` // output name in library mode
		Dump        bool   `toml:"dump"`
	} `toml:"link"`

	// Rom settings
	Rom struct {
		OutputFormat string `toml:"output_format"` // raw or bin, used when output has no recognized extension
		ZeroFill     int    `toml:"zero_fill"`
	} `toml:"rom"`

	// Display settings
	Display struct {
		ColorOutput  bool `toml:"color_output"`
		BytesPerLine int  `toml:"bytes_per_line"`
	} `toml:"display"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Assemble defaults
	cfg.Assemble.OutputExt = ".obj"
	cfg.Assemble.Dump = false

	// Link defaults
	cfg.Link.ImageExt = ".cpu"
	cfg.Link.LibraryName = "output.obj"
	cfg.Link.Dump = false

	// Rom defaults
	cfg.Rom.OutputFormat = "raw"
	cfg.Rom.ZeroFill = 0

	// Display defaults
	cfg.Display.ColorOutput = true
	cfg.Display.BytesPerLine = 16

	return cfg
}

// GetConfigPath returns the platform-specific config file path
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\cpu-tools\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "cpu-tools")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/cpu-tools/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "cpu-tools")

	default:
		// Unknown platform: use current directory
		return "config.toml"
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0750); err != nil {
		// If we can't create the directory, fall back to current directory
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read and parse config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file
func (c *Config) SaveTo(path string) (err error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	// Encode to TOML
	encoder := toml.NewEncoder(f)
	if encErr := encoder.Encode(c); encErr != nil {
		return fmt.Errorf("failed to encode config: %w", encErr)
	}

	return nil
}
