package pygmt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Chaostremor/pygmt/clib"
	"github.com/Chaostremor/pygmt/datasets"
)

// Config collects wrapper settings that are otherwise scattered across
// environment variables and package defaults. A zero Config is not useful;
// start from DefaultConfig or LoadConfig.
type Config struct {
	// LibraryPath is a full path to libgmt or a directory to search.
	// Empty means the standard search order (GMT_LIBRARY_PATH, then the
	// system loader).
	LibraryPath string `yaml:"library_path"`

	// SessionName tags GMT API sessions; it shows up in GMT error
	// messages.
	SessionName string `yaml:"session_name"`

	// PreviewDPI is the resolution Show renders at.
	PreviewDPI int `yaml:"preview_dpi"`

	// PreviewWidth is the pixel width Show scales down to.
	PreviewWidth int `yaml:"preview_width"`

	// CacheDir overrides where downloaded sample data is kept.
	CacheDir string `yaml:"cache_dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		SessionName:  clib.SessionName,
		PreviewDPI:   300,
		PreviewWidth: 500,
	}
}

// LoadConfig reads a YAML config file on top of the defaults. Environment
// references like ${HOME} in the file are expanded before parsing.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("pygmt: reading config: %w", err)
	}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return cfg, fmt.Errorf("pygmt: parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays environment variables onto the config: GMT_LIBRARY_PATH,
// PYGMT_SESSION_NAME and PYGMT_CACHE_DIR, each applied only when set.
func (c Config) FromEnv() Config {
	if v := os.Getenv("GMT_LIBRARY_PATH"); v != "" {
		c.LibraryPath = v
	}
	if v := os.Getenv("PYGMT_SESSION_NAME"); v != "" {
		c.SessionName = v
	}
	if v := os.Getenv("PYGMT_CACHE_DIR"); v != "" {
		c.CacheDir = v
	}
	return c
}

// Validate reports configuration values no component could accept.
func (c Config) Validate() error {
	if c.PreviewDPI < 0 {
		return fmt.Errorf("pygmt: preview_dpi must not be negative, got %d", c.PreviewDPI)
	}
	if c.PreviewWidth < 0 {
		return fmt.Errorf("pygmt: preview_width must not be negative, got %d", c.PreviewWidth)
	}
	return nil
}

// Apply validates the config and installs it into the package defaults:
// the process-wide GMT library, the session tag, Show's resolution and
// width, and the sample-data cache directory. The library is loaded first,
// so a missing libgmt leaves everything else untouched.
func (c Config) Apply() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.LibraryPath != "" {
		lib, err := clib.LoadLibrary(c.LibraryPath)
		if err != nil {
			return err
		}
		clib.SetDefault(lib)
	}
	if c.SessionName != "" {
		clib.SetSessionTag(c.SessionName)
	}
	if c.PreviewDPI > 0 {
		showDPI.Store(int64(c.PreviewDPI))
	}
	if c.PreviewWidth > 0 {
		showWidth.Store(int64(c.PreviewWidth))
	}
	if c.CacheDir != "" {
		datasets.SetCacheDir(c.CacheDir)
	}
	return nil
}
