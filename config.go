package vpnmon_builder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const configFilename = "config.yml"

// Config holds everything the pipeline needs to know about the application
// being built and about where to build and install it. BaseDir and HomeDir
// are resolved once at startup and passed into every stage, instead of each
// stage reading the working directory or $HOME on its own.
type Config struct {
	// Product is the display name of the application, Comment its one-line
	// description shown in application menus.
	Product string `yaml:"product"`
	Comment string `yaml:"comment"`
	// Categories are the desktop-menu category tags, without separators.
	Categories []string `yaml:"categories"`
	// Entrypoint is the application source file handed to the freeze tool,
	// Artifact the name of the executable it produces.
	Entrypoint string `yaml:"entrypoint"`
	Artifact   string `yaml:"artifact"`
	// Icon is the file name of the generated launcher icon.
	Icon string `yaml:"icon"`
	// VenvDir is the name of the virtualenv directory inside BaseDir.
	VenvDir string `yaml:"venv"`
	// Packages are the pip packages installed into the virtualenv, Modules
	// the Python module names whose importability marks the environment as
	// healthy.
	Packages []string `yaml:"packages"`
	Modules  []string `yaml:"modules"`
	// ProbeHost is pinged (one packet, ProbeTimeout bound) before any
	// opportunistic dependency upgrade.
	ProbeHost    string        `yaml:"probe_host"`
	ProbeTimeout time.Duration `yaml:"-"`
	// Autostart controls whether the launcher entry is also written to the
	// user's autostart directory.
	Autostart bool `yaml:"autostart"`
	// Variables are extra template variables available to localized strings.
	Variables StringMap `yaml:"variables"`

	BaseDir string `yaml:"-"`
	HomeDir string `yaml:"-"`
}

// NewConfig reads the builder configuration from the resource box.
func NewConfig() (*Config, error) {
	config := &Config{}
	configFile, err := GetResource(configFilename)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal([]byte(configFile), config)
	if err != nil {
		return nil, fmt.Errorf("unable to parse config file %s: %w", configFilename, err)
	}
	if config.ProbeTimeout == 0 {
		config.ProbeTimeout = 2 * time.Second
	}
	if config.Variables == nil {
		config.Variables = StringMap{}
	}
	if config.Variables["version"] == "" {
		config.Variables["version"] = "1.0"
	}
	return config, nil
}

// ResolveDirs fills in BaseDir and HomeDir. Empty arguments fall back to the
// current working directory and the user's home directory respectively. Both
// are made absolute so that launcher entries always carry absolute paths.
func (c *Config) ResolveDirs(baseDir, homeDir string) (err error) {
	if baseDir == "" {
		baseDir, err = os.Getwd()
		if err != nil {
			return err
		}
	}
	if homeDir == "" {
		homeDir, err = os.UserHomeDir()
		if err != nil {
			return err
		}
	}
	c.BaseDir, err = filepath.Abs(baseDir)
	if err != nil {
		return err
	}
	c.HomeDir, err = filepath.Abs(homeDir)
	if err != nil {
		return err
	}
	return nil
}

// BinaryPath is the final location of the built executable.
func (c *Config) BinaryPath() string { return filepath.Join(c.BaseDir, c.Artifact) }

// IconPath is the canonical location of the generated launcher icon.
func (c *Config) IconPath() string {
	return filepath.Join(c.HomeDir, ".local", "share", "icons", c.Icon)
}

// LauncherFilename is the name of the desktop launcher entry file.
func (c *Config) LauncherFilename() string { return c.Artifact + ".desktop" }

// CategoryList returns the menu categories as a semicolon-joined tag list
// with the trailing separator the desktop entry format wants.
func (c *Config) CategoryList() string {
	if len(c.Categories) == 0 {
		return ""
	}
	return strings.Join(c.Categories, ";") + ";"
}
