// Package config loads dotskills configuration with koanf.
// Built-in defaults are embedded; a dotskills.toml at the source root
// overrides them.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dotskills/dotskills/pkg/errors"
)

// ConfigFileName is the per-source configuration file
const ConfigFileName = "dotskills.toml"

// Config holds the user-tunable settings for a sync run
type Config struct {
	// DestDir is the directory created under $HOME
	DestDir string

	// ConfigFile is the instructions file name, on both sides
	ConfigFile string

	// SkillsDir is the skills collection directory name, on both sides
	SkillsDir string

	// Exclude lists skill names that are never installed
	Exclude []string
}

// Load reads configuration for the given source root.
// Defaults are loaded first; a dotskills.toml in the source root, if
// present, overrides them key by key.
func Load(sourceRoot string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	path := filepath.Join(sourceRoot, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
		}
	}

	return &Config{
		DestDir:    k.String("install.dest_dir"),
		ConfigFile: k.String("install.config_file"),
		SkillsDir:  k.String("install.skills_dir"),
		Exclude:    k.Strings("install.exclude"),
	}, nil
}

// Excluded reports whether a skill name is excluded by configuration
func (c *Config) Excluded(name string) bool {
	for _, ex := range c.Exclude {
		if ex == name {
			return true
		}
	}
	return false
}
