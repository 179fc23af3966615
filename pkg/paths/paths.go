// Package paths provides centralized path handling for dotskills.
// It resolves the skills source root and the home-directory destination,
// and implements XDG Base Directory compliance for state files.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/dotskills/dotskills/pkg/errors"
)

// Environment variable names
const (
	// EnvSkillsRoot is the primary environment variable for the source location
	EnvSkillsRoot = "DOTSKILLS_ROOT"

	// EnvDestHome overrides the destination root, mainly for tests
	EnvDestHome = "DOTSKILLS_HOME"
)

// Default directories and files.
// The destination layout must remain consistent across installations; the
// source-side names can be overridden through dotskills.toml (see pkg/config).
const (
	// DefaultDestDirName is the directory created under $HOME
	DefaultDestDirName = ".agents"

	// DefaultConfigFileName is the instructions file copied to the destination root
	DefaultConfigFileName = "AGENTS.md"

	// DefaultSkillsDirName is the skills collection directory, on both sides
	DefaultSkillsDirName = "skills"

	// SkillFileName is the per-skill metadata file
	SkillFileName = "SKILL.md"

	// AppDirName is the directory name for dotskills state files
	AppDirName = "dotskills"
)

// Paths provides centralized path management for dotskills
type Paths struct {
	sourceRoot   string
	destRoot     string
	usedFallback bool

	destDirName    string
	configFileName string
	skillsDirName  string
}

// Option configures a Paths instance
type Option func(*Paths)

// WithDestDirName overrides the destination directory name under $HOME
func WithDestDirName(name string) Option {
	return func(p *Paths) {
		if name != "" {
			p.destDirName = name
		}
	}
}

// WithConfigFileName overrides the instructions file name
func WithConfigFileName(name string) Option {
	return func(p *Paths) {
		if name != "" {
			p.configFileName = name
		}
	}
}

// WithSkillsDirName overrides the skills collection directory name
func WithSkillsDirName(name string) Option {
	return func(p *Paths) {
		if name != "" {
			p.skillsDirName = name
		}
	}
}

// New creates a Paths instance. The source root is resolved in order:
// the explicit sourceRoot argument, the DOTSKILLS_ROOT environment
// variable, then the current working directory as a fallback.
func New(sourceRoot string, opts ...Option) (*Paths, error) {
	p := &Paths{
		destDirName:    DefaultDestDirName,
		configFileName: DefaultConfigFileName,
		skillsDirName:  DefaultSkillsDirName,
	}

	for _, opt := range opts {
		opt(p)
	}

	root := sourceRoot
	if root == "" {
		root = os.Getenv(EnvSkillsRoot)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
		}
		root = cwd
		p.usedFallback = true
	}

	expanded, err := ExpandHome(root)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceInvalid, "cannot resolve source root %q", root)
	}
	p.sourceRoot = abs

	destRoot := os.Getenv(EnvDestHome)
	if destRoot == "" {
		home, err := GetHomeDirectory()
		if err != nil {
			return nil, err
		}
		destRoot = filepath.Join(home, p.destDirName)
	}
	p.destRoot = destRoot

	return p, nil
}

// SourceRoot returns the resolved source root directory
func (p *Paths) SourceRoot() string {
	return p.sourceRoot
}

// UsedFallback reports whether the source root fell back to the working directory
func (p *Paths) UsedFallback() bool {
	return p.usedFallback
}

// SourceConfigPath returns the path of the instructions file in the source
func (p *Paths) SourceConfigPath() string {
	return filepath.Join(p.sourceRoot, p.configFileName)
}

// SourceSkillsDir returns the skills collection directory in the source
func (p *Paths) SourceSkillsDir() string {
	return filepath.Join(p.sourceRoot, p.skillsDirName)
}

// SourceSkillPath returns the directory of a named skill in the source
func (p *Paths) SourceSkillPath(name string) string {
	return filepath.Join(p.SourceSkillsDir(), name)
}

// DestRoot returns the destination root directory
func (p *Paths) DestRoot() string {
	return p.destRoot
}

// DestConfigPath returns the path of the instructions file in the destination
func (p *Paths) DestConfigPath() string {
	return filepath.Join(p.destRoot, p.configFileName)
}

// DestSkillsDir returns the skills directory in the destination
func (p *Paths) DestSkillsDir() string {
	return filepath.Join(p.destRoot, p.skillsDirName)
}

// DestSkillPath returns the directory of a named skill in the destination
func (p *Paths) DestSkillPath(name string) string {
	return filepath.Join(p.DestSkillsDir(), name)
}

// ConfigFileName returns the instructions file name in effect
func (p *Paths) ConfigFileName() string {
	return p.configFileName
}

// SkillsDirName returns the skills collection directory name in effect
func (p *Paths) SkillsDirName() string {
	return p.skillsDirName
}

// StateDir returns the XDG state directory for dotskills.
// XDG_STATE_HOME is read at call time; the xdg package caches it at startup.
func (p *Paths) StateDir() string {
	if env := os.Getenv("XDG_STATE_HOME"); env != "" {
		return filepath.Join(env, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// ManifestPath returns the path of the last-install manifest record
func (p *Paths) ManifestPath() string {
	return filepath.Join(p.StateDir(), "manifest")
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment
// variable. If both fail, it returns an error rather than guessing.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv("HOME")
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory: neither os.UserHomeDir() nor HOME are available")
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) (string, error) {
	if path == "~" {
		return GetHomeDirectory()
	}

	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		homeDir, err := GetHomeDirectory()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, path[2:]), nil
	}

	return path, nil
}
