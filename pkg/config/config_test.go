package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dotskills/dotskills/pkg/config"
	"github.com/dotskills/dotskills/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".agents", cfg.DestDir)
	assert.Equal(t, "AGENTS.md", cfg.ConfigFile)
	assert.Equal(t, "skills", cfg.SkillsDir)
	assert.Empty(t, cfg.Exclude)
}

func TestLoadOverrides(t *testing.T) {
	root := t.TempDir()
	content := `
[install]
config_file = "INSTRUCTIONS.md"
exclude = ["wip", "scratch"]
`
	require.NoError(t, os.WriteFile(filepath.Join(root, config.ConfigFileName), []byte(content), 0644))

	cfg, err := config.Load(root)
	require.NoError(t, err)

	// Overridden keys
	assert.Equal(t, "INSTRUCTIONS.md", cfg.ConfigFile)
	assert.Equal(t, []string{"wip", "scratch"}, cfg.Exclude)

	// Untouched keys keep their defaults
	assert.Equal(t, ".agents", cfg.DestDir)
	assert.Equal(t, "skills", cfg.SkillsDir)
}

func TestLoadMalformed(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, config.ConfigFileName), []byte("not [valid toml"), 0644))

	_, err := config.Load(root)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestExcluded(t *testing.T) {
	cfg := &config.Config{Exclude: []string{"wip"}}

	assert.True(t, cfg.Excluded("wip"))
	assert.False(t, cfg.Excluded("alpha"))
}
