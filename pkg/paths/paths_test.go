package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dotskills/dotskills/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("explicit source root wins", func(t *testing.T) {
		t.Setenv(paths.EnvSkillsRoot, "/env/root")
		t.Setenv(paths.EnvDestHome, "/dest")

		p, err := paths.New("/explicit/root")
		require.NoError(t, err)

		assert.Equal(t, "/explicit/root", p.SourceRoot())
		assert.False(t, p.UsedFallback())
	})

	t.Run("environment variable used when no explicit root", func(t *testing.T) {
		t.Setenv(paths.EnvSkillsRoot, "/env/root")
		t.Setenv(paths.EnvDestHome, "/dest")

		p, err := paths.New("")
		require.NoError(t, err)

		assert.Equal(t, "/env/root", p.SourceRoot())
		assert.False(t, p.UsedFallback())
	})

	t.Run("falls back to working directory", func(t *testing.T) {
		t.Setenv(paths.EnvSkillsRoot, "")
		t.Setenv(paths.EnvDestHome, "/dest")

		p, err := paths.New("")
		require.NoError(t, err)

		cwd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, cwd, p.SourceRoot())
		assert.True(t, p.UsedFallback())
	})

	t.Run("destination defaults under home", func(t *testing.T) {
		t.Setenv(paths.EnvDestHome, "")
		home := t.TempDir()
		t.Setenv("HOME", home)

		p, err := paths.New("/src")
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(home, paths.DefaultDestDirName), p.DestRoot())
	})

	t.Run("DOTSKILLS_HOME overrides destination", func(t *testing.T) {
		t.Setenv(paths.EnvDestHome, "/custom/dest")

		p, err := paths.New("/src")
		require.NoError(t, err)

		assert.Equal(t, "/custom/dest", p.DestRoot())
	})
}

func TestPathLayout(t *testing.T) {
	t.Setenv(paths.EnvDestHome, "/dest")

	p, err := paths.New("/src")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/src", "AGENTS.md"), p.SourceConfigPath())
	assert.Equal(t, filepath.Join("/src", "skills"), p.SourceSkillsDir())
	assert.Equal(t, filepath.Join("/src", "skills", "alpha"), p.SourceSkillPath("alpha"))
	assert.Equal(t, filepath.Join("/dest", "AGENTS.md"), p.DestConfigPath())
	assert.Equal(t, filepath.Join("/dest", "skills"), p.DestSkillsDir())
	assert.Equal(t, filepath.Join("/dest", "skills", "alpha"), p.DestSkillPath("alpha"))
}

func TestOptions(t *testing.T) {
	t.Setenv(paths.EnvDestHome, "/dest")

	p, err := paths.New("/src",
		paths.WithConfigFileName("INSTRUCTIONS.md"),
		paths.WithSkillsDirName("abilities"),
	)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/src", "INSTRUCTIONS.md"), p.SourceConfigPath())
	assert.Equal(t, filepath.Join("/dest", "abilities"), p.DestSkillsDir())

	t.Run("empty override is ignored", func(t *testing.T) {
		p, err := paths.New("/src", paths.WithConfigFileName(""))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/src", "AGENTS.md"), p.SourceConfigPath())
	})
}

func TestWithDestDirName(t *testing.T) {
	t.Setenv(paths.EnvDestHome, "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := paths.New("/src", paths.WithDestDirName(".helpers"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".helpers"), p.DestRoot())
}

func TestGetHomeDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := paths.GetHomeDirectory()
	require.NoError(t, err)
	assert.Equal(t, home, got)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare tilde", "~", home},
		{"tilde with path", "~/skills", filepath.Join(home, "skills")},
		{"absolute path untouched", "/etc/skills", "/etc/skills"},
		{"relative path untouched", "skills", "skills"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := paths.ExpandHome(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
