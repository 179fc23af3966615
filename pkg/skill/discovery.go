package skill

import (
	"path/filepath"
	"sort"

	"github.com/dotskills/dotskills/pkg/errors"
	"github.com/dotskills/dotskills/pkg/filesystem"
	"github.com/dotskills/dotskills/pkg/logging"
	"github.com/dotskills/dotskills/pkg/paths"
)

// Discover enumerates skill directories under skillsDir, sorted by name.
// A skill is any immediate subdirectory; its SKILL.md metadata is loaded
// when present and readable, and left empty otherwise. The metadata is
// display-only, so a broken SKILL.md never blocks installation.
func Discover(fs filesystem.FS, skillsDir string) ([]Skill, error) {
	log := logging.GetLogger("skill.discovery")

	entries, err := fs.ReadDir(skillsDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceNotFound, "cannot read skills directory %q", skillsDir)
	}

	var skills []Skill
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		s := Skill{
			Name: entry.Name(),
			Path: filepath.Join(skillsDir, entry.Name()),
		}

		if md, body, err := load(fs, s.Path); err != nil {
			log.Debug().Err(err).Str("skill", s.Name).Msg("No usable SKILL.md metadata")
		} else {
			s.Description = md.Description
			s.Content = body
		}

		skills = append(skills, s)
	}

	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

// Find returns the named skill from skillsDir
func Find(fs filesystem.FS, skillsDir, name string) (*Skill, error) {
	skills, err := Discover(fs, skillsDir)
	if err != nil {
		return nil, err
	}

	for i := range skills {
		if skills[i].Name == name {
			return &skills[i], nil
		}
	}

	return nil, errors.Newf(errors.ErrSkillNotFound, "skill %q not found in %s", name, skillsDir)
}

// load reads and parses a skill directory's SKILL.md
func load(fs filesystem.FS, skillDir string) (*Metadata, string, error) {
	content, err := fs.ReadFile(filepath.Join(skillDir, paths.SkillFileName))
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrFileAccess, "failed to read skill file")
	}

	md, err := ParseMetadata(content)
	if err != nil {
		return nil, "", err
	}

	return md, ExtractBody(string(content)), nil
}
