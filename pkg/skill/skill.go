// Package skill provides the skill model for dotskills. Skills are
// directories containing a SKILL.md file with YAML frontmatter carrying a
// name and a one-line description used for display.
package skill

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/dotskills/dotskills/pkg/errors"
)

// Skill represents a skill directory with its metadata
type Skill struct {
	Name        string // Directory name, the installation identity
	Description string // One-line description from frontmatter, may be empty
	Path        string // Full path to the skill directory
	Content     string // SKILL.md body, without frontmatter
}

// Metadata represents the YAML frontmatter in SKILL.md files
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ParseMetadata extracts frontmatter metadata from SKILL.md content.
// A file without frontmatter is an error; the caller decides whether
// that is fatal (metadata is display-only during installation).
func ParseMetadata(content []byte) (*Metadata, error) {
	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, errors.ErrSkillInvalid, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, errors.New(errors.ErrSkillInvalid, "missing frontmatter")
	}

	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)

	return &Metadata{
		Name:        name,
		Description: description,
	}, nil
}

// ExtractBody removes YAML frontmatter and returns the body content
func ExtractBody(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}

	lines := strings.Split(content, "\n")
	frontmatterEnd := -1

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return content
	}

	return strings.TrimLeft(strings.Join(lines[frontmatterEnd+1:], "\n"), "\n")
}
