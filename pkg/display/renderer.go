// Package display renders dotskills command output for humans. Colors are
// adaptive and drop away when the output is not a terminal or NO_COLOR is
// set. The output is not machine-parseable and not versioned.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/dotskills/dotskills/pkg/skill"
	"github.com/dotskills/dotskills/pkg/sync"
)

// Renderer writes human-readable output for dotskills commands
type Renderer struct {
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a renderer. When noColor is true all styling is
// stripped.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	return &Renderer{writer: w, noColor: noColor}
}

// NewAutoRenderer creates a renderer with color enabled only when the
// writer is a terminal and NO_COLOR is unset
func NewAutoRenderer(w io.Writer) *Renderer {
	noColor := os.Getenv("NO_COLOR") != ""
	if f, ok := w.(*os.File); ok {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			noColor = true
		}
	} else {
		noColor = true
	}
	return &Renderer{writer: w, noColor: noColor}
}

// RenderManifest prints what an install run put in place
func (r *Renderer) RenderManifest(result *sync.Result, destRoot string) {
	header := "install"
	if result.DryRun {
		header += " (dry run)"
	}
	fmt.Fprintln(r.writer, r.style(titleStyle, header))
	fmt.Fprintln(r.writer)

	if result.ConfigInstalled {
		fmt.Fprintf(r.writer, "  %s instructions file\n", r.mark(sync.StateUpToDate))
	}

	if len(result.Skills) == 0 {
		fmt.Fprintln(r.writer, r.style(mutedStyle, "  no skills installed"))
	}
	for _, sk := range result.Skills {
		r.renderSkillLine(r.mark(sync.StateUpToDate), sk.Name, sk.Description)
	}

	fmt.Fprintln(r.writer)
	if result.DryRun {
		fmt.Fprintf(r.writer, "Would install to %s\n", destRoot)
	} else {
		fmt.Fprintf(r.writer, "Installed to %s\n", destRoot)
	}
}

// RenderSkillList prints skills with their descriptions
func (r *Renderer) RenderSkillList(skills []skill.Skill, header string) {
	fmt.Fprintln(r.writer, r.style(titleStyle, header))
	fmt.Fprintln(r.writer)

	if len(skills) == 0 {
		fmt.Fprintln(r.writer, r.style(mutedStyle, "  no skills found"))
		return
	}

	for _, sk := range skills {
		r.renderSkillLine(" ", sk.Name, sk.Description)
	}
}

// RenderStatus prints the source/destination comparison
func (r *Renderer) RenderStatus(status *sync.Status) {
	fmt.Fprintln(r.writer, r.style(titleStyle, "status"))
	fmt.Fprintln(r.writer)

	if status.HasConfigFile {
		fmt.Fprintf(r.writer, "  %s instructions file %s\n",
			r.mark(status.ConfigState), r.style(mutedStyle, string(status.ConfigState)))
	}

	if len(status.Skills) == 0 {
		fmt.Fprintln(r.writer, r.style(mutedStyle, "  no skills found"))
		return
	}

	for _, sk := range status.Skills {
		name := r.style(skillNameStyle, sk.Name)
		fmt.Fprintf(r.writer, "  %s %s %s\n", r.mark(sk.State), name, r.style(mutedStyle, string(sk.State)))
	}
}

// RenderError prints a failure in a consistent form
func (r *Renderer) RenderError(err error) {
	fmt.Fprintf(r.writer, "%s %v\n", r.style(errorStyle, "Error:"), err)
}

func (r *Renderer) renderSkillLine(mark, name, description string) {
	line := fmt.Sprintf("  %s %s", mark, r.style(skillNameStyle, name))
	if description != "" {
		line += " " + r.style(descriptionStyle, description)
	}
	fmt.Fprintln(r.writer, line)
}

// mark returns the status indicator for a state
func (r *Renderer) mark(state sync.State) string {
	if r.noColor {
		switch state {
		case sync.StateUpToDate:
			return "+"
		case sync.StateChanged, sync.StateMissing:
			return "~"
		default:
			return "-"
		}
	}

	switch state {
	case sync.StateUpToDate:
		return pterm.NewStyle(pterm.FgGreen).Sprint("✓")
	case sync.StateChanged, sync.StateMissing:
		return pterm.NewStyle(pterm.FgYellow).Sprint("~")
	default:
		return pterm.NewStyle(pterm.FgRed).Sprint("✗")
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return s.Render(text)
}
