package display

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown converts markdown to terminal output with glamour.
// On any rendering error, or when color is disabled, the raw content is
// returned unchanged.
func RenderMarkdown(content string, noColor bool) string {
	if noColor {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
