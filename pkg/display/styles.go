package display

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// colorDef is an adaptive color definition in styles.yaml
type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// stylesConfig is the full styles.yaml document
type stylesConfig struct {
	Colors map[string]colorDef `yaml:"colors"`
}

// Shared styles, built from the embedded color definitions
var (
	titleStyle       lipgloss.Style
	skillNameStyle   lipgloss.Style
	descriptionStyle lipgloss.Style
	mutedStyle       lipgloss.Style
	errorStyle       lipgloss.Style
)

func init() {
	var cfg stylesConfig
	// The document is compiled in, so a parse failure means a broken build
	if err := yaml.Unmarshal(stylesYAML, &cfg); err != nil {
		panic("display: invalid embedded styles.yaml: " + err.Error())
	}

	color := func(name string) lipgloss.AdaptiveColor {
		def := cfg.Colors[name]
		return lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	titleStyle = lipgloss.NewStyle().Foreground(color("heading")).Bold(true)
	skillNameStyle = lipgloss.NewStyle().Bold(true)
	descriptionStyle = lipgloss.NewStyle().Foreground(color("muted"))
	mutedStyle = lipgloss.NewStyle().Foreground(color("muted"))
	errorStyle = lipgloss.NewStyle().Foreground(color("error"))
}
