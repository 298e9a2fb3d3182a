package ui

import (
	"os"

	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for terminal output.
type Theme struct {
	Primary   lipgloss.Color // accent (strong emphasis, highlights)
	Secondary lipgloss.Color // headings, links, borders
	Success   lipgloss.Color // repair stats, recovered structures
	Error     lipgloss.Color // errors, structures still broken
	Warning   lipgloss.Color // blockquotes, caveats
	Muted     lipgloss.Color // dimmed/secondary text
	Text      lipgloss.Color // primary text
}

// DefaultTheme returns the default color theme (gruvbox).
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#b8bb26"), // gruvbox green
		Secondary: lipgloss.Color("#83a598"), // gruvbox aqua
		Success:   lipgloss.Color("#b8bb26"), // gruvbox green
		Error:     lipgloss.Color("#fb4934"), // gruvbox red
		Warning:   lipgloss.Color("#fabd2f"), // gruvbox yellow
		Muted:     lipgloss.Color("#928374"), // gruvbox gray
		Text:      lipgloss.Color("#ebdbb2"), // gruvbox foreground
	}
}

// ThemeConfig mirrors config.ThemeConfig for applying overrides. Values can
// be ANSI color numbers (0-255) or hex codes (#RRGGBB).
type ThemeConfig struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string
	Muted     string
	Text      string
}

// ThemeFromConfig creates a theme with config overrides applied.
func ThemeFromConfig(cfg ThemeConfig) *Theme {
	theme := DefaultTheme()

	if cfg.Primary != "" {
		theme.Primary = lipgloss.Color(cfg.Primary)
	}
	if cfg.Secondary != "" {
		theme.Secondary = lipgloss.Color(cfg.Secondary)
	}
	if cfg.Success != "" {
		theme.Success = lipgloss.Color(cfg.Success)
	}
	if cfg.Error != "" {
		theme.Error = lipgloss.Color(cfg.Error)
	}
	if cfg.Warning != "" {
		theme.Warning = lipgloss.Color(cfg.Warning)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}
	if cfg.Text != "" {
		theme.Text = lipgloss.Color(cfg.Text)
	}

	return theme
}

// currentTheme is the active theme instance
var currentTheme = DefaultTheme()

// InitTheme initializes the active theme from config overrides.
func InitTheme(cfg ThemeConfig) {
	currentTheme = ThemeFromConfig(cfg)
}

// GetTheme returns the current active theme.
func GetTheme() *Theme {
	return currentTheme
}

// Styles holds lipgloss styles bound to an output's color profile.
type Styles struct {
	renderer *lipgloss.Renderer
	theme    *Theme

	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
}

// NewStyles creates a Styles instance for the given output.
func NewStyles(output *os.File) *Styles {
	r := lipgloss.NewRenderer(output)
	theme := currentTheme

	return &Styles{
		renderer: r,
		theme:    theme,

		Title:   r.NewStyle().Bold(true).Foreground(theme.Text),
		Success: r.NewStyle().Foreground(theme.Success),
		Error:   r.NewStyle().Foreground(theme.Error),
		Warning: r.NewStyle().Foreground(theme.Warning),
		Muted:   r.NewStyle().Foreground(theme.Muted),
		Bold:    r.NewStyle().Bold(true),
	}
}

// GlamourStyle returns a glamour StyleConfig based on the current theme.
func GlamourStyle() ansi.StyleConfig {
	theme := currentTheme

	primary := string(theme.Primary)
	secondary := string(theme.Secondary)
	warning := string(theme.Warning)
	muted := string(theme.Muted)
	text := string(theme.Text)

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockPrefix: "\n",
				BlockSuffix: "\n",
				Color:       &text,
			},
			Margin: uintPtr(2),
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color:  &warning,
				Italic: boolPtr(true),
			},
			Indent: uintPtr(2),
		},
		List: ansi.StyleList{
			LevelIndent: 2,
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: &text,
				},
			},
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockPrefix: "\n",
				Color:       &secondary,
				Bold:        boolPtr(true),
			},
		},
		H1: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: "# "}},
		H2: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: "## "}},
		H3: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: "### "}},
		H4: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Prefix: "#### "}},
		Strikethrough: ansi.StylePrimitive{
			CrossedOut: boolPtr(true),
		},
		Emph: ansi.StylePrimitive{
			Color:  &warning,
			Italic: boolPtr(true),
		},
		Strong: ansi.StylePrimitive{
			Bold:  boolPtr(true),
			Color: &primary,
		},
		HorizontalRule: ansi.StylePrimitive{
			Color:  &muted,
			Format: "\n--------\n",
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Enumeration: ansi.StylePrimitive{
			BlockPrefix: ". ",
			Color:       &secondary,
		},
		Link: ansi.StylePrimitive{
			Color:     &secondary,
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: &primary,
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: &primary,
			},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: &text,
				},
				Margin: uintPtr(2),
			},
		},
		Table: ansi.StyleTable{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: &text,
				},
			},
		},
	}
}

func boolPtr(b bool) *bool { return &b }
func uintPtr(u uint) *uint { return &u }
