package cmd

import (
	"os"

	"github.com/samsaffron/mdmend/internal/config"
	"github.com/samsaffron/mdmend/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mdmend",
	Short: "Repair markdown produced by language models",
	Long: `mdmend rewrites unreliable LLM-generated markdown into a well-formed
document before it reaches a renderer: it balances emphasis markers, strips
pseudo-LaTeX fragments, promotes numbered section titles to headings, inserts
missing table separator rows and bounds runaway blank lines.

Examples:
  mdmend repair response.md              # repaired markdown to stdout
  cat response.md | mdmend repair        # works as a filter
  mdmend render response.md              # repair and render for the terminal
  mdmend check response.md               # what a GFM parser sees, before/after

  mdmend config                          # view configuration`,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	ui.InitTheme(ui.ThemeConfig{
		Primary:   cfg.Theme.Primary,
		Secondary: cfg.Theme.Secondary,
		Success:   cfg.Theme.Success,
		Error:     cfg.Theme.Error,
		Warning:   cfg.Theme.Warning,
		Muted:     cfg.Theme.Muted,
		Text:      cfg.Theme.Text,
	})
	return cfg, nil
}
