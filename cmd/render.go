package cmd

import (
	"fmt"
	"os"

	"github.com/samsaffron/mdmend/internal/mend"
	"github.com/samsaffron/mdmend/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var renderWidth int

func init() {
	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", 0, "Word-wrap width (0 = terminal width)")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Repair markdown and render it for the terminal",
	Long: `Render repairs markdown and pretty-prints the result with themed
styling, the way it would appear in a chat transcript.

Examples:
  mdmend render response.md
  cat response.md | mdmend render -w 100`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input, err := readInput(args)
	if err != nil {
		return err
	}

	width := renderWidth
	if width <= 0 {
		width = cfg.Render.Width
	}
	if width <= 0 {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		} else {
			width = ui.DefaultRenderWidth
		}
	}

	repaired := mend.NormalizeWithOptions(input, repairOptions(cfg))
	fmt.Println(ui.RenderMarkdown(repaired, width))
	return nil
}
