package cmd

import (
	"fmt"
	"os"

	"github.com/samsaffron/mdmend/internal/inspect"
	"github.com/samsaffron/mdmend/internal/mend"
	"github.com/samsaffron/mdmend/internal/ui"
	"github.com/spf13/cobra"
)

var (
	repairOutput string
	repairStats  bool
)

func init() {
	repairCmd.Flags().StringVarP(&repairOutput, "output", "o", "", "Write repaired markdown to a file instead of stdout")
	repairCmd.Flags().BoolVar(&repairStats, "stats", false, "Report repaired structures on stderr")
	rootCmd.AddCommand(repairCmd)
}

var repairCmd = &cobra.Command{
	Use:   "repair [file]",
	Short: "Repair markdown and write the result",
	Long: `Repair reads markdown from a file or stdin, rewrites it into a
well-formed document and writes the result.

Examples:
  mdmend repair response.md
  mdmend repair response.md -o fixed.md
  cat response.md | mdmend repair --stats`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRepair,
}

func runRepair(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input, err := readInput(args)
	if err != nil {
		return err
	}

	repaired := mend.NormalizeWithOptions(input, repairOptions(cfg))

	if repairStats {
		printRepairStats(input, repaired)
	}

	if repairOutput != "" {
		if err := os.WriteFile(repairOutput, []byte(repaired), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", repairOutput, err)
		}
		return nil
	}

	_, err = fmt.Fprint(os.Stdout, repaired)
	return err
}

func printRepairStats(input, repaired string) {
	styles := ui.NewStyles(os.Stderr)

	if input == repaired {
		fmt.Fprintln(os.Stderr, styles.Muted.Render("no repairs needed"))
		return
	}

	before := inspect.Scan([]byte(input))
	after := inspect.Scan([]byte(repaired))

	recovered := before.BrokenTables - after.BrokenTables
	if recovered > 0 {
		fmt.Fprintln(os.Stderr, styles.Success.Render(fmt.Sprintf("recovered %d table(s)", recovered)))
	}
	if promoted := after.Headings - before.Headings; promoted > 0 {
		fmt.Fprintln(os.Stderr, styles.Success.Render(fmt.Sprintf("promoted %d heading(s)", promoted)))
	}
	if after.BrokenTables > 0 {
		fmt.Fprintln(os.Stderr, styles.Warning.Render(fmt.Sprintf("%d table(s) still unparseable", after.BrokenTables)))
	}
	fmt.Fprintln(os.Stderr, styles.Muted.Render(fmt.Sprintf("%d bytes in, %d bytes out", len(input), len(repaired))))
}
