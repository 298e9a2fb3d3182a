package cmd

import (
	"fmt"
	"os"

	"github.com/samsaffron/mdmend/internal/inspect"
	"github.com/samsaffron/mdmend/internal/mend"
	"github.com/samsaffron/mdmend/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Show what a GFM parser sees, before and after repair",
	Long: `Check parses the input with a GFM parser and reports its block
structure before and after repair. Pipe-delimited paragraphs the parser
rejects (usually tables missing their separator row) are flagged.

Examples:
  mdmend check response.md
  cat response.md | mdmend check`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	input, err := readInput(args)
	if err != nil {
		return err
	}

	repaired := mend.NormalizeWithOptions(input, repairOptions(cfg))

	before := inspect.Scan([]byte(input))
	after := inspect.Scan([]byte(repaired))

	styles := ui.NewStyles(os.Stdout)
	fmt.Println(styles.Title.Render("Block structure (before → after repair)"))
	fmt.Println()
	printCount(styles, "headings", before.Headings, after.Headings)
	printCount(styles, "paragraphs", before.Paragraphs, after.Paragraphs)
	printCount(styles, "lists", before.Lists, after.Lists)
	printCount(styles, "code blocks", before.CodeBlocks, after.CodeBlocks)
	printCount(styles, "blockquotes", before.Blockquotes, after.Blockquotes)
	printCount(styles, "tables", before.Tables, after.Tables)
	fmt.Println()

	switch {
	case after.BrokenTables > 0:
		fmt.Println(styles.Error.Render(fmt.Sprintf("✗ %d table(s) still unparseable after repair", after.BrokenTables)))
	case before.BrokenTables > 0:
		fmt.Println(styles.Success.Render(fmt.Sprintf("✓ recovered %d broken table(s)", before.BrokenTables)))
	default:
		fmt.Println(styles.Success.Render("✓ no broken tables"))
	}
	return nil
}

func printCount(styles *ui.Styles, label string, before, after int) {
	line := fmt.Sprintf("  %-12s %3d → %3d", label, before, after)
	if before != after {
		fmt.Println(styles.Bold.Render(line))
		return
	}
	fmt.Println(styles.Muted.Render(line))
}
