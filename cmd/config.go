package cmd

import (
	"fmt"
	"os"

	"github.com/samsaffron/mdmend/internal/config"
	"github.com/samsaffron/mdmend/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View resolved configuration",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	styles := ui.NewStyles(os.Stdout)
	fmt.Println(styles.Muted.Render("config file: " + path))
	fmt.Println()

	fmt.Println(styles.Title.Render("repair"))
	fmt.Printf("  inline:     %v\n", cfg.Repair.Inline)
	fmt.Printf("  headings:   %v\n", cfg.Repair.Headings)
	fmt.Printf("  tables:     %v\n", cfg.Repair.Tables)
	fmt.Printf("  whitespace: %v\n", cfg.Repair.Whitespace)
	fmt.Println()

	fmt.Println(styles.Title.Render("render"))
	if cfg.Render.Width == 0 {
		fmt.Println("  width: auto")
	} else {
		fmt.Printf("  width: %d\n", cfg.Render.Width)
	}
	return nil
}
