package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/samsaffron/mdmend/internal/config"
	"github.com/samsaffron/mdmend/internal/mend"
)

// readInput returns the markdown to repair: the named file, or stdin when no
// argument (or "-") is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func repairOptions(cfg *config.Config) mend.Options {
	return mend.Options{
		Inline:     cfg.Repair.Inline,
		Headings:   cfg.Repair.Headings,
		Tables:     cfg.Repair.Tables,
		Whitespace: cfg.Repair.Whitespace,
	}
}
