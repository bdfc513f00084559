package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cerque1/go-spreadsheet/packages/spreadsheet"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Run a command script against a fresh sheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.ScriptPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no script given: pass a path or set --script")
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening script: %w", err)
			}
			defer f.Close()

			sheet := spreadsheet.NewSheet()
			return runScript(sheet, f, cmd.OutOrStdout(), logger)
		},
	}
}
