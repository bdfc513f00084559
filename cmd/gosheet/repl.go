package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cerque1/go-spreadsheet/packages/spreadsheet"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run the command grammar interactively over stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet := spreadsheet.NewSheet()
			return runRepl(sheet, cmd)
		},
	}
}

func runRepl(sheet *spreadsheet.Sheet, cmd *cobra.Command) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for {
		fmt.Fprint(out, cfg.Prompt)
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.EqualFold(line, "EXIT") || strings.EqualFold(line, "QUIT") {
			return nil
		}
		if err := execLine(sheet, line, out); err != nil {
			logger.Warn("command failed", zap.String("text", line), zap.Error(err))
		}
	}
}
