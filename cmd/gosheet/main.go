// Command gosheet is the CLI driver for the spreadsheet engine: it reads
// a line-oriented command script, either from a file (run) or stdin
// (repl), and applies each line to an in-memory sheet.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cerque1/go-spreadsheet/internal/config"
)

var (
	cfg    config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "gosheet",
		Short: "A programmable spreadsheet engine CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(v)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg = loaded

			l, err := newLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			logger = l
			return nil
		},
	}

	config.BindFlags(root.PersistentFlags(), v)
	root.AddCommand(newRunCmd())
	root.AddCommand(newReplCmd())
	return root
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("unrecognized log level %q: %w", level, err)
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zapLevel)
	zapCfg.Encoding = "console"
	zapCfg.EncoderConfig.TimeKey = ""
	return zapCfg.Build()
}
