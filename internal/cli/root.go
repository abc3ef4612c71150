// Package cli implements the ganzhi command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/ganzhi/internal/config"
	"github.com/zapponejosh/ganzhi/internal/cycle"
	"github.com/zapponejosh/ganzhi/internal/logger"
	"github.com/zapponejosh/ganzhi/internal/render"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if cycle.IsInvalidName(err) {
			logger.Warn(context.Background(), "unknown name, arguments may also be integer indexes", slog.Any("error", err))
		}
		os.Exit(1)
	}
}

// app carries what every subcommand needs once the root has initialized.
type app struct {
	cfg    *config.Config
	format render.Format
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var output, logLevel string

	cmd := &cobra.Command{
		Use:          "ganzhi",
		Short:        "Sixty-cycle (干支) lookup tool",
		Long:         "Look up heaven stems, earth branches and the sixty cycle, and verify the cycle's invariants.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, output, logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: "+strings.Join(config.ValidOutputs(), ", ")+" (default from GANZHI_OUTPUT)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from LOG_LEVEL)")

	cmd.AddCommand(
		stemCmd(a),
		branchCmd(a),
		cycleCmd(a),
		tableCmd(a),
		checkCmd(a),
	)
	return cmd
}

// init loads configuration, applies flag overrides and sets up logging.
func (a *app) init(cmd *cobra.Command, output, logLevel string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Output = output
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	format, err := render.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.format = format
	logger.Setup(cfg, cmd.ErrOrStderr())
	cmd.SetContext(logger.WithCommand(cmd.Context(), cmd.Name()))

	logger.Debug(cmd.Context(), "configuration loaded",
		slog.String("output", cfg.Output),
		slog.String("log_level", cfg.LogLevel),
		slog.String("env", cfg.Env),
	)
	return nil
}

// write renders a result to the command's output.
func (a *app) write(w io.Writer, v render.Tabular) error {
	return render.Write(w, a.format, v)
}
