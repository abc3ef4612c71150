package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/ganzhi/internal/logger"
)

func cycleCmd(a *app) *cobra.Command {
	var next int

	cmd := &cobra.Command{
		Use:   "cycle <name|index>",
		Short: "Show a member of the sixty cycle",
		Example: `  ganzhi cycle 甲戌
  ganzhi cycle 0 --next 61`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCycle(args[0])
			if err != nil {
				return err
			}
			if next != 0 {
				c = c.Next(next)
			}
			logger.Debug(cmd.Context(), "cycle lookup",
				slog.String("name", c.Name()),
				slog.Int("next", next),
			)

			return a.write(cmd.OutOrStdout(), newCycleView(c))
		},
	}

	cmd.Flags().IntVarP(&next, "next", "n", 0, "step this many places before showing (may be negative)")
	return cmd
}
