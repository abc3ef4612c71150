package cli

import (
	"github.com/spf13/cobra"

	"github.com/zapponejosh/ganzhi/internal/sixtycycle"
)

func tableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "List the sixty cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var v tableView
			for _, c := range sixtycycle.All() {
				v.Cycles = append(v.Cycles, newCycleView(c))
			}
			return a.write(cmd.OutOrStdout(), v)
		},
	}
}
