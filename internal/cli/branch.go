package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/ganzhi/internal/logger"
)

func branchCmd(a *app) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "branch <name|index>",
		Short: "Show an earth branch, its hidden stems and relations",
		Example: `  ganzhi branch 子
  ganzhi branch 子 --target 丑`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			branch, err := parseBranch(args[0])
			if err != nil {
				return err
			}
			logger.Debug(cmd.Context(), "branch lookup", slog.String("name", branch.Name()))

			v := newBranchView(branch)

			if target != "" {
				t, err := parseBranch(target)
				if err != nil {
					return err
				}
				element, ok := branch.CombineWith(t)
				v.Target = &branchRelation{
					Name:     t.Name(),
					Combined: ok,
					Clash:    branch.Opposite() == t,
					Harm:     branch.Harm() == t,
				}
				if ok {
					v.Target.Transform = element.Name()
				}
			}

			return a.write(cmd.OutOrStdout(), v)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "another branch: adds combination, clash and harm")
	return cmd
}
