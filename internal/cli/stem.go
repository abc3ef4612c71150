package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/ganzhi/internal/logger"
)

func stemCmd(a *app) *cobra.Command {
	var target, branch string

	cmd := &cobra.Command{
		Use:   "stem <name|index>",
		Short: "Show a heaven stem and its derived properties",
		Example: `  ganzhi stem 甲
  ganzhi stem 甲 --target 己 --branch 亥
  ganzhi stem -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stem, err := parseStem(args[0])
			if err != nil {
				return err
			}
			logger.Debug(cmd.Context(), "stem lookup", slog.String("name", stem.Name()))

			v := newStemView(stem)

			if target != "" {
				t, err := parseStem(target)
				if err != nil {
					return err
				}
				element, ok := stem.CombineWith(t)
				v.Target = &stemRelation{
					Name:     t.Name(),
					TenStar:  stem.TenStar(t).Name(),
					Combined: ok,
				}
				if ok {
					v.Target.Transform = element.Name()
				}
			}

			if branch != "" {
				b, err := parseBranch(branch)
				if err != nil {
					return err
				}
				v.Terrain = &terrainView{Branch: b.Name(), Terrain: stem.Terrain(b).Name()}
			}

			return a.write(cmd.OutOrStdout(), v)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "another stem: adds ten star and combination")
	cmd.Flags().StringVarP(&branch, "branch", "b", "", "an earth branch: adds the terrain at that branch")
	return cmd
}
