package cli

import (
	"fmt"

	"github.com/gcat/gcat/internal/engine"
	"github.com/gcat/gcat/pkg/config"
	"github.com/gcat/gcat/pkg/report"
	"github.com/gcat/gcat/pkg/types"
	"github.com/spf13/cobra"
)

// gridFlags are the element counts and domain measure shared by check
// and analyze
type gridFlags struct {
	n1, n2, n3   int
	h1, h2, h3   float64
	area, volume float64
}

func (g *gridFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&g.n1, "n1", 0, "number of elements of the fine grid")
	flags.IntVar(&g.n2, "n2", 0, "number of elements of the medium grid")
	flags.IntVar(&g.n3, "n3", 0, "number of elements of the coarse grid")
	flags.Float64Var(&g.area, "area", 0, "area of the computational domain (2D)")
	flags.Float64Var(&g.volume, "volume", 0, "volume of the computational domain (3D)")

	cmd.MarkFlagsRequiredTogether("n1", "n2", "n3")
	cmd.MarkFlagsMutuallyExclusive("area", "volume")
}

func (g *gridFlags) registerSizes(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Float64Var(&g.h1, "h1", 0, "representative size of the fine grid")
	flags.Float64Var(&g.h2, "h2", 0, "representative size of the medium grid")
	flags.Float64Var(&g.h3, "h3", 0, "representative size of the coarse grid")

	cmd.MarkFlagsRequiredTogether("h1", "h2", "h3")
	cmd.MarkFlagsMutuallyExclusive("h1", "n1")
}

// study builds a study skeleton from the grid flags
func (g *gridFlags) study(name string) *types.Study {
	study := &types.Study{
		Version: types.StudyVersion,
		Name:    name,
		Domain:  types.Domain{Area: g.area, Volume: g.volume},
	}
	if g.h1 != 0 || g.h2 != 0 || g.h3 != 0 {
		for i, h := range []float64{g.h1, g.h2, g.h3} {
			h := h
			study.Grids = append(study.Grids, types.Grid{Name: string(types.GridLevels[i]), Size: &h})
		}
		return study
	}
	for i, n := range []int{g.n1, g.n2, g.n3} {
		study.Grids = append(study.Grids, types.Grid{Name: string(types.GridLevels[i]), Elements: n})
	}
	return study
}

func (c *CLI) newCheckCmd() *cobra.Command {
	var grids gridFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the representative size and refinement ratios",
		Long: `Compute the representative grid size h = (S/N)^(1/d) of the three grids and
the refinement ratios r21 = h2/h1 and r32 = h3/h2.

The domain is two-dimensional when --area is given and three-dimensional
when --volume is given; exactly one of them is required.`,
		Example: "  gcat check --n1 18000 --n2 8000 --n3 4500 --area 1",
		Args:    cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(c.viper, cmd.Flags(), keyFormat); err != nil {
				return err
			}
			return c.runCheck(&grids)
		}),
	}

	grids.register(cmd)
	cmd.Flags().String(keyFormat, "text", "output format (text, json, yaml)")
	_ = cmd.MarkFlagRequired("n1")
	_ = cmd.MarkFlagRequired("n2")
	_ = cmd.MarkFlagRequired("n3")
	cmd.MarkFlagsOneRequired("area", "volume")

	return cmd
}

func (c *CLI) runCheck(grids *gridFlags) error {
	format, err := report.ParseFormat(c.viper.GetString(keyFormat))
	if err != nil {
		return err
	}

	study := grids.study("check")
	if err := config.ValidateDomain(study.Domain, true); err != nil {
		return err
	}

	summary, err := engine.NewAnalyzer(engine.DefaultOptions(), c.logger, nil).Check(study)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	return report.NewRenderer(format, c.output, c.config.NoColor).RenderGrids(summary)
}
