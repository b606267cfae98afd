// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/agroplan/planning"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) sweepCmd() *cobra.Command {
	var (
		file  string
		seeds int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Repeat the sensitivity experiment over many seeds",
		Long: `Run the perturbation experiment of a plan once per derived seed and
summarize the relative solution change.

Examples:
  # 64 seeds on a plan file
  agroplan sweep -f plan.yaml --seeds 64

  # Built-in reference farm
  agroplan sweep`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.loadModel(cmd, file)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seeds") {
				a.cfg.SweepSeeds = seeds
				if err = a.cfg.Validate(); err != nil {
					return err
				}
			}

			sum, err := planning.Sweep(m, a.cfg.PlanningOptions()...)
			if err != nil {
				a.log.Error("sweep failed", zap.Error(err))
				return err
			}
			a.log.Info("sweep complete",
				zap.Int("runs", sum.Runs),
				zap.Float64("mean_rel_dx", sum.MeanRelDx),
				zap.Int("violations", sum.Violations),
			)

			return writeResult(a.out, a.cfg.Output, sweepResult{sum})
		},
	}
	cmd.Flags().StringVarP(&file, "filename", "f", "", "Plan file (default: built-in reference farm)")
	cmd.Flags().IntVar(&seeds, "seeds", planning.DefaultSweepSeeds, "Number of seeds")

	return cmd
}
