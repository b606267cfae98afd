// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/katalvlaran/agroplan/planning"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) analyzeCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Assess a plan read from a YAML file",
		Long: `Assess a plan: nominal, pessimistic and optimistic allocations,
condition number, seeded sensitivity, well-vs-ill diagnostics, ridge
comparison and the local sensitivity matrix.

Examples:
  # Assess a plan file
  agroplan analyze -f plan.yaml

  # Different seed and ridge strength, JSON output
  agroplan analyze -f plan.yaml --seed 7 --lambda 1 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.loadModel(cmd, file)
			if err != nil {
				return err
			}

			return a.assess(m)
		},
	}
	cmd.Flags().StringVarP(&file, "filename", "f", "", "Plan file (required)")
	_ = cmd.MarkFlagRequired("filename")

	return cmd
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Assess the built-in reference farm",
		Long: `Assess the built-in four-resource, three-crop reference farm against the
collinear reference system.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.loadModel(cmd, "")
			if err != nil {
				return err
			}

			return a.assess(m)
		},
	}
}

func (a *app) assess(m planning.Model) error {
	start := time.Now()
	res, err := planning.Assess(m, a.cfg.PlanningOptions()...)
	if err != nil {
		a.log.Error("assessment failed", zap.Error(err))
		return err
	}
	a.log.Info("assessment complete",
		zap.String("model", m.Name),
		zap.Float64("kappa", res.Kappa.Value),
		zap.Bool("singular", res.Kappa.Singular),
		zap.Float64("rel_dx", res.Sensitivity.RelDx),
		zap.Bool("bound_exceeded", res.Sensitivity.BoundExceeded),
		zap.Duration("elapsed", time.Since(start)),
	)

	return writeResult(a.out, a.cfg.Output, res)
}
