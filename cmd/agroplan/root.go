// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/katalvlaran/agroplan/internal/config"
	"github.com/katalvlaran/agroplan/internal/logging"
	"github.com/katalvlaran/agroplan/perturb"
	"github.com/katalvlaran/agroplan/planning"
	"github.com/katalvlaran/agroplan/ridge"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	out io.Writer
	cfg *config.Config
	log *logging.Logger

	newLogger func(logging.Config) (*logging.Logger, error)

	// flag values, applied over cfg when set
	output   string
	seed     int64
	perturb  float64
	lambda   float64
	method   string
	logLevel string
}

func newRootCmd(out io.Writer) *cobra.Command {
	return newApp(out).rootCmd()
}

func newApp(out io.Writer) *app {
	return &app{out: out, newLogger: logging.New}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "agroplan",
		Short: "Assess the robustness of crop-allocation plans",
		Long: `agroplan solves the binding resource constraints of a plan by
least squares, reports the condition number, perturbs the resources with a
seeded relative noise and compares the plan with a ridge-regularized solve of
an ill-conditioned reference system.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(a.out)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.output, "output", "o", config.OutputText, "Output format: text, json, yaml")
	pf.Int64Var(&a.seed, "seed", perturb.DefaultVectorSeed, "Perturbation seed")
	pf.Float64Var(&a.perturb, "perturb", planning.DefaultRelPerturb, "Relative perturbation of the resources, in [0, 1)")
	pf.Float64Var(&a.lambda, "lambda", ridge.DefaultLambda, "Ridge strength for the ill-conditioned reference")
	pf.StringVar(&a.method, "method", ridge.MethodSVD.String(), "Ridge method: svd, normal-equations")
	pf.StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(a.analyzeCmd())
	root.AddCommand(a.demoCmd())
	root.AddCommand(a.sweepCmd())

	return root
}

// setup loads the environment configuration, overlays changed flags and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("perturb") {
		cfg.Perturb = a.perturb
	}
	if flags.Changed("lambda") {
		cfg.Lambda = a.lambda
	}
	if flags.Changed("method") {
		cfg.Method = a.method
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Development = cfg.LogDev
	log, err := a.newLogger(logCfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.cfg = cfg
	a.log = log.Named("agroplan").With(
		zap.String("run_id", uuid.NewString()),
		zap.String("command", cmd.Name()),
	)

	return nil
}

// model applies the configured perturbation to m. A plan file keeps its own
// rel_perturb unless --perturb was given.
func (a *app) model(cmd *cobra.Command, m planning.Model, fromFile bool) planning.Model {
	if !fromFile || cmd.Flags().Changed("perturb") {
		m.RelPerturb = a.cfg.Perturb
	}

	return m
}

// loadModel reads path, or returns the built-in base model when path is empty.
func (a *app) loadModel(cmd *cobra.Command, path string) (planning.Model, error) {
	if path == "" {
		return a.model(cmd, planning.BaseModel(), false), nil
	}
	m, err := planning.LoadFile(path)
	if err != nil {
		return planning.Model{}, err
	}
	a.log.Debug("plan loaded",
		zap.String("path", path),
		zap.Int("resources", len(m.Resources)),
		zap.Int("crops", len(m.Crops)),
	)

	return a.model(cmd, m, true), nil
}
