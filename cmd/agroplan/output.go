// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/agroplan/internal/config"
	"github.com/katalvlaran/agroplan/sensitivity"
	"gopkg.in/yaml.v3"
)

// textWriter is implemented by results with a human-readable rendering.
type textWriter interface {
	WriteText(w io.Writer) error
}

// writeResult renders result in the requested format.
func writeResult(w io.Writer, format string, result any) error {
	switch strings.ToLower(format) {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(result)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}

		return enc.Close()
	default:
		if tw, ok := result.(textWriter); ok {
			return tw.WriteText(w)
		}

		return fmt.Errorf("no text rendering for %T", result)
	}
}

// sweepResult adds a text rendering to a sweep summary.
type sweepResult struct {
	*sensitivity.SweepSummary
}

func (s sweepResult) MarshalJSON() ([]byte, error) { return json.Marshal(s.SweepSummary) }

func (s sweepResult) MarshalYAML() (any, error) { return s.SweepSummary, nil }

func (s sweepResult) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	bound := fmt.Sprintf("%.6e", s.Bound)
	if s.Kappa.Singular {
		bound = "inf"
	}
	rows := [][2]string{
		{"runs", fmt.Sprint(s.Runs)},
		{"condition number", s.Kappa.String()},
		{"rel_db", fmt.Sprintf("%.6e", s.RelDb)},
		{"rel_dx mean ± std", fmt.Sprintf("%.6e ± %.3e", s.MeanRelDx, s.StdRelDx)},
		{"rel_dx range", fmt.Sprintf("[%.6e, %.6e]", s.MinRelDx, s.MaxRelDx)},
		{"bound κ·rel_db", bound},
		{"violations", fmt.Sprint(s.Violations)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1]); err != nil {
			return err
		}
	}

	return tw.Flush()
}
