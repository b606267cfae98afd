// SPDX-License-Identifier: MIT

package planning

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/agroplan/matrix"
)

// WriteText renders a human-readable summary of a to w.
func (a *Assessment) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	p := &printer{w: tw}

	if a.Model != "" {
		p.linef("model\t%s", a.Model)
	}
	p.linef("binding resources\t%s", strings.Join(a.Resources[:a.EqualityRows], ", "))
	p.linef("condition number\t%s (%s, rank %d)", a.Kappa, a.Class, a.Rank)
	p.linef("")
	p.linef("crop\tnominal\tpessimistic\toptimistic")
	for j, crop := range a.Crops {
		p.linef("%s\t%.4f\t%.4f\t%.4f", crop, at(a.XBase, j), at(a.Pessimistic.X, j), at(a.Optimistic.X, j))
	}
	p.linef("profit\t%.2f\t%.2f\t%.2f", a.Profit, a.Pessimistic.Profit, a.Optimistic.Profit)
	p.linef("")

	if s := a.Sensitivity; s != nil {
		p.linef("perturbation\tr=%g seed=%d", s.RelPerturb, s.Seed)
		p.linef("rel_db\t%.6e", s.RelDb)
		p.linef("rel_dx\t%.6e", s.RelDx)
		p.linef("bound κ·rel_db\t%s (exceeded: %t)", formatBound(s.Kappa.Singular, s.Bound), s.BoundExceeded)
	}
	if d := a.Diagnostics; d != nil {
		p.linef("well vs ill\tκ %s / %s, rel_dx %.3e / %.3e, amplification %.3e",
			d.Well.Kappa, d.Ill.Kappa, d.Well.RelDx, d.Ill.RelDx, d.Amplification)
	}
	if r := a.Regularization; r != nil {
		p.linef("ridge λ=%g (%s)\t‖x‖ %.4f → %.4f (ratio %.4f)",
			r.Lambda, r.Method, r.NormalNorm, r.RegularizedNorm, r.ShrinkRatio)
	}
	p.linef("")

	p.linef("sensitivity\t%s", strings.Join(a.Heatmap.Crops, "\t"))
	for i, row := range a.Heatmap.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprintf("%.4f", v)
		}
		p.linef("%s\t%s", a.Heatmap.Resources[i], strings.Join(cells, "\t"))
	}
	if p.err != nil {
		return p.err
	}

	return tw.Flush()
}

// printer keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// formatBound prints the saturated bound of a singular system as inf.
func formatBound(singular bool, bound float64) string {
	if singular || bound == math.MaxFloat64 {
		return "inf"
	}

	return fmt.Sprintf("%.6e", bound)
}

// at returns v[i], or 0 when out of range.
func at(v matrix.Vector, i int) float64 {
	x, _ := v.At(i)

	return x
}
