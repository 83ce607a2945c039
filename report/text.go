package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/fcsc/variance"
)

// Text writes the console layout: run header, SC and FC variance tables,
// then the FC–SC correlation table.
type Text struct {
	W io.Writer
}

// Report implements Reporter.
func (t Text) Report(ctx context.Context, r *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var b bytes.Buffer
	writeHeader(&b, r)
	writeVariance(&b, "Structural Connectivity (SC)", r.Variance.SC.Percentages)
	writeVariance(&b, "Functional Connectivity (FC)", r.Variance.FC.Percentages)
	writeCorrelations(&b, r)

	if _, err := t.W.Write(b.Bytes()); err != nil {
		return fmt.Errorf("text report: %w", err)
	}
	return nil
}

func writeHeader(b *bytes.Buffer, r *Result) {
	b.WriteString("FC-SC Random Effects Model Analysis\n")
	b.WriteString(strings.Repeat("=", 70) + "\n")
	fmt.Fprintf(b, "Run %s\n", r.RunID)
	fmt.Fprintf(b, "Processed %d subjects, %d nodes, %d edges\n", r.Subjects, r.Nodes, r.Edges)
	if len(r.Dropped) > 0 {
		fmt.Fprintf(b, "Dropped %d subjects without FC: %s\n", len(r.Dropped), strings.Join(r.Dropped, ", "))
	}
}

var varianceRows = []struct {
	label string
	value func(variance.Percentages) float64
}{
	{"Main Edge Effects (α_ij)", func(p variance.Percentages) float64 { return p.Alpha }},
	{"Main Subject Effects (β^s)", func(p variance.Percentages) float64 { return p.Beta }},
	{"Interaction Effects (η_ij·ϖ^s)", func(p variance.Percentages) float64 { return p.Interaction }},
	{"Residual Effects (ε_ij^s)", func(p variance.Percentages) float64 { return p.Epsilon }},
}

func writeVariance(b *bytes.Buffer, title string, p variance.Percentages) {
	fmt.Fprintf(b, "\nVariance Decomposition - %s\n", title)
	b.WriteString(strings.Repeat("=", 55) + "\n")
	b.WriteString("Component                    % of Total Variance\n")
	b.WriteString(strings.Repeat("-", 55) + "\n")
	for _, row := range varianceRows {
		fmt.Fprintf(b, "%-28s %15.2f%%\n", row.label, row.value(p))
	}
	b.WriteString(strings.Repeat("-", 55) + "\n")
	fmt.Fprintf(b, "%-28s %15.2f%%\n", "Total", p.Total)
}

func writeCorrelations(b *bytes.Buffer, r *Result) {
	c := r.Correlations
	b.WriteString("\n")
	if c.Flipped {
		fmt.Fprintf(b, "After adjustment: ρ_ϖ = %.4f\n", c.RhoVarpi)
	}
	b.WriteString("\nFC-SC Effect Correlations\n")
	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("Effect Type                           Correlation\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	rows := []struct {
		label string
		value float64
	}{
		{"Correlation between main edge effects", c.RhoAlpha},
		{"Correlation between main subject effects", c.RhoBeta},
		{"Correlation between interaction edge effects", c.RhoEta},
		{"Correlation between interaction subject effects", c.RhoVarpi},
	}
	for _, row := range rows {
		fmt.Fprintf(b, "%-37s %10s\n", row.label, formatRho(row.value))
	}
	b.WriteString(strings.Repeat("-", 60) + "\n")
}

func formatRho(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%8.4f", v)
}
