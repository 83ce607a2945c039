package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/fcsc/variance"
)

// JSON writes one indented JSON object per Result. NaN and ±Inf, which
// JSON cannot carry, become null.
type JSON struct {
	W io.Writer
}

type jsonResult struct {
	RunID        string           `json:"run_id"`
	Subjects     int              `json:"subjects"`
	Nodes        int              `json:"nodes"`
	Edges        int              `json:"edges"`
	Dropped      []string         `json:"dropped,omitempty"`
	Settings     Settings         `json:"settings"`
	Correlations jsonCorrelations `json:"correlations"`
	Variance     jsonAnalysis     `json:"variance"`
}

type jsonCorrelations struct {
	RhoAlpha            *float64 `json:"rho_alpha"`
	RhoBeta             *float64 `json:"rho_beta"`
	RhoEta              *float64 `json:"rho_eta"`
	RhoVarpi            *float64 `json:"rho_varpi"`
	RhoVarpiBeforeAlign *float64 `json:"rho_varpi_before_align"`
	Flipped             bool     `json:"flipped"`
}

type jsonAnalysis struct {
	SC jsonDecomposition `json:"sc"`
	FC jsonDecomposition `json:"fc"`
}

type jsonDecomposition struct {
	Components  jsonParts `json:"components"`
	Percentages jsonParts `json:"percentages"`
}

type jsonParts struct {
	Total       *float64 `json:"total"`
	Alpha       *float64 `json:"alpha"`
	Beta        *float64 `json:"beta"`
	Interaction *float64 `json:"interaction"`
	Epsilon     *float64 `json:"epsilon"`
}

// num maps non-finite values to nil.
func num(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func toJSONDecomposition(d variance.Decomposition) jsonDecomposition {
	c, p := d.Components, d.Percentages
	return jsonDecomposition{
		Components:  jsonParts{num(c.Total), num(c.Alpha), num(c.Beta), num(c.Interaction), num(c.Epsilon)},
		Percentages: jsonParts{num(p.Total), num(p.Alpha), num(p.Beta), num(p.Interaction), num(p.Epsilon)},
	}
}

// Report implements Reporter.
func (j JSON) Report(ctx context.Context, r *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c := r.Correlations
	out := jsonResult{
		RunID:    r.RunID,
		Subjects: r.Subjects,
		Nodes:    r.Nodes,
		Edges:    r.Edges,
		Dropped:  r.Dropped,
		Settings: r.Settings,
		Correlations: jsonCorrelations{
			RhoAlpha:            num(c.RhoAlpha),
			RhoBeta:             num(c.RhoBeta),
			RhoEta:              num(c.RhoEta),
			RhoVarpi:            num(c.RhoVarpi),
			RhoVarpiBeforeAlign: num(c.RhoVarpiBeforeAlign),
			Flipped:             c.Flipped,
		},
		Variance: jsonAnalysis{
			SC: toJSONDecomposition(r.Variance.SC),
			FC: toJSONDecomposition(r.Variance.FC),
		},
	}

	enc := json.NewEncoder(j.W)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("json report: %w", err)
	}
	return nil
}
