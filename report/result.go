package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/katalvlaran/fcsc/compare"
	"github.com/katalvlaran/fcsc/variance"
)

// Result is everything a Reporter displays.
type Result struct {
	RunID    string
	Subjects int
	Nodes    int
	Edges    int

	// Dropped lists subjects discarded by the source (for example SC
	// subjects without an FC matrix).
	Dropped []string

	Settings     Settings
	Correlations compare.Report
	Variance     variance.Analysis
}

// Settings echoes the switches the run used.
type Settings struct {
	Log         bool `json:"log"`
	FisherZ     bool `json:"fisher_z"`
	Constraints bool `json:"constraints"`
	SignAdjust  bool `json:"sign_adjust"`
}

// Reporter renders a Result.
type Reporter interface {
	Report(ctx context.Context, r *Result) error
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string { return uuid.NewString() }

// Multi fans a Result out to several reporters, stopping at the first error.
type Multi []Reporter

// Report calls every reporter in order.
func (m Multi) Report(ctx context.Context, r *Result) error {
	for _, rep := range m {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := rep.Report(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
