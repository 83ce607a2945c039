package source

import (
	"context"
	"fmt"

	"github.com/katalvlaran/fcsc/matrix"
	"golang.org/x/text/unicode/norm"
)

// Source loads one aligned Dataset.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Dataset is an aligned set of subjects: SC[i] and FC[i] belong to
// SubjectIDs[i].
type Dataset struct {
	SubjectIDs []string
	SC         []*matrix.Dense
	FC         []*matrix.Dense

	// Dropped lists SC subjects Align discarded for lack of an FC matrix.
	Dropped []string
}

// Cohort is one connectivity type as stored: IDs[i] owns Matrices[i].
type Cohort struct {
	IDs      []string
	Matrices []*matrix.Dense
}

// Subjects returns S.
func (d *Dataset) Subjects() int { return len(d.SubjectIDs) }

// Nodes returns N, or 0 for an empty dataset.
func (d *Dataset) Nodes() int {
	if len(d.SC) == 0 || d.SC[0] == nil {
		return 0
	}
	return d.SC[0].Rows()
}

// Validate checks that the three slices agree in length and that every
// matrix is square with the same node count.
//
// Errors: ErrEmpty, ErrCountMismatch, ErrShape.
func (d *Dataset) Validate() error {
	s := len(d.SubjectIDs)
	if s == 0 {
		return ErrEmpty
	}
	if len(d.SC) != s || len(d.FC) != s {
		return fmt.Errorf("%d ids, %d SC, %d FC: %w", s, len(d.SC), len(d.FC), ErrCountMismatch)
	}
	n := -1
	check := func(kind string, i int, m *matrix.Dense) error {
		if m == nil {
			return fmt.Errorf("%s[%s]: nil: %w", kind, d.SubjectIDs[i], ErrShape)
		}
		if m.Rows() != m.Cols() {
			return fmt.Errorf("%s[%s]: %d×%d: %w", kind, d.SubjectIDs[i], m.Rows(), m.Cols(), ErrShape)
		}
		if n < 0 {
			n = m.Rows()
		}
		if m.Rows() != n {
			return fmt.Errorf("%s[%s]: %d nodes, want %d: %w", kind, d.SubjectIDs[i], m.Rows(), n, ErrShape)
		}
		return nil
	}
	for i := 0; i < s; i++ {
		if err := check("SC", i, d.SC[i]); err != nil {
			return err
		}
		if err := check("FC", i, d.FC[i]); err != nil {
			return err
		}
	}
	return nil
}

// Align pairs the SC and FC cohorts by subject ID.
//
// Implementation:
//   - Stage 1: validate counts and index FC IDs (duplicates rejected).
//   - Stage 2: walk SC in order; a subject with an FC matrix is kept,
//     otherwise its ID goes to missing.
//
// IDs are compared in Unicode NFC form and stored that way, so a composed
// and a decomposed spelling of the same ID pair up. FC subjects absent from
// SC are ignored. Matrix shapes are not checked here; call Dataset.Validate.
//
// Errors: ErrCountMismatch, ErrDuplicateID.
func Align(sc, fc Cohort) (*Dataset, []string, error) {
	if len(sc.IDs) != len(sc.Matrices) {
		return nil, nil, fmt.Errorf("Align: SC: %d ids, %d matrices: %w", len(sc.IDs), len(sc.Matrices), ErrCountMismatch)
	}
	if len(fc.IDs) != len(fc.Matrices) {
		return nil, nil, fmt.Errorf("Align: FC: %d ids, %d matrices: %w", len(fc.IDs), len(fc.Matrices), ErrCountMismatch)
	}

	fcIndex := make(map[string]int, len(fc.IDs))
	for i, id := range fc.IDs {
		id = norm.NFC.String(id)
		if _, dup := fcIndex[id]; dup {
			return nil, nil, fmt.Errorf("Align: FC %q: %w", id, ErrDuplicateID)
		}
		fcIndex[id] = i
	}

	seen := make(map[string]struct{}, len(sc.IDs))
	d := &Dataset{}
	var missing []string
	for i, id := range sc.IDs {
		id = norm.NFC.String(id)
		if _, dup := seen[id]; dup {
			return nil, nil, fmt.Errorf("Align: SC %q: %w", id, ErrDuplicateID)
		}
		seen[id] = struct{}{}

		j, ok := fcIndex[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		d.SubjectIDs = append(d.SubjectIDs, id)
		d.SC = append(d.SC, sc.Matrices[i])
		d.FC = append(d.FC, fc.Matrices[j])
	}

	d.Dropped = missing
	return d, missing, nil
}

// Static serves a fixed in-memory Dataset.
type Static struct {
	Data *Dataset
}

// Load validates and returns the wrapped Dataset.
func (s Static) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Data == nil {
		return nil, fmt.Errorf("Static: %w", ErrEmpty)
	}
	if err := s.Data.Validate(); err != nil {
		return nil, fmt.Errorf("Static: %w", err)
	}
	return s.Data, nil
}
