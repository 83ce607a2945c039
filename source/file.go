package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/fcsc/matrix"
	"gopkg.in/yaml.v3"
)

// document is the on-disk layout.
type document struct {
	SC cohortDoc `yaml:"sc"`
	FC cohortDoc `yaml:"fc"`
}

type cohortDoc struct {
	IDs      []string      `yaml:"ids"`
	Matrices [][][]float64 `yaml:"matrices"`
}

// File loads a Dataset from a YAML or JSON document on disk.
type File struct {
	Path string

	// Logger receives alignment diagnostics; nil discards them.
	Logger *slog.Logger
}

// Load reads, decodes and aligns the file, then validates the result.
// SC subjects without FC are logged at Warn and dropped.
func (f File) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	sc, fc, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}

	log := f.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log.Debug("cohorts loaded", "path", f.Path, "sc", len(sc.IDs), "fc", len(fc.IDs))

	d, missing, err := Align(sc, fc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	if len(missing) > 0 {
		log.Warn("subjects without FC dropped", "count", len(missing), "ids", missing)
	}
	if err = d.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	log.Info("subjects aligned", "subjects", d.Subjects(), "nodes", d.Nodes())

	return d, nil
}

// Decode parses a dataset document into its SC and FC cohorts.
// Unknown keys are rejected.
func Decode(r io.Reader) (sc, fc Cohort, err error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err = dec.Decode(&doc); err != nil {
		return Cohort{}, Cohort{}, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if sc, err = doc.SC.cohort(); err != nil {
		return Cohort{}, Cohort{}, fmt.Errorf("sc: %w", err)
	}
	if fc, err = doc.FC.cohort(); err != nil {
		return Cohort{}, Cohort{}, fmt.Errorf("fc: %w", err)
	}
	return sc, fc, nil
}

func (c cohortDoc) cohort() (Cohort, error) {
	if len(c.IDs) != len(c.Matrices) {
		return Cohort{}, fmt.Errorf("%d ids, %d matrices: %w", len(c.IDs), len(c.Matrices), ErrCountMismatch)
	}
	out := Cohort{IDs: c.IDs, Matrices: make([]*matrix.Dense, len(c.Matrices))}
	for i, rows := range c.Matrices {
		m, err := matrix.NewDenseFromRows(rows)
		if err != nil {
			return Cohort{}, fmt.Errorf("%s: %w: %w", c.IDs[i], ErrShape, err)
		}
		out.Matrices[i] = m
	}
	return out, nil
}

// Encode writes d in the File layout with identical SC and FC id lists.
func Encode(w io.Writer, d *Dataset) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	doc := document{
		SC: cohortDoc{IDs: d.SubjectIDs, Matrices: toRows(d.SC)},
		FC: cohortDoc{IDs: d.SubjectIDs, Matrices: toRows(d.FC)},
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return enc.Close()
}

// WriteFile encodes d to path, replacing any existing file.
func WriteFile(path string, d *Dataset) error {
	var buf bytes.Buffer
	if err := Encode(&buf, d); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write dataset file: %w", err)
	}
	return nil
}

func toRows(mats []*matrix.Dense) [][][]float64 {
	out := make([][][]float64, len(mats))
	for k, m := range mats {
		rows := make([][]float64, m.Rows())
		for i := range rows {
			rows[i], _ = m.Row(i) // in range
		}
		out[k] = rows
	}
	return out
}
