package ranef

import "errors"

var (
	// ErrNilData is returned when Fit receives no dataset.
	ErrNilData = errors.New("ranef: nil dataset")

	// ErrTooSmall is returned when the dataset has fewer than MinSubjects
	// rows or fewer than MinEdges columns.
	ErrTooSmall = errors.New("ranef: dataset too small for a rank-1 interaction")

	// ErrSVDFailed is returned when the residual factorisation does not converge.
	ErrSVDFailed = errors.New("ranef: SVD of additive residual failed")
)
