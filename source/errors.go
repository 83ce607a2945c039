package source

import "errors"

var (
	// ErrCountMismatch indicates subject IDs and matrices disagree in count.
	ErrCountMismatch = errors.New("source: subject and matrix counts differ")

	// ErrShape indicates a matrix that is nil, non-square or of a different
	// node count than the rest of the dataset.
	ErrShape = errors.New("source: matrix shape mismatch")

	// ErrEmpty indicates a dataset without subjects.
	ErrEmpty = errors.New("source: no subjects")

	// ErrDuplicateID indicates the same subject ID twice in one cohort.
	ErrDuplicateID = errors.New("source: duplicate subject id")

	// ErrBadParams indicates invalid synthetic generator parameters.
	ErrBadParams = errors.New("source: invalid synthetic parameters")
)
