package compare

import "errors"

var (
	// ErrNilModel is returned when either model is nil.
	ErrNilModel = errors.New("compare: nil model")

	// ErrShapeMismatch is returned when the two models disagree on the
	// number of subjects or edges.
	ErrShapeMismatch = errors.New("compare: models differ in subjects or edges")
)
