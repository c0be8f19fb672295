package dataprep

import "errors"

// Source errors are fatal for the session: no charts and no processed file are
// produced once one of them is returned.
var (
	ErrSourceNotFound  = errors.New("source not found")
	ErrSourceEmpty     = errors.New("source is empty")
	ErrSourceMalformed = errors.New("source is malformed")
)

// ErrUnrecognizedCategory is returned by Recode in strict mode when a
// categorical cell holds a value outside the column's encoding.
var ErrUnrecognizedCategory = errors.New("unrecognized category value")
