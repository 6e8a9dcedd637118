package errors

import (
	"github.com/dynalabs/rategraph/errors/class"
)

// ClassError is the interface used for all errors
// that uses the classification system.
type ClassError interface {
	error
	// Class gets current error classification.
	Class() class.Class
}
