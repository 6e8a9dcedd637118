package errors

import (
	"github.com/dynalabs/rategraph/errors/class"
)

// IsClass checks if given error is classified with given 'c' class.
func IsClass(err error, c class.Class) bool {
	classError, ok := err.(ClassError)
	if !ok {
		return false
	}
	return classError.Class() == c
}

// IsMajor checks if given error is classified with given 'major'.
func IsMajor(err error, major class.Major) bool {
	classError, ok := err.(ClassError)
	if !ok {
		return false
	}
	return classError.Class().IsMajor(major)
}
