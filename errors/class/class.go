package class

import (
	"errors"
	"strings"
)

const (
	majorBitSize = 7
	minorBitSize = 10
	indexBitSize = 32 - majorBitSize - minorBitSize

	maxIndexValue = (2 << (indexBitSize - 1)) - 1
	maxMinorValue = (2 << (minorBitSize - 1)) - 1
	maxMajorValue = (2 << (majorBitSize - 1)) - 1
)

func init() {
	registerClasses()
}

func registerClasses() {
	registerInternalClasses()
	registerConfigClasses()
	registerTemplateClasses()
	registerVariableClasses()
	registerGraphClasses()
}

// Class is the error classification model composed of the major, minor
// and index subclassifications. Major divides errors by subsystem
// (Template, Variable, Graph), minor by concern within a subsystem and
// index is the most precise classification.
type Class uint32

// Index gets the class index subclassification.
func (c Class) Index() Index {
	return Index{value: uint16(int(c) & maxIndexValue), minor: c.Minor()}
}

// IsMajor checks if the class is composed of provided major 'm'.
func (c Class) IsMajor(m Major) bool {
	return c.Major() == m
}

// Major gets the class major subclassification.
func (c Class) Major() Major {
	return Major(int(c) >> (32 - majorBitSize))
}

// Minor gets the class minor subclassification.
func (c Class) Minor() Minor {
	return Minor{value: uint16(int(c) >> indexBitSize & maxMinorValue), major: c.Major()}
}

// String implements fmt.Stringer interface.
func (c Class) String() string {
	names := strings.Fields(c.Major().Name())

	minor := c.Minor()
	if minor.value == 0 {
		return strings.Join(names, "")
	}
	names = append(names, strings.Fields(minor.Name())...)

	index := c.Index()
	if index.value != 0 {
		names = append(names, strings.Fields(index.Name())...)
	}
	return strings.Join(names, "")
}

// NewClass composes the class value for the provided 'index'.
// Returns an error if any subclassification is out of bounds.
func NewClass(index Index) (Class, error) {
	if !index.minor.major.InBounds() {
		return Class(0), errors.New("provided invalid major")
	}
	if !index.minor.valid() {
		return Class(0), errors.New("provided invalid minor")
	}
	if !index.valid() {
		return Class(0), errors.New("provided invalid index")
	}
	return compose(index.minor.major, index.minor.value, index.value), nil
}

// NewMinorClass composes the class value for the provided 'minor' with a
// zero index.
func NewMinorClass(minor Minor) (Class, error) {
	if !minor.major.InBounds() {
		return Class(0), errors.New("provided invalid major")
	}
	if !minor.valid() {
		return Class(0), errors.New("provided invalid minor")
	}
	return compose(minor.major, minor.value, 0), nil
}

// MustNewMinorClass composes the class for provided 'minor' and panics on
// invalid input.
func MustNewMinorClass(minor Minor) Class {
	c, err := NewMinorClass(minor)
	if err != nil {
		panic(err)
	}
	return c
}

func compose(major Major, minor, index uint16) Class {
	return Class(uint32(major)<<(32-majorBitSize) | uint32(minor)<<indexBitSize | uint32(index))
}
