package class

import (
	"errors"
)

var majors = &majorsContainer{names: []string{"None"}, descriptions: []string{""}}

// Major is the top-level subclassification. It divides the errors by the
// engine subsystem they belong to.
type Major uint8

// Description gets the major description.
func (m Major) Description() string {
	if !m.InBounds() {
		return ""
	}
	return majors.descriptions[m]
}

// InBounds checks if the major value is registered.
func (m Major) InBounds() bool {
	return m != 0 && int(m) < len(majors.names)
}

// Name gets the major name.
func (m Major) Name() string {
	if !m.InBounds() {
		return ""
	}
	return majors.names[m]
}

// RegisterMinor registers a new minor subclassification for given major.
func (m Major) RegisterMinor(name string, description ...string) (Minor, error) {
	if !m.InBounds() {
		return Minor{}, errors.New("major out of bounds")
	}
	return minors.new(m, name, description...)
}

// MustRegisterMinor registers a new minor for given major and panics on
// invalid input.
func (m Major) MustRegisterMinor(name string, description ...string) Minor {
	minor, err := m.RegisterMinor(name, description...)
	if err != nil {
		panic(err)
	}
	return minor
}

// RegisterMajor registers a new major error classification.
func RegisterMajor(name string, description ...string) (Major, error) {
	if len(majors.names) >= maxMajorValue {
		return Major(0), errors.New("major limit reached")
	}
	majors.names = append(majors.names, name)
	var desc string
	if len(description) > 0 {
		desc = description[0]
	}
	majors.descriptions = append(majors.descriptions, desc)
	return Major(len(majors.names) - 1), nil
}

// MustRegisterMajor registers a new major and panics on failure.
func MustRegisterMajor(name string, description ...string) Major {
	m, err := RegisterMajor(name, description...)
	if err != nil {
		panic(err)
	}
	return m
}

type majorsContainer struct {
	names        []string
	descriptions []string
}
