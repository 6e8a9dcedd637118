package class

import (
	"errors"
)

var minors = &minorsContainer{entries: map[Major][]minorEntry{}}

// Minor is the middle subclassification unique within its major. It
// divides a subsystem's errors by concern.
type Minor struct {
	major Major
	value uint16
}

// Class composes the class value from the minor with a zero index.
func (m Minor) Class() Class {
	return MustNewMinorClass(m)
}

// Description gets the minor description.
func (m Minor) Description() string {
	if !m.valid() {
		return ""
	}
	return minors.entries[m.major][m.value-1].description
}

// Major gets the minor's major subclassification.
func (m Minor) Major() Major {
	return m.major
}

// Name gets the minor name.
func (m Minor) Name() string {
	if !m.valid() {
		return ""
	}
	return minors.entries[m.major][m.value-1].name
}

// RegisterIndex registers a new index subclassification for given minor.
func (m Minor) RegisterIndex(name string, description ...string) (Index, error) {
	if !m.valid() {
		return Index{}, errors.New("minor out of bounds")
	}
	return indexes.new(m, name, description...)
}

// MustRegisterIndex registers a new index for given minor and panics on
// invalid input.
func (m Minor) MustRegisterIndex(name string, description ...string) Index {
	index, err := m.RegisterIndex(name, description...)
	if err != nil {
		panic(err)
	}
	return index
}

func (m Minor) valid() bool {
	return m.value != 0 && int(m.value) <= len(minors.entries[m.major])
}

type minorEntry struct {
	name        string
	description string
}

type minorsContainer struct {
	entries map[Major][]minorEntry
}

func (c *minorsContainer) new(major Major, name string, description ...string) (Minor, error) {
	if len(c.entries[major]) >= maxMinorValue {
		return Minor{}, errors.New("minor limit reached for given major")
	}
	var desc string
	if len(description) > 0 {
		desc = description[0]
	}
	c.entries[major] = append(c.entries[major], minorEntry{name: name, description: desc})
	return Minor{major: major, value: uint16(len(c.entries[major]))}, nil
}
