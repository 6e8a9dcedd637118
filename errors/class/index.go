package class

import (
	"errors"
)

var indexes = &indexContainer{entries: map[Minor][]minorEntry{}}

// Index is the most precise subclassification, unique within its minor.
type Index struct {
	minor Minor
	value uint16
}

// Class composes the full class value from the index.
func (i Index) Class() Class {
	c, err := NewClass(i)
	if err != nil {
		panic(err)
	}
	return c
}

// Description gets the index description.
func (i Index) Description() string {
	if !i.valid() {
		return ""
	}
	return indexes.entries[i.minor][i.value-1].description
}

// Minor gets the index's minor subclassification.
func (i Index) Minor() Minor {
	return i.minor
}

// Name gets the index name.
func (i Index) Name() string {
	if !i.valid() {
		return ""
	}
	return indexes.entries[i.minor][i.value-1].name
}

func (i Index) valid() bool {
	return i.value != 0 && int(i.value) <= len(indexes.entries[i.minor])
}

type indexContainer struct {
	entries map[Minor][]minorEntry
}

func (c *indexContainer) new(minor Minor, name string, description ...string) (Index, error) {
	if len(c.entries[minor]) >= maxIndexValue {
		return Index{}, errors.New("index limit reached for given minor")
	}
	var desc string
	if len(description) > 0 {
		desc = description[0]
	}
	c.entries[minor] = append(c.entries[minor], minorEntry{name: name, description: desc})
	return Index{minor: minor, value: uint16(len(c.entries[minor]))}, nil
}
