package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Genre is either a single genre name or an ordered list of names.
// The zero value is an empty single genre.
type Genre struct {
	values   []string
	multiple bool
}

// Single returns a genre holding one name
func Single(name string) Genre {
	return Genre{values: []string{name}}
}

// Multiple returns a genre holding an ordered list of names
func Multiple(names ...string) Genre {
	return Genre{values: slices.Clone(names), multiple: true}
}

// IsMultiple reports whether the genre was given as a list
func (g Genre) IsMultiple() bool {
	return g.multiple
}

// Values returns a copy of the genre names
func (g Genre) Values() []string {
	return slices.Clone(g.values)
}

// Contains reports whether name is part of the genre. A single genre
// matches on substring, a list matches on element equality. Both are
// case-sensitive.
func (g Genre) Contains(name string) bool {
	if g.multiple {
		return slices.Contains(g.values, name)
	}
	if len(g.values) == 0 {
		return false
	}
	return strings.Contains(g.values[0], name)
}

// String joins list genres with commas
func (g Genre) String() string {
	return strings.Join(g.values, ",")
}

func (g Genre) MarshalJSON() ([]byte, error) {
	if g.multiple {
		values := g.values
		if values == nil {
			values = []string{}
		}
		return json.Marshal(values)
	}
	return json.Marshal(g.String())
}

func (g *Genre) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*g = Genre{}
		return nil
	}

	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*g = Single(name)
	case '[':
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			return fmt.Errorf("genre list must contain only strings: %w", err)
		}
		*g = Multiple(names...)
	default:
		return fmt.Errorf("genre must be a string or an array of strings, got %s", data)
	}
	return nil
}
