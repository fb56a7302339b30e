package header

import (
	"fmt"
	"slices"
)

// ByteRangeUnknown is reported for field names that are not part of either table.
const ByteRangeUnknown = "N/A"

// FieldDescriptor describes one fixed-layout header field.
type FieldDescriptor struct {
	Name        string           // Alias used by the reader, e.g. "Format"
	Key         string           // Canonical descriptor key, e.g. "DataSampleFormat"
	Offset      int              // 1-based byte offset of the first byte
	Size        int              // Field width in bytes
	Unsigned    bool             // Field is stored as an unsigned integer
	Description string           // Long-form description
	Values      map[int64]string // Enumerated codes, empty for free-form numeric fields
}

// ByteRange returns the inclusive 1-based byte range, e.g. "3225-3226".
func (d FieldDescriptor) ByteRange() string {
	if d.Size <= 1 {
		return fmt.Sprintf("%d", d.Offset)
	}
	return fmt.Sprintf("%d-%d", d.Offset, d.Offset+d.Size-1)
}

// Describe returns the enumerated description for value.
func (d FieldDescriptor) Describe(value int64) (string, bool) {
	desc, ok := d.Values[value]
	return desc, ok
}

// table is an immutable, name-indexed view over an ordered descriptor list.
type table struct {
	ordered []FieldDescriptor
	byName  map[string]int
}

func newTable(fields []FieldDescriptor) table {
	ordered := slices.Clone(fields)
	slices.SortStableFunc(ordered, func(a, b FieldDescriptor) int {
		return a.Offset - b.Offset
	})

	t := table{
		ordered: ordered,
		byName:  make(map[string]int, len(ordered)),
	}
	for i, f := range ordered {
		if _, dup := t.byName[f.Name]; dup {
			panic("header: duplicate field " + f.Name)
		}
		t.byName[f.Name] = i
	}
	return t
}

func (t table) lookup(name string) (FieldDescriptor, bool) {
	i, ok := t.byName[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return t.ordered[i], true
}

func (t table) all() []FieldDescriptor {
	return slices.Clone(t.ordered)
}
