// Package vector writes navigation points and lines to GIS vector formats.
package vector

import (
	"errors"
	"fmt"
)

// FieldType is the storage type of an attribute.
type FieldType int

const (
	FieldInt FieldType = iota
	FieldFloat
	FieldString
)

// Field is one attribute column.
type Field struct {
	Name      string
	Type      FieldType
	Size      int // Column width for fixed-width formats
	Precision int // Decimal places of FieldFloat
}

// Int, Float and String build attribute columns with sensible widths.
func Int(name string) Field { return Field{Name: name, Type: FieldInt, Size: 12} }

func Float(name string) Field { return Field{Name: name, Type: FieldFloat, Size: 19, Precision: 6} }

func String(name string, size int) Field { return Field{Name: name, Type: FieldString, Size: size} }

// PointFeature is a point and its attribute values in field order.
type PointFeature struct {
	X, Y   float64
	Values []any
}

// LineFeature is a polyline and its attribute values in field order.
type LineFeature struct {
	Vertices [][2]float64
	Values   []any
}

// PointLayer is a homogeneous set of point features.
type PointLayer struct {
	Fields           []Field
	Features         []PointFeature
	SpatialReference string // e.g. "EPSG:4326"; empty when unknown
}

// LineLayer is a homogeneous set of line features.
type LineLayer struct {
	Fields           []Field
	Features         []LineFeature
	SpatialReference string
}

// ErrSchemaMismatch is returned when a feature's values do not match the fields.
var ErrSchemaMismatch = errors.New("feature values do not match layer fields")

func checkValues(fields []Field, values []any, index int) error {
	if len(values) != len(fields) {
		return fmt.Errorf("%w: feature %d has %d values, layer has %d fields",
			ErrSchemaMismatch, index, len(values), len(fields))
	}
	return nil
}

// Validate checks that every feature matches the field schema.
func (l PointLayer) Validate() error {
	for i, f := range l.Features {
		if err := checkValues(l.Fields, f.Values, i); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that every feature matches the field schema and has at
// least two vertices.
func (l LineLayer) Validate() error {
	for i, f := range l.Features {
		if err := checkValues(l.Fields, f.Values, i); err != nil {
			return err
		}
		if len(f.Vertices) < 2 {
			return fmt.Errorf("%w: line %d has %d vertices", ErrSchemaMismatch, i, len(f.Vertices))
		}
	}
	return nil
}
