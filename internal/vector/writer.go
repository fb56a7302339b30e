package vector

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrWriterUnavailable is returned when no writer is available for the
// requested format. It is a capability problem, not a data problem.
var ErrWriterUnavailable = errors.New("vector writer unavailable")

// Format names a vector file format.
type Format string

const (
	FormatShapefile Format = "shapefile"
	FormatGeoJSON   Format = "geojson"
)

// Writer writes layers to files. base is the output path without extension;
// the path actually written is returned.
type Writer interface {
	Format() Format
	WritePoints(base string, layer PointLayer) (string, error)
	WriteLine(base string, layer LineLayer) (string, error)
}

// writers is the registry of built-in writer factories.
var writers = map[Format]func() Writer{
	FormatShapefile: func() Writer { return &ShapefileWriter{} },
	FormatGeoJSON:   func() Writer { return &GeoJSONWriter{} },
}

// Lookup returns the writer for format. Unknown formats yield ErrWriterUnavailable.
func Lookup(format string) (Writer, error) {
	f := Format(strings.ToLower(strings.TrimSpace(format)))
	if f == "shp" {
		f = FormatShapefile
	}

	factory, ok := writers[f]
	if !ok {
		return nil, fmt.Errorf("%w: no writer for format '%s' (available: %s)",
			ErrWriterUnavailable, format, strings.Join(Formats(), ", "))
	}
	return factory(), nil
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for f := range writers {
		names = append(names, string(f))
	}
	slices.Sort(names)
	return names
}
