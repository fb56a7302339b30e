package vector

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSONWriter writes RFC 7946 feature collections. A known spatial
// reference is kept as a legacy "crs" member.
type GeoJSONWriter struct{}

func (*GeoJSONWriter) Format() Format { return FormatGeoJSON }

func (w *GeoJSONWriter) WritePoints(base string, layer PointLayer) (string, error) {
	if err := layer.Validate(); err != nil {
		return "", err
	}

	fc := newCollection(layer.SpatialReference)
	for _, f := range layer.Features {
		feature := geojson.NewFeature(orb.Point{f.X, f.Y})
		setProperties(feature, layer.Fields, f.Values)
		fc.Append(feature)
	}
	return writeCollection(base, fc)
}

func (w *GeoJSONWriter) WriteLine(base string, layer LineLayer) (string, error) {
	if err := layer.Validate(); err != nil {
		return "", err
	}

	fc := newCollection(layer.SpatialReference)
	for _, f := range layer.Features {
		ls := make(orb.LineString, len(f.Vertices))
		for i, v := range f.Vertices {
			ls[i] = orb.Point{v[0], v[1]}
		}
		feature := geojson.NewFeature(ls)
		setProperties(feature, layer.Fields, f.Values)
		fc.Append(feature)
	}
	return writeCollection(base, fc)
}

func newCollection(srs string) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if srs != "" {
		fc.ExtraMembers = geojson.Properties{
			"crs": map[string]any{
				"type":       "name",
				"properties": map[string]any{"name": srs},
			},
		}
	}
	return fc
}

func setProperties(feature *geojson.Feature, fields []Field, values []any) {
	for i, field := range fields {
		feature.Properties[field.Name] = values[i]
	}
}

func writeCollection(base string, fc *geojson.FeatureCollection) (string, error) {
	path := base + ".geojson"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}

	err = writeFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return "", err
	}
	return path, nil
}
