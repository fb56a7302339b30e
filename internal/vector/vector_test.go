package vector

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointLayer() PointLayer {
	return PointLayer{
		Fields: []Field{Int("TRACE_NUM"), Float("SOURCE_X"), String("SOURCE_FILE", 8)},
		Features: []PointFeature{
			{X: 1.5, Y: 2.5, Values: []any{int64(1), 1.5, "line_a.sgy"}},
			{X: 3.5, Y: 4.5, Values: []any{2, 3.5, "b.sgy"}},
		},
		SpatialReference: "EPSG:4326",
	}
}

func lineLayer() LineLayer {
	return LineLayer{
		Fields: []Field{Int("LINE_ID"), Float("LENGTH_M")},
		Features: []LineFeature{
			{Vertices: [][2]float64{{0, 0}, {3, 4}}, Values: []any{1, 5.0}},
		},
	}
}

func TestLookup(t *testing.T) {
	w, err := Lookup("Shapefile")
	require.NoError(t, err)
	assert.Equal(t, FormatShapefile, w.Format())

	w, err = Lookup("shp")
	require.NoError(t, err)
	assert.Equal(t, FormatShapefile, w.Format())

	w, err = Lookup(" geojson ")
	require.NoError(t, err)
	assert.Equal(t, FormatGeoJSON, w.Format())

	_, err = Lookup("gpkg")
	require.ErrorIs(t, err, ErrWriterUnavailable)
	assert.Contains(t, err.Error(), "geojson, shapefile")
}

func TestLayerValidate(t *testing.T) {
	pl := pointLayer()
	pl.Features[0].Values = pl.Features[0].Values[:2]
	assert.ErrorIs(t, pl.Validate(), ErrSchemaMismatch)

	ll := lineLayer()
	ll.Features[0].Vertices = ll.Features[0].Vertices[:1]
	assert.ErrorIs(t, ll.Validate(), ErrSchemaMismatch)
}

func TestShapefileWritePoints(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out", "nav_points")

	path, err := (&ShapefileWriter{}).WritePoints(base, pointLayer())
	require.NoError(t, err)
	assert.Equal(t, base+".shp", path)

	for _, ext := range []string{".shx", ".dbf", ".prj"} {
		assert.FileExists(t, base+ext)
	}
	prj, err := os.ReadFile(base + ".prj")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(prj), `GEOGCS["GCS_WGS_1984"`))

	r, err := shp.Open(path)
	require.NoError(t, err)
	defer r.Close()

	fields := r.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "TRACE_NUM", fields[0].String())
	assert.Equal(t, "SOURCE_FIL", fields[2].String())

	var got []shp.Point
	var files []string
	for r.Next() {
		n, s := r.Shape()
		p, ok := s.(*shp.Point)
		require.True(t, ok)
		got = append(got, *p)
		files = append(files, strings.TrimSpace(r.ReadAttribute(n, 2)))
	}
	assert.Equal(t, []shp.Point{{X: 1.5, Y: 2.5}, {X: 3.5, Y: 4.5}}, got)
	assert.Equal(t, []string{"line_a.s", "b.sgy"}, files)
}

func TestShapefileWriteLineWithoutProjection(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nav_line")

	path, err := (&ShapefileWriter{}).WriteLine(base, lineLayer())
	require.NoError(t, err)
	assert.NoFileExists(t, base+".prj")

	r, err := shp.Open(path)
	require.NoError(t, err)
	defer r.Close()

	require.True(t, r.Next())
	n, s := r.Shape()
	pl, ok := s.(*shp.PolyLine)
	require.True(t, ok)
	assert.Equal(t, []shp.Point{{X: 0, Y: 0}, {X: 3, Y: 4}}, pl.Points)
	assert.Equal(t, "1", strings.TrimSpace(r.ReadAttribute(n, 0)))
	assert.False(t, r.Next())
}

func TestShapefileRejectsBadValue(t *testing.T) {
	layer := PointLayer{
		Fields:   []Field{Int("N")},
		Features: []PointFeature{{Values: []any{"x"}}},
	}
	_, err := (&ShapefileWriter{}).WritePoints(filepath.Join(t.TempDir(), "bad"), layer)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

type collection struct {
	Type     string `json:"type"`
	CRS      *struct {
		Properties struct {
			Name string `json:"name"`
		} `json:"properties"`
	} `json:"crs"`
	Features []struct {
		Geometry struct {
			Type        string          `json:"type"`
			Coordinates json.RawMessage `json:"coordinates"`
		} `json:"geometry"`
		Properties map[string]any `json:"properties"`
	} `json:"features"`
}

func readCollection(t *testing.T, path string) collection {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var c collection
	require.NoError(t, json.Unmarshal(data, &c))
	return c
}

func TestGeoJSONWritePoints(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nav_points")

	path, err := (&GeoJSONWriter{}).WritePoints(base, pointLayer())
	require.NoError(t, err)
	assert.Equal(t, base+".geojson", path)

	c := readCollection(t, path)
	assert.Equal(t, "FeatureCollection", c.Type)
	require.NotNil(t, c.CRS)
	assert.Equal(t, "EPSG:4326", c.CRS.Properties.Name)
	require.Len(t, c.Features, 2)
	assert.Equal(t, "Point", c.Features[0].Geometry.Type)
	assert.JSONEq(t, `[1.5,2.5]`, string(c.Features[0].Geometry.Coordinates))
	assert.Equal(t, "line_a.sgy", c.Features[0].Properties["SOURCE_FILE"])
	assert.EqualValues(t, 2, c.Features[1].Properties["TRACE_NUM"])

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(base), ".tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestGeoJSONWriteLine(t *testing.T) {
	path, err := (&GeoJSONWriter{}).WriteLine(filepath.Join(t.TempDir(), "nav_line"), lineLayer())
	require.NoError(t, err)

	c := readCollection(t, path)
	assert.Nil(t, c.CRS)
	require.Len(t, c.Features, 1)
	assert.Equal(t, "LineString", c.Features[0].Geometry.Type)
	assert.JSONEq(t, `[[0,0],[3,4]]`, string(c.Features[0].Geometry.Coordinates))
	assert.EqualValues(t, 5, c.Features[0].Properties["LENGTH_M"])
}
