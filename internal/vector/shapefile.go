package vector

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonas-p/go-shp"
)

// dbfNameLength is the longest attribute name a dBASE header can hold.
const dbfNameLength = 10

// projections maps spatial reference tags to ESRI WKT for the .prj sidecar.
var projections = map[string]string{
	"EPSG:4326": `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],` +
		`PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`,
	"EPSG:32633": `PROJCS["WGS_1984_UTM_Zone_33N",GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",` +
		`SPHEROID["WGS_1984",6378137.0,298.257223563]],PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]],` +
		`PROJECTION["Transverse_Mercator"],PARAMETER["False_Easting",500000.0],PARAMETER["False_Northing",0.0],` +
		`PARAMETER["Central_Meridian",15.0],PARAMETER["Scale_Factor",0.9996],PARAMETER["Latitude_Of_Origin",0.0],` +
		`UNIT["Meter",1.0]]`,
}

// ShapefileWriter writes ESRI shapefiles (.shp, .shx, .dbf and .prj).
type ShapefileWriter struct{}

func (*ShapefileWriter) Format() Format { return FormatShapefile }

func (w *ShapefileWriter) WritePoints(base string, layer PointLayer) (string, error) {
	if err := layer.Validate(); err != nil {
		return "", err
	}

	path := base + ".shp"
	sw, err := create(path, shp.POINT, layer.Fields)
	if err != nil {
		return "", err
	}

	for _, f := range layer.Features {
		row := int(sw.Write(&shp.Point{X: f.X, Y: f.Y}))
		if err := writeAttributes(sw, layer.Fields, row, f.Values); err != nil {
			sw.Close()
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
	}
	sw.Close()

	if err := writeProjection(base, layer.SpatialReference); err != nil {
		return "", err
	}
	return path, nil
}

func (w *ShapefileWriter) WriteLine(base string, layer LineLayer) (string, error) {
	if err := layer.Validate(); err != nil {
		return "", err
	}

	path := base + ".shp"
	sw, err := create(path, shp.POLYLINE, layer.Fields)
	if err != nil {
		return "", err
	}

	for _, f := range layer.Features {
		part := make([]shp.Point, len(f.Vertices))
		for i, v := range f.Vertices {
			part[i] = shp.Point{X: v[0], Y: v[1]}
		}

		row := int(sw.Write(shp.NewPolyLine([][]shp.Point{part})))
		if err := writeAttributes(sw, layer.Fields, row, f.Values); err != nil {
			sw.Close()
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
	}
	sw.Close()

	if err := writeProjection(base, layer.SpatialReference); err != nil {
		return "", err
	}
	return path, nil
}

func create(path string, shapeType shp.ShapeType, fields []Field) (*shp.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	sw, err := shp.Create(path, shapeType)
	if err != nil {
		return nil, fmt.Errorf("creating shapefile %s: %w", path, err)
	}

	dbf := make([]shp.Field, len(fields))
	for i, f := range fields {
		dbf[i] = dbfField(f)
	}
	if err := sw.SetFields(dbf); err != nil {
		sw.Close()
		return nil, fmt.Errorf("setting fields of %s: %w", path, err)
	}
	return sw, nil
}

func dbfField(f Field) shp.Field {
	name := f.Name
	if len(name) > dbfNameLength {
		name = name[:dbfNameLength]
	}
	size := uint8(min(max(f.Size, 1), 254))

	switch f.Type {
	case FieldInt:
		return shp.NumberField(name, size)
	case FieldFloat:
		return shp.FloatField(name, size, uint8(f.Precision))
	default:
		return shp.StringField(name, size)
	}
}

func writeAttributes(sw *shp.Writer, fields []Field, row int, values []any) error {
	for i, v := range values {
		value, err := dbfValue(fields[i], v)
		if err != nil {
			return err
		}
		if err := sw.WriteAttribute(row, i, value); err != nil {
			return fmt.Errorf("attribute %s of row %d: %w", fields[i].Name, row, err)
		}
	}
	return nil
}

// dbfValue coerces v to one of the types the dBASE writer accepts.
func dbfValue(f Field, v any) (any, error) {
	switch f.Type {
	case FieldInt:
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		case int32:
			return int(n), nil
		case float64:
			return int(n), nil
		}
	case FieldFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		}
	case FieldString:
		s := fmt.Sprint(v)
		if v == nil {
			s = ""
		}
		if len(s) > f.Size {
			s = s[:f.Size]
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: field %s cannot hold %T", ErrSchemaMismatch, f.Name, v)
}

func writeProjection(base, srs string) error {
	wkt, ok := projections[srs]
	if !ok {
		return nil
	}
	return writeFileAtomic(base+".prj", func(w io.Writer) error {
		_, err := io.WriteString(w, wkt)
		return err
	})
}
