package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeBinaryField(t *testing.T) {
	tests := []struct {
		alias string
		value int64
		want  string
		ok    bool
	}{
		{"Format", 1, "4-byte IBM floating-point", true},
		{"Format", 5, "4-byte IEEE floating-point", true},
		{"Format", 13, "", false},
		{"SortingCode", -1, "Other (should be explained in Extended Textual File Header)", true},
		{"MeasurementSystem", 2, "Feet", true},
		{"BinaryGainRecovery", 1, "Yes", true},
		{"CorrelatedTraces", 1, "No", true},
		{"VerticalSum", 16, "Sixteen sum", true},
		{"SEGYRevision", 1, "SEG-Y Rev 1", true},
		{"TimeBasis", 4, "UTC (Coordinated Universal Time)", true},
		{"Samples", 1500, "", false},
		{"JobID", 1, "", false},
		{"NoSuchField", 1, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got, ok := DescribeBinaryField(tt.alias, tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEveryFieldHasByteRange(t *testing.T) {
	bin := BinaryFields()
	require.Len(t, bin, 42)
	for _, f := range bin {
		r := BinaryFieldByteRange(f.Name)
		assert.NotEqual(t, ByteRangeUnknown, r, f.Name)
		assert.GreaterOrEqual(t, f.Offset, 3201, f.Name)
		assert.LessOrEqual(t, f.Offset+f.Size-1, 3532, f.Name)
	}

	trace := TraceFields()
	require.Len(t, trace, 91)
	for _, f := range trace {
		r := DescribeTraceField(f.Name)
		assert.NotEqual(t, ByteRangeUnknown, r, f.Name)
		assert.GreaterOrEqual(t, f.Offset, 1, f.Name)
		assert.LessOrEqual(t, f.Offset+f.Size-1, 240, f.Name)
	}
}

func TestTraceFieldsDoNotOverlap(t *testing.T) {
	fields := TraceFields()
	for i := 1; i < len(fields); i++ {
		prev, cur := fields[i-1], fields[i]
		assert.Equal(t, prev.Offset+prev.Size, cur.Offset, "%s -> %s", prev.Name, cur.Name)
	}
	last := fields[len(fields)-1]
	assert.Equal(t, 240, last.Offset+last.Size-1)
}

func TestByteRanges(t *testing.T) {
	assert.Equal(t, "3225-3226", BinaryFieldByteRange("Format"))
	assert.Equal(t, "3501", BinaryFieldByteRange("SEGYRevision"))
	assert.Equal(t, "3513-3520", BinaryFieldByteRange("NumberOfTraces"))
	assert.Equal(t, ByteRangeUnknown, BinaryFieldByteRange("Bogus"))

	assert.Equal(t, "1-4", DescribeTraceField("TRACE_SEQUENCE_LINE"))
	assert.Equal(t, "71-72", DescribeTraceField("SourceGroupScalar"))
	assert.Equal(t, "73-76", DescribeTraceField("SourceX"))
	assert.Equal(t, "181-184", DescribeTraceField("CDP_X"))
	assert.Equal(t, "237-240", DescribeTraceField("UnassignedInt2"))
	assert.Equal(t, ByteRangeUnknown, DescribeTraceField("Bogus"))
}

func TestDescribeTraceValue(t *testing.T) {
	desc, ok := DescribeTraceValue("CoordinateUnits", 2)
	require.True(t, ok)
	assert.Equal(t, "Seconds of arc", desc)

	_, ok = DescribeTraceValue("CoordinateUnits", 9)
	assert.False(t, ok)

	_, ok = DescribeTraceValue("SourceX", 1)
	assert.False(t, ok)
}

func TestBinaryFieldDescriptor(t *testing.T) {
	f, ok := BinaryField("Format")
	require.True(t, ok)
	assert.Equal(t, "DataSampleFormat", f.Key)
	assert.Equal(t, "4-byte IBM floating-point", f.Values[1])
	assert.NotEmpty(t, f.Description)

	f, ok = BinaryField("ReelNumber")
	require.True(t, ok)
	assert.Empty(t, f.Values)
}
