// Package header holds the static SEG-Y binary and trace header field tables
// and the lookups used to annotate decoded header values.
//
// All tables are built once at package initialisation and never mutated, so
// every function here is safe for concurrent use.
package header

// binaryAliases maps a reader alias to its canonical descriptor key.
var binaryAliases = func() map[string]string {
	m := make(map[string]string, len(binaryFields))
	for _, f := range binaryFields {
		m[f.Name] = f.Key
	}
	return m
}()

func init() {
	for i := range binaryTable.ordered {
		binaryTable.ordered[i].Values = binaryDecoders[binaryTable.ordered[i].Key]
	}
}

// DescribeBinaryField returns the description of an enumerated binary header
// value. The alias is first resolved to its canonical key, then value is
// looked up in that key's codes. It reports false when the field is free-form
// or the code is not enumerated; callers should print the raw value as is.
func DescribeBinaryField(alias string, value int64) (string, bool) {
	key, ok := binaryAliases[alias]
	if !ok {
		return "", false
	}
	codes, ok := binaryDecoders[key]
	if !ok {
		return "", false
	}
	desc, ok := codes[value]
	return desc, ok
}

// BinaryFieldByteRange returns the byte range of a binary header field, or
// ByteRangeUnknown.
func BinaryFieldByteRange(alias string) string {
	if f, ok := binaryTable.lookup(alias); ok {
		return f.ByteRange()
	}
	return ByteRangeUnknown
}

// DescribeTraceField returns the byte range of a trace header field, or
// ByteRangeUnknown.
func DescribeTraceField(name string) string {
	if f, ok := traceTable.lookup(name); ok {
		return f.ByteRange()
	}
	return ByteRangeUnknown
}

// DescribeTraceValue returns the description of an enumerated trace header value.
func DescribeTraceValue(name string, value int64) (string, bool) {
	f, ok := traceTable.lookup(name)
	if !ok {
		return "", false
	}
	return f.Describe(value)
}

// BinaryField returns the descriptor of a binary header field.
func BinaryField(alias string) (FieldDescriptor, bool) {
	return binaryTable.lookup(alias)
}

// TraceField returns the descriptor of a trace header field.
func TraceField(name string) (FieldDescriptor, bool) {
	return traceTable.lookup(name)
}

// BinaryFields returns all binary header descriptors in byte order.
// The Values maps are shared and must not be modified.
func BinaryFields() []FieldDescriptor {
	return binaryTable.all()
}

// TraceFields returns all trace header descriptors in byte order.
func TraceFields() []FieldDescriptor {
	return traceTable.all()
}
