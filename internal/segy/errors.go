package segy

import (
	"errors"
	"fmt"
)

var (
	// ErrInconsistentTraceCount means the trace data region is not a whole
	// number of traces.
	ErrInconsistentTraceCount = errors.New("trace count inconsistent with file size")

	// ErrNonUniformTraceLength means a trace declares a sample count that
	// differs from the file's.
	ErrNonUniformTraceLength = errors.New("non-uniform trace length")

	// ErrStrict is returned in strict mode for files that deviate from the standard.
	ErrStrict = errors.New("file does not conform to strict SEG-Y")

	ErrUnsupportedFormat = errors.New("unsupported data sample format")
	ErrNoTraces          = errors.New("file contains no traces")
	ErrShortFile         = errors.New("file is shorter than the SEG-Y file headers")
)

// FailureKind classifies a decode failure for presentation.
type FailureKind int

const (
	FailureOther FailureKind = iota
	FailureStructural
	FailureStrict
)

// DecodeError wraps a low-level reader error with a human-readable explanation.
type DecodeError struct {
	Filename string
	Kind     FailureKind
	Err      error
}

// Explain classifies err and returns it as a *DecodeError. A nil err yields nil.
func Explain(filename string, err error) error {
	if err == nil {
		return nil
	}

	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}

	kind := FailureOther
	switch {
	case errors.Is(err, ErrInconsistentTraceCount) || errors.Is(err, ErrNonUniformTraceLength):
		kind = FailureStructural
	case errors.Is(err, ErrStrict):
		kind = FailureStrict
	}

	return &DecodeError{Filename: filename, Kind: kind, Err: err}
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case FailureStructural:
		return fmt.Sprintf(`SEGY File Format Issue

The file '%s' cannot be opened because it has structural problems:

• Trace count inconsistent with file size
• Trace lengths are non-uniform (not standard SEGY format)

This typically indicates:
1. The file is corrupted or incomplete
2. The file was not properly written
3. The file uses a non-standard SEGY variant

Possible solutions:
• Try opening the file with specialized SEGY repair tools
• Contact the data provider for a corrected version
• Use alternative SEGY viewers that handle non-standard formats

Original error: %s`, e.Filename, e.Err.Error())

	case FailureStrict:
		return fmt.Sprintf("SEGY file format issue:\n\n%s\n\nThe file may not conform to strict SEGY standards but could still be readable.", e.Err.Error())

	default:
		return fmt.Sprintf("reading '%s': %s", e.Filename, e.Err.Error())
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
