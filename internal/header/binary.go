package header

// Canonical descriptor keys for enumerated binary header fields.
const (
	keyDataSampleFormat       = "DataSampleFormat"
	keyTraceSortingCode       = "TraceSortingCode"
	keyVerticalSumCode        = "VerticalSumCode"
	keySweepTypeCode          = "SweepTypeCode"
	keyTaperType              = "TaperType"
	keyCorrelatedDataTraces   = "CorrelatedDataTraces"
	keyBinaryGainRecovered    = "BinaryGainRecovered"
	keyAmplitudeRecovery      = "AmplitudeRecoveryMethod"
	keyMeasurementSystem      = "MeasurementSystem"
	keyImpulseSignalPolarity  = "ImpulseSignalPolarity"
	keyVibratoryPolarityCode  = "VibratoryPolarityCode"
	keyFormatRevision         = "SEGYFormatRevisionNumber"
	keyFixedLengthTraceFlag   = "FixedLengthTraceFlag"
	keyTimeBasisCode          = "TimeBasisCode"
	keyExtendedTextualHeaders = "NumberOfExtendedTextualFileHeaderRecords"
)

// binaryDecoders maps a canonical key to its enumerated codes.
var binaryDecoders = map[string]map[int64]string{
	keyDataSampleFormat: {
		1:  "4-byte IBM floating-point",
		2:  "4-byte, two's complement integer",
		3:  "2-byte, two's complement integer",
		4:  "4-byte fixed-point with gain (obsolete)",
		5:  "4-byte IEEE floating-point",
		6:  "8-byte IEEE floating-point",
		7:  "3-byte two's complement integer",
		8:  "1-byte, two's complement integer",
		9:  "8-byte, two's complement integer",
		10: "4-byte, unsigned integer",
		11: "2-byte, unsigned integer",
		12: "8-byte, unsigned integer",
		15: "3-byte, unsigned integer",
		16: "1-byte, unsigned integer",
	},
	keyTraceSortingCode: {
		-1: "Other (should be explained in Extended Textual File Header)",
		0:  "Unknown",
		1:  "As recorded (no sorting)",
		2:  "CDP ensemble",
		3:  "Single fold continuous profile",
		4:  "Horizontally stacked",
		5:  "Common source point",
		6:  "Common receiver point",
		7:  "Common offset point",
		8:  "Common mid-point",
		9:  "Common conversion point",
	},
	keyVerticalSumCode: {
		1:  "No sum",
		2:  "Two sum",
		3:  "Three sum",
		4:  "Four sum",
		5:  "Five sum",
		6:  "Six sum",
		7:  "Seven sum",
		8:  "Eight sum",
		9:  "Nine sum",
		10: "Ten sum",
		11: "Eleven sum",
		12: "Twelve sum",
		13: "Thirteen sum",
		14: "Fourteen sum",
		15: "Fifteen sum",
		16: "Sixteen sum",
	},
	keySweepTypeCode: {
		1: "Linear",
		2: "Parabolic",
		3: "Exponential",
		4: "Other",
	},
	keyTaperType: {
		1: "Linear",
		2: "Cosine squared",
		3: "Other",
	},
	keyCorrelatedDataTraces: {
		1: "No",
		2: "Yes",
	},
	keyBinaryGainRecovered: {
		1: "Yes",
		2: "No",
	},
	keyAmplitudeRecovery: {
		1: "None",
		2: "Spherical divergence",
		3: "AGC",
		4: "Other",
	},
	keyMeasurementSystem: {
		1: "Meters",
		2: "Feet",
	},
	keyImpulseSignalPolarity: {
		1: "Increase in pressure or upward geophone case movement gives negative number on trace",
		2: "Increase in pressure or upward geophone case movement gives positive number on trace",
	},
	keyVibratoryPolarityCode: {
		1: "Seismic signal lags pilot signal by 337.5° to 22.5°",
		2: "Seismic signal lags pilot signal by 22.5° to 67.5°",
		3: "Seismic signal lags pilot signal by 67.5° to 112.5°",
		4: "Seismic signal lags pilot signal by 112.5° to 157.5°",
		5: "Seismic signal lags pilot signal by 157.5° to 202.5°",
		6: "Seismic signal lags pilot signal by 202.5° to 247.5°",
		7: "Seismic signal lags pilot signal by 247.5° to 292.5°",
		8: "Seismic signal lags pilot signal by 292.5° to 337.5°",
	},
	keyFormatRevision: {
		0: "SEG-Y Rev 0",
		1: "SEG-Y Rev 1",
		2: "SEG-Y Rev 2",
	},
	keyFixedLengthTraceFlag: {
		0: "Variable length traces (traditional SEG-Y)",
		1: "Fixed length traces (all traces have same sample interval and number of samples)",
	},
	keyTimeBasisCode: {
		1: "Local",
		2: "GMT (Greenwich Mean Time)",
		3: "Other (should be explained in Extended Textual File Header)",
		4: "UTC (Coordinated Universal Time)",
		5: "GPS (Global Positioning System Time)",
	},
}

// binaryFields lists the 400-byte binary file header (bytes 3201-3600).
// Fields whose Key is empty are free-form numeric values.
var binaryFields = []FieldDescriptor{
	{Name: "JobID", Key: "JobIdentificationNumber", Offset: 3201, Size: 4,
		Description: "Job identification number."},
	{Name: "LineNumber", Key: "LineNumber", Offset: 3205, Size: 4,
		Description: "Line number. For 3-D poststack data this will typically contain the in-line number."},
	{Name: "ReelNumber", Key: "ReelNumber", Offset: 3209, Size: 4,
		Description: "Reel number."},
	{Name: "Traces", Key: "NumberOfDataTracesPerRecord", Offset: 3213, Size: 2,
		Description: "Number of data traces per ensemble. Mandatory for prestack data."},
	{Name: "AuxTraces", Key: "NumberOfAuxiliaryTracesPerRecord", Offset: 3215, Size: 2,
		Description: "Number of auxiliary traces per ensemble. Mandatory for prestack data."},
	{Name: "Interval", Key: "SampleIntervalInMicroseconds", Offset: 3217, Size: 2,
		Description: "Sample interval in microseconds (µs) for time data, Hz for frequency data, meters or feet for depth data."},
	{Name: "IntervalOriginal", Key: "SampleIntervalInMicrosecondsOfOriginalFieldRecording", Offset: 3219, Size: 2,
		Description: "Sample interval of original field recording."},
	{Name: "Samples", Key: "NumberOfSamplesPerDataTrace", Offset: 3221, Size: 2, Unsigned: true,
		Description: "Number of samples per data trace. The sample interval and number of samples in the binary header should be for the primary set of seismic data traces in the file."},
	{Name: "SamplesOriginal", Key: "NumberOfSamplesPerDataTraceForOriginalFieldRecording", Offset: 3223, Size: 2, Unsigned: true,
		Description: "Number of samples per data trace for original field recording."},
	{Name: "Format", Key: keyDataSampleFormat, Offset: 3225, Size: 2,
		Description: "Data sample format code. Mandatory for all data."},
	{Name: "EnsembleFold", Key: "EnsembleFold", Offset: 3227, Size: 2,
		Description: "Ensemble fold, the expected number of data traces per trace ensemble (e.g. the CMP fold)."},
	{Name: "SortingCode", Key: keyTraceSortingCode, Offset: 3229, Size: 2,
		Description: "Trace sorting code (i.e. type of ensemble)."},
	{Name: "VerticalSum", Key: keyVerticalSumCode, Offset: 3231, Size: 2,
		Description: "Vertical sum code. N = M-1 sum (M = 2 to 32,767)."},
	{Name: "SweepFrequencyStart", Key: "SweepFrequencyAtStart", Offset: 3233, Size: 2,
		Description: "Sweep frequency at start (Hz)."},
	{Name: "SweepFrequencyEnd", Key: "SweepFrequencyAtEnd", Offset: 3235, Size: 2,
		Description: "Sweep frequency at end (Hz)."},
	{Name: "SweepLength", Key: "SweepLengthInMilliseconds", Offset: 3237, Size: 2,
		Description: "Sweep length (ms)."},
	{Name: "Sweep", Key: keySweepTypeCode, Offset: 3239, Size: 2,
		Description: "Sweep type code."},
	{Name: "SweepChannel", Key: "SweepChannelNumber", Offset: 3241, Size: 2,
		Description: "Trace number of sweep channel."},
	{Name: "SweepTaperStart", Key: "SweepTraceTaperLengthAtStartInMilliseconds", Offset: 3243, Size: 2,
		Description: "Sweep trace taper length in milliseconds at start if tapered."},
	{Name: "SweepTaperEnd", Key: "SweepTraceTaperLengthAtEndInMilliseconds", Offset: 3245, Size: 2,
		Description: "Sweep trace taper length in milliseconds at end."},
	{Name: "Taper", Key: keyTaperType, Offset: 3247, Size: 2,
		Description: "Taper type."},
	{Name: "CorrelatedTraces", Key: keyCorrelatedDataTraces, Offset: 3249, Size: 2,
		Description: "Correlated data traces."},
	{Name: "BinaryGainRecovery", Key: keyBinaryGainRecovered, Offset: 3251, Size: 2,
		Description: "Binary gain recovered."},
	{Name: "AmplitudeRecovery", Key: keyAmplitudeRecovery, Offset: 3253, Size: 2,
		Description: "Amplitude recovery method."},
	{Name: "MeasurementSystem", Key: keyMeasurementSystem, Offset: 3255, Size: 2,
		Description: "Measurement system. If Location Data stanzas are included in the file, this entry must agree with the Location Data stanza."},
	{Name: "ImpulseSignalPolarity", Key: keyImpulseSignalPolarity, Offset: 3257, Size: 2,
		Description: "Impulse signal polarity."},
	{Name: "VibratoryPolarity", Key: keyVibratoryPolarityCode, Offset: 3259, Size: 2,
		Description: "Vibratory polarity code, seismic signal lags pilot signal by the given phase angle."},
	{Name: "ExtTraces", Key: "ExtendedNumberOfDataTracesPerRecord", Offset: 3261, Size: 4,
		Description: "Extended number of data traces per ensemble. Overrides bytes 3213-3214 when non-zero."},
	{Name: "ExtAuxTraces", Key: "ExtendedNumberOfAuxiliaryTracesPerRecord", Offset: 3265, Size: 4,
		Description: "Extended number of auxiliary traces per ensemble. Overrides bytes 3215-3216 when non-zero."},
	{Name: "ExtSamples", Key: "ExtendedNumberOfSamplesPerDataTrace", Offset: 3269, Size: 4,
		Description: "Extended number of samples per data trace. Overrides bytes 3221-3222 when non-zero."},
	{Name: "ExtSamplesOriginal", Key: "ExtendedNumberOfSamplesPerDataTraceForOriginalFieldRecording", Offset: 3289, Size: 4,
		Description: "Extended number of samples per data trace in original recording."},
	{Name: "ExtEnsembleFold", Key: "ExtendedEnsembleFold", Offset: 3293, Size: 4,
		Description: "Extended ensemble fold. Overrides bytes 3227-3228 when non-zero."},
	{Name: "IntegerConstant", Key: "IntegerConstant", Offset: 3297, Size: 4,
		Description: "The integer constant 16909060 (0x01020304), used to detect the byte ordering."},
	{Name: "SEGYRevision", Key: keyFormatRevision, Offset: 3501, Size: 1, Unsigned: true,
		Description: "Major SEG-Y format revision number."},
	{Name: "SEGYRevisionMinor", Key: "SEGYFormatRevisionNumberMinor", Offset: 3502, Size: 1, Unsigned: true,
		Description: "Minor SEG-Y format revision number."},
	{Name: "TraceFlag", Key: keyFixedLengthTraceFlag, Offset: 3503, Size: 2,
		Description: "Fixed length trace flag."},
	{Name: "ExtendedHeaders", Key: keyExtendedTextualHeaders, Offset: 3505, Size: 2,
		Description: "Number of 3200-byte Extended Textual File Header records following the Binary Header. -1 means a variable number."},
	{Name: "MaxAdditionalTraceHeaders", Key: "MaximumNumberOfAdditionalTraceHeaders", Offset: 3507, Size: 4,
		Description: "Maximum number of additional 240 byte trace headers."},
	{Name: "TimeBasis", Key: keyTimeBasisCode, Offset: 3511, Size: 2,
		Description: "Time basis code."},
	{Name: "NumberOfTraces", Key: "NumberOfTracesInFile", Offset: 3513, Size: 8, Unsigned: true,
		Description: "Number of traces in this file or stream."},
	{Name: "TraceDataOffset", Key: "ByteOffsetOfFirstTrace", Offset: 3521, Size: 8, Unsigned: true,
		Description: "Byte offset of first trace relative to start of file or stream."},
	{Name: "TrailerStanzas", Key: "NumberOfTrailerStanzaRecords", Offset: 3529, Size: 4,
		Description: "Number of 3200-byte data trailer stanza records following the last trace."},
}

var binaryTable = newTable(binaryFields)
