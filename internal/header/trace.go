package header

// Trace field names used by the navigation builder.
const (
	TraceSequenceLine      = "TRACE_SEQUENCE_LINE"
	TraceSequenceFile      = "TRACE_SEQUENCE_FILE"
	TraceCDP               = "CDP"
	TraceOffset            = "offset"
	TraceReceiverElevation = "ReceiverGroupElevation"
	TraceSourceElevation   = "SourceSurfaceElevation"
	TraceSourceGroupScalar = "SourceGroupScalar"
	TraceSourceX           = "SourceX"
	TraceSourceY           = "SourceY"
	TraceGroupX            = "GroupX"
	TraceGroupY            = "GroupY"
	TraceCoordinateUnits   = "CoordinateUnits"
	TraceDelayRecording    = "DelayRecordingTime"
	TraceSampleCount       = "TRACE_SAMPLE_COUNT"
	TraceSampleInterval    = "TRACE_SAMPLE_INTERVAL"
	TraceYear              = "YearDataRecorded"
	TraceDayOfYear         = "DayOfYear"
	TraceHour              = "HourOfDay"
	TraceMinute            = "MinuteOfHour"
	TraceSecond            = "SecondOfMinute"
	TraceCDPX              = "CDP_X"
	TraceCDPY              = "CDP_Y"
)

var (
	yesNo = map[int64]string{1: "No", 2: "Yes"}

	coordinateUnits = map[int64]string{
		1: "Length (meters or feet)",
		2: "Seconds of arc",
		3: "Decimal degrees",
		4: "Degrees, minutes, seconds (DMS)",
	}

	timeBasis = map[int64]string{
		1: "Local",
		2: "GMT (Greenwich Mean Time)",
		3: "Other",
		4: "UTC (Coordinated Universal Time)",
		5: "GPS (Global Positioning System Time)",
	}
)

// traceFields lists the 240-byte standard trace header.
var traceFields = []FieldDescriptor{
	{Name: TraceSequenceLine, Offset: 1, Size: 4, Description: "Trace sequence number within line. Numbers continue to increase if the same line continues across multiple SEG-Y files."},
	{Name: TraceSequenceFile, Offset: 5, Size: 4, Description: "Trace sequence number within SEG-Y file. Each file starts with trace sequence one."},
	{Name: "FieldRecord", Offset: 9, Size: 4, Description: "Original field record number."},
	{Name: "TraceNumber", Offset: 13, Size: 4, Description: "Trace number within the original field record."},
	{Name: "EnergySourcePoint", Offset: 17, Size: 4, Description: "Energy source point number. Used when more than one record occurs at the same effective surface location."},
	{Name: TraceCDP, Offset: 21, Size: 4, Description: "Ensemble number (i.e. CDP, CMP, CRP, etc)."},
	{Name: "CDP_TRACE", Offset: 25, Size: 4, Description: "Trace number within the ensemble. Each ensemble starts with trace number one."},
	{Name: "TraceIdentificationCode", Offset: 29, Size: 2, Description: "Trace identification code.", Values: map[int64]string{
		-1: "Other", 0: "Unknown", 1: "Time domain seismic data", 2: "Dead", 3: "Dummy",
		4: "Time break", 5: "Uphole", 6: "Sweep", 7: "Timing", 8: "Waterbreak",
		9: "Near-field gun signature", 10: "Far-field gun signature", 11: "Seismic pressure sensor",
		12: "Multicomponent seismic sensor - Vertical component", 13: "Multicomponent seismic sensor - Cross-line component",
		14: "Multicomponent seismic sensor - In-line component", 15: "Rotated multicomponent seismic sensor - Vertical component",
		16: "Rotated multicomponent seismic sensor - Transverse component", 17: "Rotated multicomponent seismic sensor - Radial component",
		18: "Vibrator reaction mass", 19: "Vibrator baseplate", 20: "Vibrator estimated ground force",
		21: "Vibrator reference", 22: "Time-velocity pairs",
	}},
	{Name: "NSummedTraces", Offset: 31, Size: 2, Description: "Number of vertically summed traces yielding this trace."},
	{Name: "NStackedTraces", Offset: 33, Size: 2, Description: "Number of horizontally stacked traces yielding this trace."},
	{Name: "DataUse", Offset: 35, Size: 2, Description: "Data use.", Values: map[int64]string{1: "Production", 2: "Test"}},
	{Name: TraceOffset, Offset: 37, Size: 4, Description: "Distance from center of the source point to the center of the receiver group (negative if opposite to direction in which line is shot)."},
	{Name: TraceReceiverElevation, Offset: 41, Size: 4, Description: "Elevation of receiver group. All elevations above the vertical datum are positive and below are negative."},
	{Name: TraceSourceElevation, Offset: 45, Size: 4, Description: "Surface elevation at source location."},
	{Name: "SourceDepth", Offset: 49, Size: 4, Description: "Source depth below surface (a positive number)."},
	{Name: "ReceiverDatumElevation", Offset: 53, Size: 4, Description: "Seismic Datum elevation at receiver group."},
	{Name: "SourceDatumElevation", Offset: 57, Size: 4, Description: "Seismic Datum elevation at source."},
	{Name: "SourceWaterDepth", Offset: 61, Size: 4, Description: "Water column height at source location."},
	{Name: "GroupWaterDepth", Offset: 65, Size: 4, Description: "Water column height at receiver group location."},
	{Name: "ElevationScalar", Offset: 69, Size: 2, Description: "Scalar to be applied to all elevations and depths specified in bytes 41-68 to give the real value."},
	{Name: TraceSourceGroupScalar, Offset: 71, Size: 2, Description: "Scalar to be applied to all coordinates specified in bytes 73-88 and to bytes 181-188. Positive means multiplier, negative means divisor, zero means one."},
	{Name: TraceSourceX, Offset: 73, Size: 4, Description: "Source coordinate - X."},
	{Name: TraceSourceY, Offset: 77, Size: 4, Description: "Source coordinate - Y."},
	{Name: TraceGroupX, Offset: 81, Size: 4, Description: "Group coordinate - X."},
	{Name: TraceGroupY, Offset: 85, Size: 4, Description: "Group coordinate - Y."},
	{Name: TraceCoordinateUnits, Offset: 89, Size: 2, Description: "Coordinate units.", Values: coordinateUnits},
	{Name: "WeatheringVelocity", Offset: 91, Size: 2, Description: "Weathering velocity."},
	{Name: "SubWeatheringVelocity", Offset: 93, Size: 2, Description: "Subweathering velocity."},
	{Name: "SourceUpholeTime", Offset: 95, Size: 2, Description: "Uphole time at source in milliseconds."},
	{Name: "GroupUpholeTime", Offset: 97, Size: 2, Description: "Uphole time at group in milliseconds."},
	{Name: "SourceStaticCorrection", Offset: 99, Size: 2, Description: "Source static correction in milliseconds."},
	{Name: "GroupStaticCorrection", Offset: 101, Size: 2, Description: "Group static correction in milliseconds."},
	{Name: "TotalStaticApplied", Offset: 103, Size: 2, Description: "Total static applied in milliseconds."},
	{Name: "LagTimeA", Offset: 105, Size: 2, Description: "Lag time A. Time in milliseconds between end of 240-byte trace identification header and time break."},
	{Name: "LagTimeB", Offset: 107, Size: 2, Description: "Lag Time B. Time in milliseconds between time break and the initiation time of the energy source."},
	{Name: TraceDelayRecording, Offset: 109, Size: 2, Description: "Delay recording time. Time in milliseconds between initiation time of energy source and the time when recording of data samples begins."},
	{Name: "MuteTimeStart", Offset: 111, Size: 2, Description: "Mute time - Start time in milliseconds."},
	{Name: "MuteTimeEND", Offset: 113, Size: 2, Description: "Mute time - End time in milliseconds."},
	{Name: TraceSampleCount, Offset: 115, Size: 2, Unsigned: true, Description: "Number of samples in this trace."},
	{Name: TraceSampleInterval, Offset: 117, Size: 2, Description: "Sample interval for this trace in microseconds."},
	{Name: "GainType", Offset: 119, Size: 2, Description: "Gain type of field instruments.", Values: map[int64]string{1: "Fixed", 2: "Binary", 3: "Floating point"}},
	{Name: "InstrumentGainConstant", Offset: 121, Size: 2, Description: "Instrument gain constant (dB)."},
	{Name: "InstrumentInitialGain", Offset: 123, Size: 2, Description: "Instrument early or initial gain (dB)."},
	{Name: "Correlated", Offset: 125, Size: 2, Description: "Correlated.", Values: yesNo},
	{Name: "SweepFrequencyStart", Offset: 127, Size: 2, Description: "Sweep frequency at start (Hz)."},
	{Name: "SweepFrequencyEnd", Offset: 129, Size: 2, Description: "Sweep frequency at end (Hz)."},
	{Name: "SweepLength", Offset: 131, Size: 2, Description: "Sweep length in milliseconds."},
	{Name: "SweepType", Offset: 133, Size: 2, Description: "Sweep type.", Values: map[int64]string{1: "Linear", 2: "Parabolic", 3: "Exponential", 4: "Other"}},
	{Name: "SweepTraceTaperLengthStart", Offset: 135, Size: 2, Description: "Sweep trace taper length at start in milliseconds."},
	{Name: "SweepTraceTaperLengthEnd", Offset: 137, Size: 2, Description: "Sweep trace taper length at end in milliseconds."},
	{Name: "TaperType", Offset: 139, Size: 2, Description: "Taper type.", Values: map[int64]string{1: "Linear", 2: "Cosine squared", 3: "Other"}},
	{Name: "AliasFilterFrequency", Offset: 141, Size: 2, Description: "Alias filter frequency (Hz), if used."},
	{Name: "AliasFilterSlope", Offset: 143, Size: 2, Description: "Alias filter slope (dB/octave)."},
	{Name: "NotchFilterFrequency", Offset: 145, Size: 2, Description: "Notch filter frequency (Hz), if used."},
	{Name: "NotchFilterSlope", Offset: 147, Size: 2, Description: "Notch filter slope (dB/octave)."},
	{Name: "LowCutFrequency", Offset: 149, Size: 2, Description: "Low-cut frequency (Hz), if used."},
	{Name: "HighCutFrequency", Offset: 151, Size: 2, Description: "High-cut frequency (Hz), if used."},
	{Name: "LowCutSlope", Offset: 153, Size: 2, Description: "Low-cut slope (dB/octave)."},
	{Name: "HighCutSlope", Offset: 155, Size: 2, Description: "High-cut slope (dB/octave)."},
	{Name: TraceYear, Offset: 157, Size: 2, Description: "Year data recorded."},
	{Name: TraceDayOfYear, Offset: 159, Size: 2, Description: "Day of year (Julian day for GMT and UTC time basis)."},
	{Name: TraceHour, Offset: 161, Size: 2, Description: "Hour of day (24 hour clock)."},
	{Name: TraceMinute, Offset: 163, Size: 2, Description: "Minute of hour."},
	{Name: TraceSecond, Offset: 165, Size: 2, Description: "Second of minute."},
	{Name: "TimeBaseCode", Offset: 167, Size: 2, Description: "Time basis code.", Values: timeBasis},
	{Name: "TraceWeightingFactor", Offset: 169, Size: 2, Description: "Trace weighting factor, defined as 2^-N volts for the least significant bit."},
	{Name: "GeophoneGroupNumberRoll1", Offset: 171, Size: 2, Description: "Geophone group number of roll switch position one."},
	{Name: "GeophoneGroupNumberFirstTraceOrigField", Offset: 173, Size: 2, Description: "Geophone group number of trace number one within original field record."},
	{Name: "GeophoneGroupNumberLastTraceOrigField", Offset: 175, Size: 2, Description: "Geophone group number of last trace within original field record."},
	{Name: "GapSize", Offset: 177, Size: 2, Description: "Gap size (total number of groups dropped)."},
	{Name: "OverTravel", Offset: 179, Size: 2, Description: "Over travel associated with taper at beginning or end of line.", Values: map[int64]string{1: "Down (or behind)", 2: "Up (or ahead)"}},
	{Name: TraceCDPX, Offset: 181, Size: 4, Description: "X coordinate of ensemble (CDP) position of this trace."},
	{Name: TraceCDPY, Offset: 185, Size: 4, Description: "Y coordinate of ensemble (CDP) position of this trace."},
	{Name: "INLINE_3D", Offset: 189, Size: 4, Description: "For 3-D poststack data, the in-line number."},
	{Name: "CROSSLINE_3D", Offset: 193, Size: 4, Description: "For 3-D poststack data, the cross-line number."},
	{Name: "ShotPoint", Offset: 197, Size: 4, Description: "Shotpoint number. Probably only applies to 2-D poststack data."},
	{Name: "ShotPointScalar", Offset: 201, Size: 2, Description: "Scalar to be applied to the shotpoint number in bytes 197-200."},
	{Name: "TraceValueMeasurementUnit", Offset: 203, Size: 2, Description: "Trace value measurement unit.", Values: map[int64]string{
		-1: "Other", 0: "Unknown", 1: "Pascal (Pa)", 2: "Volts (v)", 3: "Millivolts (mV)",
		4: "Amperes (A)", 5: "Meters (m)", 6: "Meters per second (m/s)",
		7: "Meters per second squared (m/s²)", 8: "Newton (N)", 9: "Watt (W)",
	}},
	{Name: "TransductionConstantMantissa", Offset: 205, Size: 4, Description: "Transduction Constant mantissa."},
	{Name: "TransductionConstantPower", Offset: 209, Size: 2, Description: "Transduction Constant power of ten exponent."},
	{Name: "TransductionUnit", Offset: 211, Size: 2, Description: "Transduction units."},
	{Name: "TraceIdentifier", Offset: 213, Size: 2, Description: "Device/Trace Identifier."},
	{Name: "ScalarTraceHeader", Offset: 215, Size: 2, Description: "Scalar to be applied to times specified in bytes 95-114."},
	{Name: "SourceType", Offset: 217, Size: 2, Description: "Source Type/Orientation."},
	{Name: "SourceEnergyDirectionMantissa", Offset: 219, Size: 4, Description: "Source Energy Direction with respect to the source orientation (mantissa)."},
	{Name: "SourceEnergyDirectionExponent", Offset: 223, Size: 2, Description: "Source Energy Direction with respect to the source orientation (exponent)."},
	{Name: "SourceMeasurementMantissa", Offset: 225, Size: 4, Description: "Source Measurement mantissa."},
	{Name: "SourceMeasurementExponent", Offset: 229, Size: 2, Description: "Source Measurement exponent."},
	{Name: "SourceMeasurementUnit", Offset: 231, Size: 2, Description: "Source Measurement Unit."},
	{Name: "UnassignedInt1", Offset: 233, Size: 4, Description: "Unassigned."},
	{Name: "UnassignedInt2", Offset: 237, Size: 4, Description: "Unassigned."},
}

var traceTable = newTable(traceFields)
