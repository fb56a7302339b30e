package segy

import "math"

// IBMToFloat64 converts a big-endian IBM System/360 single precision float.
func IBMToFloat64(bits uint32) float64 {
	mant := bits & 0x00ffffff
	if mant == 0 {
		return 0
	}

	exp := int((bits>>24)&0x7f) - 64
	v := math.Ldexp(float64(mant), 4*exp-24)
	if bits&0x80000000 != 0 {
		v = -v
	}
	return v
}

// Float64ToIBM converts v to IBM System/360 single precision. Values outside
// the representable range saturate.
func Float64ToIBM(v float64) uint32 {
	if v == 0 || math.IsNaN(v) {
		return 0
	}

	var sign uint32
	if v < 0 {
		sign = 0x80000000
		v = -v
	}

	frac, exp := math.Frexp(v) // v = frac * 2^exp, frac in [0.5, 1)
	e := int(math.Ceil(float64(exp) / 4))
	m := math.Ldexp(frac, exp-4*e) // m in [1/16, 1)

	mant := uint32(math.Round(math.Ldexp(m, 24)))
	if mant >= 1<<24 {
		mant >>= 4
		e++
	}

	biased := e + 64
	switch {
	case biased > 127:
		return sign | 0x7fffffff
	case biased < 0:
		return 0
	}
	return sign | uint32(biased)<<24 | mant
}
