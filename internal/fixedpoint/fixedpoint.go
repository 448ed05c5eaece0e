// Package fixedpoint provides the 24.8 fixed-point conversions shared by
// triangle binning and the scan-converter. 24.8 keeps edge functions free of
// the sub-pixel jitter that plain float rasterization suffers from, and
// lets the top-left fill rule be expressed as an unambiguous integer bias.
package fixedpoint

// Shift is the number of fractional bits in the 24.8 format.
const Shift = 8

// One is the fixed-point representation of 1.0.
const One = 1 << Shift

// FromFloat converts x to 24.8 using floor(x*256 + 0.5), i.e. round to
// nearest with ties going up.
func FromFloat(x float32) int32 {
	return int32(floor64(float64(x)*256 + 0.5))
}

// ToFloat converts a 24.8 fixed-point value back to float32.
func ToFloat(x int32) float32 {
	return float32(x) / One
}

// Mul multiplies two 24.8 values. The raw product is a 48.16 quantity, so it
// is widened to int64 before shifting back down to 24.8 - the same
// widen-then-shift idiom as the teacher's FDot16Mul
// (backend/native/fixed_point.go).
func Mul(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> Shift)
}

func floor64(x float64) float64 {
	i := int64(x)
	if x < 0 && float64(i) != x {
		i--
	}
	return float64(i)
}
