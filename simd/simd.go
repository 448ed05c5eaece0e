// Package simd provides the 4-wide lane abstraction the scan-converter
// needs: three edge functions and a depth value, packed into one register
// so the per-pixel loop costs one add and one sign-mask test. There is no
// portable way to reach SSE/NEON intrinsics from plain Go without cgo or
// assembly, and none of the example repos in this module's lineage carry a
// vendored SIMD package, so this is a pure-Go lane array; on amd64/arm64 the
// compiler auto-vectorizes the fixed-size loops reasonably well.
package simd

import "math"

// U32x4 is four packed uint32 lanes.
type U32x4 [4]uint32

func LoadU32x4(a, b, c, d uint32) U32x4 { return U32x4{a, b, c, d} }

func (v U32x4) Add(o U32x4) U32x4 {
	return U32x4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v U32x4) And(o U32x4) U32x4 {
	return U32x4{v[0] & o[0], v[1] & o[1], v[2] & o[2], v[3] & o[3]}
}

// AnyNonZero reports whether any lane is non-zero.
func (v U32x4) AnyNonZero() bool {
	return v[0] != 0 || v[1] != 0 || v[2] != 0 || v[3] != 0
}

func (v U32x4) Lane0() uint32 { return v[0] }

// SignMaskI32 returns a U32x4 with 0xFFFFFFFF in lanes whose corresponding
// int32 reinterpretation is negative, 0 elsewhere. Used by the edge-function
// coverage test: a covered pixel has no sign bit set.
func SignMaskI32(v [4]int32) U32x4 {
	var out U32x4
	for i, x := range v {
		if x < 0 {
			out[i] = 0xFFFFFFFF
		}
	}
	return out
}

// F32x4 is four packed float32 lanes.
type F32x4 [4]float32

func LoadF32x4(a, b, c, d float32) F32x4 { return F32x4{a, b, c, d} }

func (v F32x4) Add(o F32x4) F32x4 {
	return F32x4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v F32x4) Sub(o F32x4) F32x4 {
	return F32x4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v F32x4) Mul(o F32x4) F32x4 {
	return F32x4{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]}
}

// MulAdd returns v*m + a, lane-wise fused multiply-add.
func (v F32x4) MulAdd(m, a F32x4) F32x4 {
	return F32x4{
		v[0]*m[0] + a[0],
		v[1]*m[1] + a[1],
		v[2]*m[2] + a[2],
		v[3]*m[3] + a[3],
	}
}

func (v F32x4) RSqrt() F32x4 {
	var out F32x4
	for i, x := range v {
		out[i] = float32(1 / math.Sqrt(float64(x)))
	}
	return out
}

func (v F32x4) Sqrt() F32x4 {
	var out F32x4
	for i, x := range v {
		out[i] = float32(math.Sqrt(float64(x)))
	}
	return out
}

func (v F32x4) Acos() F32x4 {
	var out F32x4
	for i, x := range v {
		out[i] = float32(math.Acos(float64(x)))
	}
	return out
}

func (v F32x4) Min(o F32x4) F32x4 {
	var out F32x4
	for i := range v {
		if v[i] < o[i] {
			out[i] = v[i]
		} else {
			out[i] = o[i]
		}
	}
	return out
}

func (v F32x4) Max(o F32x4) F32x4 {
	var out F32x4
	for i := range v {
		if v[i] > o[i] {
			out[i] = v[i]
		} else {
			out[i] = o[i]
		}
	}
	return out
}

// ToU32x4 truncates each lane toward zero.
func (v F32x4) ToU32x4() U32x4 {
	return U32x4{uint32(int32(v[0])), uint32(int32(v[1])), uint32(int32(v[2])), uint32(int32(v[3]))}
}
