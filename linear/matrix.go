package linear

import "math"

// Mat33 is a row-major 3x3 matrix, used for rotations, scales, and the
// normal matrix derived from a model transform.
type Mat33 [9]float32

func Identity33() Mat33 {
	return Mat33{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// MulVec3 applies the matrix to a vector: m * v.
func (m Mat33) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

func (m Mat33) Transpose() Mat33 {
	return Mat33{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Inverse returns the matrix inverse. Panics if the matrix is singular,
// matching the teacher's fail-fast stance on programmer errors - a
// non-invertible model transform cannot produce a meaningful normal matrix.
func (m Mat33) Inverse() Mat33 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	det := a*A + b*B + c*C
	if det == 0 {
		panic("linear: Mat33.Inverse of a singular matrix")
	}
	invDet := 1 / det

	D := -(b*i - c*h)
	E := a*i - c*g
	F := -(a*h - b*g)
	G := b*f - c*e
	H := -(a*f - c*d)
	I := a*e - b*d

	return Mat33{
		A * invDet, D * invDet, G * invDet,
		B * invDet, E * invDet, H * invDet,
		C * invDet, F * invDet, I * invDet,
	}
}

func (m Mat33) Mul(o Mat33) Mat33 {
	var r Mat33
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[row*3+k] * o[k*3+col]
			}
			r[row*3+col] = sum
		}
	}
	return r
}

// Mat34 is an affine transform stored as 3 rows of 4 floats, row-major, with
// an implicit bottom row of (0,0,0,1). It represents model/world transforms
// built from translate/rotate/scale.
type Mat34 [12]float32

func Identity34() Mat34 {
	return Mat34{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
}

func Translate34(t Vec3) Mat34 {
	return Mat34{
		1, 0, 0, t.X,
		0, 1, 0, t.Y,
		0, 0, 1, t.Z,
	}
}

func ScaleUniform34(s float32) Mat34 {
	return Mat34{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
	}
}

func ScaleNonUniform34(s Vec3) Mat34 {
	return Mat34{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
	}
}

// RotateX34 returns a rotation of angle radians around the X axis.
func RotateX34(angle float32) Mat34 {
	c, s := float32(math.Cos(float64(angle))), float32(math.Sin(float64(angle)))
	return Mat34{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
	}
}

// RotateY34 returns a rotation of angle radians around the Y axis.
func RotateY34(angle float32) Mat34 {
	c, s := float32(math.Cos(float64(angle))), float32(math.Sin(float64(angle)))
	return Mat34{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
	}
}

// RotateZ34 returns a rotation of angle radians around the Z axis.
func RotateZ34(angle float32) Mat34 {
	c, s := float32(math.Cos(float64(angle))), float32(math.Sin(float64(angle)))
	return Mat34{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
	}
}

// MulVec4 applies the affine transform to a homogeneous vector, using the
// implicit (0,0,0,1) bottom row.
func (m Mat34) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		v.W,
	}
}

// AsMat33 extracts the rotation/scale block, discarding translation.
func (m Mat34) AsMat33() Mat33 {
	return Mat33{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

func (m Mat34) Mul(o Mat34) Mat34 {
	var r Mat34
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			sum = m[row*4+0]*o[0*4+col] + m[row*4+1]*o[1*4+col] + m[row*4+2]*o[2*4+col]
			if col == 3 {
				sum += m[row*4+3]
			}
			r[row*4+col] = sum
		}
	}
	return r
}

// Mat44 is a generic row-major 4x4 homogeneous transform, used for
// view/projection matrices.
type Mat44 [16]float32

func Identity44() Mat44 {
	return Mat44{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// FromMat34 lifts an affine transform into a full 4x4 matrix.
func FromMat34(m Mat34) Mat44 {
	return Mat44{
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		0, 0, 0, 1,
	}
}

func (m Mat44) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

func (m Mat44) Mul(o Mat44) Mat44 {
	var r Mat44
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * o[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return r
}

func (m Mat44) Transpose() Mat44 {
	var r Mat44
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[col*4+row] = m[row*4+col]
		}
	}
	return r
}

// Inverse returns the general 4x4 inverse via cofactor expansion. Panics on
// a singular matrix.
func (m Mat44) Inverse() Mat44 {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det := b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	if det == 0 {
		panic("linear: Mat44.Inverse of a singular matrix")
	}
	invDet := 1 / det

	return Mat44{
		(a11*b11 - a12*b10 + a13*b09) * invDet,
		(a02*b10 - a01*b11 - a03*b09) * invDet,
		(a31*b05 - a32*b04 + a33*b03) * invDet,
		(a22*b04 - a21*b05 - a23*b03) * invDet,

		(a12*b08 - a10*b11 - a13*b07) * invDet,
		(a00*b11 - a02*b08 + a03*b07) * invDet,
		(a32*b02 - a30*b05 - a33*b01) * invDet,
		(a20*b05 - a22*b02 + a23*b01) * invDet,

		(a10*b10 - a11*b08 + a13*b06) * invDet,
		(a01*b08 - a00*b10 - a03*b06) * invDet,
		(a30*b04 - a31*b02 + a33*b00) * invDet,
		(a21*b02 - a20*b04 - a23*b00) * invDet,

		(a11*b07 - a10*b09 - a12*b06) * invDet,
		(a00*b09 - a01*b07 + a02*b06) * invDet,
		(a31*b01 - a30*b03 - a32*b00) * invDet,
		(a20*b03 - a21*b01 + a22*b00) * invDet,
	}
}

// Perspective builds a right-handed perspective projection mapping view-space
// z in [-near,-far] to NDC z in [-1,1], with the given vertical field of view
// (radians) and aspect ratio (width/height).
func Perspective(near, far, fovY, aspect float32) Mat44 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	nf := 1 / (near - far)
	return Mat44{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	}
}

// Orthographic builds an orthographic projection from the given box to NDC
// [-1,1]^3.
func Orthographic(left, right, bottom, top, near, far float32) Mat44 {
	return Mat44{
		2 / (right - left), 0, 0, -(right + left) / (right - left),
		0, 2 / (top - bottom), 0, -(top + bottom) / (top - bottom),
		0, 0, -2 / (far - near), -(far + near) / (far - near),
		0, 0, 0, 1,
	}
}
