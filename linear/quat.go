package linear

import "math"

// Quat is a unit quaternion used to represent and compose rotations.
type Quat struct {
	X, Y, Z, W float32
}

// IdentityQuat returns the no-rotation quaternion.
func IdentityQuat() Quat { return Quat{0, 0, 0, 1} }

// FromAxisAngle builds a quaternion rotating by angle radians around axis.
// The axis is normalized internally; a zero axis yields the identity.
func FromAxisAngle(axis Vec3, angle float32) Quat {
	a := axis.Normalized()
	half := angle * 0.5
	s := float32(math.Sin(float64(half)))
	c := float32(math.Cos(float64(half)))
	return Quat{a.X * s, a.Y * s, a.Z * s, c}
}

// Mul returns the Hamilton product q*o, representing "apply o, then q".
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Length returns the quaternion's norm.
func (q Quat) Length() float32 {
	return float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
}

// Normalized returns q scaled to unit length; the zero quaternion is
// returned unchanged.
func (q Quat) Normalized() Quat {
	l := q.Length()
	if l == 0 {
		return q
	}
	inv := 1 / l
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Conjugate returns the inverse rotation for a unit quaternion.
func (q Quat) Conjugate() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

// RotateVec3 rotates v by q, via q*v*q_conj on the imaginary part.
func (q Quat) RotateVec3(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	uvCross := u.Cross(v)
	t := uvCross.Mul(2)
	return v.Add(t.Mul(q.W)).Add(u.Cross(t))
}

// AsMat33 converts the quaternion to its equivalent rotation matrix.
func (q Quat) AsMat33() Mat33 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, yy, zz := x*x2, y*y2, z*z2
	xy, xz, yz := x*y2, x*z2, y*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	return Mat33{
		1 - (yy + zz), xy - wz, xz + wy,
		xy + wz, 1 - (xx + zz), yz - wx,
		xz - wy, yz + wx, 1 - (xx + yy),
	}
}
