// Package linear provides the 2/3/4-component vectors, the quaternion, and
// the 3x3/3x4/4x4 matrices that the rasterizer is built on. It has no
// dependency on the rest of the module: every other package treats it as
// an external math library.
package linear

import "math"

// Vec2 is a 2D float32 vector, used for texture coordinates and screen-space
// positions.
type Vec2 struct {
	X, Y float32
}

// NewVec2 constructs a Vec2 from components.
func NewVec2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Cross returns the scalar z-component of the 3D cross product of the two
// vectors extended with z=0.
func (v Vec2) Cross(o Vec2) float32 { return v.X*o.Y - v.Y*o.X }

func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

// Lerp returns v + (o-v)*t.
func (v Vec2) Lerp(o Vec2, t float32) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Vec3 is a 3D float32 vector, used for world-space positions, normals, and
// tangents.
type Vec3 struct {
	X, Y, Z float32
}

func NewVec3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Neg() Vec3          { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the 3D cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float32 { return float32(math.Sqrt(float64(v.Dot(v)))) }

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged, so callers need no zero-length guard of their own.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Lerp returns v + (o-v)*t.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return Vec3{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t, v.Z + (o.Z-v.Z)*t}
}

func (v Vec3) Clamped(min, max float32) Vec3 {
	return Vec3{clamp32(v.X, min, max), clamp32(v.Y, min, max), clamp32(v.Z, min, max)}
}

// AsPoint4 promotes v to a homogeneous point (w=1).
func (v Vec3) AsPoint4() Vec4 { return Vec4{v.X, v.Y, v.Z, 1} }

// AsVector4 promotes v to a homogeneous direction (w=0).
func (v Vec3) AsVector4() Vec4 { return Vec4{v.X, v.Y, v.Z, 0} }

func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

// Vec4 is a 4D float32 vector used for homogeneous clip-space positions and
// RGBA colors.
type Vec4 struct {
	X, Y, Z, W float32
}

func NewVec4(x, y, z, w float32) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

func (v Vec4) Add(o Vec4) Vec4 { return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }
func (v Vec4) Sub(o Vec4) Vec4 { return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }
func (v Vec4) Mul(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// MulElem multiplies component-wise, used for color*color modulation.
func (v Vec4) MulElem(o Vec4) Vec4 {
	return Vec4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

func (v Vec4) Dot(o Vec4) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }

// Lerp returns v + (o-v)*t, used by the clipper to interpolate homogeneous
// attributes without dividing by w.
func (v Vec4) Lerp(o Vec4, t float32) Vec4 {
	return Vec4{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
		v.W + (o.W-v.W)*t,
	}
}

func (v Vec4) XYZ() Vec3 { return Vec3{v.X, v.Y, v.Z} }
func (v Vec4) XY() Vec2  { return Vec2{v.X, v.Y} }

func clamp32(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
