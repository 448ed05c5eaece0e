package tri3d

import "github.com/gogpu/tri3d/linear"

func packRGBA8Bytes(r, g, b, a byte) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

func unpackRGBA8(v uint32) (r, g, b, a byte) {
	return byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)
}

// premultiplyColor multiplies RGB by A, used when alpha-blending is active:
// per spec.md the command-uniform color and per-vertex colors are
// premultiplied before interpolation.
func premultiplyColor(c linear.Vec4) linear.Vec4 {
	return linear.Vec4{X: c.X * c.W, Y: c.Y * c.W, Z: c.Z * c.W, W: c.W}
}
