// Package clip implements homogeneous Sutherland-Hodgman clipping of a
// triangle (and, for debug line drawing, a line segment) against the
// canonical view volume's six half-spaces: w+x>=0, w-x>=0, w+y>=0, w-y>=0,
// w+z>=0, w-z>=0.
package clip

import "github.com/gogpu/tri3d/linear"

// Vertex is the transient per-vertex attribute bundle the clipper
// interpolates. It lives only inside one commit call.
type Vertex struct {
	ClipPos  linear.Vec4
	WorldPos linear.Vec3
	Normal   linear.Vec3
	Tangent  linear.Vec3
	Color    linear.Vec4
	TexCoord linear.Vec2
}

func lerpVertex(a, b Vertex, t float32) Vertex {
	return Vertex{
		ClipPos:  a.ClipPos.Lerp(b.ClipPos, t),
		WorldPos: a.WorldPos.Lerp(b.WorldPos, t),
		Normal:   a.Normal.Lerp(b.Normal, t),
		Tangent:  a.Tangent.Lerp(b.Tangent, t),
		Color:    a.Color.Lerp(b.Color, t),
		TexCoord: a.TexCoord.Lerp(b.TexCoord, t),
	}
}

// maxClippedVertices is the capacity of the double-buffered vertex lists: a
// triangle clipped against all six planes can grow to at most 3+6=9 in the
// worst theoretical case, but each additional plane can add at most one
// vertex beyond the previous plane's output for a convex input, bounding
// the practical maximum at 7 (one entry, one exit, per remaining plane
// pair) as the reference implementation observes.
const maxClippedVertices = 7

type planeTest func(p linear.Vec4) float32

var planes = [6]planeTest{
	func(p linear.Vec4) float32 { return p.W + p.X },
	func(p linear.Vec4) float32 { return p.W - p.X },
	func(p linear.Vec4) float32 { return p.W + p.Y },
	func(p linear.Vec4) float32 { return p.W - p.Y },
	func(p linear.Vec4) float32 { return p.W + p.Z },
	func(p linear.Vec4) float32 { return p.W - p.Z },
}

// Triangle clips the triangle (v0,v1,v2) against all six planes and returns
// the resulting convex polygon's vertices in order, fan-triangulatable by
// the caller. The result has length 0, 3, 4, 5, 6, or 7. Attribute
// interpolation is linear in homogeneous coordinates - none of the
// returned vertices has been perspective-divided.
func Triangle(v0, v1, v2 Vertex) []Vertex {
	poly := make([]Vertex, 0, maxClippedVertices)
	poly = append(poly, v0, v1, v2)

	scratch := make([]Vertex, 0, maxClippedVertices)

	for _, plane := range planes {
		if len(poly) == 0 {
			return poly
		}
		scratch = scratch[:0]
		n := len(poly)
		for i := 0; i < n; i++ {
			curr := poly[i]
			prev := poly[(i-1+n)%n]

			dCurr := plane(curr.ClipPos)
			dPrev := plane(prev.ClipPos)

			currInside := dCurr >= 0
			prevInside := dPrev >= 0

			if currInside {
				if !prevInside {
					t := dPrev / (dPrev - dCurr)
					scratch = append(scratch, lerpVertex(prev, curr, t))
				}
				scratch = append(scratch, curr)
			} else if prevInside {
				t := dPrev / (dPrev - dCurr)
				scratch = append(scratch, lerpVertex(prev, curr, t))
			}
		}
		poly, scratch = scratch, poly[:0]
	}

	out := make([]Vertex, len(poly))
	copy(out, poly)
	return out
}

// Line clips a two-endpoint segment against the same six planes, for debug
// line drawing. It returns ok=false if the segment does not intersect the
// view volume at all.
func Line(a, b Vertex) (outA, outB Vertex, ok bool) {
	ta, tb := float32(0), float32(1)
	for _, plane := range planes {
		dA := plane(a.ClipPos)
		dB := plane(b.ClipPos)
		// Parametrize the segment as a + (b-a)*t. The plane distance is
		// affine in t: d(t) = dA + (dB-dA)*t. Clip [ta,tb] against d(t)>=0.
		if dA < 0 && dB < 0 {
			return Vertex{}, Vertex{}, false
		}
		if dA >= 0 && dB >= 0 {
			continue
		}
		t := dA / (dA - dB)
		if dA < 0 {
			if t > ta {
				ta = t
			}
		} else {
			if t < tb {
				tb = t
			}
		}
		if ta > tb {
			return Vertex{}, Vertex{}, false
		}
	}
	return lerpVertex(a, b, ta), lerpVertex(a, b, tb), true
}
