package clip

import (
	"testing"

	"github.com/gogpu/tri3d/linear"
)

func insideVertex(x, y, z float32) Vertex {
	return Vertex{ClipPos: linear.Vec4{X: x, Y: y, Z: z, W: 1}}
}

func TestTriangleFullyInsideIsUnchanged(t *testing.T) {
	v0 := insideVertex(0, 0.5, 0)
	v1 := insideVertex(-0.5, -0.5, 0)
	v2 := insideVertex(0.5, -0.5, 0)
	out := Triangle(v0, v1, v2)
	if len(out) != 3 {
		t.Fatalf("expected 3 vertices for an already-inside triangle, got %d", len(out))
	}
	want := []Vertex{v0, v1, v2}
	for i := range want {
		if out[i].ClipPos != want[i].ClipPos {
			t.Fatalf("vertex %d changed: got %v, want %v", i, out[i].ClipPos, want[i].ClipPos)
		}
	}
}

func TestTriangleFullyBehindNearPlaneYieldsEmpty(t *testing.T) {
	// All three vertices violate w+z>=0 (z well past -w).
	v0 := Vertex{ClipPos: linear.Vec4{X: 0, Y: 0, Z: -5, W: 1}}
	v1 := Vertex{ClipPos: linear.Vec4{X: 1, Y: 0, Z: -5, W: 1}}
	v2 := Vertex{ClipPos: linear.Vec4{X: 0, Y: 1, Z: -5, W: 1}}
	out := Triangle(v0, v1, v2)
	if len(out) != 0 {
		t.Fatalf("expected 0 vertices, got %d", len(out))
	}
}

func TestTriangleTouchingPlaneProducesNoDuplicates(t *testing.T) {
	// v0 sits exactly on the x=w plane (d==0); nothing should duplicate it.
	v0 := Vertex{ClipPos: linear.Vec4{X: 1, Y: 0, Z: 0, W: 1}}
	v1 := insideVertex(-0.5, -0.5, 0)
	v2 := insideVertex(-0.5, 0.5, 0)
	out := Triangle(v0, v1, v2)
	if len(out) != 3 {
		t.Fatalf("expected 3 vertices, got %d: %v", len(out), out)
	}
}

func TestTriangleOutputWithinEpsilon(t *testing.T) {
	// A triangle straddling the x=w plane should clip to a polygon whose
	// vertices all satisfy |x|<=w (up to float epsilon).
	v0 := Vertex{ClipPos: linear.Vec4{X: 2, Y: 0, Z: 0, W: 1}}
	v1 := Vertex{ClipPos: linear.Vec4{X: -2, Y: 1, Z: 0, W: 1}}
	v2 := Vertex{ClipPos: linear.Vec4{X: -2, Y: -1, Z: 0, W: 1}}
	out := Triangle(v0, v1, v2)
	if len(out) == 0 {
		t.Fatalf("expected a non-empty clipped polygon")
	}
	const eps = 1e-4
	for _, v := range out {
		p := v.ClipPos
		if p.X > p.W+eps || -p.X > p.W+eps {
			t.Fatalf("vertex %v violates |x|<=w", p)
		}
		if p.Y > p.W+eps || -p.Y > p.W+eps {
			t.Fatalf("vertex %v violates |y|<=w", p)
		}
		if p.Z > p.W+eps || -p.Z > p.W+eps {
			t.Fatalf("vertex %v violates |z|<=w", p)
		}
	}
}

func TestLineFullyOutsideReturnsNotOK(t *testing.T) {
	a := Vertex{ClipPos: linear.Vec4{X: 5, Y: 0, Z: 0, W: 1}}
	b := Vertex{ClipPos: linear.Vec4{X: 6, Y: 0, Z: 0, W: 1}}
	_, _, ok := Line(a, b)
	if ok {
		t.Fatalf("expected fully-outside line to be rejected")
	}
}

func TestLineStraddlingPlaneIsClipped(t *testing.T) {
	a := Vertex{ClipPos: linear.Vec4{X: -2, Y: 0, Z: 0, W: 1}}
	b := Vertex{ClipPos: linear.Vec4{X: 2, Y: 0, Z: 0, W: 1}}
	outA, outB, ok := Line(a, b)
	if !ok {
		t.Fatalf("expected the segment to intersect the view volume")
	}
	const eps = 1e-4
	if outA.ClipPos.X > outA.ClipPos.W+eps || outB.ClipPos.X > outB.ClipPos.W+eps {
		t.Fatalf("clipped endpoints still violate x<=w: %v %v", outA.ClipPos, outB.ClipPos)
	}
}
