package linear

import (
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	const eps = 1e-4
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestVec3Normalized(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalized()
	if !almostEqual(n.Length(), 1) {
		t.Fatalf("expected unit length, got %v", n.Length())
	}
	zero := Vec3{}
	if zero.Normalized() != zero {
		t.Fatalf("normalizing the zero vector should return it unchanged")
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Fatalf("x cross y = %v, want %v", got, want)
	}
}

func TestVec4Lerp(t *testing.T) {
	a := Vec4{0, 0, 0, 0}
	b := Vec4{10, 20, 30, 40}
	got := a.Lerp(b, 0.5)
	want := Vec4{5, 10, 15, 20}
	if got != want {
		t.Fatalf("lerp = %v, want %v", got, want)
	}
}

func TestMat33InverseIdentity(t *testing.T) {
	inv := Identity33().Inverse()
	if inv != Identity33() {
		t.Fatalf("inverse of identity should be identity, got %v", inv)
	}
}

func TestMat33InversePanicsOnSingular(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on singular matrix")
		}
	}()
	singular := Mat33{0, 0, 0, 0, 0, 0, 0, 0, 0}
	singular.Inverse()
}

func TestMat34Translate(t *testing.T) {
	m := Translate34(Vec3{1, 2, 3})
	p := m.MulVec4(Vec4{0, 0, 0, 1})
	if p != (Vec4{1, 2, 3, 1}) {
		t.Fatalf("translate = %v", p)
	}
}

func TestMat44PerspectiveMapsNearFar(t *testing.T) {
	near, far := float32(1.0), float32(100.0)
	m := Perspective(near, far, float32(math.Pi)/2, 1)
	pNear := m.MulVec4(Vec4{0, 0, -near, 1})
	pFar := m.MulVec4(Vec4{0, 0, -far, 1})
	ndcNear := pNear.Z / pNear.W
	ndcFar := pFar.Z / pFar.W
	if !almostEqual(ndcNear, -1) {
		t.Fatalf("near plane should map to ndc z=-1, got %v", ndcNear)
	}
	if !almostEqual(ndcFar, 1) {
		t.Fatalf("far plane should map to ndc z=1, got %v", ndcFar)
	}
}

func TestMat44InverseRoundTrip(t *testing.T) {
	m := FromMat34(Translate34(Vec3{1, -2, 3}).Mul(RotateY34(0.4)))
	inv := m.Inverse()
	roundTrip := m.Mul(inv)
	id := Identity44()
	for i := range roundTrip {
		if !almostEqual(roundTrip[i], id[i]) {
			t.Fatalf("m*inv != identity at %d: %v", i, roundTrip)
		}
	}
}

func TestQuatRotateVec3(t *testing.T) {
	q := FromAxisAngle(Vec3{0, 0, 1}, float32(math.Pi)/2)
	got := q.RotateVec3(Vec3{1, 0, 0})
	want := Vec3{0, 1, 0}
	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) || !almostEqual(got.Z, want.Z) {
		t.Fatalf("rotate = %v, want %v", got, want)
	}
}

func TestQuatAsMat33MatchesRotateVec3(t *testing.T) {
	q := FromAxisAngle(Vec3{1, 1, 0}, 0.7)
	v := Vec3{0.3, -1.2, 2.5}
	viaQuat := q.RotateVec3(v)
	viaMat := q.AsMat33().MulVec3(v)
	if !almostEqual(viaQuat.X, viaMat.X) || !almostEqual(viaQuat.Y, viaMat.Y) || !almostEqual(viaQuat.Z, viaMat.Z) {
		t.Fatalf("quat rotate %v != matrix rotate %v", viaQuat, viaMat)
	}
}
