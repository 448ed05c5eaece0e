package sampler

import (
	"testing"

	"github.com/gogpu/tri3d/texture"
)

func checkerTexture(t *testing.T) *texture.Texture {
	t.Helper()
	texels := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 0, 255,
	}
	return texture.New(&texture.TextureSource{Texels: texels, Width: 2, Height: 2, Format: texture.RGBA})
}

func TestNearestWrapsWithPeriodOne(t *testing.T) {
	tex := checkerTexture(t)
	s := New(tex, Nearest, 0)

	base := s.Sample(0.3, 0.7)
	shifted := s.Sample(0.3+3, 0.7-2)
	if base != shifted {
		t.Fatalf("sampler did not wrap with period 1: %v != %v", base, shifted)
	}
}

func TestBilinearBlendsCorners(t *testing.T) {
	tex := texture.New(&texture.TextureSource{
		Texels: []byte{0, 0, 0, 255, 255, 255, 255, 255, 0, 0, 0, 255, 0, 0, 0, 255},
		Width:  2, Height: 2, Format: texture.RGBA,
	})
	s := New(tex, Bilinear, 0)
	c := s.SamplePrescaled(0.5, 0.0)
	if c[0] == 0 || c[0] == 255 {
		// a blend between the black (0,0) and white (1,0) texel centers
		// should land strictly between the two extremes.
		t.Fatalf("unexpected bilinear result: %v", c)
	}
}

func TestMipSelectionClampsToRange(t *testing.T) {
	tex := checkerTexture(t)
	s := New(tex, Nearest, 100)
	if s.mip0 != tex.MipCount()-1 {
		t.Fatalf("expected clamp to last mip level, got %d", s.mip0)
	}
	s = New(tex, Nearest, -5)
	if s.mip0 != 0 {
		t.Fatalf("expected clamp to mip 0, got %d", s.mip0)
	}
}

func TestUVScaleMatchesSelectedMip(t *testing.T) {
	tex := checkerTexture(t)
	s := New(tex, Nearest, 0)
	if s.UVScale() != float32(tex.Mip(0).Dim) {
		t.Fatalf("UVScale() = %v, want %v", s.UVScale(), tex.Mip(0).Dim)
	}
}
