package texture

import "testing"

func TestMipCount(t *testing.T) {
	cases := []struct {
		dim  int
		want int
	}{
		{1, 1}, {2, 2}, {4, 3}, {1024, 11},
	}
	for _, c := range cases {
		if got := mipCount(c.dim); got != c.want {
			t.Errorf("mipCount(%d) = %d, want %d", c.dim, got, c.want)
		}
	}
}

func TestNewPanicsOnNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-power-of-two dimension")
		}
	}()
	New(&TextureSource{Texels: make([]byte, 3*3), Width: 3, Height: 3, Format: Grayscale})
}

func TestNewPanicsOnNonSquare(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for non-square dimensions")
		}
	}()
	New(&TextureSource{Texels: make([]byte, 2*4), Width: 2, Height: 4, Format: Grayscale})
}

func TestGrayscaleMipChain2x2(t *testing.T) {
	tex := New(&TextureSource{
		Texels: []byte{10, 20, 30, 40},
		Width:  2, Height: 2,
		Format: Grayscale,
	})
	if tex.MipCount() != 2 {
		t.Fatalf("expected 2 mip levels, got %d", tex.MipCount())
	}
	base := tex.Texels(0)
	if string(base) != string([]byte{10, 20, 30, 40}) {
		t.Fatalf("base level mutated: %v", base)
	}
	top := tex.Texels(1)
	want := byte((10 + 20 + 30 + 40 + 2) >> 2)
	if len(top) != 1 || top[0] != want {
		t.Fatalf("top mip = %v, want [%d]", top, want)
	}
}

func TestRGBAPremultiplied(t *testing.T) {
	tex := New(&TextureSource{
		Texels: []byte{200, 100, 50, 128},
		Width:  1, Height: 1,
		Format: RGBA,
	})
	texels := tex.Texels(0)
	for c := 0; c < 3; c++ {
		if texels[c] > texels[3] {
			t.Fatalf("channel %d = %d exceeds alpha %d after premultiply", c, texels[c], texels[3])
		}
	}
}

func TestAlignUp4(t *testing.T) {
	cases := map[int]int{0: 0, 1: 4, 3: 4, 4: 4, 5: 8}
	for in, want := range cases {
		if got := alignUp4(in); got != want {
			t.Errorf("alignUp4(%d) = %d, want %d", in, got, want)
		}
	}
}
