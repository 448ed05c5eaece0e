package tilebuf

import "testing"

func TestTileGridDimensions(t *testing.T) {
	buf := New[uint32](120, 100)
	if buf.TilesX() != 2 || buf.TilesY() != 2 {
		t.Fatalf("got tiles (%d,%d), want (2,2)", buf.TilesX(), buf.TilesY())
	}
}

func TestTileClampedExtentOnPartialEdge(t *testing.T) {
	buf := New[uint32](120, 100)
	view := buf.Tile(1, 1)
	if view.ClampedWidth != 120-TileWidth {
		t.Fatalf("clamped width = %d, want %d", view.ClampedWidth, 120-TileWidth)
	}
	if view.ClampedHeight != 100-TileHeight {
		t.Fatalf("clamped height = %d, want %d", view.ClampedHeight, 100-TileHeight)
	}
}

func TestTilesAreDisjointSlices(t *testing.T) {
	buf := New[uint32](128, 128)
	a := buf.Tile(0, 0)
	b := buf.Tile(1, 1)
	a.Set(0, 0, 0xAAAAAAAA)
	b.Set(0, 0, 0xBBBBBBBB)
	if a.Get(0, 0) == b.Get(0, 0) {
		t.Fatalf("tiles alias: writing to one tile affected another")
	}
}

func TestFillCoversWholeBackingStore(t *testing.T) {
	buf := New[uint16](65, 65)
	buf.Fill(0xFFFF)
	for ty := 0; ty < buf.TilesY(); ty++ {
		for tx := 0; tx < buf.TilesX(); tx++ {
			view := buf.Tile(tx, ty)
			for i := range view.Data {
				if view.Data[i] != 0xFFFF {
					t.Fatalf("tile (%d,%d) not fully filled", tx, ty)
				}
			}
		}
	}
}

func TestFlattenDropsPadding(t *testing.T) {
	buf := New[uint32](3, 2)
	buf.Fill(0)
	view := buf.Tile(0, 0)
	view.Set(0, 0, 1)
	view.Set(1, 0, 2)
	view.Set(2, 0, 3)
	view.Set(0, 1, 4)
	view.Set(1, 1, 5)
	view.Set(2, 1, 6)
	flat := buf.Flatten()
	want := []uint32{1, 2, 3, 4, 5, 6}
	if len(flat) != len(want) {
		t.Fatalf("flatten length = %d, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Fatalf("flat[%d] = %d, want %d", i, flat[i], want[i])
		}
	}
}

func TestFramebufferDimensionsFromAnySurface(t *testing.T) {
	fb := &Framebuffer{Depth: New[uint16](64, 64)}
	if fb.Width() != 64 || fb.Height() != 64 {
		t.Fatalf("framebuffer dims = (%d,%d), want (64,64)", fb.Width(), fb.Height())
	}
}
