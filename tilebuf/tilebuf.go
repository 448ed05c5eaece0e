// Package tilebuf implements the tiled backing store the rasterizer's
// back-end writes into: a logical width x height surface laid out as a
// row-major grid of fixed-size tiles, each tile itself row-major. Tile size
// is a package constant rather than a type parameter - Go has no const
// generics, and a single compile-time tile size is exactly what the
// reference rasterizer assumes (the power-of-two size makes a tile's base
// offset a pure function of its (tx,ty) coordinates, with no
// synchronization needed across workers touching different tiles).
package tilebuf

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// TileWidth and TileHeight are the compile-time tile dimensions, matching
// the reference rasterizer's 64x64 tiles.
const (
	TileWidth  = 64
	TileHeight = 64
)

// TiledBuffer is a generic-by-element tiled surface. Element is u16 for
// depth, u32 for color and encoded normals.
type TiledBuffer[T any] struct {
	width, height  int
	tilesX, tilesY int
	data           []T
}

// New allocates a TiledBuffer covering the given logical dimensions. Tiles
// that extend past width/height are still fully backed (the last row/column
// of tiles is partially out-of-bounds and callers must clamp via TileView's
// ClampedWidth/ClampedHeight).
func New[T any](width, height int) *TiledBuffer[T] {
	if width <= 0 || height <= 0 {
		panic("tilebuf: non-positive dimensions")
	}
	tilesX := ceilDiv(width, TileWidth)
	tilesY := ceilDiv(height, TileHeight)
	return &TiledBuffer[T]{
		width: width, height: height,
		tilesX: tilesX, tilesY: tilesY,
		data: make([]T, tilesX*tilesY*TileWidth*TileHeight),
	}
}

func (b *TiledBuffer[T]) Width() int   { return b.width }
func (b *TiledBuffer[T]) Height() int  { return b.height }
func (b *TiledBuffer[T]) TilesX() int  { return b.tilesX }
func (b *TiledBuffer[T]) TilesY() int  { return b.tilesY }

// Fill sets every element, including the out-of-bounds padding of partial
// edge tiles, to v.
func (b *TiledBuffer[T]) Fill(v T) {
	for i := range b.data {
		b.data[i] = v
	}
}

// TileView describes one tile: its origin in logical coordinates, its
// extent clamped to the buffer's logical bounds, and a directly-addressable
// slice of its W*H backing elements (row stride is TileWidth). Because
// distinct (tx,ty) map to disjoint slices of the backing array, two
// TileViews from the same buffer never alias - this is what lets `draw`
// hand one TileView to each worker with no further synchronization.
type TileView[T any] struct {
	OriginX, OriginY int
	ClampedWidth     int
	ClampedHeight    int
	Data             []T
}

// Get and Set address an element at tile-local (x,y); x in [0,TileWidth),
// y in [0,TileHeight).
func (v TileView[T]) Get(x, y int) T       { return v.Data[y*TileWidth+x] }
func (v TileView[T]) Set(x, y int, val T)  { v.Data[y*TileWidth+x] = val }

// Tile returns the view over tile (tx,ty). Panics if the coordinates are
// out of range.
func (b *TiledBuffer[T]) Tile(tx, ty int) TileView[T] {
	if tx < 0 || tx >= b.tilesX || ty < 0 || ty >= b.tilesY {
		panic("tilebuf: tile index out of range")
	}
	base := (ty*b.tilesX + tx) * TileWidth * TileHeight
	originX, originY := tx*TileWidth, ty*TileHeight
	cw := clampExtent(originX, TileWidth, b.width)
	ch := clampExtent(originY, TileHeight, b.height)
	return TileView[T]{
		OriginX: originX, OriginY: originY,
		ClampedWidth: cw, ClampedHeight: ch,
		Data: b.data[base : base+TileWidth*TileHeight],
	}
}

// Flatten converts the tiled buffer into a contiguous row-major slice at
// the buffer's logical dimensions, discarding tile padding.
func (b *TiledBuffer[T]) Flatten() []T {
	out := make([]T, b.width*b.height)
	for ty := 0; ty < b.tilesY; ty++ {
		for tx := 0; tx < b.tilesX; tx++ {
			view := b.Tile(tx, ty)
			for y := 0; y < view.ClampedHeight; y++ {
				srcRow := view.Data[y*TileWidth : y*TileWidth+view.ClampedWidth]
				dstOff := (view.OriginY+y)*b.width + view.OriginX
				copy(out[dstOff:dstOff+view.ClampedWidth], srcRow)
			}
		}
	}
	return out
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

func clampExtent(origin, size, logical int) int {
	if origin+size <= logical {
		return size
	}
	if origin >= logical {
		return 0
	}
	return logical - origin
}

// colorImage adapts a color TiledBuffer to image.Image so it can be drawn
// with golang.org/x/image/draw into a flat image.RGBA, the same final
// un-tiling step a caller displaying a frame would perform.
type colorImage struct {
	buf *TiledBuffer[uint32]
}

func (c colorImage) ColorModel() color.Model { return color.RGBAModel }
func (c colorImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.buf.Width(), c.buf.Height())
}
func (c colorImage) At(x, y int) color.Color {
	tx, ty := x/TileWidth, y/TileHeight
	view := c.buf.Tile(tx, ty)
	packed := view.Get(x-view.OriginX, y-view.OriginY)
	return color.RGBA{
		R: byte(packed >> 24),
		G: byte(packed >> 16),
		B: byte(packed >> 8),
		A: byte(packed),
	}
}

// FlattenColorImage un-tiles a color TiledBuffer into a flat image.RGBA
// using golang.org/x/image/draw, for tests and callers that want to save or
// display a frame.
func FlattenColorImage(buf *TiledBuffer[uint32]) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, buf.Width(), buf.Height()))
	draw.Draw(dst, dst.Bounds(), colorImage{buf}, image.Point{}, draw.Src)
	return dst
}

// Framebuffer bundles zero-to-three optional tiled surfaces that must share
// identical tile geometry and logical dimensions: packed RGBA8 color,
// 16-bit depth, and packed encoded normals.
type Framebuffer struct {
	Color  *TiledBuffer[uint32]
	Depth  *TiledBuffer[uint16]
	Normal *TiledBuffer[uint32]
}

// Width and Height return the framebuffer's logical dimensions, taken from
// whichever surface is present; it panics if none are.
func (f *Framebuffer) Width() int {
	switch {
	case f.Color != nil:
		return f.Color.Width()
	case f.Depth != nil:
		return f.Depth.Width()
	case f.Normal != nil:
		return f.Normal.Width()
	default:
		panic("tilebuf: framebuffer has no attached surfaces")
	}
}

func (f *Framebuffer) Height() int {
	switch {
	case f.Color != nil:
		return f.Color.Height()
	case f.Depth != nil:
		return f.Depth.Height()
	case f.Normal != nil:
		return f.Normal.Height()
	default:
		panic("tilebuf: framebuffer has no attached surfaces")
	}
}

func (f *Framebuffer) TilesX() int {
	switch {
	case f.Color != nil:
		return f.Color.TilesX()
	case f.Depth != nil:
		return f.Depth.TilesX()
	case f.Normal != nil:
		return f.Normal.TilesX()
	default:
		return 0
	}
}

func (f *Framebuffer) TilesY() int {
	switch {
	case f.Color != nil:
		return f.Color.TilesY()
	case f.Depth != nil:
		return f.Depth.TilesY()
	case f.Normal != nil:
		return f.Normal.TilesY()
	default:
		return 0
	}
}

// FramebufferTileView groups the per-surface TileViews for one tile
// coordinate, with nils for absent surfaces.
type FramebufferTileView struct {
	OriginX, OriginY int
	ClampedWidth     int
	ClampedHeight    int
	Color            *TileView[uint32]
	Depth            *TileView[uint16]
	Normal           *TileView[uint32]
}

// Tile gathers the views of every attached surface at (tx,ty).
func (f *Framebuffer) Tile(tx, ty int) FramebufferTileView {
	var out FramebufferTileView
	if f.Color != nil {
		v := f.Color.Tile(tx, ty)
		out.OriginX, out.OriginY, out.ClampedWidth, out.ClampedHeight = v.OriginX, v.OriginY, v.ClampedWidth, v.ClampedHeight
		out.Color = &v
	}
	if f.Depth != nil {
		v := f.Depth.Tile(tx, ty)
		out.OriginX, out.OriginY, out.ClampedWidth, out.ClampedHeight = v.OriginX, v.OriginY, v.ClampedWidth, v.ClampedHeight
		out.Depth = &v
	}
	if f.Normal != nil {
		v := f.Normal.Tile(tx, ty)
		out.OriginX, out.OriginY, out.ClampedWidth, out.ClampedHeight = v.OriginX, v.OriginY, v.ClampedWidth, v.ClampedHeight
		out.Normal = &v
	}
	return out
}
