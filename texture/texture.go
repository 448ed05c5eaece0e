// Package texture implements immutable, mip-mapped, power-of-two square
// textures. Mip chains are built by 2x2 box-filter downsampling with
// round-to-nearest, and RGBA sources are premultiplied in place on
// construction.
package texture

import "fmt"

// Format describes the channel layout of a texture's texels.
type Format int

const (
	Grayscale Format = iota
	RGB
	RGBA
)

// bytesPerPixel returns the stride of one texel in the given format.
func (f Format) bytesPerPixel() int {
	switch f {
	case Grayscale:
		return 1
	case RGB:
		return 3
	case RGBA:
		return 4
	default:
		panic(fmt.Sprintf("texture: unknown format %d", f))
	}
}

// maxMipLevels bounds the mip chain length, matching the reference
// implementation's fixed-size mip descriptor array.
const maxMipLevels = 16

// TextureSource describes the raw input to Texture construction: a base
// level of width*height*bpp bytes plus its declared format.
type TextureSource struct {
	Texels []byte
	Width  int
	Height int
	Format Format
}

// Mip describes one level of a texture's mip chain: its square dimension
// and the byte offset of its texels within the texture's backing store.
type Mip struct {
	Dim    int
	Offset int
}

// Texture is an immutable, shared, mip-mapped texture. It is always handled
// by pointer; Go's garbage collector provides the sharing and lifetime
// semantics a manually reference-counted handle would give in a language
// without a collector - there is no exposed Release/Retain pair because
// none is needed.
type Texture struct {
	format Format
	data   []byte
	mips   []Mip
}

// New validates src and builds the full mip chain. It panics on any of the
// fatal construction errors the format calls for: non-power-of-two,
// non-square, zero dimension, or a texel buffer that does not match width,
// height and format.
func New(src *TextureSource) *Texture {
	if src.Width == 0 || src.Height == 0 {
		panic("texture: zero dimension")
	}
	if src.Width != src.Height {
		panic(fmt.Sprintf("texture: width %d != height %d, textures must be square", src.Width, src.Height))
	}
	if !isPowerOfTwo(src.Width) {
		panic(fmt.Sprintf("texture: dimension %d is not a power of two", src.Width))
	}
	bpp := src.Format.bytesPerPixel()
	wantLen := src.Width * src.Height * bpp
	if len(src.Texels) != wantLen {
		panic(fmt.Sprintf("texture: texel buffer has %d bytes, want %d", len(src.Texels), wantLen))
	}

	numLevels := mipCount(src.Width)

	mips := make([]Mip, numLevels)
	offset := 0
	dim := src.Width
	for l := 0; l < numLevels; l++ {
		mips[l] = Mip{Dim: dim, Offset: offset}
		offset += alignUp4(dim * dim * bpp)
		dim >>= 1
	}

	data := make([]byte, offset)
	copy(data[mips[0].Offset:], src.Texels)

	if src.Format == RGBA {
		premultiplyRGBA(data[mips[0].Offset : mips[0].Offset+src.Width*src.Height*4])
	}

	for l := 1; l < numLevels; l++ {
		prev, cur := mips[l-1], mips[l]
		boxFilter(
			data[prev.Offset:prev.Offset+prev.Dim*prev.Dim*bpp],
			data[cur.Offset:cur.Offset+cur.Dim*cur.Dim*bpp],
			prev.Dim, cur.Dim, bpp,
		)
	}

	return &Texture{format: src.Format, data: data, mips: mips}
}

func (t *Texture) Format() Format    { return t.format }
func (t *Texture) MipCount() int     { return len(t.mips) }
func (t *Texture) Mip(level int) Mip { return t.mips[level] }

// Texels returns the texel bytes for a given mip level.
func (t *Texture) Texels(level int) []byte {
	m := t.mips[level]
	bpp := t.format.bytesPerPixel()
	return t.data[m.Offset : m.Offset+m.Dim*m.Dim*bpp]
}

func isPowerOfTwo(x int) bool { return x > 0 && x&(x-1) == 0 }

func alignUp4(n int) int { return (n + 3) &^ 3 }

// mipCount returns floor(log2(dim))+1, capped at maxMipLevels.
func mipCount(dim int) int {
	n := 1
	for dim > 1 {
		dim >>= 1
		n++
	}
	if n > maxMipLevels {
		n = maxMipLevels
	}
	return n
}

func premultiplyRGBA(texels []byte) {
	for i := 0; i+3 < len(texels); i += 4 {
		a := uint32(texels[i+3])
		texels[i+0] = byte(uint32(texels[i+0]) * a / 255)
		texels[i+1] = byte(uint32(texels[i+1]) * a / 255)
		texels[i+2] = byte(uint32(texels[i+2]) * a / 255)
	}
}

// boxFilter downsamples src (srcDim x srcDim, bpp bytes/texel) into dst
// (dstDim x dstDim) by averaging each 2x2 block with round-to-nearest:
// (a+b+c+d+2)>>2.
func boxFilter(src, dst []byte, srcDim, dstDim, bpp int) {
	srcStride := srcDim * bpp
	dstStride := dstDim * bpp
	for y := 0; y < dstDim; y++ {
		sy0 := (2 * y) * srcStride
		sy1 := (2*y + 1) * srcStride
		for x := 0; x < dstDim; x++ {
			sx0 := (2 * x) * bpp
			sx1 := (2*x + 1) * bpp
			for c := 0; c < bpp; c++ {
				a := uint32(src[sy0+sx0+c])
				b := uint32(src[sy0+sx1+c])
				cc := uint32(src[sy1+sx0+c])
				d := uint32(src[sy1+sx1+c])
				dst[y*dstStride+x*bpp+c] = byte((a + b + cc + d + 2) >> 2)
			}
		}
	}
}
