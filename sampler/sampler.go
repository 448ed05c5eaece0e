// Package sampler builds per-draw texture samplers: a texture, a filter
// mode, and a scalar LOD select a mip (or two, for trilinear) and expose a
// UV pre-scale/bias so the rasterizer's inner loop needs only a
// float-to-integer floor and a power-of-two mask.
package sampler

import (
	"math"

	"github.com/gogpu/tri3d/texture"
)

// Filter selects how a Sampler reconstructs a color from nearby texels.
type Filter int

const (
	Nearest Filter = iota
	Bilinear
	Trilinear
)

// ComputeLOD derives the level-of-detail scalar from the ratio of the
// triangle's texel-space area (its UV area scaled by the base mip
// dimensions) to its screen-space area, per the isotropic
// estimator `0.5*log2(rho^2)`. texWidth/texHeight are the base mip
// dimensions of the sampled texture. Callers must guard against a
// degenerate (zero-area) triangle before calling this.
func ComputeLOD(uvCross, xyCross float32, texWidth, texHeight int) float32 {
	uvArea := absf32(uvCross)
	xyArea := absf32(xyCross)
	rhoSquared := (uvArea * float32(texWidth*texHeight)) / xyArea
	return 0.5 * log2f32(rhoSquared)
}

// Sampler is constructed once per triangle and holds only borrowed texel
// pointers into its texture's immutable backing store.
type Sampler struct {
	tex    *texture.Texture
	filter Filter
	mip0   int
	mip1   int
	blend  float32
	scale  float32
	bias   float32
}

// New builds a Sampler for tex using filter and a precomputed LOD.
func New(tex *texture.Texture, filter Filter, lod float32) *Sampler {
	mips := tex.MipCount()
	level := int(math.Floor(float64(lod)))
	level = clampInt(level, 0, mips-1)

	s := &Sampler{tex: tex, filter: filter}
	switch filter {
	case Trilinear:
		level1 := level + 1
		if level1 > mips-1 {
			level1 = mips - 1
		}
		frac := lod - float32(level)
		frac = clampf32(frac, 0, 1)
		s.mip0, s.mip1, s.blend = level, level1, frac
	default:
		s.mip0, s.mip1, s.blend = level, level, 0
	}
	s.scale = float32(tex.Mip(s.mip0).Dim)
	s.bias = 0
	return s
}

// UVScale and UVBias expose the pre-scale/bias tied to the selected mip, so
// callers computing (u/w, v/w) incrementally can fold the multiply into the
// per-pixel interpolant setup once per triangle instead of per pixel.
func (s *Sampler) UVScale() float32 { return s.scale }
func (s *Sampler) UVBias() float32  { return s.bias }

// Sample fetches a color from raw, un-prescaled normalized (u,v).
func (s *Sampler) Sample(u, v float32) [4]byte {
	return s.SamplePrescaled(u*s.scale+s.bias, v*s.scale+s.bias)
}

// SamplePrescaled fetches a color from (u,v) already multiplied by
// UVScale and offset by UVBias.
func (s *Sampler) SamplePrescaled(u, v float32) [4]byte {
	switch s.filter {
	case Nearest:
		return s.fetchNearest(s.mip0, u, v)
	case Bilinear:
		return s.fetchBilinear(s.mip0, u, v)
	case Trilinear:
		dim0 := s.tex.Mip(s.mip0).Dim
		dim1 := s.tex.Mip(s.mip1).Dim
		ratio := float32(dim1) / float32(dim0)
		c0 := s.fetchBilinear(s.mip0, u, v)
		c1 := s.fetchBilinear(s.mip1, u*ratio, v*ratio)
		return lerpColor(c0, c1, s.blend)
	default:
		return s.fetchNearest(s.mip0, u, v)
	}
}

func (s *Sampler) fetchNearest(level int, u, v float32) [4]byte {
	dim := s.tex.Mip(level).Dim
	x := wrapTrunc(u, dim)
	y := wrapTrunc(v, dim)
	return s.texelAt(level, x, y)
}

func (s *Sampler) fetchBilinear(level int, u, v float32) [4]byte {
	dim := s.tex.Mip(level).Dim
	x0, x1, fx := wrapFrac(u, dim)
	y0, y1, fy := wrapFrac(v, dim)

	c00 := s.texelAt(level, x0, y0)
	c10 := s.texelAt(level, x1, y0)
	c01 := s.texelAt(level, x0, y1)
	c11 := s.texelAt(level, x1, y1)

	top := lerpColor(c00, c10, fx)
	bottom := lerpColor(c01, c11, fx)
	return lerpColor(top, bottom, fy)
}

// texelAt returns the texel at (x,y) of the given mip level, normalized to
// four RGBA-shaped channels regardless of the texture's underlying format.
func (s *Sampler) texelAt(level, x, y int) [4]byte {
	dim := s.tex.Mip(level).Dim
	texels := s.tex.Texels(level)
	idx := y*dim + x
	switch s.tex.Format() {
	case texture.Grayscale:
		g := texels[idx]
		return [4]byte{g, g, g, 255}
	case texture.RGB:
		o := idx * 3
		return [4]byte{texels[o], texels[o+1], texels[o+2], 255}
	case texture.RGBA:
		o := idx * 4
		return [4]byte{texels[o], texels[o+1], texels[o+2], texels[o+3]}
	default:
		return [4]byte{0, 0, 0, 0}
	}
}

// wrapTrunc floors coord to a texel index and wraps it into [0,dim) via a
// power-of-two bitmask. For non-negative coord this equals
// `itrunc(u*W) & (W-1)`; flooring keeps the wrap periodic for negative
// coordinates too, the same way wrapFrac does.
func wrapTrunc(coord float32, dim int) int {
	i := int32(floorf32(coord))
	return int(uint32(i) & uint32(dim-1))
}

// wrapFrac returns the two wrapped texel indices straddling coord and the
// fractional lerp weight between them.
func wrapFrac(coord float32, dim int) (i0, i1 int, frac float32) {
	f := floorf32(coord)
	frac = coord - f
	base := int32(f)
	i0 = int(uint32(base) & uint32(dim-1))
	i1 = int(uint32(base+1) & uint32(dim-1))
	return i0, i1, frac
}

func lerpColor(a, b [4]byte, t float32) [4]byte {
	var out [4]byte
	for i := 0; i < 4; i++ {
		out[i] = lerpByte(a[i], b[i], t)
	}
	return out
}

func lerpByte(a, b byte, t float32) byte {
	v := float32(a) + (float32(b)-float32(a))*t
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v + 0.5)
}

func clampInt(x, min, max int) int {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

func clampf32(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func floorf32(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

func log2f32(x float32) float32 {
	return float32(math.Log2(float64(x)))
}
