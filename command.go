package tri3d

import (
	"github.com/gogpu/tri3d/linear"
	"github.com/gogpu/tri3d/sampler"
	"github.com/gogpu/tri3d/texture"
)

// CullMode selects which winding order, if any, is discarded after
// fan-triangulation.
type CullMode int

const (
	CullNone CullMode = iota
	CullCW
	CullCCW
)

// BlendMode selects how a fragment's color combines with the destination.
type BlendMode int

const (
	BlendModeNone BlendMode = iota
	BlendModeNormal
	BlendModeAdditive
)

// Filter re-exports sampler.Filter so callers need not import the sampler
// package to build a RasterizationCommand.
type Filter = sampler.Filter

const (
	FilterNearest   = sampler.Nearest
	FilterBilinear  = sampler.Bilinear
	FilterTrilinear = sampler.Trilinear
)

// RasterizationCommand is one commit's worth of input geometry and draw
// state. World positions are required; everything else is optional and
// falls back to a documented default. Slices are borrowed for the duration
// of the commit call only.
type RasterizationCommand struct {
	Positions []linear.Vec3
	Normals   []linear.Vec3
	TexCoords []linear.Vec2
	Colors    []linear.Vec4
	Indices   []uint32

	Model      linear.Mat34
	View       linear.Mat44
	Projection linear.Mat44

	CullMode CullMode

	// Color is the uniform command color, applied to every vertex and
	// multiplied with any per-vertex color. Defaults to opaque white when
	// the zero value is used; callers that want true transparent white
	// must set it explicitly after constructing the command.
	Color linear.Vec4

	Albedo    *texture.Texture
	NormalMap *texture.Texture

	Filter             Filter
	BlendMode          BlendMode
	AlphaTestThreshold uint8
}

// DefaultColor is the uniform color used when a RasterizationCommand's
// Color field is left at its zero value.
var DefaultColor = linear.Vec4{X: 1, Y: 1, Z: 1, W: 1}

func (c *RasterizationCommand) resolvedColor() linear.Vec4 {
	if c.Color == (linear.Vec4{}) {
		return DefaultColor
	}
	return c.Color
}

func (c *RasterizationCommand) triangleCount() int {
	if len(c.Indices) > 0 {
		return len(c.Indices) / 3
	}
	return len(c.Positions) / 3
}

func (c *RasterizationCommand) triangleIndices(t int) (i0, i1, i2 uint32) {
	if len(c.Indices) > 0 {
		base := t * 3
		return c.Indices[base], c.Indices[base+1], c.Indices[base+2]
	}
	base := uint32(t * 3)
	return base, base + 1, base + 2
}
