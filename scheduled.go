package tri3d

import (
	"github.com/gogpu/tri3d/sampler"
	"github.com/gogpu/tri3d/texture"
)

// scheduledCommand is the minimum unit of draw state shared by a run of
// consecutive triangles: texture, normal map, filter, blend mode, and
// alpha-test threshold. Adjacent commits that yield an structurally equal
// scheduledCommand are coalesced instead of appended.
type scheduledCommand struct {
	Albedo             *texture.Texture
	NormalMap          *texture.Texture
	Filter             sampler.Filter
	BlendMode          BlendMode
	AlphaTestThreshold uint8
}

// equal compares filter, blend mode, alpha-test threshold, and the
// identity (pointer equality) of the two texture handles - never their
// contents, since textures are immutable and shared by reference.
func (a scheduledCommand) equal(b scheduledCommand) bool {
	return a.Albedo == b.Albedo &&
		a.NormalMap == b.NormalMap &&
		a.Filter == b.Filter &&
		a.BlendMode == b.BlendMode &&
		a.AlphaTestThreshold == b.AlphaTestThreshold
}

// scheduledTriangle references a run of three consecutive vertices in the
// rasterizer's vertex pool, tagged with the scheduledCommand active when it
// was appended.
type scheduledTriangle struct {
	CommandIndex int
	VertexOffset int
}

// tileBinningBounds is the fixed-point (24.8) screen-space AABB of a
// tile's interior sample centers, used by the binner's conservative
// edge-function rejection test.
type tileBinningBounds struct {
	MinX, MaxX, MinY, MaxY int32
}

// tile is one bin: its fixed-point bounds, its local viewport (origin and
// extent clamped against the framebuffer), and the ordered list of
// triangles assigned to it during commit.
type tile struct {
	Bounds           tileBinningBounds
	OriginX, OriginY int
	Width, Height    int
	Triangles        []scheduledTriangle
}
