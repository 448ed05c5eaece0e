// Package tri3d implements a tiled, multi-threaded CPU software
// rasterizer: a geometry front-end that transforms, clips, and derives
// per-vertex tangent frames (commit), a binning stage that assigns
// post-clip triangles to screen tiles via conservative edge rejection, and
// a per-tile scan-converting back-end (draw) that writes color, depth, and
// normal targets under configurable blending, alpha-test, and
// normal-mapping modes.
package tri3d

import (
	"github.com/gogpu/tri3d/clip"
	"github.com/gogpu/tri3d/internal/parallel"
	"github.com/gogpu/tri3d/tilebuf"
)

// Rasterizer is the engine's single stateful object. Call setup once per
// viewport, then any number of commit calls followed by one draw, then
// reset (or another setup) before the next frame.
type Rasterizer struct {
	viewport Viewport
	tilesX   int
	tilesY   int
	tiles    []tile

	vertices []clip.Vertex
	commands []scheduledCommand

	stats RasterizerStatistics

	debugColoring bool

	pool *parallel.WorkerPool
}

// New constructs a Rasterizer with no viewport configured; call Setup
// before the first commit.
func New() *Rasterizer {
	return &Rasterizer{pool: parallel.NewWorkerPool(0)}
}

// Setup reshapes the tile grid to v and resets all transient state. v's
// extents must be positive; this panics otherwise, matching the
// programmer-error class of failures in spec.
func (r *Rasterizer) Setup(v Viewport) {
	v.validate()
	r.viewport = v
	r.tilesX = ceilDiv(v.width(), tilebuf.TileWidth)
	r.tilesY = ceilDiv(v.height(), tilebuf.TileHeight)
	r.tiles = make([]tile, r.tilesX*r.tilesY)
	for ty := 0; ty < r.tilesY; ty++ {
		for tx := 0; tx < r.tilesX; tx++ {
			r.tiles[ty*r.tilesX+tx] = newTile(tx, ty, v)
		}
	}
	r.Reset()
}

// Reset clears only submission state (vertex pool, scheduled commands,
// per-tile triangle lists and the four counters), preserving tile
// geometry computed by the last Setup.
func (r *Rasterizer) Reset() {
	r.vertices = r.vertices[:0]
	r.commands = r.commands[:0]
	for i := range r.tiles {
		r.tiles[i].Triangles = r.tiles[i].Triangles[:0]
	}
	r.stats = RasterizerStatistics{}
}

// Statistics returns the four counters accumulated since the last Setup or
// Reset.
func (r *Rasterizer) Statistics() RasterizerStatistics { return r.stats }

// SetDebugColoring enables or disables the debug-only coloring mode, which
// replaces a triangle's sampled/interpolated color with a deterministic
// per-triangle hash color.
func (r *Rasterizer) SetDebugColoring(enabled bool) { r.debugColoring = enabled }

func newTile(tx, ty int, v Viewport) tile {
	originX := tx * tilebuf.TileWidth
	originY := ty * tilebuf.TileHeight
	width := clampExtentLocal(originX, tilebuf.TileWidth, v.width())
	height := clampExtentLocal(originY, tilebuf.TileHeight, v.height())
	return tile{
		Bounds: tileBinningBounds{
			MinX: int32(originX) * 256,
			MaxX: int32(originX+tilebuf.TileWidth)*256 - 1,
			MinY: int32(originY) * 256,
			MaxY: int32(originY+tilebuf.TileHeight)*256 - 1,
		},
		OriginX: originX,
		OriginY: originY,
		Width:   width,
		Height:  height,
	}
}

func clampExtentLocal(origin, size, logical int) int {
	if origin+size <= logical {
		return size
	}
	if origin >= logical {
		return 0
	}
	return logical - origin
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
