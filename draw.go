package tri3d

import (
	"fmt"
	"sort"

	"github.com/gogpu/tri3d/internal/kernel"
	"github.com/gogpu/tri3d/internal/parallel"
	"github.com/gogpu/tri3d/tilebuf"
)

// maxBatchTriangles caps a single draw_triangles kernel call, matching the
// reference implementation's fixed-capacity ArrayVec<Vertex, 384>.
const maxBatchTriangles = 128

// Draw consumes every triangle committed since the last Setup or Reset and
// writes surviving fragments into fb. For each non-empty tile this walks
// its triangles in submission order, batching contiguous runs that share a
// ScheduledCommand, and hands each batch to the back-end scan-converter.
// With more than one non-empty tile, jobs run in parallel on the
// rasterizer's worker pool, ordered by decreasing triangle count; with one
// tile, the job runs inline. Draw does not resize fb - its dimensions must
// already match the viewport passed to Setup.
func (r *Rasterizer) Draw(fb *tilebuf.Framebuffer) {
	if fb.Width() != r.viewport.width() || fb.Height() != r.viewport.height() {
		panic(fmt.Sprintf("tri3d: framebuffer %dx%d does not match viewport %dx%d", fb.Width(), fb.Height(), r.viewport.width(), r.viewport.height()))
	}

	type activeTile struct {
		index int
		count int
	}
	active := make([]activeTile, 0, len(r.tiles))
	for i := range r.tiles {
		if n := len(r.tiles[i].Triangles); n > 0 {
			active = append(active, activeTile{index: i, count: n})
		}
	}
	if len(active) == 0 {
		return
	}
	sort.Slice(active, func(i, j int) bool { return active[i].count > active[j].count })

	tileStats := make([]kernel.Stats, len(active))
	jobs := make([]parallel.Job, len(active))
	for j, at := range active {
		tx, ty := at.index%r.tilesX, at.index/r.tilesX
		t := &r.tiles[at.index]
		stat := &tileStats[j]
		jobs[j] = func() {
			view := fb.Tile(tx, ty)
			r.drawTile(view, t, stat)
		}
	}
	r.pool.ExecuteAll(jobs)

	for i := range tileStats {
		r.stats.FragmentsDrawn += tileStats[i].FragmentsDrawn
	}
}

// drawTile walks one tile's triangles in submission order, grouping
// contiguous runs that share a scheduled-command index into batches of up
// to maxBatchTriangles, and dispatches each batch to the kernel.
func (r *Rasterizer) drawTile(view tilebuf.FramebufferTileView, t *tile, stat *kernel.Stats) {
	tris := t.Triangles
	batch := make([]kernel.Triangle, 0, maxBatchTriangles)
	for i := 0; i < len(tris); {
		cmdIndex := tris[i].CommandIndex
		batch = batch[:0]
		for i < len(tris) && tris[i].CommandIndex == cmdIndex && len(batch) < maxBatchTriangles {
			off := tris[i].VertexOffset
			batch = append(batch, kernel.Triangle{
				V0: r.vertices[off],
				V1: r.vertices[off+1],
				V2: r.vertices[off+2],
				ID: off,
			})
			i++
		}
		r.drawBatch(view, r.commands[cmdIndex], batch, stat)
	}
}

func (r *Rasterizer) drawBatch(view tilebuf.FramebufferTileView, cmd scheduledCommand, batch []kernel.Triangle, stat *kernel.Stats) {
	hasTexture := cmd.Albedo != nil
	features := kernel.Features{
		HasColor:   view.Color != nil,
		HasDepth:   view.Depth != nil,
		HasTexture: hasTexture,
		Blend:      toKernelBlend(cmd.BlendMode),
		AlphaTest:  hasTexture && cmd.AlphaTestThreshold > 0,
	}
	switch {
	case view.Normal != nil && cmd.NormalMap != nil:
		features.Normals = kernel.NormalsMapping
	case view.Normal != nil:
		features.Normals = kernel.NormalsVertex
	default:
		features.Normals = kernel.NormalsOff
	}

	kernel.DrawBatch(view, kernel.Batch{
		Triangles:          batch,
		AlbedoTexture:      cmd.Albedo,
		NormalMapTexture:   cmd.NormalMap,
		Filter:             cmd.Filter,
		Features:           features,
		AlphaTestThreshold: cmd.AlphaTestThreshold,
		DebugColoring:      r.debugColoring,
	}, stat)
}

func toKernelBlend(b BlendMode) kernel.BlendMode {
	switch b {
	case BlendModeNormal:
		return kernel.BlendNormal
	case BlendModeAdditive:
		return kernel.BlendAdditive
	default:
		return kernel.BlendNone
	}
}

