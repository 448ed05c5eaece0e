package tri3d

import (
	"github.com/gogpu/tri3d/clip"
	"github.com/gogpu/tri3d/internal/fixedpoint"
	"github.com/gogpu/tri3d/linear"
	"github.com/gogpu/tri3d/tilebuf"
)

const tangentDeterminantEpsilon = 1e-6

// Commit transforms, clips, culls, and bins every triangle named by cmd,
// appending surviving triangles to the rasterizer's vertex pool and tile
// bins. It may be called any number of times between Setup/Reset and Draw.
func (r *Rasterizer) Commit(cmd *RasterizationCommand) {
	n := cmd.triangleCount()
	if n == 0 {
		return
	}

	blend := cmd.BlendMode != BlendModeNone
	uniformColor := cmd.resolvedColor()
	if blend {
		uniformColor = premultiplyColor(uniformColor)
	}

	var normalMat linear.Mat33
	hasNormals := len(cmd.Normals) > 0
	if hasNormals {
		normalMat = cmd.Model.AsMat33().Inverse().Transpose()
	}

	candidate := scheduledCommand{
		Albedo:             cmd.Albedo,
		NormalMap:          cmd.NormalMap,
		Filter:             cmd.Filter,
		BlendMode:          cmd.BlendMode,
		AlphaTestThreshold: cmd.AlphaTestThreshold,
	}
	cmdIndex := r.scheduleCommand(candidate)

	for t := 0; t < n; t++ {
		r.stats.CommittedTriangles++

		i0, i1, i2 := cmd.triangleIndices(t)
		v0, v1, v2 := r.assembleVertex(cmd, i0, uniformColor, blend, hasNormals, normalMat),
			r.assembleVertex(cmd, i1, uniformColor, blend, hasNormals, normalMat),
			r.assembleVertex(cmd, i2, uniformColor, blend, hasNormals, normalMat)

		if !hasNormals {
			flat := v1.WorldPos.Sub(v0.WorldPos).Cross(v2.WorldPos.Sub(v0.WorldPos)).Normalized()
			v0.Normal, v1.Normal, v2.Normal = flat, flat, flat
		}

		applyTangent(&v0, &v1, &v2)

		poly := clip.Triangle(v0, v1, v2)
		if len(poly) == 0 {
			continue
		}

		for i := 1; i+1 < len(poly); i++ {
			r.scheduleFanTriangle(cmd.CullMode, cmdIndex, poly[0], poly[i], poly[i+1])
		}
	}
}

// scheduleCommand appends candidate as a new scheduled command unless it
// structurally equals the currently-active one, and returns the index of
// the command the next triangles should reference.
func (r *Rasterizer) scheduleCommand(candidate scheduledCommand) int {
	if len(r.commands) > 0 && r.commands[len(r.commands)-1].equal(candidate) {
		return len(r.commands) - 1
	}
	r.commands = append(r.commands, candidate)
	return len(r.commands) - 1
}

func (r *Rasterizer) assembleVertex(cmd *RasterizationCommand, index uint32, uniformColor linear.Vec4, blend, hasNormals bool, normalMat linear.Mat33) clip.Vertex {
	pos := cmd.Positions[index]
	world := cmd.Model.MulVec4(pos.AsPoint4()).XYZ()
	clipPos := cmd.Projection.MulVec4(cmd.View.MulVec4(world.AsPoint4()))

	var texCoord linear.Vec2
	if len(cmd.TexCoords) > 0 {
		texCoord = cmd.TexCoords[index]
	}

	var normal linear.Vec3
	if hasNormals {
		normal = normalMat.MulVec3(cmd.Normals[index]).Normalized()
	}

	color := uniformColor
	if len(cmd.Colors) > 0 {
		vertexColor := cmd.Colors[index]
		if blend {
			vertexColor = premultiplyColor(vertexColor)
			if uniformColor != DefaultColor {
				vertexColor = vertexColor.MulElem(uniformColor)
			}
		} else if cmd.Color != (linear.Vec4{}) {
			vertexColor = vertexColor.MulElem(uniformColor)
		}
		color = vertexColor
	}

	return clip.Vertex{
		ClipPos:  clipPos,
		WorldPos: world,
		Normal:   normal,
		Color:    color,
		TexCoord: texCoord,
	}
}

// applyTangent derives a single per-triangle tangent from the UV gradient
// and world-space edges, Gram-Schmidt orthogonalised against each vertex's
// own normal, and stores it on all three vertices. A near-singular UV
// parametrization falls back to (1,0,0) before orthogonalisation, avoiding
// NaN on degenerate UV triangles.
func applyTangent(v0, v1, v2 *clip.Vertex) {
	e1 := v1.WorldPos.Sub(v0.WorldPos)
	e2 := v2.WorldPos.Sub(v0.WorldPos)
	duv1 := v1.TexCoord.Sub(v0.TexCoord)
	duv2 := v2.TexCoord.Sub(v0.TexCoord)

	det := duv1.X*duv2.Y - duv1.Y*duv2.X

	var t linear.Vec3
	if absf(det) < tangentDeterminantEpsilon {
		t = linear.Vec3{X: 1, Y: 0, Z: 0}
	} else {
		invDet := 1 / det
		t = e1.Mul(duv2.Y).Sub(e2.Mul(duv1.Y)).Mul(invDet)
	}

	v0.Tangent = orthogonalize(t, v0.Normal)
	v1.Tangent = orthogonalize(t, v1.Normal)
	v2.Tangent = orthogonalize(t, v2.Normal)
}

func orthogonalize(t, n linear.Vec3) linear.Vec3 {
	proj := n.Mul(n.Dot(t))
	return t.Sub(proj).Normalized()
}

// scheduleFanTriangle perspective-divides, viewport-maps, and culls one
// fan triangle, then appends it to the vertex pool and bins it.
func (r *Rasterizer) scheduleFanTriangle(cullMode CullMode, cmdIndex int, a, b, c clip.Vertex) {
	va := r.perspectiveDivideAndMap(a)
	vb := r.perspectiveDivideAndMap(b)
	vc := r.perspectiveDivideAndMap(c)

	area2 := signedArea2(va.ClipPos, vb.ClipPos, vc.ClipPos)

	if area2 < 0 {
		if cullMode == CullCW {
			return
		}
		vb, vc = vc, vb
		area2 = -area2
	} else {
		if cullMode == CullCCW {
			return
		}
	}

	if area2 < 1 {
		return
	}

	r.stats.ScheduledTriangles++

	offset := len(r.vertices)
	r.vertices = append(r.vertices, va, vb, vc)
	r.binTriangle(scheduledTriangle{CommandIndex: cmdIndex, VertexOffset: offset})
}

// perspectiveDivideAndMap divides by w (storing 1/w in the w slot) and
// maps x,y into pixel space; z is left as NDC z, which remains affine in
// screen space for the remainder of the pipeline.
func (r *Rasterizer) perspectiveDivideAndMap(v clip.Vertex) clip.Vertex {
	invW := 1 / v.ClipPos.W
	ndcX := v.ClipPos.X * invW
	ndcY := v.ClipPos.Y * invW
	ndcZ := v.ClipPos.Z * invW

	width := float32(r.viewport.width())
	height := float32(r.viewport.height())
	pixelX := (ndcX*0.5 + 0.5) * width
	pixelY := (1 - (ndcY*0.5 + 0.5)) * height

	v.ClipPos = linear.Vec4{X: pixelX, Y: pixelY, Z: ndcZ, W: invW}
	return v
}

func signedArea2(a, b, c linear.Vec4) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// binTriangle assigns tri to every tile its pixel-space AABB may cover,
// using the exact binning regime from spec: single-row/column spans bin
// unconditionally, multi-tile spans are conservatively rejected by a
// three-edge-function fixed-point corner test.
func (r *Rasterizer) binTriangle(tri scheduledTriangle) {
	a, b, c := r.vertices[tri.VertexOffset], r.vertices[tri.VertexOffset+1], r.vertices[tri.VertexOffset+2]

	minX := minf(a.ClipPos.X, b.ClipPos.X, c.ClipPos.X)
	maxX := maxf(a.ClipPos.X, b.ClipPos.X, c.ClipPos.X)
	minY := minf(a.ClipPos.Y, b.ClipPos.Y, c.ClipPos.Y)
	maxY := maxf(a.ClipPos.Y, b.ClipPos.Y, c.ClipPos.Y)

	fxMin, fxMax := fixedpoint.FromFloat(minX), fixedpoint.FromFloat(maxX)
	fyMin, fyMax := fixedpoint.FromFloat(minY), fixedpoint.FromFloat(maxY)

	indXMin := clampInt(int(fxMin/(256*tilebuf.TileWidth)), 0, r.tilesX-1)
	indXMax := clampInt(int(fxMax/(256*tilebuf.TileWidth)), 0, r.tilesX-1)
	indYMin := clampInt(int(fyMin/(256*tilebuf.TileHeight)), 0, r.tilesY-1)
	indYMax := clampInt(int(fyMax/(256*tilebuf.TileHeight)), 0, r.tilesY-1)

	singleSpan := indXMin == indXMax || indYMin == indYMax

	ax, ay := fixedpoint.FromFloat(a.ClipPos.X), fixedpoint.FromFloat(a.ClipPos.Y)
	bx, by := fixedpoint.FromFloat(b.ClipPos.X), fixedpoint.FromFloat(b.ClipPos.Y)
	cx, cy := fixedpoint.FromFloat(c.ClipPos.X), fixedpoint.FromFloat(c.ClipPos.Y)

	for ty := indYMin; ty <= indYMax; ty++ {
		for tx := indXMin; tx <= indXMax; tx++ {
			idx := ty*r.tilesX + tx
			bounds := r.tiles[idx].Bounds
			if singleSpan || !edgeRejects(ax, ay, bx, by, bounds) &&
				!edgeRejects(bx, by, cx, cy, bounds) &&
				!edgeRejects(cx, cy, ax, ay, bounds) {
				r.tiles[idx].Triangles = append(r.tiles[idx].Triangles, tri)
				r.stats.BinnedTriangles++
			} else {
				logBinningReject(tx, ty)
			}
		}
	}
}

// edgeRejects reports whether the directed edge (ax,ay)->(bx,by), all in
// 24.8 fixed point, leaves every one of the tile's four corners strictly
// outside (negative) - in which case the tile cannot be covered by the
// triangle on this edge's side.
func edgeRejects(ax, ay, bx, by int32, bounds tileBinningBounds) bool {
	dx := int64(bx - ax)
	dy := int64(by - ay)
	edge := func(px, py int32) int64 {
		return dx*int64(py-ay) - dy*int64(px-ax)
	}
	corners := [4]int64{
		edge(bounds.MinX, bounds.MinY),
		edge(bounds.MaxX, bounds.MinY),
		edge(bounds.MinX, bounds.MaxY),
		edge(bounds.MaxX, bounds.MaxY),
	}
	for _, v := range corners {
		if v >= 0 {
			return false
		}
	}
	return true
}

func logBinningReject(tx, ty int) {
	Logger().Debug("tile rejected by conservative binning", "tile_x", tx, "tile_y", ty)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func minf(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxf(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
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
