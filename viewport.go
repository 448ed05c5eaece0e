package tri3d

import "fmt"

// Viewport is the pixel-space rectangle a Rasterizer renders into.
type Viewport struct {
	XMin, YMin, XMax, YMax int
}

func (v Viewport) validate() {
	if v.XMax <= v.XMin || v.YMax <= v.YMin {
		panic(fmt.Sprintf("tri3d: invalid viewport %+v: xmax/ymax must exceed xmin/ymin", v))
	}
}

func (v Viewport) width() int  { return v.XMax - v.XMin }
func (v Viewport) height() int { return v.YMax - v.YMin }
