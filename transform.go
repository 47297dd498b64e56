// Coordinate transform.
//
// MIF files may declare an affine "Transform" clause, and converters often
// rescale coordinates between projections. The LineFile carries the four
// coefficients so every coordinate crossing the text boundary goes through
// the same mapping: out = in*scale + offset, per axis.
package mitab

import "github.com/twpayne/go-geom"

// Transform holds per-axis scale and offset.
type Transform struct {
	XScale  float64 `json:"x_scale"`
	YScale  float64 `json:"y_scale"`
	XOffset float64 `json:"x_offset"`
	YOffset float64 `json:"y_offset"`
}

// Identity leaves coordinates unchanged.
var Identity = Transform{XScale: 1, YScale: 1}

// X maps an X value. The explicit conversion stops the compiler from
// fusing the multiply and add, so results are identical on every platform.
func (t Transform) X(x float64) float64 {
	return float64(x*t.XScale) + t.XOffset
}

// Y maps a Y value.
func (t Transform) Y(y float64) float64 {
	return float64(y*t.YScale) + t.YOffset
}

// SetTransform replaces the coefficients. It may be called at any time,
// open or closed.
func (f *LineFile) SetTransform(xScale, yScale, xOffset, yOffset float64) {
	f.tr = Transform{XScale: xScale, YScale: yScale, XOffset: xOffset, YOffset: yOffset}
	f.trSet = true
}

// Transform returns the current coefficients: the last SetTransform, else
// Config.Transform, else Identity.
func (f *LineFile) Transform() Transform {
	switch {
	case f.trSet:
		return f.tr
	case f.config.Transform != nil:
		return *f.config.Transform
	}
	return Identity
}

// TransformX returns x*XScale + XOffset.
func (f *LineFile) TransformX(x float64) float64 {
	return f.Transform().X(x)
}

// TransformY returns y*YScale + YOffset.
func (f *LineFile) TransformY(y float64) float64 {
	return f.Transform().Y(y)
}

// TransformXY maps a coordinate pair.
func (f *LineFile) TransformXY(x, y float64) (float64, float64) {
	t := f.Transform()
	return t.X(x), t.Y(y)
}

// TransformGeom applies the transform in place to every coordinate of g.
// Only the first two ordinates of each coordinate are touched; Z and M
// pass through. A nil or empty geometry is left alone, and the members of
// a GeometryCollection are transformed one by one.
func (f *LineFile) TransformGeom(g geom.T) {
	if g == nil {
		return
	}
	if gc, ok := g.(*geom.GeometryCollection); ok {
		for _, member := range gc.Geoms() {
			f.TransformGeom(member)
		}
		return
	}
	flat := g.FlatCoords()
	stride := g.Stride()
	if stride < 2 {
		return
	}
	t := f.Transform()
	for i := 0; i+1 < len(flat); i += stride {
		flat[i] = t.X(flat[i])
		flat[i+1] = t.Y(flat[i+1])
	}
}
