// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shapes

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

// PolylineData is the record of one polyline segment. It shares the line
// program and the line record layout.
type PolylineData struct {
	Model     f32.Mat4
	Color     f32.Vec4
	Thickness float32
	Flags     Flags
	Start     f32.Vec3
	End       f32.Vec3
}

var polylineLayout = LayoutOf[PolylineData]()

// Kind implements ShapeData.
func (PolylineData) Kind() Kind { return KindPolyline }

// Shader implements ShapeData.
func (PolylineData) Shader() Shader { return ShaderLine }

// VertexLayout implements ShapeData.
func (PolylineData) VertexLayout() Layout { return polylineLayout }

// Transform implements ShapeData.
func (d PolylineData) Transform() mgl32.Mat4 { return mgl32.Mat4(d.Model) }

// NewPolylineData encodes one segment with the current config. Polylines are
// always strokes of the configured thickness.
func NewPolylineData(cfg *ShapeConfig, start, end mgl32.Vec3) PolylineData {
	return newPolylineTemplate(cfg.Transform.Matrix(), cfg.Stroke(), cfg.Alignment, cfg.Cap).segment(start, end)
}

// newPolylineTemplate fills every field that is the same for all segments of
// a strip. Both emission paths go through it.
func newPolylineTemplate(world mgl32.Mat4, fill Fill, a Alignment, c Cap) PolylineData {
	st := fill.style()
	st.flags.SetAlignment(a)
	st.flags.SetCap(c)

	var d PolylineData
	d.Model, d.Color, d.Thickness, d.Flags = recordHeader(world, fill, st)
	return d
}

func (d PolylineData) segment(start, end mgl32.Vec3) PolylineData {
	d.Start = f32.Vec3(start)
	d.End = f32.Vec3(end)
	return d
}

// Segments yields every pair of adjacent points of strip in order: a window
// of two sliding with stride one. A strip of L points yields L-1 pairs;
// strips of zero or one point yield nothing.
func Segments(strip []mgl32.Vec3) iter.Seq2[mgl32.Vec3, mgl32.Vec3] {
	return func(yield func(mgl32.Vec3, mgl32.Vec3) bool) {
		for i := 1; i < len(strip); i++ {
			if !yield(strip[i-1], strip[i]) {
				return
			}
		}
	}
}

// PolylineComponent is a persistent polyline. Strip holds the points in the
// entity's local space and may be edited between frames; the component is
// re-expanded every frame.
type PolylineComponent struct {
	Alignment Alignment
	Cap       Cap
	Strip     []mgl32.Vec3
}

// NewPolylineComponent takes alignment and cap from cfg.
func NewPolylineComponent(cfg *ShapeConfig, strip []mgl32.Vec3) *PolylineComponent {
	return &PolylineComponent{
		Alignment: cfg.Alignment,
		Cap:       cfg.Cap,
		Strip:     strip,
	}
}

// Data yields one record per segment of the strip, in strip order. The style
// is resolved from fill once and shared by every segment.
func (c *PolylineComponent) Data(world mgl32.Mat4, fill Fill) iter.Seq[PolylineData] {
	tmpl := newPolylineTemplate(world, fill, c.Alignment, c.Cap)
	strip := c.Strip
	return func(yield func(PolylineData) bool) {
		for start, end := range Segments(strip) {
			if !yield(tmpl.segment(start, end)) {
				return
			}
		}
	}
}

// PolylineBundle is a spawnable polyline entity.
type PolylineBundle = Bundle[*PolylineComponent, PolylineData]

// NewPolylineBundle builds a polyline entity from cfg. Its fill is a stroke
// with the configured thickness and thickness type.
func NewPolylineBundle(cfg *ShapeConfig, strip []mgl32.Vec3) *PolylineBundle {
	return &PolylineBundle{
		Shape:     NewPolylineComponent(cfg, strip),
		Transform: cfg.Transform,
		Fill:      cfg.Stroke(),
	}
}

// Polyline draws strip as connected segments for this frame.
func (p *Painter) Polyline(strip []mgl32.Vec3) *Painter {
	tmpl := newPolylineTemplate(p.Transform.Matrix(), p.Stroke(), p.Alignment, p.Cap)
	b := BatchOf[PolylineData](p.queue)
	for start, end := range Segments(strip) {
		b.records = append(b.records, tmpl.segment(start, end))
	}
	return p
}

// Polyline spawns a persistent polyline entity holding strip.
func (s *Spawner) Polyline(strip []mgl32.Vec3) Spawned[*PolylineBundle] {
	return spawn(s, NewPolylineBundle(&s.ShapeConfig, strip))
}
