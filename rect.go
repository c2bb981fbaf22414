package shapes

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

// RectData is the record of one rectangle centered on its transform.
type RectData struct {
	Model       f32.Mat4
	Color       f32.Vec4
	Thickness   float32
	Flags       Flags
	Size        f32.Vec2
	CornerRadii f32.Vec4
}

var rectLayout = LayoutOf[RectData]()

// Kind implements ShapeData.
func (RectData) Kind() Kind { return KindRect }

// Shader implements ShapeData.
func (RectData) Shader() Shader { return ShaderRect }

// VertexLayout implements ShapeData.
func (RectData) VertexLayout() Layout { return rectLayout }

// Transform implements ShapeData.
func (d RectData) Transform() mgl32.Mat4 { return mgl32.Mat4(d.Model) }

// NewRectData encodes a rectangle of size with the current config. It is
// outlined when cfg.Hollow is set.
func NewRectData(cfg *ShapeConfig, size mgl32.Vec2) RectData {
	return newRectData(cfg.Transform.Matrix(), cfg.Fill(), cfg.Alignment, size, cfg.CornerRadii)
}

func newRectData(world mgl32.Mat4, fill Fill, a Alignment, size mgl32.Vec2, radii mgl32.Vec4) RectData {
	st := fill.style()
	st.flags.SetAlignment(a)

	d := RectData{
		Size:        f32.Vec2(size),
		CornerRadii: f32.Vec4(radii),
	}
	d.Model, d.Color, d.Thickness, d.Flags = recordHeader(world, fill, st)
	return d
}

// RectComponent is a persistent rectangle.
type RectComponent struct {
	Alignment   Alignment
	Size        mgl32.Vec2
	CornerRadii mgl32.Vec4
}

// NewRectComponent takes alignment and corner radii from cfg.
func NewRectComponent(cfg *ShapeConfig, size mgl32.Vec2) *RectComponent {
	return &RectComponent{
		Alignment:   cfg.Alignment,
		Size:        size,
		CornerRadii: cfg.CornerRadii,
	}
}

// Data yields the single record of the rectangle.
func (c *RectComponent) Data(world mgl32.Mat4, fill Fill) iter.Seq[RectData] {
	d := newRectData(world, fill, c.Alignment, c.Size, c.CornerRadii)
	return func(yield func(RectData) bool) {
		yield(d)
	}
}

// RectBundle is a spawnable rectangle entity.
type RectBundle = Bundle[*RectComponent, RectData]

// NewRectBundle builds a rectangle entity from cfg.
func NewRectBundle(cfg *ShapeConfig, size mgl32.Vec2) *RectBundle {
	return &RectBundle{
		Shape:     NewRectComponent(cfg, size),
		Transform: cfg.Transform,
		Fill:      cfg.Fill(),
	}
}

// Rect draws a rectangle of size centered on the current transform.
func (p *Painter) Rect(size mgl32.Vec2) *Painter {
	Send(p.queue, NewRectData(&p.ShapeConfig, size))
	return p
}

// Rect spawns a persistent rectangle entity.
func (s *Spawner) Rect(size mgl32.Vec2) Spawned[*RectBundle] {
	return spawn(s, NewRectBundle(&s.ShapeConfig, size))
}
