package shapes

import (
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

// fullTurn is the end angle written for complete discs.
const fullTurn = 2 * math.Pi

// DiscData is the record of a disc or an arc. Arcs set the arc flag and are
// bounded by StartAngle and EndAngle, in radians counter-clockwise from +X.
type DiscData struct {
	Model      f32.Mat4
	Color      f32.Vec4
	Thickness  float32
	Flags      Flags
	Radius     float32
	StartAngle float32
	EndAngle   float32
}

var discLayout = LayoutOf[DiscData]()

// Kind implements ShapeData.
func (DiscData) Kind() Kind { return KindDisc }

// Shader implements ShapeData.
func (DiscData) Shader() Shader { return ShaderDisc }

// VertexLayout implements ShapeData.
func (DiscData) VertexLayout() Layout { return discLayout }

// Transform implements ShapeData.
func (d DiscData) Transform() mgl32.Mat4 { return mgl32.Mat4(d.Model) }

// NewCircleData encodes a full disc of radius with the current config. It
// is a ring when cfg.Hollow is set.
func NewCircleData(cfg *ShapeConfig, radius float32) DiscData {
	c := DiscComponent{Alignment: cfg.Alignment, Cap: cfg.Cap, Radius: radius}
	return c.record(cfg.Transform.Matrix(), cfg.Fill())
}

// NewArcData encodes an arc of radius from start to end radians with the
// current config. A hollow arc is a ring segment; a solid one is a pie slice.
func NewArcData(cfg *ShapeConfig, radius, start, end float32) DiscData {
	c := DiscComponent{
		Alignment:  cfg.Alignment,
		Cap:        cfg.Cap,
		Radius:     radius,
		Arc:        true,
		StartAngle: start,
		EndAngle:   end,
	}
	return c.record(cfg.Transform.Matrix(), cfg.Fill())
}

// DiscComponent is a persistent disc, or an arc when Arc is set.
type DiscComponent struct {
	Alignment  Alignment
	Cap        Cap
	Radius     float32
	Arc        bool
	StartAngle float32
	EndAngle   float32
}

// NewCircleComponent takes alignment and cap from cfg.
func NewCircleComponent(cfg *ShapeConfig, radius float32) *DiscComponent {
	return &DiscComponent{
		Alignment: cfg.Alignment,
		Cap:       cfg.Cap,
		Radius:    radius,
	}
}

// NewArcComponent takes alignment and cap from cfg.
func NewArcComponent(cfg *ShapeConfig, radius, start, end float32) *DiscComponent {
	return &DiscComponent{
		Alignment:  cfg.Alignment,
		Cap:        cfg.Cap,
		Radius:     radius,
		Arc:        true,
		StartAngle: start,
		EndAngle:   end,
	}
}

func (c *DiscComponent) record(world mgl32.Mat4, fill Fill) DiscData {
	st := fill.style()
	st.flags.SetAlignment(c.Alignment)
	d := DiscData{Radius: c.Radius}
	if c.Arc {
		st.flags.SetArc(true)
		st.flags.SetCap(c.Cap)
		d.StartAngle, d.EndAngle = c.StartAngle, c.EndAngle
	} else {
		d.EndAngle = fullTurn
	}
	d.Model, d.Color, d.Thickness, d.Flags = recordHeader(world, fill, st)
	return d
}

// Data yields the single record of the disc.
func (c *DiscComponent) Data(world mgl32.Mat4, fill Fill) iter.Seq[DiscData] {
	d := c.record(world, fill)
	return func(yield func(DiscData) bool) {
		yield(d)
	}
}

// DiscBundle is a spawnable disc or arc entity.
type DiscBundle = Bundle[*DiscComponent, DiscData]

// NewCircleBundle builds a disc entity from cfg.
func NewCircleBundle(cfg *ShapeConfig, radius float32) *DiscBundle {
	return &DiscBundle{
		Shape:     NewCircleComponent(cfg, radius),
		Transform: cfg.Transform,
		Fill:      cfg.Fill(),
	}
}

// NewArcBundle builds an arc entity from cfg.
func NewArcBundle(cfg *ShapeConfig, radius, start, end float32) *DiscBundle {
	return &DiscBundle{
		Shape:     NewArcComponent(cfg, radius, start, end),
		Transform: cfg.Transform,
		Fill:      cfg.Fill(),
	}
}

// Circle draws a disc of radius centered on the current transform.
func (p *Painter) Circle(radius float32) *Painter {
	Send(p.queue, NewCircleData(&p.ShapeConfig, radius))
	return p
}

// Arc draws an arc of radius from start to end radians.
func (p *Painter) Arc(radius, start, end float32) *Painter {
	Send(p.queue, NewArcData(&p.ShapeConfig, radius, start, end))
	return p
}

// Circle spawns a persistent disc entity.
func (s *Spawner) Circle(radius float32) Spawned[*DiscBundle] {
	return spawn(s, NewCircleBundle(&s.ShapeConfig, radius))
}

// Arc spawns a persistent arc entity.
func (s *Spawner) Arc(radius, start, end float32) Spawned[*DiscBundle] {
	return spawn(s, NewArcBundle(&s.ShapeConfig, radius, start, end))
}
