package shapes

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

// LineData is the record of one line segment.
type LineData struct {
	Model     f32.Mat4
	Color     f32.Vec4
	Thickness float32
	Flags     Flags
	Start     f32.Vec3
	End       f32.Vec3
}

var lineLayout = LayoutOf[LineData]()

// Kind implements ShapeData.
func (LineData) Kind() Kind { return KindLine }

// Shader implements ShapeData.
func (LineData) Shader() Shader { return ShaderLine }

// VertexLayout implements ShapeData.
func (LineData) VertexLayout() Layout { return lineLayout }

// Transform implements ShapeData.
func (d LineData) Transform() mgl32.Mat4 { return mgl32.Mat4(d.Model) }

// NewLineData encodes a line from start to end with the current config.
// Lines are always strokes of the configured thickness.
func NewLineData(cfg *ShapeConfig, start, end mgl32.Vec3) LineData {
	return newLineData(cfg.Transform.Matrix(), cfg.Stroke(), cfg.Alignment, cfg.Cap, start, end)
}

func newLineData(world mgl32.Mat4, fill Fill, a Alignment, c Cap, start, end mgl32.Vec3) LineData {
	st := fill.style()
	st.flags.SetAlignment(a)
	st.flags.SetCap(c)

	d := LineData{
		Start: f32.Vec3(start),
		End:   f32.Vec3(end),
	}
	d.Model, d.Color, d.Thickness, d.Flags = recordHeader(world, fill, st)
	return d
}

// LineComponent is a persistent line.
type LineComponent struct {
	Alignment Alignment
	Cap       Cap
	Start     mgl32.Vec3
	End       mgl32.Vec3
}

// NewLineComponent takes alignment and cap from cfg.
func NewLineComponent(cfg *ShapeConfig, start, end mgl32.Vec3) *LineComponent {
	return &LineComponent{
		Alignment: cfg.Alignment,
		Cap:       cfg.Cap,
		Start:     start,
		End:       end,
	}
}

// Data yields the single record of the line.
func (c *LineComponent) Data(world mgl32.Mat4, fill Fill) iter.Seq[LineData] {
	d := newLineData(world, fill, c.Alignment, c.Cap, c.Start, c.End)
	return func(yield func(LineData) bool) {
		yield(d)
	}
}

// LineBundle is a spawnable line entity.
type LineBundle = Bundle[*LineComponent, LineData]

// NewLineBundle builds a line entity from cfg. Its fill is a stroke with the
// configured thickness and thickness type.
func NewLineBundle(cfg *ShapeConfig, start, end mgl32.Vec3) *LineBundle {
	return &LineBundle{
		Shape:     NewLineComponent(cfg, start, end),
		Transform: cfg.Transform,
		Fill:      cfg.Stroke(),
	}
}

// Line draws a line from start to end.
func (p *Painter) Line(start, end mgl32.Vec3) *Painter {
	Send(p.queue, NewLineData(&p.ShapeConfig, start, end))
	return p
}

// Line spawns a persistent line entity.
func (s *Spawner) Line(start, end mgl32.Vec3) Spawned[*LineBundle] {
	return spawn(s, NewLineBundle(&s.ShapeConfig, start, end))
}
