package shapes

import "github.com/go-gl/mathgl/mgl32"

// ShapeConfig is the mutable style context shared by the painter and the
// spawner. The emitting call site owns it; it is never shared between
// concurrent emitters.
type ShapeConfig struct {
	Transform Transform
	Color     Color

	// Hollow draws rects, discs and arcs as outlines of Thickness.
	Hollow        bool
	Cap           Cap
	Thickness     float32
	ThicknessType ThicknessType
	Alignment     Alignment

	// CornerRadii holds the rect corner radii in the order
	// top-left, top-right, bottom-right, bottom-left.
	CornerRadii mgl32.Vec4
}

// DefaultConfig2D returns the defaults for shapes drawn in a 2D scene.
func DefaultConfig2D() ShapeConfig {
	return ShapeConfig{
		Transform:     Identity(),
		Color:         White,
		Cap:           CapRound,
		Thickness:     1,
		ThicknessType: World,
		Alignment:     Flat,
	}
}

// DefaultConfig3D returns the defaults for shapes drawn in a 3D scene. It
// differs from the 2D defaults only by a thinner stroke.
func DefaultConfig3D() ShapeConfig {
	c := DefaultConfig2D()
	c.Thickness = 0.1
	return c
}

// ConfigOption configures a ShapeConfig during creation.
//
// Example:
//
//	cfg := shapes.NewConfig(
//	    shapes.WithColor(shapes.Red),
//	    shapes.WithThickness(0.5, shapes.Screen),
//	)
type ConfigOption func(*ShapeConfig)

// NewConfig returns the 2D defaults with opts applied in order.
func NewConfig(opts ...ConfigOption) ShapeConfig {
	c := DefaultConfig2D()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithColor sets the shape color.
func WithColor(c Color) ConfigOption {
	return func(cfg *ShapeConfig) {
		cfg.Color = c
	}
}

// WithThickness sets the stroke thickness and the unit it is measured in.
func WithThickness(thickness float32, tt ThicknessType) ConfigOption {
	return func(cfg *ShapeConfig) {
		cfg.Thickness = thickness
		cfg.ThicknessType = tt
	}
}

// WithThicknessType sets only the unit the thickness is measured in.
func WithThicknessType(tt ThicknessType) ConfigOption {
	return func(cfg *ShapeConfig) {
		cfg.ThicknessType = tt
	}
}

// WithAlignment sets the alignment.
func WithAlignment(a Alignment) ConfigOption {
	return func(cfg *ShapeConfig) {
		cfg.Alignment = a
	}
}

// WithCap sets the cap style.
func WithCap(c Cap) ConfigOption {
	return func(cfg *ShapeConfig) {
		cfg.Cap = c
	}
}

// WithHollow sets whether rects, discs and arcs are drawn as outlines.
func WithHollow(hollow bool) ConfigOption {
	return func(cfg *ShapeConfig) {
		cfg.Hollow = hollow
	}
}

// WithCornerRadii sets the rect corner radii.
func WithCornerRadii(r mgl32.Vec4) ConfigOption {
	return func(cfg *ShapeConfig) {
		cfg.CornerRadii = r
	}
}

// WithTransform sets the starting transform.
func WithTransform(t Transform) ConfigOption {
	return func(cfg *ShapeConfig) {
		cfg.Transform = t
	}
}

// Reset restores the 2D defaults.
func (c *ShapeConfig) Reset() {
	*c = DefaultConfig2D()
}

// Clone returns a copy of the config.
func (c *ShapeConfig) Clone() ShapeConfig {
	return *c
}

// SetColor sets the shape color.
func (c *ShapeConfig) SetColor(col Color) {
	c.Color = col
}

// Translate moves the transform along its local axes.
func (c *ShapeConfig) Translate(v mgl32.Vec3) {
	c.Transform.Translate(v)
}

// SetTranslation places the transform at v, keeping rotation and scale.
func (c *ShapeConfig) SetTranslation(v mgl32.Vec3) {
	c.Transform.Translation = v
}

// Rotate applies q in local space.
func (c *ShapeConfig) Rotate(q mgl32.Quat) {
	c.Transform.Rotate(q)
}

// RotateX rotates around the local X axis.
func (c *ShapeConfig) RotateX(angle float32) {
	c.Transform.RotateX(angle)
}

// RotateY rotates around the local Y axis.
func (c *ShapeConfig) RotateY(angle float32) {
	c.Transform.RotateY(angle)
}

// RotateZ rotates around the local Z axis.
func (c *ShapeConfig) RotateZ(angle float32) {
	c.Transform.RotateZ(angle)
}

// Scale multiplies the transform scale component-wise.
func (c *ShapeConfig) Scale(v mgl32.Vec3) {
	c.Transform.ScaleBy(v)
}

// Fill returns the fill descriptor implied by the current style: a stroke of
// the configured thickness when hollow, a solid fill otherwise.
func (c *ShapeConfig) Fill() Fill {
	if c.Hollow {
		return c.Stroke()
	}
	return SolidFill(c.Color)
}

// Stroke returns a stroke fill with the configured color and thickness,
// regardless of Hollow. Lines and polylines are always strokes.
func (c *ShapeConfig) Stroke() Fill {
	return StrokeFill(c.Color, c.Thickness, c.ThicknessType)
}
