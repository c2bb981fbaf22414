package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/shapes"
	"gopkg.in/yaml.v3"
)

// Scene is a YAML description of shapes to encode.
type Scene struct {
	Config Style       `yaml:"config"`
	Shapes []ShapeSpec `yaml:"shapes"`

	// items holds Shapes resolved by ParseScene, in the same order.
	items []item
}

// item is a validated shape: its effective config and parsed geometry.
type item struct {
	kind  string
	cfg   shapes.ShapeConfig
	size  mgl32.Vec2
	start mgl32.Vec3
	end   mgl32.Vec3
	strip []mgl32.Vec3

	radius, startAngle, endAngle float32
}

// Style overrides fields of the shape config. Unset fields are left alone.
type Style struct {
	Color         string    `yaml:"color"`
	Thickness     *float32  `yaml:"thickness"`
	ThicknessType string    `yaml:"thickness_type"` // world, pixels or screen
	Alignment     string    `yaml:"alignment"`      // flat or billboard
	Cap           string    `yaml:"cap"`            // none, square or round
	Hollow        *bool     `yaml:"hollow"`
	CornerRadii   []float32 `yaml:"corner_radii"`
}

// ShapeSpec is one shape of a scene.
type ShapeSpec struct {
	Kind  string `yaml:"kind"` // rect, line, circle, arc or polyline
	Style `yaml:",inline"`

	Translation []float32 `yaml:"translation"`
	Rotation    float32   `yaml:"rotation"` // radians around Z

	Size       []float32   `yaml:"size"`
	Start      []float32   `yaml:"start"`
	End        []float32   `yaml:"end"`
	Radius     float32     `yaml:"radius"`
	StartAngle float32     `yaml:"start_angle"`
	EndAngle   float32     `yaml:"end_angle"`
	Points     [][]float32 `yaml:"points"`
}

var errNoShapes = errors.New("scene has no shapes")

// LoadScene reads and validates a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene decodes and validates a scene.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if len(s.Shapes) == 0 {
		return nil, errNoShapes
	}
	base := shapes.DefaultConfig2D()
	if err := s.Config.apply(&base); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	s.items = make([]item, len(s.Shapes))
	for i := range s.Shapes {
		it, err := s.Shapes[i].resolve(base)
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, s.Shapes[i].Kind, err)
		}
		s.items[i] = it
	}
	return &s, nil
}

func (st *Style) apply(cfg *shapes.ShapeConfig) error {
	if st.Color != "" {
		c, err := shapes.ParseHex(st.Color)
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		cfg.Color = c
	}
	if st.Thickness != nil {
		cfg.Thickness = *st.Thickness
	}
	if st.ThicknessType != "" {
		tt, err := parseThicknessType(st.ThicknessType)
		if err != nil {
			return err
		}
		cfg.ThicknessType = tt
	}
	if st.Alignment != "" {
		a, err := parseAlignment(st.Alignment)
		if err != nil {
			return err
		}
		cfg.Alignment = a
	}
	if st.Cap != "" {
		c, err := parseCap(st.Cap)
		if err != nil {
			return err
		}
		cfg.Cap = c
	}
	if st.Hollow != nil {
		cfg.Hollow = *st.Hollow
	}
	if st.CornerRadii != nil {
		r, err := vec4(st.CornerRadii)
		if err != nil {
			return fmt.Errorf("corner_radii: %w", err)
		}
		cfg.CornerRadii = r
	}
	return nil
}

// resolve applies the shape's style and placement over base and parses its
// geometry.
func (sp *ShapeSpec) resolve(base shapes.ShapeConfig) (item, error) {
	it := item{
		kind:       sp.Kind,
		cfg:        base,
		radius:     sp.Radius,
		startAngle: sp.StartAngle,
		endAngle:   sp.EndAngle,
	}
	if err := sp.Style.apply(&it.cfg); err != nil {
		return item{}, err
	}
	if sp.Translation != nil {
		v, err := vec3(sp.Translation)
		if err != nil {
			return item{}, fmt.Errorf("translation: %w", err)
		}
		it.cfg.SetTranslation(v)
	}
	if sp.Rotation != 0 {
		it.cfg.RotateZ(sp.Rotation)
	}

	var err error
	switch sp.Kind {
	case "rect":
		if it.size, err = vec2(sp.Size); err != nil {
			return item{}, fmt.Errorf("size: %w", err)
		}
	case "line":
		if it.start, err = vec3(sp.Start); err != nil {
			return item{}, fmt.Errorf("start: %w", err)
		}
		if it.end, err = vec3(sp.End); err != nil {
			return item{}, fmt.Errorf("end: %w", err)
		}
	case "circle", "arc":
	case "polyline":
		if it.strip, err = strip(sp.Points); err != nil {
			return item{}, fmt.Errorf("points: %w", err)
		}
	default:
		return item{}, fmt.Errorf("unknown kind %q", sp.Kind)
	}
	return it, nil
}

func parseThicknessType(s string) (shapes.ThicknessType, error) {
	for _, tt := range []shapes.ThicknessType{shapes.World, shapes.Pixels, shapes.Screen} {
		if tt.String() == s {
			return tt, nil
		}
	}
	return 0, fmt.Errorf("unknown thickness type %q", s)
}

func parseAlignment(s string) (shapes.Alignment, error) {
	for _, a := range []shapes.Alignment{shapes.Flat, shapes.Billboard} {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

func parseCap(s string) (shapes.Cap, error) {
	for _, c := range []shapes.Cap{shapes.CapNone, shapes.CapSquare, shapes.CapRound} {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown cap %q", s)
}

func vec2(v []float32) (mgl32.Vec2, error) {
	if len(v) != 2 {
		return mgl32.Vec2{}, fmt.Errorf("want 2 components, got %d", len(v))
	}
	return mgl32.Vec2{v[0], v[1]}, nil
}

// vec3 accepts two components for points in the XY plane.
func vec3(v []float32) (mgl32.Vec3, error) {
	switch len(v) {
	case 2:
		return mgl32.Vec3{v[0], v[1], 0}, nil
	case 3:
		return mgl32.Vec3{v[0], v[1], v[2]}, nil
	default:
		return mgl32.Vec3{}, fmt.Errorf("want 2 or 3 components, got %d", len(v))
	}
}

func vec4(v []float32) (mgl32.Vec4, error) {
	if len(v) != 4 {
		return mgl32.Vec4{}, fmt.Errorf("want 4 components, got %d", len(v))
	}
	return mgl32.Vec4{v[0], v[1], v[2], v[3]}, nil
}

func strip(points [][]float32) ([]mgl32.Vec3, error) {
	out := make([]mgl32.Vec3, 0, len(points))
	for i, p := range points {
		v, err := vec3(p)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
